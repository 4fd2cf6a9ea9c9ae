package lightrig

const selectableKinds = 3

// Selection is the active light kind plus a remembered index per kind.
// The zero value selects nothing. LightNone and LightSun can never carry an
// index: Current reports ok=false for them.
type Selection struct {
	active  LightType
	indices [selectableKinds]int
}

func slot(kind LightType) (int, bool) {
	switch kind {
	case LightPoint:
		return 0, true
	case LightSpot:
		return 1, true
	case LightDirectional:
		return 2, true
	}
	return 0, false
}

func (s Selection) Active() LightType { return s.active }

// Index returns the remembered index for kind, or 0 for kinds without one.
func (s Selection) Index(kind LightType) int {
	i, ok := slot(kind)
	if !ok {
		return 0
	}
	return s.indices[i]
}

// Current returns the active kind and its index.
func (s Selection) Current() (LightType, int, bool) {
	i, ok := slot(s.active)
	if !ok {
		return LightNone, 0, false
	}
	return s.active, s.indices[i], true
}

// Toggle activates kind, or clears the selection if kind is already active.
func (s *Selection) Toggle(kind LightType) {
	if s.active == kind {
		s.active = LightNone
		return
	}
	s.Set(kind)
}

// Set activates kind unconditionally. Kinds that cannot be cycled collapse
// to LightNone.
func (s *Selection) Set(kind LightType) {
	if _, ok := slot(kind); !ok {
		s.active = LightNone
		return
	}
	s.active = kind
}

// Step moves the active index by delta, wrapping at size.
func (s *Selection) Step(delta, size int) bool {
	i, ok := slot(s.active)
	if !ok || size <= 0 {
		return false
	}
	s.indices[i] = wrap(s.indices[i]+delta, size)
	return true
}

// Normalize pulls a stale index back into [0,size) for the active kind. An
// index goes stale when the owning collection shrinks between callbacks.
func (s *Selection) Normalize(size int) (int, bool) {
	i, ok := slot(s.active)
	if !ok || size <= 0 {
		return 0, false
	}
	s.indices[i] = wrap(s.indices[i], size)
	return s.indices[i], true
}

func wrap(i, size int) int {
	i %= size
	if i < 0 {
		i += size
	}
	return i
}
