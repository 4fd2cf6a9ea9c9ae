package termui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lightrig/lightrig"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func TestKeyFromTerminal(t *testing.T) {
	tests := []struct {
		in   string
		want glfw.Key
	}{
		{"1", glfw.Key1},
		{"left", glfw.KeyLeft},
		{"=", glfw.KeyEqual},
		{"+", glfw.KeyEqual},
		{"-", glfw.KeyMinus},
		{"esc", glfw.KeyEscape},
		{"U", glfw.KeyU},
		{" ", glfw.KeySpace},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := KeyFromTerminal(tt.in)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := KeyFromTerminal("ctrl+alt+x")
	assert.False(t, ok)
}

func TestModelSelectsAndCycles(t *testing.T) {
	ctrl := lightrig.NewController(lightrig.DefaultLights())
	m := New(ctrl)

	m = send(t, m, runes("1"), tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, lightrig.LightPoint, ctrl.ActiveLightType())
	assert.Equal(t, 2, ctrl.Selection().Index(lightrig.LightPoint))

	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 1, ctrl.Selection().Index(lightrig.LightPoint))

	send(t, m, runes("1"))
	assert.Equal(t, lightrig.LightNone, ctrl.ActiveLightType())
}

func TestModelMovesOnEveryKeystroke(t *testing.T) {
	lights := lightrig.DefaultLights()
	ctrl := lightrig.NewController(lights)
	ctrl.UpdateDeltaTime(1)
	m := New(ctrl)

	start := lights.Point[0].Position
	send(t, m, runes("1"), runes("u"), runes("u"))
	assert.InDelta(t, start.Y()+10, lights.Point[0].Position.Y(), 1e-5)
}

func TestModelSpeedToggleAndSun(t *testing.T) {
	lights := lightrig.DefaultLights()
	ctrl := lightrig.NewController(lights)
	m := New(ctrl)

	send(t, m, runes("="), runes("-"), runes("-"), runes("2"), runes("p"), runes("t"))
	assert.Equal(t, float32(4), ctrl.MovementSpeed())
	assert.False(t, lights.Spot[0].Enabled)
	assert.Equal(t, lightrig.Midday, ctrl.TimeOfDay())
}

func TestModelQuitAndHelp(t *testing.T) {
	m := New(lightrig.NewController(lightrig.DefaultLights()))

	next, cmd := m.Update(runes("?"))
	assert.Nil(t, cmd)
	assert.True(t, next.(Model).help.ShowAll)

	_, cmd = m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModelFrameUpdatesDeltaTime(t *testing.T) {
	ctrl := lightrig.NewController(lightrig.DefaultLights())
	m := New(ctrl)

	_, cmd := m.Update(frameMsg{})
	assert.NotNil(t, cmd)
	assert.GreaterOrEqual(t, ctrl.DeltaTime(), float32(0))
}

func TestModelView(t *testing.T) {
	ctrl := lightrig.NewController(lightrig.DefaultLights())
	m := New(ctrl)
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40}, runes("2"))

	view := m.View()
	assert.Contains(t, view, "point lights (3)")
	assert.Contains(t, view, "spot lights (2)")
	assert.Contains(t, view, "directional lights (1)")
	assert.Contains(t, view, "sun (morning)")
	assert.Contains(t, view, "spot 1/2 [on]")
}

func TestHelpUsesKeymap(t *testing.T) {
	km := lightrig.DefaultKeymap()
	require.NoError(t, km.Rebind("toggle_state", "x"))
	keys := newKeyMap(km)

	assert.Equal(t, []string{"x"}, keys.Toggle[0].Keys())
	assert.Equal(t, "=", keys.Speed[0].Help().Key)
	assert.Len(t, keys.FullHelp(), 5)
}

func TestModelViewHighlightsNormalizedRow(t *testing.T) {
	lights := lightrig.DefaultLights()
	ctrl := lightrig.NewController(lights)
	m := send(t, New(ctrl), runes("1"), tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight})
	lights.Point = lights.Point[:2]

	view := m.View()
	assert.Contains(t, view, "› #1")
	assert.NotContains(t, view, "› #2")
	assert.Contains(t, view, "point 1/2")
}
