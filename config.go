package lightrig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const envPrefix = "LIGHTRIG"

var envReplacer = strings.NewReplacer(".", "_")

type Config struct {
	Debug         bool              `mapstructure:"debug" yaml:"debug"`
	MovementSpeed float32           `mapstructure:"movement_speed" yaml:"movement_speed"`
	Window        WindowConfig      `mapstructure:"window" yaml:"window"`
	Bindings      map[string]string `mapstructure:"bindings" yaml:"bindings,omitempty"`
	Camera        *CameraConfig     `mapstructure:"camera" yaml:"camera,omitempty"`
	Scene         SceneConfig       `mapstructure:"scene" yaml:"scene"`
}

// CameraConfig is the pose movement axes are taken from, in degrees. Without
// it lights move along the scene axes.
type CameraConfig struct {
	Yaw   float32 `mapstructure:"yaw" yaml:"yaw"`
	Pitch float32 `mapstructure:"pitch" yaml:"pitch"`
}

type WindowConfig struct {
	Width  int    `mapstructure:"width" yaml:"width"`
	Height int    `mapstructure:"height" yaml:"height"`
	Title  string `mapstructure:"title" yaml:"title"`
}

type SceneConfig struct {
	Point       []PointLightConfig       `mapstructure:"point" yaml:"point,omitempty"`
	Spot        []SpotLightConfig        `mapstructure:"spot" yaml:"spot,omitempty"`
	Directional []DirectionalLightConfig `mapstructure:"directional" yaml:"directional,omitempty"`
	Sun         *DirectionalLightConfig  `mapstructure:"sun" yaml:"sun,omitempty"`
}

type PointLightConfig struct {
	Position  []float32 `mapstructure:"position" yaml:"position,flow"`
	Color     []float32 `mapstructure:"color" yaml:"color,flow,omitempty"`
	Intensity *float32  `mapstructure:"intensity" yaml:"intensity,omitempty"`
	Range     *float32  `mapstructure:"range" yaml:"range,omitempty"`
	Disabled  bool      `mapstructure:"disabled" yaml:"disabled,omitempty"`
}

type SpotLightConfig struct {
	PointLightConfig `mapstructure:",squash" yaml:",inline"`
	Direction        []float32 `mapstructure:"direction" yaml:"direction,flow"`
	ConeAngle        *float32  `mapstructure:"cone_angle" yaml:"cone_angle,omitempty"`
}

type DirectionalLightConfig struct {
	Direction []float32 `mapstructure:"direction" yaml:"direction,flow"`
	Color     []float32 `mapstructure:"color" yaml:"color,flow,omitempty"`
	Intensity *float32  `mapstructure:"intensity" yaml:"intensity,omitempty"`
	Disabled  bool      `mapstructure:"disabled" yaml:"disabled,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		MovementSpeed: DefaultMovementSpeed,
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "lightrig",
		},
		Bindings: DefaultKeymap().Names(),
	}
}

// LoadEnvFiles loads .env style files into the process environment. Missing
// files are skipped; existing variables are not overridden.
func LoadEnvFiles(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load env file %s: %w", p, err)
		}
	}
	return nil
}

// LoadConfig reads path (or lightrig.yaml in the working directory when path
// is empty) on top of the defaults. A missing lightrig.yaml is fine; a missing
// explicit path is an error. LIGHTRIG_* environment variables override scalar
// keys, e.g. LIGHTRIG_MOVEMENT_SPEED or LIGHTRIG_CAMERA_YAW.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(envReplacer)
	v.AutomaticEnv()
	// No defaults for the camera: setting either key switches to camera axes.
	for _, key := range []string{"camera.yaw", "camera.pitch"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("lightrig")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.MovementSpeed = clampSpeed(cfg.MovementSpeed)
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("debug", d.Debug)
	v.SetDefault("movement_speed", d.MovementSpeed)
	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
	v.SetDefault("window.title", d.Window.Title)
}

// WriteFile stores the config as YAML, creating parent directories.
func (c *Config) WriteFile(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Keymap returns the default bindings with the configured overrides applied.
func (c *Config) Keymap() (*Keymap, error) {
	km := DefaultKeymap()
	for action, key := range c.Bindings {
		if err := km.Rebind(action, key); err != nil {
			return nil, fmt.Errorf("binding %s: %w", action, err)
		}
	}
	return km, nil
}

// Basis returns the movement axes for the configured camera pose.
func (c *Config) Basis() Basis {
	if c.Camera == nil {
		return WorldBasis()
	}
	return CameraBasis(c.Camera.Yaw, c.Camera.Pitch)
}

// Lights builds the light set described by the scene section. An empty scene
// yields DefaultLights.
func (c *Config) Lights() (*Lights, error) {
	s := c.Scene
	if len(s.Point) == 0 && len(s.Spot) == 0 && len(s.Directional) == 0 && s.Sun == nil {
		return DefaultLights(), nil
	}

	lights := &Lights{}
	for i, pc := range s.Point {
		pos, err := vec3(pc.Position, nil)
		if err != nil {
			return nil, fmt.Errorf("scene.point[%d].position: %w", i, err)
		}
		l := NewPointLight(pos)
		if err := pc.applyTo(&l.Color, &l.Intensity, &l.Range, &l.Enabled); err != nil {
			return nil, fmt.Errorf("scene.point[%d]: %w", i, err)
		}
		lights.Point = append(lights.Point, l)
	}

	for i, sc := range s.Spot {
		pos, err := vec3(sc.Position, nil)
		if err != nil {
			return nil, fmt.Errorf("scene.spot[%d].position: %w", i, err)
		}
		dir, err := vec3(sc.Direction, &mgl32.Vec3{0, -1, 0})
		if err != nil {
			return nil, fmt.Errorf("scene.spot[%d].direction: %w", i, err)
		}
		l := NewSpotLight(pos, dir)
		if err := sc.applyTo(&l.Color, &l.Intensity, &l.Range, &l.Enabled); err != nil {
			return nil, fmt.Errorf("scene.spot[%d]: %w", i, err)
		}
		if sc.ConeAngle != nil {
			l.ConeAngle = *sc.ConeAngle
		}
		lights.Spot = append(lights.Spot, l)
	}

	for i, dc := range s.Directional {
		l, err := dc.build()
		if err != nil {
			return nil, fmt.Errorf("scene.directional[%d]: %w", i, err)
		}
		lights.Directional = append(lights.Directional, l)
	}

	if s.Sun != nil {
		sun, err := s.Sun.build()
		if err != nil {
			return nil, fmt.Errorf("scene.sun: %w", err)
		}
		lights.Sun = sun
	} else {
		lights.Sun = NewDirectionalLight(sunPresets[Morning].Direction)
		lights.Sun.apply(sunPresets[Morning])
	}
	return lights, nil
}

func (pc PointLightConfig) applyTo(color *mgl32.Vec3, intensity, rng *float32, enabled *bool) error {
	if len(pc.Color) > 0 {
		c, err := vec3(pc.Color, nil)
		if err != nil {
			return fmt.Errorf("color: %w", err)
		}
		*color = c
	}
	if pc.Intensity != nil {
		*intensity = *pc.Intensity
	}
	if pc.Range != nil {
		*rng = *pc.Range
	}
	*enabled = !pc.Disabled
	return nil
}

func (dc DirectionalLightConfig) build() (DirectionalLight, error) {
	dir, err := vec3(dc.Direction, &mgl32.Vec3{1, -1, 0})
	if err != nil {
		return DirectionalLight{}, fmt.Errorf("direction: %w", err)
	}
	l := NewDirectionalLight(dir)
	if len(dc.Color) > 0 {
		c, err := vec3(dc.Color, nil)
		if err != nil {
			return DirectionalLight{}, fmt.Errorf("color: %w", err)
		}
		l.Color = c
	}
	if dc.Intensity != nil {
		l.Intensity = *dc.Intensity
	}
	l.Enabled = !dc.Disabled
	return l, nil
}

var errVec3Len = errors.New("expected 3 components")

func vec3(v []float32, fallback *mgl32.Vec3) (mgl32.Vec3, error) {
	if len(v) == 0 && fallback != nil {
		return *fallback, nil
	}
	if len(v) != 3 {
		return mgl32.Vec3{}, fmt.Errorf("%w, got %d", errVec3Len, len(v))
	}
	return mgl32.Vec3{v[0], v[1], v[2]}, nil
}
