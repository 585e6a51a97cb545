package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"spheres3d/internal/math3d"
	"spheres3d/internal/scene"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	// Background is a packed 0xRRGGBBAA clear color.
	Background uint32 `yaml:"background"`
}

type Camera struct {
	Translate math3d.Vector3 `yaml:"translate"`
	Rotate    math3d.Vector3 `yaml:"rotate"`
	MoveSpeed float32        `yaml:"move_speed"`
	LookSpeed float32        `yaml:"look_speed"`
}

// Projection is the perspective setup. The aspect ratio always follows the window.
type Projection struct {
	FovY  float32 `yaml:"fov_y"`
	NearZ float32 `yaml:"near_z"`
	FarZ  float32 `yaml:"far_z"`
}

type Grid struct {
	HalfWidth   float32 `yaml:"half_width"`
	Subdivision uint32  `yaml:"subdivision"`
}

type Spheres struct {
	Subdivision uint32       `yaml:"subdivision"`
	A           scene.Sphere `yaml:"a"`
	B           scene.Sphere `yaml:"b"`
}

type Log struct {
	Level string `yaml:"level"`
}

// Config is the full demo configuration. Path is the file it was loaded
// from and is empty for the built-in defaults.
type Config struct {
	Window     Window     `yaml:"window"`
	Camera     Camera     `yaml:"camera"`
	Projection Projection `yaml:"projection"`
	Grid       Grid       `yaml:"grid"`
	Spheres    Spheres    `yaml:"spheres"`
	Log        Log        `yaml:"log"`
	// Watch reloads sphere edits from Path while the demo runs.
	Watch bool `yaml:"watch"`

	Path string `yaml:"-"`
}

// Default returns the stock scene: a 1280x720 window, the camera 7 units
// behind and 2 above the origin, and two unit spheres that touch.
func Default() *Config {
	return &Config{
		Window: Window{Width: 1280, Height: 720, Title: "spheres3d", Background: 0x1A1A1AFF},
		Camera: Camera{
			Translate: math3d.Vector3{X: 0, Y: 2, Z: -7},
			MoveSpeed: 0.1,
			LookSpeed: 0.01,
		},
		Projection: Projection{FovY: 0.5, NearZ: 0.1, FarZ: 100},
		Grid:       Grid{HalfWidth: 2, Subdivision: 10},
		Spheres: Spheres{
			Subdivision: 16,
			A:           scene.Sphere{Center: math3d.Vector3{X: 0, Y: 1, Z: 0}, Radius: 1},
			B:           scene.Sphere{Center: math3d.Vector3{X: 2, Y: 1, Z: 0}, Radius: 1},
		},
		Log:   Log{Level: "info"},
		Watch: true,
	}
}

// Decode reads YAML from r on top of the defaults. Keys missing from the
// document keep their default values.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads the config file at path. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Validate rejects values the renderer cannot work with.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Projection.FovY <= 0:
		return fmt.Errorf("%w: fov_y %g", ErrInvalid, c.Projection.FovY)
	case c.Projection.NearZ <= 0 || c.Projection.FarZ <= c.Projection.NearZ:
		return fmt.Errorf("%w: depth range [%g, %g]", ErrInvalid, c.Projection.NearZ, c.Projection.FarZ)
	case c.Grid.Subdivision == 0:
		return fmt.Errorf("%w: grid subdivision must be positive", ErrInvalid)
	case c.Spheres.Subdivision == 0:
		return fmt.Errorf("%w: sphere subdivision must be positive", ErrInvalid)
	}
	if err := c.Spheres.A.Validate(); err != nil {
		return fmt.Errorf("%w: sphere a: %w", ErrInvalid, err)
	}
	if err := c.Spheres.B.Validate(); err != nil {
		return fmt.Errorf("%w: sphere b: %w", ErrInvalid, err)
	}
	return nil
}

// Scene builds the initial scene state.
func (c *Config) Scene() *scene.Scene {
	viewport := scene.Viewport{Width: c.Window.Width, Height: c.Window.Height}
	return &scene.Scene{
		Camera: scene.Camera{Translate: c.Camera.Translate, Rotate: c.Camera.Rotate},
		A:      c.Spheres.A,
		B:      c.Spheres.B,
		Projection: scene.Projection{
			FovY:   c.Projection.FovY,
			Aspect: viewport.Aspect(),
			NearZ:  c.Projection.NearZ,
			FarZ:   c.Projection.FarZ,
		},
		Viewport:          viewport,
		Grid:              scene.Grid{HalfWidth: c.Grid.HalfWidth, Subdivision: c.Grid.Subdivision},
		SphereSubdivision: c.Spheres.Subdivision,
	}
}
