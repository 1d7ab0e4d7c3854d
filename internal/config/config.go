package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the scene config file, relative to the process working directory.
const DefaultPath = "config/scene.yaml"

// SceneConfig is the single source of truth for every tunable value in the scene.
// The panel mutates it in place; builders only read it.
type SceneConfig struct {
	Plane     PlaneConfig    `yaml:"plane"`
	Triangles TriangleConfig `yaml:"triangles"`
	Sphere    SphereConfig   `yaml:"sphere"`
	Lights    LightsConfig   `yaml:"lights"`
	Grid      GridConfig     `yaml:"grid"`
	Camera    CameraConfig   `yaml:"camera"`
	Debug     DebugConfig    `yaml:"debug"`
}

type PlaneConfig struct {
	BackgroundColor Color `yaml:"background_color"`
}

// TriangleConfig drives the optional triangle field. Enabled builds the
// field at startup; otherwise it appears on the first panel edit.
type TriangleConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Number    int     `yaml:"number"`
	Size      float32 `yaml:"size"`
	Color     Color   `yaml:"color"`
	Emissive  Color   `yaml:"emissive"`
	Roughness float32 `yaml:"roughness"`
	Metalness float32 `yaml:"metalness"`
	Wireframe bool    `yaml:"wireframe"`
}

type SphereConfig struct {
	Size         float32 `yaml:"size"`
	Color        Color   `yaml:"color"`
	Reflectivity float32 `yaml:"reflectivity"`
}

// LightConfig covers all three light kinds; Distance and Decay only apply to the point light.
// Enable is kept for file compatibility and is not consulted when the rig is built.
type LightConfig struct {
	Color     Color   `yaml:"color"`
	Intensity float32 `yaml:"intensity"`
	Distance  float32 `yaml:"distance,omitempty"`
	Decay     float32 `yaml:"decay,omitempty"`
	Enable    bool    `yaml:"enable"`
}

type LightsConfig struct {
	Directional LightConfig `yaml:"directional"`
	Point       LightConfig `yaml:"point"`
	Ambient     LightConfig `yaml:"ambient"`
}

type GridAxis struct {
	Count int     `yaml:"count"`
	Size  float32 `yaml:"size"`
}

type GridConfig struct {
	Visible bool     `yaml:"visible"`
	Columns GridAxis `yaml:"columns"`
	Rows    GridAxis `yaml:"rows"`
}

type CameraConfig struct {
	Fov  float32 `yaml:"fov"`
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`
	Z    float32 `yaml:"z"`
}

type DebugConfig struct {
	ShowFPS bool `yaml:"show_fps"`
	ShowMem bool `yaml:"show_mem"`
}

// Default returns the stock scene: 30 triangles (not built), a size-2 sphere and all three lights.
func Default() SceneConfig {
	return SceneConfig{
		Plane: PlaneConfig{BackgroundColor: 0x000000},
		Triangles: TriangleConfig{
			Number:    30,
			Size:      0.06,
			Color:     0xffffff,
			Emissive:  0x000000,
			Roughness: 0,
			Metalness: 0,
		},
		Sphere: SphereConfig{
			Size:         2,
			Color:        0x0fffff,
			Reflectivity: 0.2,
		},
		Lights: LightsConfig{
			Directional: LightConfig{Color: 0x0fffff, Intensity: 0.125, Enable: true},
			Point:       LightConfig{Color: 0x0fffff, Intensity: 1, Distance: 0, Decay: 1, Enable: true},
			Ambient:     LightConfig{Color: 0x0fffff, Intensity: 1, Enable: true},
		},
		Grid: GridConfig{
			Columns: GridAxis{Count: 10, Size: 0.2},
			Rows:    GridAxis{Count: 5, Size: 0.3},
		},
		Camera: CameraConfig{Fov: 45, Near: 0.1, Far: 1000, Z: 50},
	}
}

// Load reads a scene config from path. Fields absent from the file keep their defaults.
// A missing file returns Default() and no error; an unreadable or invalid file
// returns Default() together with the error so the caller can report it.
func Load(path string) (SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("config: %w", err)
	}
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	return c, nil
}

// Save writes c to path as YAML, creating the parent directory if needed.
func Save(path string, c SceneConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Clone returns a deep copy of c.
func Clone(c SceneConfig) SceneConfig {
	var out SceneConfig
	if err := copier.CopyWithOption(&out, &c, copier.Option{DeepCopy: true}); err != nil {
		// SceneConfig holds only value fields, so a plain copy is equivalent.
		return c
	}
	return out
}
