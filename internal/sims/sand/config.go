package sand

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Fill paints a rectangle of one particle kind when the scene is reset.
type Fill struct {
	Kind string `yaml:"kind"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
	W    int    `yaml:"w"`
	H    int    `yaml:"h"`
}

// Config controls the sand simulation dimensions and initial scene.
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Seed   int64  `yaml:"seed"`
	Preset string `yaml:"preset"`
	Setup  []Fill `yaml:"setup"`
}

// DefaultConfig returns the embedded default configuration.
func DefaultConfig() Config {
	var c Config
	if err := yaml.Unmarshal(defaultsYAML, &c); err != nil {
		panic(fmt.Sprintf("sand: parsing embedded defaults: %v", err))
	}
	return c
}

// LoadConfig reads a YAML file over the embedded defaults. Only fields present
// in the file override defaults. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Validate checks dimensions, the preset name and every setup fill.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("dimensions must be positive, got %dx%d", c.Width, c.Height))
	}
	if _, ok := presets[c.Preset]; !ok {
		errs = append(errs, fmt.Errorf("unknown preset %q", c.Preset))
	}
	for i, f := range c.Setup {
		if _, err := ParseKind(f.Kind); err != nil {
			errs = append(errs, fmt.Errorf("setup[%d]: %w", i, err))
		}
		if f.W < 0 || f.H < 0 {
			errs = append(errs, fmt.Errorf("setup[%d]: negative size %dx%d", i, f.W, f.H))
			continue
		}
		if f.W == 0 || f.H == 0 {
			continue
		}
		if f.X < 0 || f.Y < 0 || f.X+f.W > c.Width || f.Y+f.H > c.Height {
			errs = append(errs, fmt.Errorf("setup[%d]: rectangle (%d,%d)+(%d,%d) exceeds %dx%d grid",
				i, f.X, f.Y, f.W, f.H, c.Width, c.Height))
		}
	}
	return errors.Join(errs...)
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["preset"]; ok {
		if _, known := presets[v]; known {
			c.Preset = v
		}
	}
	return c
}
