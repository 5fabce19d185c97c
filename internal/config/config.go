package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Config holds the runtime settings of the sky cycle runner.
type Config struct {
	ConfigToLoad string `yaml:"config_to_load"` // skybox configuration id
	ConfigDir    string `yaml:"config_dir"`

	CycleTime         float32 `yaml:"cycle_time"`         // hours in one cycle
	LifecycleDuration float32 `yaml:"lifecycle_duration"` // real minutes per cycle
	FixedTime         float32 `yaml:"fixed_time"`         // negative keeps the cycle running
	UseServerTime     bool    `yaml:"use_server_time"`

	SlotCount int  `yaml:"slot_count"`
	FPS       int  `yaml:"fps"`
	Debug     bool `yaml:"debug"`
}

func Default() Config {
	return Config{
		ConfigToLoad:      "Generic_Skybox",
		ConfigDir:         "configs",
		CycleTime:         24,
		LifecycleDuration: 2,
		FixedTime:         -1,
		SlotCount:         5,
		FPS:               60,
	}
}

// Load reads path over the defaults, so a file only needs the keys it changes.
func Load(path string) (*Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// CycleFrames is the number of frames one full cycle takes at FPS.
func (c *Config) CycleFrames() int {
	return int(math.Round(float64(c.LifecycleDuration) * 60 * float64(c.FPS)))
}

// Paused reports whether the cycle is held at FixedTime.
func (c *Config) Paused() bool {
	return c.FixedTime >= 0
}

func (c *Config) Validate() error {
	var err error
	if c.CycleTime <= 0 {
		err = multierr.Append(err, fmt.Errorf("cycle_time must be positive, got %g", c.CycleTime))
	}
	if c.LifecycleDuration <= 0 {
		err = multierr.Append(err, fmt.Errorf("lifecycle_duration must be positive, got %g", c.LifecycleDuration))
	}
	if c.FixedTime > c.CycleTime {
		err = multierr.Append(err, fmt.Errorf("fixed_time %g beyond cycle_time %g", c.FixedTime, c.CycleTime))
	}
	if c.SlotCount <= 0 {
		err = multierr.Append(err, fmt.Errorf("slot_count must be positive, got %d", c.SlotCount))
	}
	if c.FPS <= 0 {
		err = multierr.Append(err, fmt.Errorf("fps must be positive, got %d", c.FPS))
	}
	if c.ConfigDir == "" {
		err = multierr.Append(err, errors.New("config_dir is empty"))
	}
	return err
}
