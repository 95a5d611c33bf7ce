package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/ventsim/internal/vent"
)

const (
	DefaultFlapHeight   = 125.0
	DefaultMotorSpacing = 30.0
	DefaultExtension    = 0.0
	DefaultSpeedHz      = 1.0
	DefaultScanStep     = 0.5
	DefaultVariant      = "linkage"
)

// Bounds is a declared [min, max, default] range for one knob. Raw input is
// validated only by clamping into it.
type Bounds struct {
	Min, Max, Default float64
}

func (b Bounds) Clamp(v float64) float64 {
	if v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}

var Limits = map[string]Bounds{
	"flap_height":   {Min: 80, Max: 200, Default: DefaultFlapHeight},
	"motor_spacing": {Min: 30, Max: 120, Default: DefaultMotorSpacing},
	"extension":     {Min: 0, Max: 100, Default: DefaultExtension},
	"speed":         {Min: 0, Max: 5, Default: DefaultSpeedHz},
	"scan_step":     {Min: 0.1, Max: 2, Default: DefaultScanStep},
}

type Config struct {
	Variant      string  `yaml:"variant"`
	FlapHeight   float64 `yaml:"flap_height"`
	MotorSpacing float64 `yaml:"motor_spacing"`
	Extension    float64 `yaml:"extension"`
	SpeedHz      float64 `yaml:"speed"`
	ScanStepDeg  float64 `yaml:"scan_step"`
}

func DefaultConfig() *Config {
	return &Config{
		Variant:      DefaultVariant,
		FlapHeight:   DefaultFlapHeight,
		MotorSpacing: DefaultMotorSpacing,
		Extension:    DefaultExtension,
		SpeedHz:      DefaultSpeedHz,
		ScanStepDeg:  DefaultScanStep,
	}
}

// Clamp forces every knob into its declared bounds.
func (c *Config) Clamp() {
	c.FlapHeight = Limits["flap_height"].Clamp(c.FlapHeight)
	c.MotorSpacing = Limits["motor_spacing"].Clamp(c.MotorSpacing)
	c.Extension = Limits["extension"].Clamp(c.Extension)
	c.SpeedHz = Limits["speed"].Clamp(c.SpeedHz)
	c.ScanStepDeg = Limits["scan_step"].Clamp(c.ScanStepDeg)
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.Clamp()
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params converts the config into engine parameters.
func (c *Config) Params() vent.Params {
	return vent.Params{
		FlapHeight:   c.FlapHeight,
		MotorSpacing: c.MotorSpacing,
		Extension:    c.Extension,
		ScanStepDeg:  c.ScanStepDeg,
	}
}
