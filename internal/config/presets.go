package config

var Presets = map[string]map[string]*Config{
	"linkage": {
		"compact": {
			Variant: "linkage", FlapHeight: 100, MotorSpacing: 30,
			SpeedHz: 1.0, ScanStepDeg: DefaultScanStep,
		},
		"standard": {
			Variant: "linkage", FlapHeight: 125, MotorSpacing: 30,
			SpeedHz: 1.0, ScanStepDeg: DefaultScanStep,
		},
		"wide": {
			Variant: "linkage", FlapHeight: 160, MotorSpacing: 80,
			SpeedHz: 0.5, ScanStepDeg: DefaultScanStep,
		},
	},
	"slider": {
		"standard": {
			Variant: "slider", FlapHeight: 125, MotorSpacing: 30,
			SpeedHz: 1.0, ScanStepDeg: DefaultScanStep,
		},
		"tall": {
			Variant: "slider", FlapHeight: 180, MotorSpacing: 60,
			SpeedHz: 0.5, ScanStepDeg: DefaultScanStep,
		},
		"fine": {
			Variant: "slider", FlapHeight: 125, MotorSpacing: 30,
			SpeedHz: 2.0, ScanStepDeg: 0.1,
		},
	},
}

func GetPreset(variant, name string) *Config {
	group, ok := Presets[variant]
	if !ok {
		return nil
	}
	cfg, ok := group[name]
	if !ok {
		return nil
	}
	out := *cfg
	return &out
}

func ListPresets(variant string) []string {
	group, ok := Presets[variant]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	return names
}
