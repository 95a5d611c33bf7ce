package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Variant != DefaultVariant {
		t.Errorf("variant = %s, want %s", cfg.Variant, DefaultVariant)
	}
	if cfg.FlapHeight != DefaultFlapHeight || cfg.MotorSpacing != DefaultMotorSpacing {
		t.Error("default dimensions do not match the declared defaults")
	}

	// Defaults must already sit inside their own declared bounds.
	clamped := *cfg
	clamped.Clamp()
	if clamped != *cfg {
		t.Errorf("defaults changed under clamping: %+v", clamped)
	}
}

func TestClamp(t *testing.T) {
	cfg := &Config{
		Variant:      "linkage",
		FlapHeight:   5000,
		MotorSpacing: -10,
		Extension:    150,
		SpeedHz:      99,
		ScanStepDeg:  0,
	}
	cfg.Clamp()

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"flap height", cfg.FlapHeight, 200},
		{"motor spacing", cfg.MotorSpacing, 30},
		{"extension", cfg.Extension, 100},
		{"speed", cfg.SpeedHz, 5},
		{"scan step", cfg.ScanStepDeg, 0.1},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s clamped to %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestBounds(t *testing.T) {
	b := Bounds{Min: 30, Max: 120, Default: 30}
	if got := b.Clamp(10); got != 30 {
		t.Errorf("Clamp(10) = %v, want 30", got)
	}
	if got := b.Clamp(500); got != 120 {
		t.Errorf("Clamp(500) = %v, want 120", got)
	}
	if got := b.Clamp(60); got != 60 {
		t.Errorf("Clamp(60) = %v, want 60", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ventsim.yaml")

	want := DefaultConfig()
	want.Variant = "slider"
	want.FlapHeight = 160
	want.Extension = 75
	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *got != *want {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestLoadClampsOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ventsim.yaml")
	raw := "variant: linkage\nflap_height: 9999\nmotor_spacing: 45\nextension: 20\nspeed: 1\nscan_step: 0.5\n"
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FlapHeight != 200 {
		t.Errorf("flap height = %v, want clamped 200", cfg.FlapHeight)
	}
	if cfg.MotorSpacing != 45 {
		t.Errorf("motor spacing = %v, want 45 untouched", cfg.MotorSpacing)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestGetPreset(t *testing.T) {
	p := GetPreset("linkage", "standard")
	if p == nil {
		t.Fatal("standard linkage preset missing")
	}
	if p.FlapHeight != 125 || p.Variant != "linkage" {
		t.Errorf("unexpected preset contents: %+v", p)
	}

	// Callers get a copy, not the shared table entry.
	p.FlapHeight = 1
	if Presets["linkage"]["standard"].FlapHeight == 1 {
		t.Error("mutating a returned preset leaked into the table")
	}

	if GetPreset("linkage", "nope") != nil {
		t.Error("expected nil for unknown preset name")
	}
	if GetPreset("nope", "standard") != nil {
		t.Error("expected nil for unknown variant")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets("slider")
	if len(names) != 3 {
		t.Fatalf("got %d slider presets, want 3", len(names))
	}
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		seen[n] = true
	}
	for _, want := range []string{"standard", "tall", "fine"} {
		if !seen[want] {
			t.Errorf("missing preset %q", want)
		}
	}
	if ListPresets("nope") != nil {
		t.Error("expected nil for unknown variant")
	}
}

func TestParams(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Extension = 40
	p := cfg.Params()
	if p.FlapHeight != cfg.FlapHeight || p.Extension != 40 || p.ScanStepDeg != cfg.ScanStepDeg {
		t.Errorf("Params() = %+v", p)
	}
}
