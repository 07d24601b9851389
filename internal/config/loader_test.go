package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg SmallballConfig
	if err := yaml.Unmarshal(defaultSmallballYAML, &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("embedded default does not validate: %v", err)
	}

	want := DefaultSmallballConfig()
	if cfg.Control.AngleThreshold != want.Control.AngleThreshold {
		t.Errorf("angle threshold = %v, expected %v", cfg.Control.AngleThreshold, want.Control.AngleThreshold)
	}
	if cfg.Ball != want.Ball {
		t.Errorf("ball = %+v, expected %+v", cfg.Ball, want.Ball)
	}
	if len(cfg.Goals.Locations) != len(want.Goals.Locations) {
		t.Fatalf("goal count = %d, expected %d", len(cfg.Goals.Locations), len(want.Goals.Locations))
	}
	for i, loc := range cfg.Goals.Locations {
		if loc != want.Goals.Locations[i] {
			t.Errorf("goal %d = %+v, expected %+v", i, loc, want.Goals.Locations[i])
		}
	}
	if cfg.Field != want.Field {
		t.Errorf("field = %+v, expected %+v", cfg.Field, want.Field)
	}
}

func TestLoadSmallballCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "smallball.yaml")

	custom := DefaultSmallballConfig()
	custom.Ball.Step = 4
	data, err := yaml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadSmallball(path)
	if err != nil {
		t.Fatalf("LoadSmallball() failed: %v", err)
	}
	if cfg.Ball.Step != 4 {
		t.Errorf("custom ball step = %d, expected 4", cfg.Ball.Step)
	}
}

func TestLoadSmallballMissingCustomPath(t *testing.T) {
	if _, err := LoadSmallball(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestValidateGoalCardinality(t *testing.T) {
	cfg := DefaultSmallballConfig()
	cfg.Goals.Locations = cfg.Goals.Locations[:3]

	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for 3 goals")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SmallballConfig)
	}{
		{"zero ball size", func(c *SmallballConfig) { c.Ball.Size = 0 }},
		{"zero step", func(c *SmallballConfig) { c.Ball.Step = 0 }},
		{"zero threshold", func(c *SmallballConfig) { c.Control.AngleThreshold = 0 }},
		{"inverted x bounds", func(c *SmallballConfig) { c.Field.XMin = c.Field.XMax + 1 }},
		{"inverted y bounds", func(c *SmallballConfig) { c.Field.YMin = c.Field.YMax + 1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSmallballConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
