package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSmallball loads the SmallBall configuration.
// Search order: customPath -> ~/.tiltarcade/configs/smallball.yaml ->
// ./configs/smallball.yaml -> embedded default.
func LoadSmallball(customPath string) (SmallballConfig, error) {
	var cfg SmallballConfig

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	// User config directory, then working directory; either is accepted
	// only when it parses and validates.
	for _, path := range []string{userConfigPath("smallball.yaml"), filepath.Join("configs", "smallball.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			continue
		}
		if err := cfg.Validate(); err == nil {
			return cfg, nil
		}
	}

	// Embedded default
	if err := yaml.Unmarshal(defaultSmallballYAML, &cfg); err != nil {
		return DefaultSmallballConfig(), nil
	}
	if err := cfg.Validate(); err != nil {
		return DefaultSmallballConfig(), nil
	}
	return cfg, nil
}

// userConfigPath returns the per-user config file path, or empty when the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tiltarcade", "configs", filename)
}
