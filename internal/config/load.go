package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, errors.Wrapf(err, "loading config from %s", configPath)
		}
	}

	applyFlags(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./scenegraph.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "SceneGraph")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "SceneGraph")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "scenegraph")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "scenegraph")
	}
}

// loadFromFile merges a YAML file into cfg.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func (c *Config) validate() error {
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return errors.Errorf("camera: need 0 < near < far, got near=%g far=%g", c.Camera.Near, c.Camera.Far)
	}
	if c.Camera.FovYDegrees <= 0 || c.Camera.FovYDegrees >= 180 {
		return errors.Errorf("camera: fov_y_degrees must be in (0, 180), got %g", c.Camera.FovYDegrees)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("window: invalid size %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}
