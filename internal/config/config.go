// Package config handles scene tool configuration loading and management.
package config

// Config holds all settings for the scene tools.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Scene   SceneConfig   `yaml:"scene"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings for the viewer.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// CameraConfig holds the orbit camera and projection used to seed traversal.
type CameraConfig struct {
	FovYDegrees float32    `yaml:"fov_y_degrees"`
	Near        float32    `yaml:"near"`
	Far         float32    `yaml:"far"`
	Distance    float32    `yaml:"distance"`
	Pitch       float32    `yaml:"pitch"` // radians
	Yaw         float32    `yaml:"yaw"`   // radians
	Center      [3]float32 `yaml:"center"`

	// InverseTransposeNormal seeds the normal matrix with the
	// inverse-transpose of the view instead of the view itself.
	InverseTransposeNormal bool `yaml:"inverse_transpose_normal"`
}

// SceneConfig points at the scene description to load.
type SceneConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Scene Graph",
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Camera: CameraConfig{
			FovYDegrees: 60,
			Near:        0.1,
			Far:         1000,
			Distance:    10,
			Pitch:       0.4,
		},
		Scene: SceneConfig{
			Path: "scene.yaml",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Aspect returns the window aspect ratio, or 1 for a degenerate size.
func (c *Config) Aspect() float32 {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return 1
	}
	return float32(c.Window.Width) / float32(c.Window.Height)
}
