package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/stevenjmoe/learning-wgpu/internal/util"
)

// Config represents the main configuration
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig contains window-related configuration
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
	FrameRate int    `yaml:"framerate"` // 0 means uncapped
}

// LoggingConfig contains logging-related configuration
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // optional, empty means console only
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     128,
			Height:    128,
			Title:     "Window!",
			Resizable: true,
			FrameRate: 0,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

// LoadConfig loads the configuration from a file
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return config, fmt.Errorf("config file not found, using defaults: %v", err)
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return config, fmt.Errorf("error parsing config: %v", err)
	}

	config.normalize()
	return config, nil
}

// SaveConfig saves the configuration to a file
func SaveConfig(config *Config, filePath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error serializing config: %v", err)
	}

	err = os.WriteFile(filePath, data, 0644)
	if err != nil {
		return fmt.Errorf("error writing config file: %v", err)
	}

	return nil
}

// normalize clamps values that would otherwise break window creation
// or the frame-rate cap.
func (c *Config) normalize() {
	c.Window.Width = int(util.Clamp(float64(c.Window.Width), 1, 16384))
	c.Window.Height = int(util.Clamp(float64(c.Window.Height), 1, 16384))
	c.Window.FrameRate = int(util.Clamp(float64(c.Window.FrameRate), 0, 1000))
	if c.Window.Title == "" {
		c.Window.Title = DefaultConfig().Window.Title
	}
}
