package config

import (
	"context"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/screenreel/screenreel/internal/camera"
)

type contextKey string

const configKey contextKey = "config"

// Config holds all application configuration
type Config struct {
	// Synthesis mode used when the command line does not override it
	Mode camera.Mode `yaml:"mode"`

	// Camera engine tunables
	Camera camera.Config `yaml:"camera"`

	// Render settings
	Render RenderConfig `yaml:"render"`

	// Badge overlay settings
	Badge BadgeConfig `yaml:"badge"`
}

type RenderConfig struct {
	FPS     int    `yaml:"fps"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	OutDir  string `yaml:"out_dir"`
	StepMs  int64  `yaml:"step_ms"`
	Workers int    `yaml:"workers"`
	Debug   bool   `yaml:"debug"`
}

type BadgeConfig struct {
	URL    string `yaml:"url"`
	Size   int    `yaml:"size"`
	Margin int    `yaml:"margin"`
}

// Load reads configuration from file or returns defaults
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if path == "" {
		path = findConfigFile()
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes configuration to file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func defaultConfig() *Config {
	return &Config{
		Mode:   camera.ModeSmart,
		Camera: camera.DefaultConfig(),
		Render: RenderConfig{
			FPS:    30,
			Width:  1920,
			Height: 1080,
			OutDir: "output",
			StepMs: 500,
		},
		Badge: BadgeConfig{
			Size:   192,
			Margin: 48,
		},
	}
}

func findConfigFile() string {
	candidates := []string{
		"./screenreel.yaml",
		"./screenreel.yml",
		filepath.Join(os.Getenv("HOME"), ".screenreel", "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// WithConfig stores config in context
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// FromContext retrieves config from context
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(configKey).(*Config); ok {
		return cfg
	}
	return defaultConfig()
}
