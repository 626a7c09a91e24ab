// Package config loads tool settings from an optional YAML file, with CLI
// flags taking priority over the file and the file over built-in defaults.
package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config holds shared settings for the texture and mesh tools.
type Config struct {
	Colors  ColorsConfig  `yaml:"colors"`
	Output  OutputConfig  `yaml:"output"`
	Workers int           `yaml:"workers"`
	Logging LoggingConfig `yaml:"logging"`
}

// ColorsConfig holds the band replacement colors as hex strings.
type ColorsConfig struct {
	White string `yaml:"white"`
	Grey  string `yaml:"grey"`
	Black string `yaml:"black"`
}

// OutputConfig holds output settings for the texture tool.
type OutputConfig struct {
	Dir         string `yaml:"dir"`
	Format      string `yaml:"format"` // "webp" or "png"
	PreviewSize int    `yaml:"preview_size"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Colors: ColorsConfig{
			White: "#ffffff",
			Grey:  "#808080",
			Black: "#000000",
		},
		Output: OutputConfig{
			Dir:         ".",
			Format:      "webp",
			PreviewSize: 200,
		},
		Workers: runtime.NumCPU(),
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads a YAML config file over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override file settings.
type Flags struct {
	White     string
	Grey      string
	Black     string
	OutputDir string
	Format    string
	Workers   int
	LogLevel  string
}

// Resolve applies CLI flags and re-fills any fields still empty or zero.
func (c *Config) Resolve(flags Flags) {
	if flags.White != "" {
		c.Colors.White = flags.White
	}
	if flags.Grey != "" {
		c.Colors.Grey = flags.Grey
	}
	if flags.Black != "" {
		c.Colors.Black = flags.Black
	}
	if flags.OutputDir != "" {
		c.Output.Dir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Output.Format = flags.Format
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.LogLevel != "" {
		c.Logging.Level = flags.LogLevel
	}

	def := Default()
	if c.Output.Dir == "" {
		c.Output.Dir = def.Output.Dir
	}
	if c.Output.Format == "" {
		c.Output.Format = def.Output.Format
	}
	if c.Output.PreviewSize <= 0 {
		c.Output.PreviewSize = def.Output.PreviewSize
	}
	if c.Workers <= 0 {
		c.Workers = def.Workers
	}
	if c.Logging.Level == "" {
		c.Logging.Level = def.Logging.Level
	}
}

// Validate rejects settings no tool can act on.
func (c *Config) Validate() error {
	if c.Output.Format != "webp" && c.Output.Format != "png" {
		return fmt.Errorf("config: unknown output format %q", c.Output.Format)
	}
	return nil
}
