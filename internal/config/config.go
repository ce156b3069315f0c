// Package config loads server settings from an optional YAML or TOML file
// and environment variables.
//
// Precedence, lowest first: built-in defaults, the config file, environment
// variables. A .env file in the working directory is loaded by the command
// before Load runs, so its values arrive here as ordinary environment
// variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/ironsheep/contrast-tools-mcp/internal/contrast"
	"github.com/ironsheep/contrast-tools-mcp/internal/preview"
)

// Environment variable names.
const (
	EnvConfigPath         = "CONTRAST_MCP_CONFIG"
	EnvLogLevel           = "CONTRAST_MCP_LOG_LEVEL"
	EnvDefaultContentType = "CONTRAST_MCP_DEFAULT_CONTENT_TYPE"
	EnvDefaultLevel       = "CONTRAST_MCP_DEFAULT_LEVEL"
	EnvDefaultPreserve    = "CONTRAST_MCP_DEFAULT_PRESERVE"
	EnvPreviewWidth       = "CONTRAST_MCP_PREVIEW_WIDTH"
	EnvPreviewHeight      = "CONTRAST_MCP_PREVIEW_HEIGHT"
)

// Config holds the server configuration.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" toml:"log_level"`

	// Defaults apply when a tool call omits the corresponding argument.
	Defaults Defaults `yaml:"defaults" toml:"defaults"`

	// Preview sizes the swatch rendered by render_contrast_preview.
	Preview Preview `yaml:"preview" toml:"preview"`
}

// Defaults are the fallback tool arguments.
type Defaults struct {
	ContentType string `yaml:"content_type" toml:"content_type"`
	Level       string `yaml:"level" toml:"level"`
	Preserve    string `yaml:"preserve" toml:"preserve"`
}

// Preview holds the default swatch dimensions in pixels.
type Preview struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Defaults: Defaults{
			ContentType: string(contrast.NormalText),
			Level:       string(contrast.LevelAA),
			Preserve:    string(contrast.PreserveBoth),
		},
		Preview: Preview{Width: 240, Height: 120},
	}
}

// Load builds the configuration from defaults, the file at path (if path is
// non-empty) and the environment, then validates it.
//
// The file format is chosen by extension: .yaml, .yml or .toml.
func Load(path string) (*Config, error) {
	cfg := Default()

	path = strings.TrimSpace(path)
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported config format %q (use .yaml, .yml or .toml)", ext)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvDefaultContentType); v != "" {
		c.Defaults.ContentType = v
	}
	if v := os.Getenv(EnvDefaultLevel); v != "" {
		c.Defaults.Level = v
	}
	if v := os.Getenv(EnvDefaultPreserve); v != "" {
		c.Defaults.Preserve = v
	}

	for _, e := range []struct {
		key string
		dst *int
	}{
		{EnvPreviewWidth, &c.Preview.Width},
		{EnvPreviewHeight, &c.Preview.Height},
	} {
		v := os.Getenv(e.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: invalid integer %q", e.key, v)
		}
		*e.dst = n
	}
	return nil
}

// Validate checks enum values and preview dimensions.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level: unknown level %q", c.LogLevel)
	}
	if _, err := contrast.ParseContentType(c.Defaults.ContentType); err != nil {
		return fmt.Errorf("defaults.content_type: %w", err)
	}
	if _, err := contrast.ParseLevel(c.Defaults.Level); err != nil {
		return fmt.Errorf("defaults.level: %w", err)
	}
	if _, err := contrast.ParsePreserve(c.Defaults.Preserve); err != nil {
		return fmt.Errorf("defaults.preserve: %w", err)
	}
	if c.Preview.Width < preview.MinWidth || c.Preview.Height < preview.MinHeight ||
		c.Preview.Width > preview.MaxSize || c.Preview.Height > preview.MaxSize {
		return fmt.Errorf("preview: size %dx%d outside %dx%d to %dx%d",
			c.Preview.Width, c.Preview.Height, preview.MinWidth, preview.MinHeight, preview.MaxSize, preview.MaxSize)
	}
	return nil
}
