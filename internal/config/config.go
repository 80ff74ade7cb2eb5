// Package config holds the configuration of the braille service and CLI.
//
// Values are read with Viper from TOML files, BRAILLE_* environment variables
// and built-in defaults.
package config

import (
	"fmt"
	"strings"
)

// Config is the root configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Limits LimitsConfig `mapstructure:"limits"`
	Log    LogConfig    `mapstructure:"log"`
	Table  TableConfig  `mapstructure:"table"`
	Render RenderConfig `mapstructure:"render"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Host                   string   `mapstructure:"host"`
	Port                   int      `mapstructure:"port"`
	APIPrefix              string   `mapstructure:"api_prefix"`
	AllowedOrigins         []string `mapstructure:"allowed_origins"`
	ShutdownTimeoutSeconds int      `mapstructure:"shutdown_timeout_seconds"`
}

// Addr returns host:port for net.Listen.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LimitsConfig bounds the size of requests.
type LimitsConfig struct {
	MaxTextLength     int     `mapstructure:"max_text_length"`
	MaxCells          int     `mapstructure:"max_cells"`
	MaxImageCells     int     `mapstructure:"max_image_cells"` // cells per PNG image
	MaxBodyBytes      int64   `mapstructure:"max_body_bytes"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"` // 0 disables rate limiting
	Burst             int     `mapstructure:"burst"`
}

// LogConfig configures the application logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// TableConfig selects the symbol table.
type TableConfig struct {
	Overrides string `mapstructure:"overrides"` // path of a table file applied on top of the built-in table
}

// RenderConfig holds image and document geometry.
type RenderConfig struct {
	CellWidth   float64 `mapstructure:"cell_width"`
	CellHeight  float64 `mapstructure:"cell_height"`
	DotRadius   float64 `mapstructure:"dot_radius"`
	Margin      float64 `mapstructure:"margin"`
	Spacing     float64 `mapstructure:"spacing"`
	CellsPerRow int     `mapstructure:"cells_per_row"`
	PDFTitle    string  `mapstructure:"pdf_title"`
}

// Validate checks the configuration for values the service cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 0..65535, is %d", c.Server.Port)
	}
	if c.Server.APIPrefix != "" && !strings.HasPrefix(c.Server.APIPrefix, "/") {
		return fmt.Errorf("server.api_prefix must start with '/', is %q", c.Server.APIPrefix)
	}
	if c.Limits.MaxTextLength <= 0 {
		return fmt.Errorf("limits.max_text_length must be positive, is %d", c.Limits.MaxTextLength)
	}
	if c.Limits.MaxCells <= 0 {
		return fmt.Errorf("limits.max_cells must be positive, is %d", c.Limits.MaxCells)
	}
	if c.Limits.MaxImageCells <= 0 {
		return fmt.Errorf("limits.max_image_cells must be positive, is %d", c.Limits.MaxImageCells)
	}
	if c.Limits.MaxBodyBytes <= 0 {
		return fmt.Errorf("limits.max_body_bytes must be positive, is %d", c.Limits.MaxBodyBytes)
	}
	if c.Limits.RequestsPerSecond < 0 {
		return fmt.Errorf("limits.requests_per_second cannot be negative")
	}
	if c.Limits.RequestsPerSecond > 0 && c.Limits.Burst < 1 {
		return fmt.Errorf("limits.burst must be at least 1 when rate limiting is enabled")
	}
	if c.Render.CellWidth <= 0 || c.Render.CellHeight <= 0 || c.Render.DotRadius <= 0 {
		return fmt.Errorf("render cell geometry must be positive")
	}
	if c.Render.Margin < 0 || c.Render.Spacing < 0 {
		return fmt.Errorf("render margin and spacing cannot be negative")
	}
	if c.Render.CellsPerRow < 1 {
		return fmt.Errorf("render.cells_per_row must be at least 1, is %d", c.Render.CellsPerRow)
	}
	return nil
}
