package config

import "github.com/spf13/viper"

// Defaults
const (
	DefaultPort          = 8000
	DefaultAPIPrefix     = "/api/v1"
	DefaultMaxTextLength = 10000
	DefaultMaxCells      = 10000
	DefaultMaxImageCells = 2000
	DefaultMaxBodyBytes  = 1 << 20
)

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.api_prefix", DefaultAPIPrefix)
	v.SetDefault("server.allowed_origins", []string{
		"http://localhost:3000",
		"http://localhost:5173",
	})
	v.SetDefault("server.shutdown_timeout_seconds", 10)

	v.SetDefault("limits.max_text_length", DefaultMaxTextLength)
	v.SetDefault("limits.max_cells", DefaultMaxCells)
	v.SetDefault("limits.max_image_cells", DefaultMaxImageCells)
	v.SetDefault("limits.max_body_bytes", DefaultMaxBodyBytes)
	v.SetDefault("limits.requests_per_second", 20)
	v.SetDefault("limits.burst", 40)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)

	v.SetDefault("table.overrides", "")

	// pixels, PNG output
	v.SetDefault("render.cell_width", 40)
	v.SetDefault("render.cell_height", 60)
	v.SetDefault("render.dot_radius", 6)
	v.SetDefault("render.margin", 20)
	v.SetDefault("render.spacing", 10)
	v.SetDefault("render.cells_per_row", 40)
	v.SetDefault("render.pdf_title", "Señalética Braille")
}
