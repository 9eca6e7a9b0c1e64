package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds all user-facing configuration for geodis.
type Config struct {
	Data   DataConfig   `toml:"data"`
	Server ServerConfig `toml:"server"`
	Engine EngineConfig `toml:"engine"`
}

// DataConfig locates the gazetteer source and its DuckDB snapshot cache.
type DataConfig struct {
	GazetteerPath string `toml:"gazetteer_path"`
	CachePath     string `toml:"cache_path"`
}

// ServerConfig configures the HTTP disambiguation API.
type ServerConfig struct {
	Host      string  `toml:"host"`
	Port      int     `toml:"port"`
	RateLimit float64 `toml:"rate_limit"`
	Burst     int     `toml:"burst"`
}

// EngineConfig exposes the pipeline's tunable rate factors (spec §4.4,
// §4.6) so deployments can recalibrate without a rebuild. The zero value
// of each field is never used directly — Defaults fills in the spec's
// reference constants, and Load always starts from Defaults.
type EngineConfig struct {
	AmbiguityDampingFactor float64 `toml:"ambiguity_damping_factor"`
	ParentRateFactor       float64 `toml:"parent_rate_factor"`
	ChildRateFactor        float64 `toml:"child_rate_factor"`
	ParentLabelRateFactor  float64 `toml:"parent_label_rate_factor"`
	BrotherRateFactor      float64 `toml:"brother_rate_factor"`
	CoordBrotherRateFactor float64 `toml:"coord_brother_rate_factor"`
}

// Defaults returns a Config populated with the spec's reference constants.
func Defaults() *Config {
	return &Config{
		Data: DataConfig{
			GazetteerPath: "data/gazetteer.ndjson",
			CachePath:     "data/gazetteer.duckdb",
		},
		Server: ServerConfig{
			Host:      "localhost",
			Port:      8080,
			RateLimit: 5.0,
			Burst:     10,
		},
		Engine: EngineConfig{
			AmbiguityDampingFactor: 0.9,
			ParentRateFactor:       1.0,
			ChildRateFactor:        0.5,
			ParentLabelRateFactor:  0.333,
			BrotherRateFactor:      0.5,
			CoordBrotherRateFactor: 1.0,
		},
	}
}

// Load reads a TOML config file. If the file does not exist, built-in
// defaults are returned without error.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
