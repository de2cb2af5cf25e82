package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// Config holds the non-secret runtime settings. Values come from an
// optional YAML file; environment variables always win over the file.
type Config struct {
	Port        string   `yaml:"port"`
	CORSOrigins []string `yaml:"cors_origins"`

	// CSV header keys of the coordinate questions. The map endpoints
	// pair answers of these two questions positionally.
	LatQuestionKey string `yaml:"lat_question_key"`
	LonQuestionKey string `yaml:"lon_question_key"`

	// Upload throttle for /import-csv, requests per minute.
	ImportRatePerMinute int `yaml:"import_rate_per_minute"`
}

// Defaults mirror the original deployment: ASIS export coordinate
// columns and a local dev origin.
func defaults() Config {
	return Config{
		Port:                "8080",
		CORSOrigins:         []string{"http://localhost:4200"},
		LatQuestionKey:      "lat_1_Presione_actualiza",
		LonQuestionKey:      "long_1_Presione_actualiza",
		ImportRatePerMinute: 6,
	}
}

// Load reads the YAML file named by ASIS_CONFIG (default "config.yaml"
// if present), then applies environment overrides.
//
// Environment variables:
//   - PORT
//   - CORS_ORIGINS: comma-separated origin list
//   - LAT_QUESTION_KEY / LON_QUESTION_KEY
//   - IMPORT_RATE_PER_MINUTE
func Load() (Config, error) {
	cfg := defaults()

	path := os.Getenv("ASIS_CONFIG")
	explicit := path != ""
	if path == "" {
		path = "config.yaml"
	}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if explicit {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	applyEnv(&cfg)

	if cfg.Port == "" {
		cfg.Port = defaults().Port
	}
	if cfg.ImportRatePerMinute <= 0 {
		cfg.ImportRatePerMinute = defaults().ImportRatePerMinute
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.CORSOrigins = origins
	}
	if v := os.Getenv("LAT_QUESTION_KEY"); v != "" {
		cfg.LatQuestionKey = v
	}
	if v := os.Getenv("LON_QUESTION_KEY"); v != "" {
		cfg.LonQuestionKey = v
	}
	if v := os.Getenv("IMPORT_RATE_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ImportRatePerMinute = n
		}
	}
}
