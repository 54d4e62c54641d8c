package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Reports struct {
		ClicksURL           string `yaml:"clicks_url"`
		ConversionsURL      string `yaml:"conversions_url"`
		FetchTimeoutSeconds int    `yaml:"fetch_timeout_seconds"`
	} `yaml:"reports"`
	Rollup struct {
		DataDir string `yaml:"data_dir"`
		Sub1    string `yaml:"sub1"`
	} `yaml:"rollup"`
	Schedule struct {
		IngestCron string `yaml:"ingest_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("CLICKS_REPORT_URL"); v != "" {
		cfg.Reports.ClicksURL = v
	}
	if v := os.Getenv("CONVERSIONS_REPORT_URL"); v != "" {
		cfg.Reports.ConversionsURL = v
	}
	if v := os.Getenv("FETCH_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Reports.FetchTimeoutSeconds = n
		}
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		cfg.Rollup.DataDir = v
	}
	if v := os.Getenv("SUB1_TAG"); v != "" {
		cfg.Rollup.Sub1 = v
	}
	if v := os.Getenv("CRON_INGEST"); v != "" {
		cfg.Schedule.IngestCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Reports.FetchTimeoutSeconds == 0 {
		cfg.Reports.FetchTimeoutSeconds = 30
	}
	if cfg.Rollup.DataDir == "" {
		cfg.Rollup.DataDir = "data"
	}
	if cfg.Rollup.Sub1 == "" {
		cfg.Rollup.Sub1 = "holomah"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/creative_sentinel.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are consistent.
func (c *Config) Validate() error {
	if c.Reports.FetchTimeoutSeconds <= 0 {
		return fmt.Errorf("reports.fetch_timeout_seconds must be positive")
	}
	if c.Schedule.IngestCron != "" {
		if c.Reports.ClicksURL == "" || c.Reports.ConversionsURL == "" {
			return fmt.Errorf("schedule.ingest_cron requires reports.clicks_url and reports.conversions_url")
		}
	}
	return nil
}
