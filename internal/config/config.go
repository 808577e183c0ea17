package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"SKCCTracker/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		ListenAddr string `yaml:"listen_addr"`
	} `yaml:"server"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Roster struct {
		CacheDir     string `yaml:"cache_dir"`
		CenturionURL string `yaml:"centurion_url"`
		TribuneURL   string `yaml:"tribune_url"`
		SenatorURL   string `yaml:"senator_url"`
		MaxAgeDays   int    `yaml:"max_age_days"`
		RefreshCron  string `yaml:"refresh_cron"`
	} `yaml:"roster"`
	Operator struct {
		Callsign      string `yaml:"callsign"`
		SKCCNumber    string `yaml:"skcc_number"`
		JoinDate      string `yaml:"join_date"`       // YYYYMMDD
		CenturionDate string `yaml:"centurion_date"`  // gates Tribune counting
		TribuneX8Date string `yaml:"tribune_x8_date"` // gates Senator counting
		DXCCEntity    int    `yaml:"dxcc_entity"`
	} `yaml:"operator"`
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
		cfg.Server.ListenAddr = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("ROSTER_CACHE_DIR"); v != "" {
		cfg.Roster.CacheDir = v
	}
	if v := os.Getenv("OPERATOR_CALLSIGN"); v != "" {
		cfg.Operator.Callsign = v
	}
	if v := os.Getenv("OPERATOR_SKCC_NUMBER"); v != "" {
		cfg.Operator.SKCCNumber = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Server.ListenAddr == "" {
		cfg.Server.ListenAddr = ":8073"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/logger.db"
	}
	if cfg.Roster.CacheDir == "" {
		cfg.Roster.CacheDir = "~/.skcc_rosters"
	}
	if strings.HasPrefix(cfg.Roster.CacheDir, "~/") {
		home, _ := os.UserHomeDir()
		cfg.Roster.CacheDir = home + cfg.Roster.CacheDir[1:]
	}
	if cfg.Roster.CenturionURL == "" {
		cfg.Roster.CenturionURL = "https://www.skccgroup.com/operating_awards/centurion/centurion_roster.php"
	}
	if cfg.Roster.TribuneURL == "" {
		cfg.Roster.TribuneURL = "https://www.skccgroup.com/operating_awards/tribune/tribune_roster.php"
	}
	if cfg.Roster.SenatorURL == "" {
		cfg.Roster.SenatorURL = "https://www.skccgroup.com/operating_awards/senator/senator_roster.php"
	}
	if cfg.Roster.MaxAgeDays == 0 {
		cfg.Roster.MaxAgeDays = 7
	}
	if cfg.Roster.RefreshCron == "" {
		// Sunday 06:00, after the weekly roster updates land
		cfg.Roster.RefreshCron = "0 0 6 * * 0"
	}
	if cfg.Operator.DXCCEntity == 0 {
		cfg.Operator.DXCCEntity = 291 // USA
	}

	// Operator dates tolerate YYYY-MM-DD input
	cfg.Operator.JoinDate = model.NormalizeDate(cfg.Operator.JoinDate)
	cfg.Operator.CenturionDate = model.NormalizeDate(cfg.Operator.CenturionDate)
	cfg.Operator.TribuneX8Date = model.NormalizeDate(cfg.Operator.TribuneX8Date)

	return cfg, nil
}

// RosterURL returns the configured roster source for a tier.
func (c *Config) RosterURL(tier model.Tier) string {
	switch tier {
	case model.TierCenturion:
		return c.Roster.CenturionURL
	case model.TierTribune:
		return c.Roster.TribuneURL
	case model.TierSenator:
		return c.Roster.SenatorURL
	}
	return ""
}

// Validate checks that all required fields are set and well-formed.
func (c *Config) Validate() error {
	if c.Database.SQLitePath == "" {
		return fmt.Errorf("database.sqlite_path is required")
	}
	if c.Roster.MaxAgeDays < 0 {
		return fmt.Errorf("roster.max_age_days must not be negative")
	}
	for _, d := range []struct{ name, val string }{
		{"operator.join_date", c.Operator.JoinDate},
		{"operator.centurion_date", c.Operator.CenturionDate},
		{"operator.tribune_x8_date", c.Operator.TribuneX8Date},
	} {
		if d.val == "" {
			continue // absence means "not yet achieved", never an error
		}
		if len(d.val) != 8 || strings.Trim(d.val, "0123456789") != "" {
			return fmt.Errorf("%s must be YYYYMMDD, got %q", d.name, d.val)
		}
	}
	return nil
}
