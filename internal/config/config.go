package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	FRED struct {
		APIKey string `yaml:"api_key"`
	} `yaml:"fred"`
	TradingEconomics struct {
		APIKey  string `yaml:"api_key"`
		Country string `yaml:"country"`
	} `yaml:"trading_economics"`
	TCBS struct {
		BaseURL string `yaml:"base_url"`
	} `yaml:"tcbs"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
		AlertCron   string `yaml:"alert_cron"`
	} `yaml:"schedule"`
	RiskTolerance string              `yaml:"risk_tolerance"`
	Sectors       map[string][]string `yaml:"sectors"`
	VN30          []string            `yaml:"vn30"`
	Proxy         string              `yaml:"proxy"`
}

// DefaultSectors is the static sector-to-ticker classification used when
// the config file doesn't override it.
var DefaultSectors = map[string][]string{
	"Banking":              {"VCB", "TCB", "MBB", "BID", "CTG", "VPB", "ACB", "TPB", "STB", "EIB"},
	"Real Estate":          {"VHM", "VIC", "VRE", "KDH", "DXG", "NVL", "BCM", "KBC", "HDG"},
	"Technology":           {"FPT", "CMG", "ELC", "SVC", "VGI", "ITD", "CSI"},
	"Consumer Goods":       {"VNM", "MSN", "MWG", "PNJ", "SAB", "MCH", "DGW"},
	"Energy & Utilities":   {"GAS", "PLX", "PVD", "POW", "REE", "NT2", "PVS"},
	"Manufacturing":        {"HPG", "HSG", "NKG", "VNS", "POM", "AAA", "GMD"},
	"Aviation & Transport": {"VJC", "HVN", "ACV", "VTP"},
}

// DefaultVN30 is the VN30 constituent list (as of 2024).
var DefaultVN30 = []string{
	"VCB", "BID", "CTG", "TCB", "MBB", "VPB", "ACB", "TPB", "STB",
	"VHM", "VIC", "VRE", "KDH", "NVL", "DXG",
	"VNM", "MSN", "MWG", "PNJ", "SAB",
	"GAS", "PLX", "POW", "REE",
	"HPG", "HSG",
	"FPT", "CMG",
	"VJC",
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults.
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
	if v := os.Getenv("FRED_API_KEY"); v != "" {
		cfg.FRED.APIKey = v
	}
	if v := os.Getenv("TE_API_KEY"); v != "" {
		cfg.TradingEconomics.APIKey = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			cfg.Redis.DB = db
		}
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("CRON_REFRESH"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("RISK_TOLERANCE"); v != "" {
		cfg.RiskTolerance = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.TradingEconomics.Country == "" {
		cfg.TradingEconomics.Country = "vietnam"
	}
	if cfg.Schedule.RefreshCron == "" {
		// Weekdays 15:30 ICT, after the HOSE close.
		cfg.Schedule.RefreshCron = "0 30 15 * * 1-5"
	}
	if cfg.Schedule.AlertCron == "" {
		cfg.Schedule.AlertCron = "0 0 11 * * 1-5"
	}
	if cfg.RiskTolerance == "" {
		cfg.RiskTolerance = "Moderate"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/ecotrack.db"
	}
	if len(cfg.Sectors) == 0 {
		cfg.Sectors = DefaultSectors
	}
	if len(cfg.VN30) == 0 {
		cfg.VN30 = DefaultVN30
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	switch c.RiskTolerance {
	case "Conservative", "Moderate", "Aggressive":
	default:
		return fmt.Errorf("risk_tolerance must be Conservative, Moderate or Aggressive, got %q", c.RiskTolerance)
	}
	return nil
}
