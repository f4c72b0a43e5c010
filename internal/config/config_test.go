package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load on absent file: %v", err)
	}
	if cfg.Schedule.RefreshCron != "0 30 15 * * 1-5" {
		t.Errorf("RefreshCron = %q", cfg.Schedule.RefreshCron)
	}
	if cfg.Schedule.AlertCron != "0 0 11 * * 1-5" {
		t.Errorf("AlertCron = %q", cfg.Schedule.AlertCron)
	}
	if cfg.RiskTolerance != "Moderate" {
		t.Errorf("RiskTolerance = %q, want Moderate", cfg.RiskTolerance)
	}
	if cfg.TradingEconomics.Country != "vietnam" {
		t.Errorf("Country = %q, want vietnam", cfg.TradingEconomics.Country)
	}
	if cfg.Database.SQLitePath != "data/ecotrack.db" {
		t.Errorf("SQLitePath = %q", cfg.Database.SQLitePath)
	}
	if len(cfg.Sectors) == 0 || len(cfg.VN30) == 0 {
		t.Error("default sectors and VN30 list should be populated")
	}
}

func TestLoadYAMLAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
telegram:
  bot_token: file-token
  chat_id: "123"
risk_tolerance: Aggressive
redis:
  addr: localhost:6379
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("TELEGRAM_BOT_TOKEN", "env-token")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Telegram.BotToken != "env-token" {
		t.Errorf("BotToken = %q, env must win over the file", cfg.Telegram.BotToken)
	}
	if cfg.Telegram.ChatID != "123" {
		t.Errorf("ChatID = %q", cfg.Telegram.ChatID)
	}
	if cfg.RiskTolerance != "Aggressive" {
		t.Errorf("RiskTolerance = %q", cfg.RiskTolerance)
	}
	if cfg.Redis.Addr != "localhost:6379" || cfg.Redis.DB != 3 {
		t.Errorf("Redis = %q/%d", cfg.Redis.Addr, cfg.Redis.DB)
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("telegram: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{RiskTolerance: "Moderate"}
	if err := cfg.Validate(); err == nil {
		t.Error("missing telegram token must fail validation")
	}

	cfg.Telegram.BotToken = "t"
	cfg.Telegram.ChatID = "c"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}

	cfg.RiskTolerance = "YOLO"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown tolerance must fail validation")
	}
}
