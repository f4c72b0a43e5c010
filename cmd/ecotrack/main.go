package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/tadodev/ecotrack/internal/cache"
	"github.com/tadodev/ecotrack/internal/collector"
	"github.com/tadodev/ecotrack/internal/config"
	"github.com/tadodev/ecotrack/internal/model"
	"github.com/tadodev/ecotrack/internal/notifier"
	"github.com/tadodev/ecotrack/internal/recorder"
	"github.com/tadodev/ecotrack/internal/scheduler"

	"github.com/joho/godotenv"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := godotenv.Load(); err == nil {
		log.Println("[INFO] loaded .env file")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[ERROR] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[ERROR] invalid config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var store cache.Cache
	if cfg.Redis.Addr != "" {
		rc, err := cache.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Printf("[WARN] redis unavailable, falling back to memory cache: %v", err)
			store = cache.NewMemory()
		} else {
			log.Printf("[INFO] using redis cache at %s", cfg.Redis.Addr)
			store = rc
		}
	} else {
		store = cache.NewMemory()
	}
	defer store.Close()

	yahoo := collector.NewYahooFetcher(cfg.Proxy)
	col := &collector.Collector{
		US:             collector.NewFREDFetcher("", cfg.FRED.APIKey, cfg.Proxy),
		VN:             collector.NewTEFetcher("", cfg.TradingEconomics.APIKey, cfg.TradingEconomics.Country, cfg.Proxy),
		Bars:           collector.NewTCBSFetcher(cfg.TCBS.BaseURL, cfg.Proxy),
		Global:         yahoo,
		Cache:          store,
		Classification: cfg.Sectors,
		VN30Symbols:    cfg.VN30,
	}

	var rec recorder.Recorder
	rec, err = recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
	if err != nil {
		log.Printf("[WARN] sqlite recorder unavailable, history disabled: %v", err)
		rec = recorder.NewNoopRecorder()
	}
	defer rec.Close()

	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

	sched := scheduler.NewScheduler(ctx, col, tn, rec, model.RiskTolerance(cfg.RiskTolerance))
	if err := sched.RegisterAll(cfg.Schedule.RefreshCron, cfg.Schedule.AlertCron); err != nil {
		log.Fatalf("[ERROR] register tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	go tn.StartPolling(ctx, sched.HandleCommand)

	if os.Getenv("RUN_ON_START") == "1" {
		go sched.RunRefreshNow()
	}

	log.Println("[INFO] ecotrack started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("[INFO] shutting down")
}
