package scheduler

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/tadodev/ecotrack/internal/advisor"
	"github.com/tadodev/ecotrack/internal/collector"
	"github.com/tadodev/ecotrack/internal/model"
	"github.com/tadodev/ecotrack/internal/notifier"
	"github.com/tadodev/ecotrack/internal/recorder"
	"github.com/tadodev/ecotrack/internal/scoring"

	"github.com/robfig/cron/v3"
)

// Scheduler manages all cron tasks and serves bot commands from the
// most recent analysis cycle.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Notifier  *notifier.TelegramNotifier
	Recorder  recorder.Recorder
	Tolerance model.RiskTolerance
	Ctx       context.Context

	mu         sync.Mutex
	lastView   *model.MarketView
	lastScore  model.EconomicScore
	lastBundle model.RecommendationBundle
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, tn *notifier.TelegramNotifier, rec recorder.Recorder, tolerance model.RiskTolerance) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Notifier:  tn,
		Recorder:  rec,
		Tolerance: tolerance,
		Ctx:       ctx,
	}
}

// RegisterAll registers the refresh and alert tasks.
func (s *Scheduler) RegisterAll(refreshCron, alertCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	if _, err := s.Cron.AddFunc(alertCron, s.alertTask); err != nil {
		return fmt.Errorf("register alert task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunRefreshNow executes the refresh task immediately (manual trigger /
// RUN_ON_START).
func (s *Scheduler) RunRefreshNow() {
	s.refreshTask()
}

func (s *Scheduler) refreshTask() {
	log.Println("[INFO] running refresh task")
	view, err := s.Collector.Collect(s.Ctx)
	if err != nil {
		log.Printf("[ERROR] refresh collect: %v", err)
		s.trySend(fmt.Sprintf("❌ Data collection failed: %v", err))
		return
	}

	score := scoring.Evaluate(view.VNIndicators)
	bundle := advisor.Recommend(advisor.Inputs{
		US:           view.USIndicators,
		VN:           view.VNIndicators,
		VNIndexName:  indexName(view),
		VNTechnical:  view.VNTechnical,
		VN30:         view.VN30,
		DXYChange:    view.DXYChange,
		USDVNDChange: view.USDVNDChange,
	}, s.Tolerance)

	s.mu.Lock()
	s.lastView = view
	s.lastScore = score
	s.lastBundle = bundle
	s.mu.Unlock()

	s.trySend(notifier.FormatDigest(view, score, bundle))

	if err := s.Recorder.RecordCycle(&recorder.CycleSnapshot{
		Score:     score,
		Bundle:    bundle,
		Technical: view.VNTechnical,
		IndexName: indexName(view),
		Sectors:   view.Sectors,
	}); err != nil {
		log.Printf("[ERROR] record cycle: %v", err)
	}
}

func (s *Scheduler) alertTask() {
	log.Println("[INFO] running alert task")
	view, err := s.Collector.Collect(s.Ctx)
	if err != nil {
		log.Printf("[ERROR] alert collect: %v", err)
		return
	}
	if view.VNTechnical == nil || !view.VNTechnical.RSI.Valid {
		return
	}

	rsi := view.VNTechnical.RSI.Value
	price := view.VNTechnical.LastClose.Or(0)

	var eventType, msg string
	switch {
	case rsi < 30:
		eventType = "OVERSOLD"
		msg = fmt.Sprintf("📉 <b>Oversold alert</b> | %s RSI=%.1f at %.2f - potential entry point",
			indexName(view), rsi, price)
	case rsi > 70:
		eventType = "OVERBOUGHT"
		msg = fmt.Sprintf("📈 <b>Overbought alert</b> | %s RSI=%.1f at %.2f - consider taking profits",
			indexName(view), rsi, price)
	default:
		return
	}

	s.trySend(msg)
	if err := s.Recorder.RecordAlert(&recorder.AlertEvent{
		Symbol:    "VNINDEX",
		RSI:       rsi,
		Price:     price,
		EventType: eventType,
	}); err != nil {
		log.Printf("[ERROR] record alert: %v", err)
	}
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/refresh":
		s.refreshTask()
		return ""
	case "/score":
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.lastView == nil {
			return "No data yet, run /refresh first."
		}
		b := fmt.Sprintf("🩺 Economic score: %.0f/100 (%s)\n", s.lastScore.Score, s.lastScore.Rating)
		for _, f := range s.lastScore.Factors {
			b += "  " + f + "\n"
		}
		return b
	case "/advice":
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.lastView == nil {
			return "No data yet, run /refresh first."
		}
		return notifier.FormatDigest(s.lastView, s.lastScore, s.lastBundle)
	case "/sectors":
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.lastView == nil {
			return "No data yet, run /refresh first."
		}
		return notifier.FormatSectors(s.lastView.Sectors) + s.sectorRationales()
	case "/global":
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.lastView == nil {
			return "No data yet, run /refresh first."
		}
		return notifier.FormatGlobal(s.lastView.GlobalIndices)
	default:
		return "Commands:\n• /refresh\n• /score\n• /advice\n• /sectors\n• /global"
	}
}

// sectorRationales renders per-sector investment context for the
// /sectors reply, best 1D performer first. Caller holds s.mu.
func (s *Scheduler) sectorRationales() string {
	if len(s.lastView.Sectors) == 0 {
		return ""
	}
	names := make([]string, 0, len(s.lastView.Sectors))
	for name := range s.lastView.Sectors {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return s.lastView.Sectors[names[i]].AvgReturn1D > s.lastView.Sectors[names[j]].AvgReturn1D
	})

	var b strings.Builder
	b.WriteString("\n💡 <b>Rationale</b>\n")
	for _, name := range names {
		b.WriteString(fmt.Sprintf("%s: %s\n",
			name, advisor.SectorRationale(name, s.lastView.Sectors[name], s.lastView.VNIndicators)))
	}
	return b.String()
}

func indexName(view *model.MarketView) string {
	if view.VNIndex != nil {
		return view.VNIndex.Name
	}
	return "VN-Index"
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
