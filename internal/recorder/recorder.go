package recorder

import "github.com/tadodev/ecotrack/internal/model"

// CycleSnapshot holds everything worth keeping from one refresh cycle.
type CycleSnapshot struct {
	Score     model.EconomicScore
	Bundle    model.RecommendationBundle
	Technical *model.TechnicalSummary
	IndexName string
	Sectors   map[string]model.SectorPerformance
}

// AlertEvent records a technical alert push (oversold/overbought).
type AlertEvent struct {
	Symbol    string
	RSI       float64
	Price     float64
	EventType string // "OVERSOLD" or "OVERBOUGHT"
}

// Recorder persists historical analysis output.
type Recorder interface {
	RecordCycle(snap *CycleSnapshot) error
	RecordAlert(evt *AlertEvent) error
	Close() error
}
