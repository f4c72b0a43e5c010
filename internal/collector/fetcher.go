package collector

import "github.com/tadodev/ecotrack/internal/model"

// BarFetcher fetches daily price history for one symbol.
type BarFetcher interface {
	FetchDailyBars(symbol string, days int) ([]model.OHLCV, error)
	Name() string
}

// IndicatorFetcher fetches a macro indicator snapshot.
type IndicatorFetcher interface {
	FetchIndicators() (model.IndicatorSnapshot, error)
	Name() string
}

// FedGaugeFetcher is the optional capability of producing a rate-path
// gauge alongside the snapshot.
type FedGaugeFetcher interface {
	FetchFedGauge() (*model.FedGauge, error)
}
