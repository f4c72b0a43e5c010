package collector

import (
	"time"

	"github.com/tadodev/ecotrack/internal/model"
)

// MockBarFetcher returns controllable fixed data for development and
// testing.
type MockBarFetcher struct {
	Price float64
	Bars  map[string][]model.OHLCV
}

func (m *MockBarFetcher) Name() string { return "mock" }

func (m *MockBarFetcher) FetchDailyBars(symbol string, days int) ([]model.OHLCV, error) {
	if bars, ok := m.Bars[symbol]; ok {
		return bars, nil
	}
	return GenerateBars(m.Price, days), nil
}

// MockIndicatorFetcher serves a fixed snapshot.
type MockIndicatorFetcher struct {
	Snapshot model.IndicatorSnapshot
	Err      error
	Source   string
}

func (m *MockIndicatorFetcher) Name() string {
	if m.Source != "" {
		return m.Source
	}
	return "mock"
}

func (m *MockIndicatorFetcher) FetchIndicators() (model.IndicatorSnapshot, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Snapshot, nil
}

// GenerateBars produces a gently trending series around basePrice.
func GenerateBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
