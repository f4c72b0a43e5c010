package model

import "time"

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries holds raw price data for one instrument, chronological order.
type PriceSeries struct {
	Symbol    string
	Bars      []OHLCV
	FetchedAt time.Time
}

// Closes extracts the close column.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}

// LastClose returns the most recent close, invalid for an empty series.
func (s *PriceSeries) LastClose() Float {
	if len(s.Bars) == 0 {
		return Float{}
	}
	return FloatOf(s.Bars[len(s.Bars)-1].Close)
}

// ChangePct returns the last period-over-period percentage change,
// invalid with fewer than two bars or a zero previous close.
func (s *PriceSeries) ChangePct() Float {
	n := len(s.Bars)
	if n < 2 {
		return Float{}
	}
	prev := s.Bars[n-2].Close
	if prev == 0 {
		return Float{}
	}
	return FloatOf((s.Bars[n-1].Close/prev - 1) * 100)
}

// IndexQuote is a lightweight quote for a market index.
type IndexQuote struct {
	Symbol    string
	Name      string
	Exchange  string
	Price     float64
	ChangePct float64
	Volume    float64
}
