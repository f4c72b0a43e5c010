package indicator

import (
	"math"
	"testing"
)

func TestBollingerInsufficientData(t *testing.T) {
	closes := []float64{1, 2, 3}
	upper, lower, pos := Bollinger(closes)
	if upper.Valid || lower.Valid || pos.Valid {
		t.Error("expected invalid bands on short series")
	}
}

func TestBollingerFlatSeries(t *testing.T) {
	closes := make([]float64, 25)
	for i := range closes {
		closes[i] = 100
	}
	upper, lower, pos := Bollinger(closes)
	if !upper.Valid || !lower.Valid {
		t.Fatal("expected valid bands")
	}
	if upper.Value != 100 || lower.Value != 100 {
		t.Errorf("flat bands = [%.2f, %.2f], want both 100", lower.Value, upper.Value)
	}
	if pos.Valid {
		t.Error("zero band width must leave position invalid")
	}
}

func TestBollingerBandsBracketSMA(t *testing.T) {
	closes := make([]float64, 0, 30)
	price := 100.0
	for i := 0; i < 30; i++ {
		price += math.Sin(float64(i)) * 2
		closes = append(closes, price)
	}
	upper, lower, pos := Bollinger(closes)
	if !upper.Valid || !lower.Valid || !pos.Valid {
		t.Fatal("expected valid bands and position")
	}
	sma := SMA(closes, 20)
	if !(lower.Value < sma.Value && sma.Value < upper.Value) {
		t.Errorf("bands [%.2f, %.2f] should bracket SMA %.2f", lower.Value, upper.Value, sma.Value)
	}
	want := (closes[len(closes)-1] - lower.Value) / (upper.Value - lower.Value)
	if math.Abs(pos.Value-want) > 1e-9 {
		t.Errorf("position = %.6f, want %.6f", pos.Value, want)
	}
}

func TestSupportResistance(t *testing.T) {
	closes := make([]float64, 0, 30)
	for i := 0; i < 30; i++ {
		closes = append(closes, float64(50+i))
	}
	// Trailing 20 window covers values 60..79.
	support, resistance := SupportResistance(closes)
	if !support.Valid || !resistance.Valid {
		t.Fatal("expected valid levels")
	}
	if support.Value != 60 || resistance.Value != 79 {
		t.Errorf("levels = [%.0f, %.0f], want [60, 79]", support.Value, resistance.Value)
	}

	s, r := SupportResistance(closes[:10])
	if s.Valid || r.Valid {
		t.Error("short series must yield invalid levels")
	}
}

func TestSummarizeDegradesIndependently(t *testing.T) {
	// 60 closes: enough for RSI and the 20/50 windows, not for SMA200.
	closes := make([]float64, 0, 60)
	price := 1200.0
	for i := 0; i < 60; i++ {
		if i%3 == 0 {
			price -= 4
		} else {
			price += 5
		}
		closes = append(closes, price)
	}

	sum := Summarize(closes)
	if !sum.LastClose.Valid {
		t.Error("last close should be set")
	}
	if !sum.RSI.Valid {
		t.Error("RSI should be computable on 60 closes")
	}
	if !sum.SMA20.Valid || !sum.SMA50.Valid {
		t.Error("short and medium SMAs should be valid")
	}
	if sum.SMA200.Valid {
		t.Error("SMA200 must be invalid on 60 closes")
	}
	if !sum.Support.Valid || !sum.Resistance.Valid {
		t.Error("support/resistance should be valid")
	}
	if !sum.Volatility20d.Valid {
		t.Error("volatility should be valid")
	}
	if sum.RSISignal == "" || sum.RSISentiment == "" {
		t.Error("sentiment labels should always be populated")
	}
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(nil)
	if sum.LastClose.Valid || sum.RSI.Valid || sum.SMA20.Valid {
		t.Error("empty input must leave every value unset")
	}
	if sum.RSISignal != SignalUnknown {
		t.Errorf("RSISignal = %q, want %q", sum.RSISignal, SignalUnknown)
	}
}
