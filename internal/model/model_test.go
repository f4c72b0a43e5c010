package model

import (
	"math"
	"testing"
)

func TestFloatOr(t *testing.T) {
	if got := FloatOf(3.5).Or(0); got != 3.5 {
		t.Errorf("Or = %.1f, want 3.5", got)
	}
	if got := (Float{}).Or(-1); got != -1 {
		t.Errorf("Or on invalid = %.1f, want the default", got)
	}
}

func TestNewIndicatorValueDerivesChange(t *testing.T) {
	iv := NewIndicatorValue("GDP", "%", "2025-06-30", FloatOf(6.93), FloatOf(7.43))
	want := (6.93 - 7.43) / 7.43 * 100
	if !iv.Change.Valid || math.Abs(iv.Change.Value-want) > 1e-9 {
		t.Errorf("Change = %v, want %.4f", iv.Change, want)
	}

	// Negative previous divides by its magnitude.
	iv = NewIndicatorValue("Trade", "B", "", FloatOf(-1), FloatOf(-2))
	if !iv.Change.Valid || math.Abs(iv.Change.Value-50) > 1e-9 {
		t.Errorf("Change = %v, want 50", iv.Change)
	}

	if iv := NewIndicatorValue("X", "", "", FloatOf(1), Float{}); iv.Change.Valid {
		t.Error("missing previous must leave change unset")
	}
	if iv := NewIndicatorValue("X", "", "", FloatOf(1), FloatOf(0)); iv.Change.Valid {
		t.Error("zero previous must leave change unset")
	}
}

func TestSnapshotAccessors(t *testing.T) {
	snap := IndicatorSnapshot{
		"gdp": {Value: FloatOf(6.5), Change: FloatOf(1.2)},
	}
	if got := snap.Value("gdp"); got.Or(0) != 6.5 {
		t.Errorf("Value = %v", got)
	}
	if got := snap.Change("gdp"); got.Or(0) != 1.2 {
		t.Errorf("Change = %v", got)
	}
	if snap.Value("missing").Valid || snap.Change("missing").Valid {
		t.Error("absent keys must read as invalid")
	}
}

func TestPriceSeries(t *testing.T) {
	var empty PriceSeries
	if empty.LastClose().Valid || empty.ChangePct().Valid {
		t.Error("empty series must have no close or change")
	}

	s := PriceSeries{Bars: []OHLCV{{Close: 100}, {Close: 102}}}
	if got := s.LastClose(); got.Or(0) != 102 {
		t.Errorf("LastClose = %v, want 102", got)
	}
	if got := s.ChangePct(); !got.Valid || math.Abs(got.Value-2) > 1e-9 {
		t.Errorf("ChangePct = %v, want 2", got)
	}
	if got := s.Closes(); len(got) != 2 || got[1] != 102 {
		t.Errorf("Closes = %v", got)
	}

	zero := PriceSeries{Bars: []OHLCV{{Close: 0}, {Close: 5}}}
	if zero.ChangePct().Valid {
		t.Error("zero previous close must yield no change")
	}
}
