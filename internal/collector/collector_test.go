package collector

import (
	"context"
	"fmt"
	"testing"

	"github.com/tadodev/ecotrack/internal/cache"
	"github.com/tadodev/ecotrack/internal/model"
)

// countingBars wraps a BarFetcher and counts upstream hits.
type countingBars struct {
	inner BarFetcher
	calls int
}

func (c *countingBars) Name() string { return c.inner.Name() }

func (c *countingBars) FetchDailyBars(symbol string, days int) ([]model.OHLCV, error) {
	c.calls++
	return c.inner.FetchDailyBars(symbol, days)
}

type failingBars struct{}

func (failingBars) Name() string { return "failing" }
func (failingBars) FetchDailyBars(string, int) ([]model.OHLCV, error) {
	return nil, fmt.Errorf("upstream down")
}

func TestCollectWithMocks(t *testing.T) {
	col := &Collector{
		US: &MockIndicatorFetcher{Source: "us", Snapshot: model.IndicatorSnapshot{
			"fed_rate": {Value: model.FloatOf(5.25)},
		}},
		VN: &MockIndicatorFetcher{Source: "vn", Snapshot: model.IndicatorSnapshot{
			"gdp_growth_yoy": {Value: model.FloatOf(6.8)},
		}},
		Bars: &MockBarFetcher{Price: 1200},
		Classification: map[string][]string{
			"Banking": {"VCB", "TCB"},
		},
		VN30Symbols: []string{"VCB", "HPG"},
	}

	view, err := col.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if view.USIndicators.Value("fed_rate").Or(0) != 5.25 {
		t.Error("US snapshot not propagated")
	}
	if view.VNIndicators.Value("gdp_growth_yoy").Or(0) != 6.8 {
		t.Error("VN snapshot not propagated")
	}
	if view.VNTechnical == nil || !view.VNTechnical.SMA200.Valid {
		t.Error("expected a technical summary from 300 generated bars")
	}
	if view.VNIndex == nil || view.VNIndex.Name != "VN-Index" {
		t.Error("expected the VN-Index quote")
	}
	if len(view.Sectors) != 1 {
		t.Errorf("Sectors = %d, want 1", len(view.Sectors))
	}
	if view.Breadth == nil {
		t.Error("expected breadth stats")
	}
	if view.VN30 == nil || len(view.VN30.Constituents) != 2 {
		t.Error("expected VN30 analysis over both symbols")
	}
	if view.CollectedAt.IsZero() {
		t.Error("CollectedAt should be stamped")
	}
}

func TestCollectDegradesPerSection(t *testing.T) {
	col := &Collector{
		US:   &MockIndicatorFetcher{Source: "us", Err: fmt.Errorf("fred down")},
		VN:   &MockIndicatorFetcher{Source: "vn", Snapshot: model.IndicatorSnapshot{"gdp_growth_yoy": {Value: model.FloatOf(6.0)}}},
		Bars: failingBars{},
	}

	view, err := col.Collect(context.Background())
	if err != nil {
		t.Fatalf("one healthy source should be enough: %v", err)
	}
	if view.USIndicators != nil {
		t.Error("failed US section should stay empty")
	}
	if view.VNIndicators == nil {
		t.Error("VN section should survive")
	}
	if view.VNTechnical != nil {
		t.Error("failed bars should leave no technical summary")
	}
}

func TestCollectAllSourcesDown(t *testing.T) {
	col := &Collector{
		US:   &MockIndicatorFetcher{Source: "us", Err: fmt.Errorf("down")},
		VN:   &MockIndicatorFetcher{Source: "vn", Err: fmt.Errorf("down")},
		Bars: failingBars{},
	}
	if _, err := col.Collect(context.Background()); err == nil {
		t.Fatal("expected error when no source produced data")
	}
}

func TestCollectUsesCache(t *testing.T) {
	counting := &countingBars{inner: &MockBarFetcher{Price: 1200}}
	store := cache.NewMemory()
	defer store.Close()

	col := &Collector{
		Bars:        counting,
		Cache:       store,
		VN30Symbols: []string{"VCB"},
	}

	ctx := context.Background()
	if _, err := col.Collect(ctx); err != nil {
		t.Fatalf("first collect: %v", err)
	}
	first := counting.calls

	if _, err := col.Collect(ctx); err != nil {
		t.Fatalf("second collect: %v", err)
	}
	if counting.calls != first {
		t.Errorf("second collect hit upstream %d more times, want cache hits", counting.calls-first)
	}
}

func TestGenerateBars(t *testing.T) {
	bars := GenerateBars(1200, 30)
	if len(bars) != 30 {
		t.Fatalf("got %d bars, want 30", len(bars))
	}
	for i, b := range bars {
		if b.Close <= 0 || b.High < b.Low {
			t.Errorf("bar %d malformed: %+v", i, b)
		}
		if i > 0 && !bars[i-1].Time.Before(b.Time) {
			t.Errorf("bar %d out of order", i)
		}
	}
}
