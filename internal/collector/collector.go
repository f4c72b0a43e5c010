package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/tadodev/ecotrack/internal/cache"
	"github.com/tadodev/ecotrack/internal/indicator"
	"github.com/tadodev/ecotrack/internal/model"
	"github.com/tadodev/ecotrack/internal/sector"
)

// History depths. Sector stats need a month of dailies; the technical
// summary wants enough for SMA200.
const (
	stockHistoryDays = 30
	indexHistoryDays = 300
)

// TTLs per source, mirroring each vendor's update cadence.
const (
	TTLBars       = 5 * time.Minute
	TTLIndicators = 15 * time.Minute
	TTLGlobal     = 10 * time.Minute
)

// Collector orchestrates data fetching and assembles the MarketView.
// Every section degrades independently: a failing vendor logs a warning
// and leaves its section empty.
type Collector struct {
	US             IndicatorFetcher
	VN             IndicatorFetcher
	Bars           BarFetcher
	Global         *YahooFetcher
	Cache          cache.Cache
	Classification map[string][]string
	VN30Symbols    []string
}

// Collect builds a fresh MarketView. It errors only when no section
// produced any data at all.
func (c *Collector) Collect(ctx context.Context) (*model.MarketView, error) {
	view := &model.MarketView{CollectedAt: time.Now()}

	if c.US != nil {
		if snap, err := c.cachedIndicators(ctx, c.US); err != nil {
			log.Printf("[WARN] US indicators fetch failed: %v", err)
		} else {
			view.USIndicators = snap
		}
		if g, ok := c.US.(FedGaugeFetcher); ok {
			if gauge, err := g.FetchFedGauge(); err != nil {
				log.Printf("[WARN] fed gauge fetch failed: %v", err)
			} else {
				view.FedGauge = gauge
			}
		}
	}

	if c.VN != nil {
		if snap, err := c.cachedIndicators(ctx, c.VN); err != nil {
			log.Printf("[WARN] VN indicators fetch failed: %v", err)
		} else {
			view.VNIndicators = snap
		}
	}

	if c.Bars != nil {
		c.collectVNMarket(ctx, view)
	}

	if c.Global != nil {
		c.collectGlobal(view)
	}

	if view.USIndicators == nil && view.VNIndicators == nil &&
		view.VNTechnical == nil && len(view.GlobalIndices) == 0 {
		return nil, fmt.Errorf("collect: no data source produced data")
	}
	return view, nil
}

func (c *Collector) collectVNMarket(ctx context.Context, view *model.MarketView) {
	// VN-Index: long history for the technical summary.
	bars, err := c.cachedBars(ctx, "VNINDEX", indexHistoryDays)
	if err != nil {
		log.Printf("[WARN] VN-Index bars fetch failed: %v", err)
	} else {
		series := &model.PriceSeries{Symbol: "VNINDEX", Bars: bars, FetchedAt: time.Now()}
		sum := indicator.Summarize(series.Closes())
		view.VNTechnical = &sum
		view.VNIndex = &model.IndexQuote{
			Symbol:    "VNINDEX",
			Name:      "VN-Index",
			Exchange:  "HOSE",
			Price:     series.LastClose().Or(0),
			ChangePct: series.ChangePct().Or(0),
		}
		if len(bars) > 0 {
			view.VNIndex.Volume = bars[len(bars)-1].Volume
		}
	}

	// Per-stock series for sector, breadth and VN30 stats.
	universe := map[string]*model.PriceSeries{}
	add := func(symbol string) {
		if _, seen := universe[symbol]; seen {
			return
		}
		bars, err := c.cachedBars(ctx, symbol, stockHistoryDays)
		if err != nil {
			log.Printf("[WARN] bars fetch failed for %s: %v", symbol, err)
			universe[symbol] = nil
			return
		}
		universe[symbol] = &model.PriceSeries{Symbol: symbol, Bars: bars, FetchedAt: time.Now()}
	}
	for _, tickers := range c.Classification {
		for _, t := range tickers {
			add(t)
		}
	}
	for _, t := range c.VN30Symbols {
		add(t)
	}

	view.Sectors = sector.Aggregate(c.Classification, universe)
	view.Breadth = sector.Breadth(universe)
	view.VN30 = sector.AnalyzeVN30(c.VN30Symbols, universe)
}

func (c *Collector) collectGlobal(view *model.MarketView) {
	indices := map[string]model.IndexQuote{}
	for symbol, name := range GlobalIndices {
		price, change, err := c.Global.FetchQuote(symbol)
		if err != nil {
			log.Printf("[WARN] global quote failed for %s: %v", symbol, err)
			continue
		}
		indices[symbol] = model.IndexQuote{Symbol: symbol, Name: name, Price: price, ChangePct: change}
	}
	if len(indices) > 0 {
		view.GlobalIndices = indices
	}

	if _, change, err := c.Global.FetchQuote(DXYSymbol); err != nil {
		log.Printf("[WARN] DXY quote failed: %v", err)
	} else {
		view.DXYChange = model.FloatOf(change)
	}

	if _, change, err := c.Global.FetchQuote("VND=X"); err != nil {
		log.Printf("[WARN] USD/VND quote failed: %v", err)
	} else {
		view.USDVNDChange = model.FloatOf(change)
	}
}

// cachedBars consults the injected cache before hitting the fetcher.
func (c *Collector) cachedBars(ctx context.Context, symbol string, days int) ([]model.OHLCV, error) {
	key := fmt.Sprintf("bars:%s:%s:%d", c.Bars.Name(), symbol, days)
	if c.Cache != nil {
		if payload, ok, err := c.Cache.Get(ctx, key); err != nil {
			log.Printf("[WARN] cache get %s: %v", key, err)
		} else if ok {
			var bars []model.OHLCV
			if err := json.Unmarshal(payload, &bars); err == nil {
				return bars, nil
			}
		}
	}

	bars, err := c.Bars.FetchDailyBars(symbol, days)
	if err != nil {
		return nil, err
	}

	if c.Cache != nil {
		if payload, err := json.Marshal(bars); err == nil {
			if err := c.Cache.Set(ctx, key, payload, TTLBars); err != nil {
				log.Printf("[WARN] cache set %s: %v", key, err)
			}
		}
	}
	return bars, nil
}

func (c *Collector) cachedIndicators(ctx context.Context, f IndicatorFetcher) (model.IndicatorSnapshot, error) {
	key := fmt.Sprintf("indicators:%s", f.Name())
	if c.Cache != nil {
		if payload, ok, err := c.Cache.Get(ctx, key); err != nil {
			log.Printf("[WARN] cache get %s: %v", key, err)
		} else if ok {
			var snap model.IndicatorSnapshot
			if err := json.Unmarshal(payload, &snap); err == nil {
				return snap, nil
			}
		}
	}

	snap, err := f.FetchIndicators()
	if err != nil {
		return nil, err
	}

	if c.Cache != nil {
		if payload, err := json.Marshal(snap); err == nil {
			if err := c.Cache.Set(ctx, key, payload, TTLIndicators); err != nil {
				log.Printf("[WARN] cache set %s: %v", key, err)
			}
		}
	}
	return snap, nil
}
