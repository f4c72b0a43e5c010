// Package sector aggregates per-stock price series into sector and
// breadth statistics. Sector membership is configuration, not computed.
package sector

import "github.com/tadodev/ecotrack/internal/model"

// Aggregate averages per-stock returns for each configured sector.
// Stocks with fewer than two closes are skipped; 1-week and 1-month
// returns need 7 and 21 closes respectively and default to zero below
// that, matching the daily-bars convention of the data source.
func Aggregate(classification map[string][]string, series map[string]*model.PriceSeries) map[string]model.SectorPerformance {
	out := map[string]model.SectorPerformance{}

	for name, tickers := range classification {
		var stocks []model.StockPerformance
		for _, ticker := range tickers {
			ps, ok := series[ticker]
			if !ok || ps == nil {
				continue
			}
			closes := ps.Closes()
			if len(closes) < 2 {
				continue
			}
			sp := model.StockPerformance{
				Symbol:   ticker,
				Price:    closes[len(closes)-1],
				Change1D: ps.ChangePct().Or(0),
			}
			if len(ps.Bars) > 0 {
				sp.Volume = ps.Bars[len(ps.Bars)-1].Volume
			}
			if len(closes) >= 7 {
				if base := closes[len(closes)-7]; base != 0 {
					sp.Change1W = (sp.Price/base - 1) * 100
				}
			}
			if len(closes) >= 21 {
				if base := closes[len(closes)-21]; base != 0 {
					sp.Change1M = (sp.Price/base - 1) * 100
				}
			}
			stocks = append(stocks, sp)
		}

		if len(stocks) == 0 {
			continue
		}
		out[name] = summarize(stocks)
	}

	return out
}

func summarize(stocks []model.StockPerformance) model.SectorPerformance {
	perf := model.SectorPerformance{
		StockCount:     len(stocks),
		Stocks:         stocks,
		BestPerformer:  stocks[0].Symbol,
		WorstPerformer: stocks[0].Symbol,
	}
	best, worst := stocks[0].Change1D, stocks[0].Change1D

	for _, s := range stocks {
		perf.AvgReturn1D += s.Change1D
		perf.AvgReturn1W += s.Change1W
		perf.AvgReturn1M += s.Change1M
		perf.TotalVolume += s.Volume
		if s.Change1D > 0 {
			perf.Winners++
		} else if s.Change1D < 0 {
			perf.Losers++
		}
		if s.Change1D > best {
			best = s.Change1D
			perf.BestPerformer = s.Symbol
		}
		if s.Change1D < worst {
			worst = s.Change1D
			perf.WorstPerformer = s.Symbol
		}
	}

	n := float64(len(stocks))
	perf.AvgReturn1D /= n
	perf.AvgReturn1W /= n
	perf.AvgReturn1M /= n
	return perf
}
