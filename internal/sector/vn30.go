package sector

import (
	"sort"

	"github.com/tadodev/ecotrack/internal/model"
)

// AnalyzeVN30 builds the VN30 basket view from per-constituent series.
// Contributions use an equal-weight assumption. Returns nil when no
// constituent produced data.
func AnalyzeVN30(constituents []string, series map[string]*model.PriceSeries) *model.VN30Analysis {
	var stocks []model.VN30Constituent

	for _, symbol := range constituents {
		ps, ok := series[symbol]
		if !ok || ps == nil {
			continue
		}
		change := ps.ChangePct()
		if !change.Valid {
			continue
		}
		c := model.VN30Constituent{
			Symbol:       symbol,
			Price:        ps.LastClose().Or(0),
			ChangePct:    change.Value,
			Contribution: change.Value / float64(len(constituents)),
		}
		if len(ps.Bars) > 0 {
			c.Volume = ps.Bars[len(ps.Bars)-1].Volume
		}
		stocks = append(stocks, c)
	}

	if len(stocks) == 0 {
		return nil
	}

	// Largest absolute contribution first.
	sort.Slice(stocks, func(i, j int) bool {
		return abs(stocks[i].Contribution) > abs(stocks[j].Contribution)
	})

	out := &model.VN30Analysis{Constituents: stocks}
	for _, s := range stocks {
		out.AvgChange += s.ChangePct
		out.TotalVolume += s.Volume
		if s.ChangePct > 0 {
			out.Advancing++
		} else if s.ChangePct < 0 {
			out.Declining++
		}
	}
	out.AvgChange /= float64(len(stocks))
	out.Unchanged = len(stocks) - out.Advancing - out.Declining
	if out.Declining > 0 {
		out.AdvanceDecline = model.FloatOf(float64(out.Advancing) / float64(out.Declining))
	}

	out.TopContributors = topN(stocks, 5)
	detractors := make([]model.VN30Constituent, len(stocks))
	copy(detractors, stocks)
	sort.Slice(detractors, func(i, j int) bool {
		return detractors[i].Contribution < detractors[j].Contribution
	})
	out.TopDetractors = topN(detractors, 5)

	return out
}

func topN(stocks []model.VN30Constituent, n int) []model.VN30Constituent {
	if len(stocks) < n {
		n = len(stocks)
	}
	return stocks[:n]
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
