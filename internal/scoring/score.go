// Package scoring computes the composite 0-100 economic health score
// from a macro indicator snapshot. The thresholds and point values are
// an additive rule table; they are the tested behavior and must not be
// re-derived.
package scoring

import (
	"fmt"

	"github.com/tadodev/ecotrack/internal/model"
)

const (
	baseScore = 50

	ratingExcellentMin = 75
	ratingGoodMin      = 60
	ratingFairMin      = 45
	ratingPoorMin      = 30
)

// rule scores one indicator. apply receives the reading and returns the
// point delta plus an optional human-readable factor; an empty factor is
// not appended. Rules are evaluated in declaration order, which fixes
// the order of the factors list.
type rule struct {
	key   string
	apply func(iv model.IndicatorValue) (delta float64, factor string)
}

var rules = []rule{
	{key: "gdp_growth_yoy", apply: scoreGDP},
	{key: "inflation_rate", apply: scoreInflation},
	{key: "manufacturing_pmi", apply: scorePMI},
	{key: "balance_of_trade", apply: scoreTrade},
	{key: "fx_reserves", apply: scoreFXReserves},
	{key: "policy_rate", apply: scorePolicyRate},
}

// Evaluate computes the economic score. Indicators absent from the
// snapshot are skipped entirely: they contribute no points and no
// factor. An empty snapshot therefore scores exactly 50, Fair.
func Evaluate(snap model.IndicatorSnapshot) model.EconomicScore {
	score := float64(baseScore)
	factors := []string{}

	for _, r := range rules {
		iv, ok := snap[r.key]
		if !ok || !iv.Value.Valid {
			continue
		}
		delta, factor := r.apply(iv)
		score += delta
		if factor != "" {
			factors = append(factors, factor)
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return model.EconomicScore{
		Score:   score,
		Rating:  rate(score),
		Factors: factors,
	}
}

func rate(score float64) model.Rating {
	switch {
	case score >= ratingExcellentMin:
		return model.RatingExcellent
	case score >= ratingGoodMin:
		return model.RatingGood
	case score >= ratingFairMin:
		return model.RatingFair
	case score >= ratingPoorMin:
		return model.RatingPoor
	default:
		return model.RatingCritical
	}
}

func scoreGDP(iv model.IndicatorValue) (float64, string) {
	gdp := iv.Value.Value
	switch {
	case gdp > 6.5:
		return 15, fmt.Sprintf("🟢 Strong GDP growth (%.1f%%)", gdp)
	case gdp > 5.0:
		return 10, fmt.Sprintf("🟡 Moderate GDP growth (%.1f%%)", gdp)
	default:
		return -10, fmt.Sprintf("🔴 Slow GDP growth (%.1f%%)", gdp)
	}
}

func scoreInflation(iv model.IndicatorValue) (float64, string) {
	infl := iv.Value.Value
	switch {
	case infl >= 2 && infl <= 4:
		return 12, fmt.Sprintf("🟢 Healthy inflation (%.1f%%)", infl)
	case infl < 2 || infl > 6:
		return -8, fmt.Sprintf("🔴 Concerning inflation (%.1f%%)", infl)
	default:
		return 5, fmt.Sprintf("🟡 Elevated inflation (%.1f%%)", infl)
	}
}

func scorePMI(iv model.IndicatorValue) (float64, string) {
	pmi := iv.Value.Value
	switch {
	case pmi > 52:
		return 10, fmt.Sprintf("🟢 Expanding manufacturing (PMI: %.1f)", pmi)
	case pmi > 50:
		return 5, fmt.Sprintf("🟡 Mild manufacturing expansion (PMI: %.1f)", pmi)
	default:
		return -8, fmt.Sprintf("🔴 Contracting manufacturing (PMI: %.1f)", pmi)
	}
}

func scoreTrade(iv model.IndicatorValue) (float64, string) {
	trade := iv.Value.Value
	switch {
	case trade > 1:
		return 8, fmt.Sprintf("🟢 Trade surplus ($%.1fB)", trade)
	case trade > -1:
		return 3, fmt.Sprintf("🟡 Balanced trade ($%.1fB)", trade)
	default:
		return -5, fmt.Sprintf("🔴 Trade deficit ($%.1fB)", trade)
	}
}

func scoreFXReserves(iv model.IndicatorValue) (float64, string) {
	fx := iv.Value.Value
	switch {
	case fx > 100:
		return 7, fmt.Sprintf("🟢 Strong FX reserves ($%.0fB)", fx)
	case fx > 80:
		// Adequate reserves adjust the score without a factor line.
		return 3, ""
	default:
		return -3, ""
	}
}

func scorePolicyRate(iv model.IndicatorValue) (float64, string) {
	if !iv.Change.Valid {
		return 0, ""
	}
	rate := iv.Value.Value
	switch {
	case iv.Change.Value < -0.25:
		return 8, fmt.Sprintf("🟢 Accommodative policy (Rate: %.2f%% ↓)", rate)
	case iv.Change.Value > 0.25:
		return -5, fmt.Sprintf("🔴 Tightening policy (Rate: %.2f%% ↑)", rate)
	default:
		return 3, fmt.Sprintf("🟡 Stable policy rate (%.2f%%)", rate)
	}
}
