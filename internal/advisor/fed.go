// Package advisor combines the Fed impact analysis, the macro score and
// market technicals into qualitative investment guidance. All rule
// weights are hand-tuned point tables; treat them as fixed.
package advisor

import (
	"fmt"

	"github.com/tadodev/ecotrack/internal/model"
)

// AnalyzeFedImpact scores how the US policy backdrop bears on Vietnam
// exposure. us carries the FRED snapshot (fed_rate, inflation), dxyChange
// the dollar-index move, vnRSI the VN-Index RSI. Missing inputs only skip
// their own branch.
func AnalyzeFedImpact(us model.IndicatorSnapshot, dxyChange, vnRSI model.Float) model.FedAnalysis {
	out := model.FedAnalysis{RiskLevel: model.RiskMedium}

	if fedRate := us.Value("fed_rate"); fedRate.Valid {
		switch {
		case fedRate.Value > 5.0:
			out.ImpactScore -= 30
			out.KeyFactors = append(out.KeyFactors,
				fmt.Sprintf("🔴 High Fed rate (%.2f%%) pressures emerging markets", fedRate.Value))
			out.RiskLevel = model.RiskHigh
		case fedRate.Value < 2.0:
			out.ImpactScore += 20
			out.KeyFactors = append(out.KeyFactors,
				fmt.Sprintf("🟢 Low Fed rate (%.2f%%) supports EM flows", fedRate.Value))
		}

		if mom := us.Change("fed_rate"); mom.Valid {
			switch {
			case mom.Value > 0.1:
				out.ImpactScore -= 15
				out.KeyFactors = append(out.KeyFactors, "🔴 Rising US rates create headwinds")
			case mom.Value < -0.1:
				out.ImpactScore += 15
				out.KeyFactors = append(out.KeyFactors, "🟢 Falling US rates support EM")
			}
		}
	}

	if infl := us.Value("inflation"); infl.Valid {
		switch {
		case infl.Value > 4.0:
			out.ImpactScore -= 20
			out.KeyFactors = append(out.KeyFactors,
				fmt.Sprintf("🔴 High US inflation (%.1f%%) may force Fed hawkishness", infl.Value))
		case infl.Value < 2.5:
			out.ImpactScore += 15
			out.KeyFactors = append(out.KeyFactors,
				fmt.Sprintf("🟢 Moderate US inflation (%.1f%%) allows Fed flexibility", infl.Value))
		}
	}

	if dxyChange.Valid {
		switch {
		case dxyChange.Value > 2:
			out.ImpactScore -= 25
			out.KeyFactors = append(out.KeyFactors, "🔴 Strong USD creates EM outflows")
		case dxyChange.Value < -2:
			out.ImpactScore += 20
			out.KeyFactors = append(out.KeyFactors, "🟢 Weak USD supports EM inflows")
		}
	}

	if vnRSI.Valid {
		switch {
		case vnRSI.Value < 35:
			out.ImpactScore += 10
			out.KeyFactors = append(out.KeyFactors, "🟢 VN-Index oversold, potential reversal")
		case vnRSI.Value > 65:
			out.ImpactScore -= 10
			out.KeyFactors = append(out.KeyFactors, "🔴 VN-Index overbought, vulnerable to correction")
		}
	}

	switch {
	case out.ImpactScore > 20:
		out.Recommendations = append(out.Recommendations,
			"🟢 Favorable Fed environment for Vietnam exposure",
			"💡 Consider increasing Vietnam allocation",
			"📈 Focus on growth sectors (Tech, Consumer)")
		out.RiskLevel = model.RiskLow
	case out.ImpactScore < -20:
		out.Recommendations = append(out.Recommendations,
			"🔴 Challenging Fed environment for Vietnam",
			"⚖️ Reduce Vietnam exposure or hedge currency risk",
			"🛡️ Focus on defensive sectors (Utilities, Consumer Staples)")
		out.RiskLevel = model.RiskHigh
	default:
		out.Recommendations = append(out.Recommendations,
			"🟡 Mixed Fed signals - cautious approach",
			"📊 Monitor Fed communications closely",
			"⚖️ Maintain balanced sector allocation")
	}

	return out
}
