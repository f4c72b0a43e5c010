package advisor

import (
	"fmt"
	"strings"

	"github.com/tadodev/ecotrack/internal/model"
	"github.com/tadodev/ecotrack/internal/scoring"
)

// Inputs bundles everything Recommend consumes. Any section may be its
// zero value when upstream fetching came up short.
type Inputs struct {
	US           model.IndicatorSnapshot
	VN           model.IndicatorSnapshot
	VNIndexName  string
	VNTechnical  *model.TechnicalSummary
	VN30         *model.VN30Analysis
	DXYChange    model.Float
	USDVNDChange model.Float
}

// Recommend produces the full recommendation bundle. The overall score is
// (fed impact + 50 + macro score) / 2; bands above 65 and below 40 set
// the timing call. Never fails: with no signals at all it returns a
// neutral bundle with a monitoring note.
func Recommend(in Inputs, tolerance model.RiskTolerance) model.RecommendationBundle {
	var vnRSI model.Float
	if in.VNTechnical != nil {
		vnRSI = in.VNTechnical.RSI
	}

	fed := AnalyzeFedImpact(in.US, in.DXYChange, vnRSI)
	macro := scoring.Evaluate(in.VN)

	overall := (fed.ImpactScore + 50 + macro.Score) / 2

	bundle := model.RecommendationBundle{
		OverallScore: overall,
		MarketTiming: model.TimingNeutral,
		Fed:          fed,
		Macro:        macro,
	}

	switch {
	case overall > 65:
		bundle.MarketTiming = model.TimingFavorable
		bundle.Recommendations = append(bundle.Recommendations,
			"🟢 Market conditions favor Vietnam exposure")
	case overall < 40:
		bundle.MarketTiming = model.TimingUnfavorable
		bundle.Recommendations = append(bundle.Recommendations,
			"🔴 Exercise caution with Vietnam exposure")
	}

	// Technical signals on the index, strict 30/70 boundaries.
	if vnRSI.Valid {
		name := in.VNIndexName
		if name == "" {
			name = "VN-Index"
		}
		if vnRSI.Value < 30 {
			bundle.Opportunities = append(bundle.Opportunities,
				fmt.Sprintf("📉 %s oversold (RSI: %.1f) - potential entry point", name, vnRSI.Value))
		} else if vnRSI.Value > 70 {
			bundle.RiskFactors = append(bundle.RiskFactors,
				fmt.Sprintf("📈 %s overbought (RSI: %.1f) - potential correction ahead", name, vnRSI.Value))
		}
	}

	bundle.Recommendations = append(bundle.Recommendations, rotationAdvice(SectorRotation(in.VN))...)

	// Breadth of the VN30 basket.
	if in.VN30 != nil && in.VN30.AdvanceDecline.Valid {
		if in.VN30.AdvanceDecline.Value > 2 {
			bundle.Opportunities = append(bundle.Opportunities,
				"🟢 VN30 shows strong breadth - broad-based rally")
		} else if in.VN30.AdvanceDecline.Value < 0.5 {
			bundle.RiskFactors = append(bundle.RiskFactors,
				"🔴 VN30 shows weak breadth - selective selling")
		}
	}

	bundle.Recommendations = append(bundle.Recommendations, allocationAdvice(tolerance, overall)...)

	if in.USDVNDChange.Valid {
		chg := in.USDVNDChange.Value
		if chg > 3 || chg < -3 {
			bundle.Currency = append(bundle.Currency,
				"💱 Consider currency hedging for large positions")
		} else if chg < -2 {
			bundle.Currency = append(bundle.Currency,
				"🟢 VND strength provides tailwind for USD investors")
		}
	}

	// Blended risk: the Fed leg's High short-circuits, Low needs both legs.
	bundle.RiskLevel = model.RiskMedium
	if fed.RiskLevel == model.RiskHigh || macro.Score < 40 {
		bundle.RiskLevel = model.RiskHigh
	} else if fed.RiskLevel == model.RiskLow && macro.Score > 70 {
		bundle.RiskLevel = model.RiskLow
	}

	if len(bundle.Recommendations) == 0 {
		bundle.Recommendations = append(bundle.Recommendations,
			"📊 Monitor market conditions - mixed signals")
	}

	bundle.Summary = fmt.Sprintf("Overall market score: %.1f/100. %s timing with %s risk level.",
		overall, bundle.MarketTiming, strings.ToLower(string(bundle.RiskLevel)))

	return bundle
}

func rotationAdvice(rotation map[string][]string) []string {
	var out []string
	if sectors, ok := rotation[RotationGrowth]; ok {
		out = append(out, fmt.Sprintf("🚀 Growth environment favors: %s", strings.Join(sectors, ", ")))
	}
	if sectors, ok := rotation[RotationDefensive]; ok {
		out = append(out, fmt.Sprintf("🛡️ Defensive positioning: %s", strings.Join(sectors, ", ")))
	}
	if sectors, ok := rotation[RotationInflationHedge]; ok {
		out = append(out, fmt.Sprintf("🔥 Inflation hedge plays: %s", strings.Join(sectors, ", ")))
	}
	return out
}

// allocationAdvice is a static lookup keyed by tolerance tier crossed
// with an overall-score cutoff per tier.
func allocationAdvice(tolerance model.RiskTolerance, overall float64) []string {
	switch tolerance {
	case model.ToleranceConservative:
		if overall > 60 {
			return []string{
				"💰 Consider 10-15% Vietnam allocation via dividend-focused stocks",
				"🏦 Favor Banking and Utilities sectors",
			}
		}
		return []string{
			"💰 Limit Vietnam to 5-8% allocation",
			"🛡️ Focus on large-cap, established names only",
		}
	case model.ToleranceAggressive:
		if overall > 50 {
			return []string{
				"🚀 Consider 25-35% Vietnam allocation",
				"📈 Favor growth sectors and small-mid caps",
			}
		}
		return []string{
			"🚀 Consider 15-20% Vietnam allocation",
			"⚖️ Balance growth plays with some defensive positions",
		}
	default: // Moderate
		if overall > 55 {
			return []string{
				"⚖️ Consider 15-25% Vietnam allocation",
				"📊 Balanced sector approach with growth tilt",
			}
		}
		return []string{
			"⚖️ Maintain 10-15% Vietnam allocation",
			"🎯 Focus on quality names and avoid speculative plays",
		}
	}
}
