package model

// MarketTiming classifies the overall score band.
type MarketTiming string

const (
	TimingFavorable   MarketTiming = "Favorable"
	TimingNeutral     MarketTiming = "Neutral"
	TimingUnfavorable MarketTiming = "Unfavorable"
)

// RiskLevel is the blended risk assessment.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// RiskTolerance is the caller-supplied investor profile.
type RiskTolerance string

const (
	ToleranceConservative RiskTolerance = "Conservative"
	ToleranceModerate     RiskTolerance = "Moderate"
	ToleranceAggressive   RiskTolerance = "Aggressive"
)

// FedAnalysis is the US-policy impact sub-analysis. Score runs -100..+100
// as signed point deltas from the rule table.
type FedAnalysis struct {
	ImpactScore     float64
	KeyFactors      []string
	Recommendations []string
	RiskLevel       RiskLevel
}

// RecommendationBundle is the final combined output. Always best-effort:
// missing upstream fields shrink the lists, they never abort the bundle.
type RecommendationBundle struct {
	OverallScore    float64
	MarketTiming    MarketTiming
	RiskLevel       RiskLevel
	Recommendations []string
	Opportunities   []string
	RiskFactors     []string
	Currency        []string
	Fed             FedAnalysis
	Macro           EconomicScore
	Summary         string
}
