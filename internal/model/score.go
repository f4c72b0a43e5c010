package model

// Rating buckets the composite economic score.
type Rating string

const (
	RatingExcellent Rating = "Excellent"
	RatingGood      Rating = "Good"
	RatingFair      Rating = "Fair"
	RatingPoor      Rating = "Poor"
	RatingCritical  Rating = "Critical"
)

// EconomicScore is the 0-100 composite macro health score. Factors
// preserve the rule evaluation order: callers display only the first N.
type EconomicScore struct {
	Score   float64
	Rating  Rating
	Factors []string
}
