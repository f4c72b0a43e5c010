package model

// StockPerformance is one constituent's contribution to a sector.
type StockPerformance struct {
	Symbol   string
	Price    float64
	Change1D float64
	Change1W float64
	Change1M float64
	Volume   float64
}

// SectorPerformance aggregates per-stock changes for one sector.
type SectorPerformance struct {
	StockCount     int
	AvgReturn1D    float64
	AvgReturn1W    float64
	AvgReturn1M    float64
	TotalVolume    float64
	Winners        int
	Losers         int
	BestPerformer  string
	WorstPerformer string
	Stocks         []StockPerformance
}

// MarketBreadth summarizes advancing vs declining issues across the
// tracked universe.
type MarketBreadth struct {
	Advancing        int
	Declining        int
	Unchanged        int
	AdvanceDecline   Float // advancing/declining ratio
	ADLine           float64
	UpVolume         float64
	DownVolume       float64
	VolumeRatio      Float
	BreadthMomentum  string // Positive / Negative / Neutral
}

// VN30Constituent is one VN30 member with its equal-weight contribution.
type VN30Constituent struct {
	Symbol       string
	Price        float64
	ChangePct    float64
	Volume       float64
	Contribution float64
}

// VN30Analysis summarizes the VN30 basket.
type VN30Analysis struct {
	Constituents    []VN30Constituent
	AvgChange       float64
	TotalVolume     float64
	Advancing       int
	Declining       int
	Unchanged       int
	AdvanceDecline  Float
	TopContributors []VN30Constituent
	TopDetractors   []VN30Constituent
}
