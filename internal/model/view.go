package model

import "time"

// FedGauge is a heuristic rate-path read from the yield curve, not CME
// probabilities.
type FedGauge struct {
	YieldCurve  float64
	FedRate     float64
	Treasury10Y float64
	CutProb     int
}

// MarketView is the full snapshot built once per refresh cycle and fed to
// the analysis core. Any section may be nil/empty when its source failed;
// downstream consumers degrade per section.
type MarketView struct {
	USIndicators   IndicatorSnapshot
	VNIndicators   IndicatorSnapshot
	FedGauge       *FedGauge
	VNIndex        *IndexQuote
	VNTechnical    *TechnicalSummary
	Sectors        map[string]SectorPerformance
	Breadth        *MarketBreadth
	VN30           *VN30Analysis
	GlobalIndices  map[string]IndexQuote
	DXYChange      Float
	USDVNDChange   Float
	CollectedAt    time.Time
}
