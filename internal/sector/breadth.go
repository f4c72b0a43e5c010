package sector

import "github.com/tadodev/ecotrack/internal/model"

// breadthThreshold separates advancers/decliners from unchanged, in
// percent.
const breadthThreshold = 0.1

// Breadth computes advance/decline statistics across the tracked
// universe from per-stock daily changes and volumes. Returns nil when
// no stock produced a usable change.
func Breadth(series map[string]*model.PriceSeries) *model.MarketBreadth {
	b := &model.MarketBreadth{}

	for _, ps := range series {
		if ps == nil {
			continue
		}
		change := ps.ChangePct()
		if !change.Valid {
			continue
		}
		var volume float64
		if len(ps.Bars) > 0 {
			volume = ps.Bars[len(ps.Bars)-1].Volume
		}
		switch {
		case change.Value > breadthThreshold:
			b.Advancing++
			b.UpVolume += volume
		case change.Value < -breadthThreshold:
			b.Declining++
			b.DownVolume += volume
		default:
			b.Unchanged++
		}
	}

	total := b.Advancing + b.Declining + b.Unchanged
	if total == 0 {
		return nil
	}

	if b.Declining > 0 {
		b.AdvanceDecline = model.FloatOf(float64(b.Advancing) / float64(b.Declining))
	}
	b.ADLine = float64(b.Advancing-b.Declining) / float64(total) * 100
	if b.DownVolume > 0 {
		b.VolumeRatio = model.FloatOf(b.UpVolume / b.DownVolume)
	}

	switch {
	case b.Advancing > b.Declining:
		b.BreadthMomentum = "Positive"
	case b.Declining > b.Advancing:
		b.BreadthMomentum = "Negative"
	default:
		b.BreadthMomentum = "Neutral"
	}

	return b
}
