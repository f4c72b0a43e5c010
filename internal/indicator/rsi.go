package indicator

import "github.com/tadodev/ecotrack/internal/model"

// DefaultRSIPeriod is Wilder's conventional 14.
const DefaultRSIPeriod = 14

// RSISeries computes the Wilder-smoothed RSI over the given period and
// returns a series aligned index-for-index with the input closes.
// The first period entries are invalid: the smoothing has no meaningful
// history yet. An entry is also invalid whenever the smoothed average
// loss is zero, since RS is undefined there; reporting 100 instead would
// manufacture an extreme signal out of a flat tape.
func RSISeries(closes []float64, period int) []model.Float {
	out := make([]model.Float, len(closes))
	if period <= 0 || len(closes) < 2 {
		return out
	}

	alpha := 1.0 / float64(period)
	var avgGain, avgLoss float64

	for i := 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}

		if i == 1 {
			// Seed with the raw first change, Wilder's convention:
			// no bias correction.
			avgGain = gain
			avgLoss = loss
		} else {
			avgGain = alpha*gain + (1-alpha)*avgGain
			avgLoss = alpha*loss + (1-alpha)*avgLoss
		}

		if i < period || avgLoss == 0 {
			continue
		}
		rs := avgGain / avgLoss
		out[i] = model.FloatOf(100 - 100/(1+rs))
	}
	return out
}

// LatestRSI returns the RSI value for the most recent bar.
func LatestRSI(closes []float64, period int) model.Float {
	series := RSISeries(closes, period)
	if len(series) == 0 {
		return model.Float{}
	}
	return series[len(series)-1]
}
