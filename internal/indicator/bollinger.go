package indicator

import "github.com/tadodev/ecotrack/internal/model"

const (
	bollingerWindow = 20
	bollingerStdDev = 2.0
)

// Bollinger computes the 20-period bands and the position of the last
// close within them. Position is (close-lower)/(upper-lower), invalid
// when the band width is zero.
func Bollinger(closes []float64) (upper, lower, position model.Float) {
	sma := SMA(closes, bollingerWindow)
	std := rollingStd(closes, bollingerWindow)
	if !sma.Valid || !std.Valid {
		return model.Float{}, model.Float{}, model.Float{}
	}
	upper = model.FloatOf(sma.Value + bollingerStdDev*std.Value)
	lower = model.FloatOf(sma.Value - bollingerStdDev*std.Value)

	width := upper.Value - lower.Value
	if width == 0 {
		return upper, lower, model.Float{}
	}
	last := closes[len(closes)-1]
	position = model.FloatOf((last - lower.Value) / width)
	return upper, lower, position
}

// SupportResistance returns the trailing 20-period low and high.
func SupportResistance(closes []float64) (support, resistance model.Float) {
	const window = 20
	if len(closes) < window {
		return model.Float{}, model.Float{}
	}
	lo, hi := closes[len(closes)-window], closes[len(closes)-window]
	for i := len(closes) - window + 1; i < len(closes); i++ {
		if closes[i] < lo {
			lo = closes[i]
		}
		if closes[i] > hi {
			hi = closes[i]
		}
	}
	return model.FloatOf(lo), model.FloatOf(hi)
}
