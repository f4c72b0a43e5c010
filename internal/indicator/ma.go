package indicator

import (
	"math"

	"github.com/tadodev/ecotrack/internal/model"
)

// Standard moving-average windows used by the summary.
const (
	WindowShort  = 20
	WindowMedium = 50
	WindowLong   = 200
)

// SMA computes the simple moving average of the trailing window. Invalid
// when fewer than window samples are available.
func SMA(closes []float64, window int) model.Float {
	if window <= 0 || len(closes) < window {
		return model.Float{}
	}
	sum := 0.0
	for i := len(closes) - window; i < len(closes); i++ {
		sum += closes[i]
	}
	return model.FloatOf(sum / float64(window))
}

// rollingStd is the sample standard deviation of the trailing window.
func rollingStd(values []float64, window int) model.Float {
	if window <= 1 || len(values) < window {
		return model.Float{}
	}
	mean := SMA(values, window)
	var sq float64
	for i := len(values) - window; i < len(values); i++ {
		d := values[i] - mean.Value
		sq += d * d
	}
	return model.FloatOf(math.Sqrt(sq / float64(window-1)))
}

// Volatility returns the 20-day annualized volatility of returns as a
// percentage. Needs window+1 closes for window returns.
func Volatility(closes []float64) model.Float {
	const window = 20
	if len(closes) < window+1 {
		return model.Float{}
	}
	returns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] == 0 {
			return model.Float{}
		}
		returns = append(returns, closes[i]/closes[i-1]-1)
	}
	std := rollingStd(returns, window)
	if !std.Valid {
		return model.Float{}
	}
	return model.FloatOf(std.Value * math.Sqrt(252) * 100)
}
