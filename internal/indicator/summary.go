package indicator

import "github.com/tadodev/ecotrack/internal/model"

// Summarize computes the full technical picture for one close series.
// Every indicator degrades independently: a series too short for SMA200
// still yields RSI and the 20-period indicators. It never fails the
// whole summary.
func Summarize(closes []float64) model.TechnicalSummary {
	var sum model.TechnicalSummary
	if len(closes) > 0 {
		sum.LastClose = model.FloatOf(closes[len(closes)-1])
	}

	sum.RSI = LatestRSI(closes, DefaultRSIPeriod)
	sum.RSISignal, sum.RSISentiment = Sentiment(sum.RSI)

	sum.SMA20 = SMA(closes, WindowShort)
	sum.SMA50 = SMA(closes, WindowMedium)
	sum.SMA200 = SMA(closes, WindowLong)

	sum.BollUpper, sum.BollLower, sum.BollPosition = Bollinger(closes)
	sum.Support, sum.Resistance = SupportResistance(closes)
	sum.Volatility20d = Volatility(closes)

	return sum
}
