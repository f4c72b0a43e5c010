package indicator

import "github.com/tadodev/ecotrack/internal/model"

// Sentiment labels for RSI classification.
const (
	SignalOverbought = "Overbought"
	SignalOversold   = "Oversold"
	SignalNeutral    = "Neutral"
	SignalUnknown    = "Unknown"

	TonePositive = "positive"
	ToneNegative = "negative"
	ToneNeutral  = "neutral"
)

// Sentiment classifies a single RSI reading. Total over valid and invalid
// inputs: a missing RSI maps to Unknown/neutral, the 30 and 70 boundaries
// are exclusive.
func Sentiment(rsi model.Float) (signal, tone string) {
	if !rsi.Valid {
		return SignalUnknown, ToneNeutral
	}
	switch {
	case rsi.Value > 70:
		return SignalOverbought, ToneNegative
	case rsi.Value < 30:
		return SignalOversold, TonePositive
	default:
		return SignalNeutral, ToneNeutral
	}
}
