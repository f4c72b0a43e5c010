package model

// TechnicalSummary holds all computed technical indicators for one
// instrument. Each field is independently valid: short histories simply
// leave the longer-window indicators unset.
type TechnicalSummary struct {
	LastClose     Float
	RSI           Float
	RSISignal     string // Overbought / Oversold / Neutral / Unknown
	RSISentiment  string // positive / negative / neutral
	SMA20         Float
	SMA50         Float
	SMA200        Float
	BollUpper     Float
	BollLower     Float
	BollPosition  Float
	Support       Float
	Resistance    Float
	Volatility20d Float
}
