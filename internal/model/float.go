package model

// Float is a float64 that may be missing. Indicator math reports
// insufficient history and absent inputs the same way: an invalid Float.
type Float struct {
	Value float64
	Valid bool
}

// FloatOf wraps a present value.
func FloatOf(v float64) Float { return Float{Value: v, Valid: true} }

// Or returns the value, or def when invalid.
func (f Float) Or(def float64) float64 {
	if !f.Valid {
		return def
	}
	return f.Value
}
