package model

// IndicatorValue is one macro indicator reading. Change is derived from
// Value and Previous at construction time and never recomputed.
type IndicatorValue struct {
	Name     string
	Unit     string
	Date     string
	Value    Float
	Previous Float
	Change   Float
}

// IndicatorSnapshot maps canonical indicator keys (e.g. "gdp_growth_yoy")
// to their latest readings. Entries may be absent entirely.
type IndicatorSnapshot map[string]IndicatorValue

// NewIndicatorValue builds a reading and derives the percentage change
// (value-previous)/|previous|*100 when both sides are present and the
// previous value is non-zero.
func NewIndicatorValue(name, unit, date string, value, previous Float) IndicatorValue {
	iv := IndicatorValue{Name: name, Unit: unit, Date: date, Value: value, Previous: previous}
	if value.Valid && previous.Valid && previous.Value != 0 {
		iv.Change = FloatOf((value.Value - previous.Value) / abs(previous.Value) * 100)
	}
	return iv
}

// Value returns the reading for key, invalid when the key is absent.
func (s IndicatorSnapshot) Value(key string) Float {
	if iv, ok := s[key]; ok {
		return iv.Value
	}
	return Float{}
}

// Change returns the derived change for key, invalid when absent.
func (s IndicatorSnapshot) Change(key string) Float {
	if iv, ok := s[key]; ok {
		return iv.Change
	}
	return Float{}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
