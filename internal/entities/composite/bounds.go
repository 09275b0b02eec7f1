package composite

// Bounds optionally clamps a total. A nil side is unbounded.
type Bounds struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// Between returns bounds clamped on both sides.
func Between(minValue, maxValue float64) Bounds {
	return Bounds{Min: &minValue, Max: &maxValue}
}

// AtLeast returns bounds with only a minimum.
func AtLeast(minValue float64) Bounds {
	return Bounds{Min: &minValue}
}

// AtMost returns bounds with only a maximum.
func AtMost(maxValue float64) Bounds {
	return Bounds{Max: &maxValue}
}

// Clamp applies the bounds. Min > Max is not validated here; Max wins.
func (b Bounds) Clamp(v float64) float64 {
	if b.Min != nil && v < *b.Min {
		v = *b.Min
	}
	if b.Max != nil && v > *b.Max {
		v = *b.Max
	}
	return v
}

// IsZero reports whether neither side is set.
func (b Bounds) IsZero() bool {
	return b.Min == nil && b.Max == nil
}

// Clone returns bounds that share no pointers with b.
func (b Bounds) Clone() Bounds {
	var out Bounds
	if b.Min != nil {
		v := *b.Min
		out.Min = &v
	}
	if b.Max != nil {
		v := *b.Max
		out.Max = &v
	}
	return out
}

func (b Bounds) object() *Bounds {
	if b.IsZero() {
		return nil
	}
	c := b.Clone()
	return &c
}
