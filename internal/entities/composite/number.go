package composite

import (
	"encoding/json"
)

// Number is a base value plus an append-only list of components. The total
// is recomputed on every read and clamped once, after summing.
type Number struct {
	source     float64
	bounds     Bounds
	components []Component
}

// NumberObject is the serialized shape of a Number. Components is nil in the
// source projection.
type NumberObject struct {
	Source     float64           `json:"source"`
	Bounds     *Bounds           `json:"bounds,omitempty"`
	Components []ComponentObject `json:"components,omitempty"`
}

// NewNumber creates a number with no components.
func NewNumber(source float64, bounds Bounds) *Number {
	return &Number{source: source, bounds: bounds.Clone()}
}

// Add appends a component.
func (n *Number) Add(c Component) {
	n.components = append(n.components, c)
}

// Source returns the base value.
func (n *Number) Source() float64 {
	return n.source
}

// Bounds returns a copy of the bounds.
func (n *Number) Bounds() Bounds {
	return n.bounds.Clone()
}

// Components returns the components in insertion order. The slice is a copy.
func (n *Number) Components() []Component {
	return append([]Component(nil), n.components...)
}

// Modifier is the unclamped sum of all components.
func (n *Number) Modifier() float64 {
	return sum(n.components)
}

// Total is clamp(source + modifier).
func (n *Number) Total() float64 {
	return n.bounds.Clamp(n.source + n.Modifier())
}

// Clone returns an independent copy.
func (n *Number) Clone() *Number {
	return &Number{
		source:     n.source,
		bounds:     n.bounds.Clone(),
		components: n.Components(),
	}
}

// ToObject projects the number. With source set only the source and bounds
// are included; otherwise the components are included too.
func (n *Number) ToObject(source bool) NumberObject {
	obj := NumberObject{Source: n.source, Bounds: n.bounds.object()}
	if !source {
		obj.Components = objects(n.components)
	}
	return obj
}

// MarshalJSON writes the full projection.
func (n *Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.ToObject(false))
}

// Property exposes read-only sub-properties to path selectors.
func (n *Number) Property(name string) (any, bool) {
	switch name {
	case "source":
		return n.source, true
	case "total":
		return n.Total(), true
	case "modifier":
		return n.Modifier(), true
	}
	return nil, false
}

// NumberFromObject rebuilds a number, replaying components through Add.
func NumberFromObject(obj NumberObject) *Number {
	var bounds Bounds
	if obj.Bounds != nil {
		bounds = *obj.Bounds
	}
	n := NewNumber(obj.Source, bounds)
	for _, c := range obj.Components {
		n.Add(ComponentFromObject(c))
	}
	return n
}

// From returns v itself when it is already a *Number; otherwise v must be a
// NumberObject or raw JSON shape with a numeric source.
func From(v any) (*Number, error) {
	switch t := v.(type) {
	case *Number:
		return t, nil
	case NumberObject:
		return NumberFromObject(t), nil
	case *NumberObject:
		if t == nil {
			return nil, errNilSource()
		}
		return NumberFromObject(*t), nil
	}

	data, err := rawBytes(v)
	if err != nil {
		return nil, err
	}
	obj, err := parseNumber(data)
	if err != nil {
		return nil, err
	}
	return NumberFromObject(obj), nil
}

func sum(components []Component) float64 {
	var total float64
	for _, c := range components {
		total += c.value
	}
	return total
}

func objects(components []Component) []ComponentObject {
	out := make([]ComponentObject, len(components))
	for i, c := range components {
		out[i] = c.ToObject()
	}
	return out
}
