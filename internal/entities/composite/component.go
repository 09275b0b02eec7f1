// Package composite models numeric statistics built from a base value plus
// an ordered list of labeled modifier components.
package composite

import (
	"encoding/json"
	"strings"
)

// LabelPart is one piece of a component label: either literal text or a
// localization key.
type LabelPart struct {
	Text string `json:"text,omitempty"`
	Key  string `json:"key,omitempty"`
}

// Text returns a literal label part.
func Text(text string) LabelPart {
	return LabelPart{Text: text}
}

// Key returns a label part resolved through a Resolver.
func Key(key string) LabelPart {
	return LabelPart{Key: key}
}

// Resolver turns localization keys into display text.
type Resolver interface {
	Resolve(key string) string
}

// Component is an immutable labeled delta contributing to a composite total.
type Component struct {
	value      float64
	labelParts []LabelPart
}

// ComponentObject is the serialized shape of a Component.
type ComponentObject struct {
	Value           float64     `json:"value"`
	LabelComponents []LabelPart `json:"labelComponents"`
}

// NewComponent creates a component. The label parts are copied.
func NewComponent(value float64, parts ...LabelPart) Component {
	return Component{
		value:      value,
		labelParts: append([]LabelPart(nil), parts...),
	}
}

// Value returns the signed delta.
func (c Component) Value() float64 {
	return c.value
}

// LabelParts returns a copy of the label parts.
func (c Component) LabelParts() []LabelPart {
	return append([]LabelPart(nil), c.labelParts...)
}

// Label resolves every part and joins them with a single space. A nil
// resolver or an empty resolution falls back to the key itself.
func (c Component) Label(r Resolver) string {
	words := make([]string, 0, len(c.labelParts))
	for _, part := range c.labelParts {
		if part.Key == "" {
			words = append(words, part.Text)
			continue
		}
		resolved := part.Key
		if r != nil {
			if s := r.Resolve(part.Key); s != "" {
				resolved = s
			}
		}
		words = append(words, resolved)
	}
	return strings.Join(words, " ")
}

// ToObject returns the serialized shape.
func (c Component) ToObject() ComponentObject {
	parts := c.LabelParts()
	if parts == nil {
		parts = []LabelPart{}
	}
	return ComponentObject{Value: c.value, LabelComponents: parts}
}

// MarshalJSON implements json.Marshaler.
func (c Component) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.ToObject())
}

// ComponentFromObject rebuilds a component from its serialized shape.
func ComponentFromObject(obj ComponentObject) Component {
	return NewComponent(obj.Value, obj.LabelComponents...)
}

// Adder is anything a component can be appended to.
type Adder interface {
	Add(c Component)
}
