package rules

import (
	"encoding/json"
	"fmt"
)

// Target is the document a rule element modifies.
type Target string

// Targets
const (
	TargetItem  Target = "item"
	TargetActor Target = "actor"
)

// Valid reports whether t is a known target.
func (t Target) Valid() bool {
	return t == TargetItem || t == TargetActor
}

// Source is the persisted, user-authored form of a rule element.
type Source struct {
	Enabled  bool    `json:"enabled"`
	Label    string  `json:"label"`
	Priority float64 `json:"priority"`
	Selector string  `json:"selector"`
	Target   Target  `json:"target"`
	Type     string  `json:"type"`
	Value    Value   `json:"value"`
}

// Kind names the JSON type of a value or property.
type Kind string

// Kinds reported in type-check messages
const (
	KindBoolean   Kind = "boolean"
	KindNumber    Kind = "number"
	KindString    Kind = "string"
	KindComposite Kind = "composite number"
	KindResource  Kind = "composite resource"
	KindSpecial   Kind = "special"
	KindObject    Kind = "object"
	KindArray     Kind = "array"
	KindNull      Kind = "null"
	KindUnknown   Kind = "unknown"
)

// Value is a boolean, number or string that keeps its JSON type.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
}

// BoolValue wraps a boolean.
func BoolValue(b bool) Value { return Value{kind: KindBoolean, b: b} }

// NumberValue wraps a number.
func NumberValue(n float64) Value { return Value{kind: KindNumber, n: n} }

// StringValue wraps a string.
func StringValue(s string) Value { return Value{kind: KindString, s: s} }

// Kind returns the JSON type of the value.
func (v Value) Kind() Kind {
	if v.kind == "" {
		return KindNull
	}
	return v.kind
}

// Number returns the value if it is numeric.
func (v Value) Number() (float64, bool) {
	return v.n, v.kind == KindNumber
}

// Any returns the value as float64, string or bool.
func (v Value) Any() any {
	switch v.kind {
	case KindBoolean:
		return v.b
	case KindNumber:
		return v.n
	case KindString:
		return v.s
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Any())
}

// UnmarshalJSON accepts a boolean, number or string.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case bool:
		*v = BoolValue(t)
	case float64:
		*v = NumberValue(t)
	case string:
		*v = StringValue(t)
	default:
		return fmt.Errorf("rule element value must be a boolean, number or string, got %s", kindOf(raw))
	}
	return nil
}

func isPrimitive(k Kind) bool {
	return k == KindBoolean || k == KindNumber || k == KindString
}
