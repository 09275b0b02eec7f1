// Package special implements the dual-layer SPECIAL statistics and the
// skills derived from them.
package special

import (
	"encoding/json"
	"math"

	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/special-api/internal/entities/composite"
	"github.com/KirkDiggler/special-api/internal/errors"
	"github.com/KirkDiggler/special-api/internal/pkg/propertypath"
)

const (
	// DefaultPoints is the allocation of a freshly created special.
	DefaultPoints = 5
	// MinPoints and MaxPoints bound both layers' totals.
	MinPoints = 0
	MaxPoints = 15
)

// DefaultBounds clamps a layer to [MinPoints, MaxPoints].
func DefaultBounds() composite.Bounds {
	return composite.Between(MinPoints, MaxPoints)
}

// Special is a statistic with a permanent and a temporary layer. The
// temporary total layers on top of the permanent modifier.
type Special struct {
	points         int
	permBounds     composite.Bounds
	tempBounds     composite.Bounds
	permComponents []composite.Component
	tempComponents []composite.Component
}

// Object is the serialized shape of a Special. Component lists are nil in
// the source projection.
type Object struct {
	Points         int                         `json:"points"`
	PermBounds     *composite.Bounds           `json:"permBounds,omitempty"`
	TempBounds     *composite.Bounds           `json:"tempBounds,omitempty"`
	PermComponents []composite.ComponentObject `json:"permComponents,omitempty"`
	TempComponents []composite.ComponentObject `json:"tempComponents,omitempty"`
}

// New creates a special with DefaultBounds on both layers.
func New(points int) *Special {
	return NewWithBounds(points, DefaultBounds(), DefaultBounds())
}

// NewWithBounds creates a special with explicit bounds.
func NewWithBounds(points int, perm, temp composite.Bounds) *Special {
	return &Special{
		points:     points,
		permBounds: perm.Clone(),
		tempBounds: temp.Clone(),
	}
}

// Points returns the invested allocation.
func (s *Special) Points() int {
	return s.points
}

// AddPerm appends to the permanent layer.
func (s *Special) AddPerm(c composite.Component) {
	s.permComponents = append(s.permComponents, c)
}

// AddTemp appends to the temporary layer.
func (s *Special) AddTemp(c composite.Component) {
	s.tempComponents = append(s.tempComponents, c)
}

// Add appends to the permanent layer, making a Special a composite.Adder.
func (s *Special) Add(c composite.Component) {
	s.AddPerm(c)
}

// PermComponents returns a copy of the permanent layer.
func (s *Special) PermComponents() []composite.Component {
	return append([]composite.Component(nil), s.permComponents...)
}

// TempComponents returns a copy of the temporary layer.
func (s *Special) TempComponents() []composite.Component {
	return append([]composite.Component(nil), s.tempComponents...)
}

// PermModifier is the sum of the permanent layer.
func (s *Special) PermModifier() float64 {
	return sum(s.permComponents)
}

// TempModifier is the sum of the temporary layer.
func (s *Special) TempModifier() float64 {
	return sum(s.tempComponents)
}

// PermTotal is clamp(points + permModifier, permBounds).
func (s *Special) PermTotal() float64 {
	return s.permBounds.Clamp(float64(s.points) + s.PermModifier())
}

// TempTotal is clamp(points + permModifier + tempModifier, tempBounds).
func (s *Special) TempTotal() float64 {
	return s.tempBounds.Clamp(float64(s.points) + s.PermModifier() + s.TempModifier())
}

// Clone returns an independent copy.
func (s *Special) Clone() *Special {
	return &Special{
		points:         s.points,
		permBounds:     s.permBounds.Clone(),
		tempBounds:     s.tempBounds.Clone(),
		permComponents: s.PermComponents(),
		tempComponents: s.TempComponents(),
	}
}

// ToObject projects the special; with source set only points and bounds.
func (s *Special) ToObject(source bool) Object {
	obj := Object{
		Points:     s.points,
		PermBounds: boundsObject(s.permBounds),
		TempBounds: boundsObject(s.tempBounds),
	}
	if !source {
		obj.PermComponents = objects(s.permComponents)
		obj.TempComponents = objects(s.tempComponents)
	}
	return obj
}

// MarshalJSON writes the full projection.
func (s *Special) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.ToObject(false))
}

// Property exposes sub-properties to path selectors.
func (s *Special) Property(name string) (any, bool) {
	switch name {
	case "points":
		return float64(s.points), true
	case "permTotal":
		return s.PermTotal(), true
	case "tempTotal":
		return s.TempTotal(), true
	case "permModifier":
		return s.PermModifier(), true
	case "tempModifier":
		return s.TempModifier(), true
	}
	return nil, false
}

// CheckProperty accepts only a whole number for points.
func (s *Special) CheckProperty(name string, v any) error {
	if name != "points" {
		return errors.FailedPreconditionf("property %q is read-only", name)
	}
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) {
		return errors.InvalidArgumentf("points must be a whole number, got %v", v).
			WithMeta(propertypath.MetaExpected, "whole number")
	}
	return nil
}

// SetProperty allows points to be replaced by a whole number.
func (s *Special) SetProperty(name string, v any) error {
	if err := s.CheckProperty(name, v); err != nil {
		return err
	}
	s.points = int(v.(float64))
	return nil
}

// FromObject rebuilds a special. Missing bounds mean unbounded layers.
func FromObject(obj Object) *Special {
	s := &Special{points: obj.Points}
	if obj.PermBounds != nil {
		s.permBounds = obj.PermBounds.Clone()
	}
	if obj.TempBounds != nil {
		s.tempBounds = obj.TempBounds.Clone()
	}
	for _, c := range obj.PermComponents {
		s.AddPerm(composite.ComponentFromObject(c))
	}
	for _, c := range obj.TempComponents {
		s.AddTemp(composite.ComponentFromObject(c))
	}
	return s
}

// From returns v itself when it is already a *Special; raw shapes must carry
// a whole-number points field.
func From(v any) (*Special, error) {
	switch t := v.(type) {
	case *Special:
		return t, nil
	case Object:
		return FromObject(t), nil
	case nil:
		return nil, errors.InvalidArgument("special source is nil")
	}

	var data []byte
	switch t := v.(type) {
	case json.RawMessage:
		data = t
	case []byte:
		data = t
	case string:
		data = []byte(t)
	default:
		var err error
		if data, err = json.Marshal(v); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "special source is not serializable")
		}
	}

	vb := errors.NewValidationBuilder()
	root := gjson.ParseBytes(data)
	if !gjson.ValidBytes(data) || !root.IsObject() {
		return nil, vb.Field("special", "must be a JSON object").Build()
	}

	points := root.Get("points")
	switch {
	case !points.Exists():
		vb.RequiredField("points")
	case points.Type != gjson.Number || points.Num != float64(int(points.Num)):
		vb.Field("points", "must be a whole number")
	}

	obj := Object{
		Points:         int(points.Num),
		PermBounds:     composite.ReadBounds(root.Get("permBounds"), "permBounds", vb),
		TempBounds:     composite.ReadBounds(root.Get("tempBounds"), "tempBounds", vb),
		PermComponents: composite.ReadComponents(root.Get("permComponents"), "permComponents", vb),
		TempComponents: composite.ReadComponents(root.Get("tempComponents"), "tempComponents", vb),
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}
	return FromObject(obj), nil
}

func sum(components []composite.Component) float64 {
	var total float64
	for _, c := range components {
		total += c.Value()
	}
	return total
}

func objects(components []composite.Component) []composite.ComponentObject {
	out := make([]composite.ComponentObject, len(components))
	for i, c := range components {
		out[i] = c.ToObject()
	}
	return out
}

func boundsObject(b composite.Bounds) *composite.Bounds {
	if b.IsZero() {
		return nil
	}
	c := b.Clone()
	return &c
}
