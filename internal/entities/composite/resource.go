package composite

import (
	"encoding/json"

	"github.com/KirkDiggler/special-api/internal/errors"
	"github.com/KirkDiggler/special-api/internal/pkg/propertypath"
)

// Resource is a composite maximum with an independently tracked current
// value. The value is never clamped here; callers enforce value <= Max().
type Resource struct {
	Number
	value float64
}

// ResourceObject is the serialized shape of a Resource.
type ResourceObject struct {
	Value      float64           `json:"value"`
	Source     float64           `json:"source"`
	Bounds     *Bounds           `json:"bounds,omitempty"`
	Components []ComponentObject `json:"components,omitempty"`
}

// NewResource creates a resource with the given current value.
func NewResource(value, source float64, bounds Bounds) *Resource {
	return &Resource{Number: *NewNumber(source, bounds), value: value}
}

// Value returns the current amount.
func (r *Resource) Value() float64 {
	return r.value
}

// SetValue replaces the current amount without clamping.
func (r *Resource) SetValue(v float64) {
	r.value = v
}

// Max is the composite ceiling, an alias for Total.
func (r *Resource) Max() float64 {
	return r.Total()
}

// Clone returns an independent copy including the current value.
func (r *Resource) Clone() *Resource {
	return &Resource{Number: *r.Number.Clone(), value: r.value}
}

// ToObject projects the resource; see Number.ToObject.
func (r *Resource) ToObject(source bool) ResourceObject {
	n := r.Number.ToObject(source)
	return ResourceObject{
		Value:      r.value,
		Source:     n.Source,
		Bounds:     n.Bounds,
		Components: n.Components,
	}
}

// MarshalJSON writes the full projection.
func (r *Resource) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ToObject(false))
}

// Property adds value and max to the number's sub-properties.
func (r *Resource) Property(name string) (any, bool) {
	switch name {
	case "value":
		return r.value, true
	case "max":
		return r.Max(), true
	}
	return r.Number.Property(name)
}

// CheckProperty accepts only a number for value.
func (r *Resource) CheckProperty(name string, v any) error {
	if name != "value" {
		return errors.FailedPreconditionf("property %q is read-only", name)
	}
	if _, ok := v.(float64); !ok {
		return errors.InvalidArgumentf("value must be a number, got %T", v).
			WithMeta(propertypath.MetaExpected, "number")
	}
	return nil
}

// SetProperty allows the current value to be replaced.
func (r *Resource) SetProperty(name string, v any) error {
	if err := r.CheckProperty(name, v); err != nil {
		return err
	}
	r.value = v.(float64)
	return nil
}

// ResourceFromObject rebuilds a resource.
func ResourceFromObject(obj ResourceObject) *Resource {
	n := NumberFromObject(NumberObject{Source: obj.Source, Bounds: obj.Bounds, Components: obj.Components})
	return &Resource{Number: *n, value: obj.Value}
}

// ResourceFrom returns v itself when it is already a *Resource; raw shapes
// must carry numeric source and value fields.
func ResourceFrom(v any) (*Resource, error) {
	switch t := v.(type) {
	case *Resource:
		return t, nil
	case ResourceObject:
		return ResourceFromObject(t), nil
	case *ResourceObject:
		if t == nil {
			return nil, errNilSource()
		}
		return ResourceFromObject(*t), nil
	}

	data, err := rawBytes(v)
	if err != nil {
		return nil, err
	}
	obj, err := parseResource(data)
	if err != nil {
		return nil, err
	}
	return ResourceFromObject(obj), nil
}
