package composite

import (
	"encoding/json"

	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/special-api/internal/errors"
)

func errNilSource() error {
	return errors.InvalidArgument("composite source is nil")
}

// rawBytes normalizes raw shapes to JSON bytes for inspection.
func rawBytes(v any) ([]byte, error) {
	switch t := v.(type) {
	case nil:
		return nil, errNilSource()
	case json.RawMessage:
		return t, nil
	case []byte:
		return t, nil
	case string:
		return []byte(t), nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "composite source is not serializable")
	}
	return data, nil
}

func parseNumber(data []byte) (NumberObject, error) {
	vb := errors.NewValidationBuilder()
	obj := readNumber(data, vb)
	if err := vb.Build(); err != nil {
		return NumberObject{}, err
	}
	return obj, nil
}

func parseResource(data []byte) (ResourceObject, error) {
	vb := errors.NewValidationBuilder()
	n := readNumber(data, vb)
	value := requireNumber(gjson.GetBytes(data, "value"), "value", vb)
	if err := vb.Build(); err != nil {
		return ResourceObject{}, err
	}
	return ResourceObject{Value: value, Source: n.Source, Bounds: n.Bounds, Components: n.Components}, nil
}

func readNumber(data []byte, vb *errors.ValidationBuilder) NumberObject {
	if !gjson.ValidBytes(data) {
		vb.Field("source", "composite source is not valid JSON")
		return NumberObject{}
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		vb.Field("source", "composite source must be an object")
		return NumberObject{}
	}

	obj := NumberObject{Source: requireNumber(root.Get("source"), "source", vb)}
	obj.Bounds = ReadBounds(root.Get("bounds"), "bounds", vb)
	obj.Components = ReadComponents(root.Get("components"), "components", vb)
	return obj
}

// ReadBounds validates an optional bounds object.
func ReadBounds(res gjson.Result, field string, vb *errors.ValidationBuilder) *Bounds {
	if !res.Exists() || res.Type == gjson.Null {
		return nil
	}
	if !res.IsObject() {
		vb.Field(field, "must be an object")
		return nil
	}

	var b Bounds
	if minRes := res.Get("min"); minRes.Exists() {
		v := requireNumber(minRes, field+".min", vb)
		b.Min = &v
	}
	if maxRes := res.Get("max"); maxRes.Exists() {
		v := requireNumber(maxRes, field+".max", vb)
		b.Max = &v
	}
	return &b
}

// ReadComponents validates an optional component list.
func ReadComponents(res gjson.Result, field string, vb *errors.ValidationBuilder) []ComponentObject {
	if !res.Exists() || res.Type == gjson.Null {
		return nil
	}
	if !res.IsArray() {
		vb.Field(field, "must be an array")
		return nil
	}

	var out []ComponentObject
	for i, item := range res.Array() {
		name := errors.IndexedField(field, i)
		if !item.IsObject() {
			vb.Field(name, "must be an object")
			continue
		}
		c := ComponentObject{Value: requireNumber(item.Get("value"), name+".value", vb)}
		labels := item.Get("labelComponents")
		if labels.Exists() && !labels.IsArray() {
			vb.Field(name+".labelComponents", "must be an array")
			labels = gjson.Result{}
		}
		for j, part := range labels.Array() {
			text, key := part.Get("text"), part.Get("key")
			switch {
			case text.Type == gjson.String:
				c.LabelComponents = append(c.LabelComponents, Text(text.Str))
			case key.Type == gjson.String:
				c.LabelComponents = append(c.LabelComponents, Key(key.Str))
			default:
				vb.Field(errors.IndexedField(name+".labelComponents", j), "must have a text or key string")
			}
		}
		out = append(out, c)
	}
	return out
}

func requireNumber(res gjson.Result, field string, vb *errors.ValidationBuilder) float64 {
	if !res.Exists() {
		vb.RequiredField(field)
		return 0
	}
	if res.Type != gjson.Number {
		vb.Fieldf(field, "must be a number, got %s", res.Type)
		return 0
	}
	return res.Num
}
