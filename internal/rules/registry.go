package rules

import (
	"encoding/json"
	"sort"

	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/special-api/internal/errors"
)

//go:generate mockgen -destination=mock/mock_element.go -package=rulesmock github.com/KirkDiggler/special-api/internal/rules Element

// Constructor builds and validates one kind of rule element.
type Constructor func(base *Base) Element

// Invalid is returned by the factory when a source is too malformed to
// become an Element. It keeps the raw source untouched.
type Invalid struct {
	raw      json.RawMessage
	messages []Message
}

// RawSource returns the source exactly as persisted.
func (i *Invalid) RawSource() json.RawMessage { return append(json.RawMessage(nil), i.raw...) }

// Messages returns a copy of the diagnostics.
func (i *Invalid) Messages() []Message { return append([]Message(nil), i.messages...) }

// HasErrors reports whether any message is an error.
func (i *Invalid) HasErrors() bool { return hasSeverity(i.messages, SeverityError) }

// HasWarnings reports whether any message is a warning.
func (i *Invalid) HasWarnings() bool { return hasSeverity(i.messages, SeverityWarning) }

// ShouldNotModify is always true.
func (i *Invalid) ShouldNotModify() bool { return true }

// Registry maps rule element types to constructors.
type Registry struct {
	constructors map[string]Constructor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{constructors: make(map[string]Constructor)}
}

// DefaultRegistry returns a registry with every built-in kind.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.constructors[TypeFlatModifier] = NewFlatModifier
	r.constructors[TypeReplaceValue] = NewReplaceValue
	return r
}

// Register adds a kind. Registering a type twice is an error.
func (r *Registry) Register(kind string, c Constructor) error {
	if kind == "" {
		return errors.InvalidArgument("rule element type is required")
	}
	if c == nil {
		return errors.InvalidArgumentf("constructor for %q is required", kind)
	}
	if _, exists := r.constructors[kind]; exists {
		return errors.AlreadyExistsf("rule element type %q is already registered", kind)
	}
	r.constructors[kind] = c
	return nil
}

// Kinds returns the registered types, sorted.
func (r *Registry) Kinds() []string {
	out := make([]string, 0, len(r.constructors))
	for kind := range r.constructors {
		out = append(out, kind)
	}
	sort.Strings(out)
	return out
}

type field struct {
	name  string
	kinds []Kind
}

var sourceFields = []field{
	{"enabled", []Kind{KindBoolean}},
	{"label", []Kind{KindString}},
	{"priority", []Kind{KindNumber}},
	{"selector", []Kind{KindString}},
	{"target", []Kind{KindString}},
	{"type", []Kind{KindString}},
	{"value", []Kind{KindBoolean, KindNumber, KindString}},
}

// FromOwningItem turns untrusted raw JSON into an Element, or into an
// *Invalid carrying the structural diagnostics. It never fails.
func (r *Registry) FromOwningItem(raw json.RawMessage, item Item) ElementLike {
	invalid := &Invalid{raw: append(json.RawMessage(nil), raw...)}

	if !gjson.ValidBytes(raw) {
		invalid.messages = append(invalid.messages, errorMessage(KeyNotAnObject, ""))
		return invalid
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		invalid.messages = append(invalid.messages, errorMessage(KeyNotAnObject, ""))
		return invalid
	}

	var messages []Message
	fields := root.Map()
	known := make(map[string]bool, len(sourceFields))
	for _, f := range sourceFields {
		known[f.name] = true
		res, ok := fields[f.name]
		if !ok {
			messages = append(messages, errorMessage(KeyMissingField, f.name, f.name))
			continue
		}
		if got := resultKind(res); !containsKind(f.kinds, got) {
			messages = append(messages, errorMessage(KeyWrongFieldType, f.name, f.name, kindList(f.kinds), got))
		}
	}

	extra := make([]string, 0)
	for name := range fields {
		if !known[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		messages = append(messages, warningMessage(KeyUnknownField, name, name))
	}

	invalid.messages = messages
	if hasSeverity(messages, SeverityError) {
		return invalid
	}

	target := Target(fields["target"].Str)
	if !target.Valid() {
		invalid.messages = append(invalid.messages, errorMessage(KeyUnknownTarget, "target", string(target)))
		return invalid
	}

	kind := fields["type"].Str
	construct, ok := r.constructors[kind]
	if !ok {
		invalid.messages = append(invalid.messages, errorMessage(KeyUnknownType, "type", kind))
		return invalid
	}

	source := Source{
		Enabled:  fields["enabled"].Bool(),
		Label:    fields["label"].Str,
		Priority: fields["priority"].Num,
		Selector: fields["selector"].Str,
		Target:   target,
		Type:     kind,
		Value:    resultValue(fields["value"]),
	}
	return construct(NewBase(raw, source, item, messages))
}

func resultKind(res gjson.Result) Kind {
	switch res.Type {
	case gjson.True, gjson.False:
		return KindBoolean
	case gjson.Number:
		return KindNumber
	case gjson.String:
		return KindString
	case gjson.Null:
		return KindNull
	}
	if res.IsArray() {
		return KindArray
	}
	return KindObject
}

func resultValue(res gjson.Result) Value {
	switch res.Type {
	case gjson.True, gjson.False:
		return BoolValue(res.Bool())
	case gjson.Number:
		return NumberValue(res.Num)
	}
	return StringValue(res.Str)
}

func containsKind(kinds []Kind, k Kind) bool {
	for _, candidate := range kinds {
		if candidate == k {
			return true
		}
	}
	return false
}

func kindList(kinds []Kind) string {
	if len(kinds) == 1 {
		return string(kinds[0])
	}
	out := ""
	for i, k := range kinds {
		switch {
		case i == 0:
		case i == len(kinds)-1:
			out += " or "
		default:
			out += ", "
		}
		out += string(k)
	}
	return out
}
