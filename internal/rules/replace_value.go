package rules

import (
	"github.com/KirkDiggler/special-api/internal/errors"
	"github.com/KirkDiggler/special-api/internal/pkg/propertypath"
)

// TypeReplaceValue overwrites a primitive property.
const TypeReplaceValue = "replace-value"

// ReplaceValue sets the selected primitive property to its value. Changing
// the property's type is allowed but raises a warning.
type ReplaceValue struct {
	*Base
}

// NewReplaceValue validates and returns a replace-value element.
func NewReplaceValue(base *Base) Element {
	rv := &ReplaceValue{Base: base}

	property, found, proceed := base.Validate()
	if !proceed || !found {
		return rv
	}

	current := kindOf(property)
	if !isPrimitive(current) {
		base.AddError(KeyWrongSelectedType, "selector", base.source.Selector, current, "primitive value")
		return rv
	}
	next := base.source.Value.Kind()
	if !rv.checkWritable(current, next) {
		return rv
	}
	if next != current {
		base.AddWarning(KeyTypeChange, "value", base.source.Selector, current, next)
	}
	return rv
}

// checkWritable records an error when the selected property is read-only or
// rejects the value.
func (rv *ReplaceValue) checkWritable(current, next Kind) bool {
	doc, ok := rv.Document()
	if !ok {
		return false
	}
	err := doc.CheckDerivedProperty(rv.source.Selector, rv.source.Value.Any())
	switch {
	case err == nil:
		return true
	case errors.IsInvalidArgument(err):
		expected, _ := errors.GetMeta(err)[propertypath.MetaExpected].(string)
		if expected == "" {
			expected = string(current)
		}
		rv.AddError(KeyWrongValueType, "value", next, expected)
	default:
		rv.AddError(KeyWrongSelectedType, "selector", rv.source.Selector, "read-only "+string(current), "writable primitive value")
	}
	return false
}

// OnPrepareEmbeddedDocuments applies the replacement.
func (rv *ReplaceValue) OnPrepareEmbeddedDocuments() error {
	if rv.ShouldNotModify() {
		return nil
	}

	doc, ok := rv.Document()
	if !ok {
		return errors.FailedPrecondition("rule element target is unavailable")
	}
	return doc.SetDerivedProperty(rv.source.Selector, rv.source.Value.Any())
}
