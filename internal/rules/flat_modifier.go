package rules

import (
	"github.com/KirkDiggler/special-api/internal/entities/composite"
	"github.com/KirkDiggler/special-api/internal/errors"
)

// TypeFlatModifier adds a labeled component to a composite property.
const TypeFlatModifier = "flat-modifier"

// FlatModifier appends one component equal to its value, labeled with the
// rule's label, to the selected composite.
type FlatModifier struct {
	*Base
}

// NewFlatModifier validates and returns a flat modifier.
func NewFlatModifier(base *Base) Element {
	fm := &FlatModifier{Base: base}

	property, found, proceed := base.Validate()
	if !proceed {
		return fm
	}
	if found {
		if _, ok := property.(composite.Adder); !ok {
			base.AddError(KeyWrongSelectedType, "selector", base.source.Selector, kindOf(property), KindComposite)
		}
	}
	if _, ok := base.source.Value.Number(); !ok {
		base.AddError(KeyWrongValueType, "value", base.source.Value.Kind(), KindNumber)
	}
	return fm
}

// OnPrepareEmbeddedDocuments applies the modifier.
func (fm *FlatModifier) OnPrepareEmbeddedDocuments() error {
	if fm.ShouldNotModify() {
		return nil
	}

	doc, ok := fm.Document()
	if !ok {
		return errors.FailedPrecondition("rule element target is unavailable")
	}
	property, _ := doc.GetDerivedProperty(fm.source.Selector)
	adder, ok := property.(composite.Adder)
	if !ok {
		return errors.FailedPreconditionf("property %q is no longer a composite", fm.source.Selector)
	}

	value, _ := fm.source.Value.Number()
	adder.Add(composite.NewComponent(value, composite.Text(fm.source.Label)))
	return nil
}
