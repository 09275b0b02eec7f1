package rules

import (
	"encoding/json"

	"github.com/KirkDiggler/special-api/internal/entities/composite"
	"github.com/KirkDiggler/special-api/internal/entities/special"
)

// Document is the host capability a rule element reads and writes through.
type Document interface {
	GetDerivedProperty(path string) (any, bool)
	// CheckDerivedProperty reports the error SetDerivedProperty would
	// return, without writing.
	CheckDerivedProperty(path string, value any) error
	SetDerivedProperty(path string, value any) error
}

// Item is a document that may be owned by an actor.
type Item interface {
	Document
	OwningActor() (Document, bool)
}

// ElementLike is anything the factory returns: a concrete Element or an
// *Invalid carrier.
type ElementLike interface {
	RawSource() json.RawMessage
	Messages() []Message
	HasErrors() bool
	HasWarnings() bool
	ShouldNotModify() bool
}

// Element is a constructed, validated rule element.
type Element interface {
	ElementLike
	Source() Source
	Priority() float64
	Target() Target
	OnPrepareEmbeddedDocuments() error
}

// Base carries the state shared by every kind: the source, the owning item
// and the messages collected during validation.
type Base struct {
	source   Source
	raw      json.RawMessage
	item     Item
	messages []Message
}

// NewBase creates the shared state; inherited messages come from the
// structural checks that ran before dispatch.
func NewBase(raw json.RawMessage, source Source, item Item, inherited []Message) *Base {
	return &Base{
		source:   source,
		raw:      append(json.RawMessage(nil), raw...),
		item:     item,
		messages: append([]Message(nil), inherited...),
	}
}

// Source returns the parsed source.
func (b *Base) Source() Source { return b.source }

// RawSource returns the source exactly as persisted.
func (b *Base) RawSource() json.RawMessage { return append(json.RawMessage(nil), b.raw...) }

// Priority is the ascending sort key.
func (b *Base) Priority() float64 { return b.source.Priority }

// Target returns the targeted document kind.
func (b *Base) Target() Target { return b.source.Target }

// Item returns the owning item.
func (b *Base) Item() Item { return b.item }

// Messages returns a copy of the collected messages.
func (b *Base) Messages() []Message { return append([]Message(nil), b.messages...) }

// HasErrors reports whether any message is an error.
func (b *Base) HasErrors() bool { return hasSeverity(b.messages, SeverityError) }

// HasWarnings reports whether any message is a warning.
func (b *Base) HasWarnings() bool { return hasSeverity(b.messages, SeverityWarning) }

// ShouldNotModify is true for disabled elements and elements with errors.
func (b *Base) ShouldNotModify() bool {
	return !b.source.Enabled || b.HasErrors()
}

// AddError records an error message.
func (b *Base) AddError(key, field string, args ...any) {
	b.messages = append(b.messages, errorMessage(key, field, args...))
}

// AddWarning records a warning message.
func (b *Base) AddWarning(key, field string, args ...any) {
	b.messages = append(b.messages, warningMessage(key, field, args...))
}

// Document returns the targeted document: the item itself or its actor.
func (b *Base) Document() (Document, bool) {
	if b.source.Target == TargetActor {
		if b.item == nil {
			return nil, false
		}
		return b.item.OwningActor()
	}
	if b.item == nil {
		return nil, false
	}
	return b.item, true
}

// Validate runs the checks shared by all kinds. It returns the selected
// property and whether it was found, and proceed is false when kind-specific
// checks must not run at all.
func (b *Base) Validate() (property any, found bool, proceed bool) {
	doc, ok := b.Document()
	if !ok {
		b.AddError(KeyNoActor, "target")
		return nil, false, false
	}

	property, found = doc.GetDerivedProperty(b.source.Selector)
	if !found {
		b.AddError(KeySelectorNoMatch, "selector", b.source.Selector)
	}
	return property, found, true
}

func kindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBoolean
	case float64, float32, int, int64, int32:
		return KindNumber
	case string:
		return KindString
	case *composite.Resource:
		return KindResource
	case *composite.Number:
		return KindComposite
	case *special.Special:
		return KindSpecial
	case map[string]any:
		return KindObject
	case []any:
		return KindArray
	}
	return KindUnknown
}
