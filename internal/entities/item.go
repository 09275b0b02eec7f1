package entities

import (
	"encoding/json"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/special-api/internal/pkg/propertypath"
	"github.com/KirkDiggler/special-api/internal/rules"
)

// Item is a piece of equipment. Its rule element sources are kept exactly
// as authored.
type Item struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Type   string            `json:"type"`
	Value  float64           `json:"value"`
	Weight float64           `json:"weight"`
	Rules  []json.RawMessage `json:"rules,omitempty"`

	derived  map[string]any
	actor    *Actor
	elements []rules.ElementLike
}

var (
	_ core.Entity = (*Item)(nil)
	_ rules.Item  = (*Item)(nil)
)

// GetID implements core.Entity
func (i *Item) GetID() string { return i.ID }

// GetType implements core.Entity
func (i *Item) GetType() string { return i.Type }

// OwningActor returns the actor holding this item, if any.
func (i *Item) OwningActor() (rules.Document, bool) {
	if i.actor == nil {
		return nil, false
	}
	return i.actor, true
}

// Actor returns the owning actor or nil.
func (i *Item) Actor() *Actor { return i.actor }

// ResetDerived replaces the derived-data tree.
func (i *Item) ResetDerived(tree map[string]any) { i.derived = tree }

// Derived returns the derived-data tree.
func (i *Item) Derived() map[string]any { return i.derived }

// GetDerivedProperty resolves a selector against the derived data.
func (i *Item) GetDerivedProperty(path string) (any, bool) {
	return propertypath.Get(i.derived, path)
}

// CheckDerivedProperty validates a write without applying it.
func (i *Item) CheckDerivedProperty(path string, value any) error {
	return propertypath.Check(i.derived, path, value)
}

// SetDerivedProperty writes a derived property.
func (i *Item) SetDerivedProperty(path string, value any) error {
	return propertypath.Set(i.derived, path, value)
}

// RuleElements returns the elements built during the last base pass, in
// source order.
func (i *Item) RuleElements() []rules.ElementLike {
	return append([]rules.ElementLike(nil), i.elements...)
}

// SetRuleElements replaces the constructed elements.
func (i *Item) SetRuleElements(elements []rules.ElementLike) {
	i.elements = elements
}
