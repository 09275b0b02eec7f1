package entities

import (
	"encoding/json"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/special-api/internal/entities/composite"
	"github.com/KirkDiggler/special-api/internal/entities/special"
	"github.com/KirkDiggler/special-api/internal/errors"
	"github.com/KirkDiggler/special-api/internal/pkg/propertypath"
	"github.com/KirkDiggler/special-api/internal/rules"
)

// Actor types
const (
	ActorTypeCharacter = "character"
	ActorTypeNPC       = "npc"
)

// Stage records how far derived data has been prepared.
type Stage int

// Preparation stages, in order
const (
	StageSource Stage = iota
	StageBase
	StageEmbedded
	StageDerived
)

// Actor is a character or NPC. Exported fields are persisted; derived data
// lives only in memory.
type Actor struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	PlayerID  string   `json:"playerId,omitempty"`
	Leveling  Leveling `json:"leveling"`
	Magic     Magic    `json:"magic"`
	Vitals    Vitals   `json:"vitals"`
	Items     []*Item  `json:"items"`
	CreatedAt int64    `json:"createdAt"`
	UpdatedAt int64    `json:"updatedAt"`

	derived map[string]any
	stage   Stage
}

// Leveling holds experience and invested points.
type Leveling struct {
	Experience float64               `json:"experience"`
	Specials   map[special.Name]int  `json:"specials,omitempty"`
	SkillRanks map[special.Skill]int `json:"skillRanks,omitempty"`
}

// Magic holds spellcasting choices.
type Magic struct {
	ThaumSpecial special.Name `json:"thaumSpecial,omitempty"`
}

// Vitals holds persisted current values.
type Vitals struct {
	HitPoints         ResourceValue          `json:"hitPoints"`
	ActionPoints      ResourceValue          `json:"actionPoints"`
	RadiationSickness special.RadiationLevel `json:"radiationSickness,omitempty"`
}

// ResourceValue is the persisted current amount of a resource.
type ResourceValue struct {
	Value float64 `json:"value"`
}

var _ core.Entity = (*Actor)(nil)

// GetID implements core.Entity
func (a *Actor) GetID() string { return a.ID }

// GetType implements core.Entity
func (a *Actor) GetType() string { return a.Type }

// UnmarshalJSON links items back to the actor after decoding.
func (a *Actor) UnmarshalJSON(data []byte) error {
	type persisted Actor
	var p persisted
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*a = Actor(p)
	a.LinkItems()
	return nil
}

// LinkItems makes every item report this actor as its owner.
func (a *Actor) LinkItems() {
	for _, item := range a.Items {
		if item != nil {
			item.actor = a
		}
	}
}

// AddItem appends an item and takes ownership of it.
func (a *Actor) AddItem(item *Item) {
	item.actor = a
	a.Items = append(a.Items, item)
}

// Item returns the item with the given ID.
func (a *Actor) Item(id string) (*Item, bool) {
	for _, item := range a.Items {
		if item != nil && item.ID == id {
			return item, true
		}
	}
	return nil, false
}

// ThaumSpecial returns the special governing magic.
func (a *Actor) ThaumSpecial() special.Name {
	if a.Magic.ThaumSpecial == "" {
		return special.DefaultThaumSpecial
	}
	return a.Magic.ThaumSpecial
}

// RadiationSickness returns the persisted level, defaulting to none.
func (a *Actor) RadiationSickness() special.RadiationLevel {
	if a.Vitals.RadiationSickness == "" {
		return special.RadiationNone
	}
	return a.Vitals.RadiationSickness
}

// Stage returns the preparation stage reached.
func (a *Actor) Stage() Stage { return a.stage }

// SetStage records the preparation stage reached.
func (a *Actor) SetStage(s Stage) { a.stage = s }

// ResetDerived replaces the derived-data tree and rewinds to StageBase.
func (a *Actor) ResetDerived(tree map[string]any) {
	a.derived = tree
	a.stage = StageBase
}

// Derived returns the derived-data tree.
func (a *Actor) Derived() map[string]any { return a.derived }

// GetDerivedProperty resolves a selector against the derived data.
func (a *Actor) GetDerivedProperty(path string) (any, bool) {
	return propertypath.Get(a.derived, path)
}

// CheckDerivedProperty validates a write without applying it.
func (a *Actor) CheckDerivedProperty(path string, value any) error {
	return propertypath.Check(a.derived, path, value)
}

// SetDerivedProperty writes a derived property.
func (a *Actor) SetDerivedProperty(path string, value any) error {
	return propertypath.Set(a.derived, path, value)
}

// DerivedNumber returns a final composite number. It fails before derived
// data has been prepared.
func (a *Actor) DerivedNumber(path string) (*composite.Number, error) {
	v, err := a.derivedValue(path)
	if err != nil {
		return nil, err
	}
	n, ok := v.(*composite.Number)
	if !ok {
		return nil, errors.InvalidArgumentf("derived property %q is not a composite number", path)
	}
	return n, nil
}

// DerivedResource returns a final composite resource.
func (a *Actor) DerivedResource(path string) (*composite.Resource, error) {
	v, err := a.derivedValue(path)
	if err != nil {
		return nil, err
	}
	r, ok := v.(*composite.Resource)
	if !ok {
		return nil, errors.InvalidArgumentf("derived property %q is not a composite resource", path)
	}
	return r, nil
}

// DerivedSpecial returns a final special.
func (a *Actor) DerivedSpecial(name special.Name) (*special.Special, error) {
	v, err := a.derivedValue("specials." + string(name))
	if err != nil {
		return nil, err
	}
	s, ok := v.(*special.Special)
	if !ok {
		return nil, errors.InvalidArgumentf("derived property %q is not a special", name)
	}
	return s, nil
}

func (a *Actor) derivedValue(path string) (any, error) {
	if a.stage < StageDerived {
		return nil, errors.FailedPreconditionf("derived data for actor %s has not been prepared", a.ID)
	}
	v, ok := a.GetDerivedProperty(path)
	if !ok {
		return nil, errors.NotFoundf("derived property %q not found", path)
	}
	return v, nil
}

// RuleElements returns every item's rule elements in item order.
func (a *Actor) RuleElements() []rules.ElementLike {
	var out []rules.ElementLike
	for _, item := range a.Items {
		if item != nil {
			out = append(out, item.elements...)
		}
	}
	return out
}
