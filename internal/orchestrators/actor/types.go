package actor

import (
	"encoding/json"

	"github.com/KirkDiggler/special-api/internal/entities"
)

// Resources that can be written through UpdateResource
const (
	ResourceHitPoints    = "hitPoints"
	ResourceActionPoints = "actionPoints"
)

// CreateActorInput contains the actor to create. Missing actor and item IDs
// are generated.
type CreateActorInput struct {
	Actor  *entities.Actor
	Locale string
}

// CreateActorOutput contains the stored actor's prepared view
type CreateActorOutput struct {
	View *ActorView
}

// GetActorInput identifies the actor to load
type GetActorInput struct {
	ID     string
	Locale string
}

// GetActorOutput contains the prepared view
type GetActorOutput struct {
	View *ActorView
}

// ListActorsInput selects actors by player
type ListActorsInput struct {
	PlayerID string
	Locale   string
}

// ListActorsOutput contains a prepared view per actor
type ListActorsOutput struct {
	Views []*ActorView
}

// UpdateRuleElementsInput replaces an item's rule element sources with raw
// authored texts.
type UpdateRuleElementsInput struct {
	ActorID string
	ItemID  string
	Sources []string
	Locale  string
}

// UpdateRuleElementsOutput reports the outcome. When any text fails to parse
// nothing is saved and Sources echoes every text unchanged.
type UpdateRuleElementsOutput struct {
	Saved        bool
	Sources      []string
	SyntaxErrors []SyntaxErrorView
	View         *ActorView
}

// UpdateResourceInput sets a resource's current value
type UpdateResourceInput struct {
	ActorID  string
	Resource string
	Value    float64
	Locale   string
}

// UpdateResourceOutput contains the prepared view after the write
type UpdateResourceOutput struct {
	View *ActorView
}

// DeleteActorInput identifies the actor to delete
type DeleteActorInput struct {
	ID string
}

// DeleteActorOutput is empty
type DeleteActorOutput struct{}

// ActorView is a prepared actor: persisted data, derived values and every
// rule element's diagnostics, rendered for one locale.
type ActorView struct {
	Locale       string            `json:"locale"`
	Actor        *entities.Actor   `json:"actor"`
	Derived      DerivedView       `json:"derived"`
	RuleElements []RuleElementView `json:"ruleElements"`
}

// DerivedView holds the final derived values
type DerivedView struct {
	Level             float64                `json:"level"`
	Specials          map[string]SpecialView `json:"specials"`
	Skills            map[string]NumberView  `json:"skills"`
	HitPoints         ResourceView           `json:"hitPoints"`
	ActionPoints      ResourceView           `json:"actionPoints"`
	RadiationSickness string                 `json:"radiationSickness"`
	CriticalSuccess   NumberView             `json:"criticalSuccess"`
	CriticalFailure   NumberView             `json:"criticalFailure"`
	CarryWeight       NumberView             `json:"carryWeight"`
}

// ComponentView is one labeled contribution
type ComponentView struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// NumberView is a composite number with its breakdown
type NumberView struct {
	Label      string          `json:"label"`
	Source     float64         `json:"source"`
	Total      float64         `json:"total"`
	Components []ComponentView `json:"components"`
}

// ResourceView adds the current value to a number view
type ResourceView struct {
	NumberView
	Value float64 `json:"value"`
	Max   float64 `json:"max"`
}

// SpecialView shows both layers of a special
type SpecialView struct {
	Label          string          `json:"label"`
	Points         int             `json:"points"`
	PermTotal      float64         `json:"permTotal"`
	TempTotal      float64         `json:"tempTotal"`
	PermComponents []ComponentView `json:"permComponents"`
	TempComponents []ComponentView `json:"tempComponents"`
}

// RuleElementView is one rule element as its editor shows it
type RuleElementView struct {
	ItemID   string          `json:"itemId"`
	Index    int             `json:"index"`
	Source   json.RawMessage `json:"source"`
	Valid    bool            `json:"valid"`
	Active   bool            `json:"active"`
	Messages []MessageView   `json:"messages"`
}

// MessageView is a rendered diagnostic
type MessageView struct {
	Severity string `json:"severity"`
	Key      string `json:"key"`
	Field    string `json:"field,omitempty"`
	Text     string `json:"text"`
}

// SyntaxErrorView locates an unparseable authored text
type SyntaxErrorView struct {
	Index   int         `json:"index"`
	Message MessageView `json:"message"`
}
