package v1alpha1

import (
	"github.com/KirkDiggler/special-api/internal/entities"
	"github.com/KirkDiggler/special-api/internal/orchestrators/actor"
)

// CreateActorRequest creates an actor from persisted-shape data
type CreateActorRequest struct {
	Actor  *entities.Actor `json:"actor"`
	Locale string          `json:"locale,omitempty"`
}

// CreateActorResponse returns the prepared actor
type CreateActorResponse struct {
	View *actor.ActorView `json:"view"`
}

// GetActorRequest loads one actor
type GetActorRequest struct {
	ID     string `json:"id"`
	Locale string `json:"locale,omitempty"`
}

// GetActorResponse returns the prepared actor
type GetActorResponse struct {
	View *actor.ActorView `json:"view"`
}

// ListActorsRequest lists a player's actors
type ListActorsRequest struct {
	PlayerID string `json:"playerId"`
	Locale   string `json:"locale,omitempty"`
}

// ListActorsResponse returns the prepared actors
type ListActorsResponse struct {
	Views []*actor.ActorView `json:"views"`
}

// UpdateRuleElementsRequest replaces an item's rule element sources with
// raw authored texts
type UpdateRuleElementsRequest struct {
	ActorID string   `json:"actorId"`
	ItemID  string   `json:"itemId"`
	Sources []string `json:"sources"`
	Locale  string   `json:"locale,omitempty"`
}

// UpdateRuleElementsResponse reports whether the batch was saved
type UpdateRuleElementsResponse struct {
	Saved        bool                    `json:"saved"`
	Sources      []string                `json:"sources"`
	SyntaxErrors []actor.SyntaxErrorView `json:"syntaxErrors,omitempty"`
	View         *actor.ActorView        `json:"view,omitempty"`
}

// UpdateResourceRequest sets a resource's current value
type UpdateResourceRequest struct {
	ActorID  string  `json:"actorId"`
	Resource string  `json:"resource"`
	Value    float64 `json:"value"`
	Locale   string  `json:"locale,omitempty"`
}

// UpdateResourceResponse returns the prepared actor
type UpdateResourceResponse struct {
	View *actor.ActorView `json:"view"`
}

// DeleteActorRequest deletes one actor
type DeleteActorRequest struct {
	ID string `json:"id"`
}

// DeleteActorResponse is empty
type DeleteActorResponse struct{}
