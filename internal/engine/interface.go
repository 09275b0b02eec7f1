// Package engine runs the derivation pipeline that turns persisted actor
// data into prepared derived data.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/special-api/internal/engine Engine

import (
	"context"

	"github.com/KirkDiggler/special-api/internal/entities"
)

// Engine prepares actor and item documents
type Engine interface {
	// PrepareActor runs the base, embedded and derived passes in order
	PrepareActor(ctx context.Context, actor *entities.Actor) error

	// PrepareBaseData rebuilds the actor's derived tree from source data.
	// Safe to call repeatedly.
	PrepareBaseData(ctx context.Context, actor *entities.Actor) error

	// PrepareEmbeddedDocuments prepares every item and applies the
	// actor-targeted rule elements in priority order.
	// Returns errors.FailedPrecondition if base data has not been prepared.
	PrepareEmbeddedDocuments(ctx context.Context, actor *entities.Actor) error

	// PrepareDerivedData computes values that depend on final specials.
	// Returns errors.FailedPrecondition if embedded documents have not been prepared.
	PrepareDerivedData(ctx context.Context, actor *entities.Actor) error

	// PrepareItem rebuilds an item's derived data, constructs its rule
	// elements and applies the item-targeted ones.
	PrepareItem(ctx context.Context, item *entities.Item) error
}
