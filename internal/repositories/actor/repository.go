// Package actor provides the interface for actor persistence
package actor

//go:generate mockgen -destination=mock/mock_repository.go -package=actormock github.com/KirkDiggler/special-api/internal/repositories/actor Repository

import (
	"context"

	"github.com/KirkDiggler/special-api/internal/entities"
)

// Repository defines the interface for actor persistence
type Repository interface {
	// Create stores a new actor
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if an actor with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves an actor by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the actor doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing actor
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the actor doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Patch writes one JSON path of a stored actor atomically
	// Returns errors.InvalidArgument for validation failures of the result
	// Returns errors.NotFound if the actor or the path doesn't exist
	// Returns errors.Aborted if concurrent writers kept winning
	// Returns errors.Internal for storage failures
	Patch(ctx context.Context, input PatchInput) (*PatchOutput, error)

	// Delete removes an actor by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the actor doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByPlayerID retrieves all actors for a player
	// Returns errors.InvalidArgument for empty player IDs
	// Returns errors.Internal for storage failures
	ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error)
}

// CreateInput defines the input for creating an actor
type CreateInput struct {
	Actor *entities.Actor
}

// CreateOutput defines the output for creating an actor
type CreateOutput struct {
	Actor *entities.Actor
}

// GetInput defines the input for getting an actor
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an actor
type GetOutput struct {
	Actor *entities.Actor
}

// UpdateInput defines the input for updating an actor
type UpdateInput struct {
	Actor *entities.Actor
}

// UpdateOutput defines the output for updating an actor
type UpdateOutput struct {
	Actor *entities.Actor
}

// PatchInput defines the input for patching an actor. Path uses gjson/sjson
// dot syntax, e.g. "vitals.hitPoints.value" or "items.0.rules"; its parent
// must exist, a missing leaf is created. A json.RawMessage value is written
// verbatim.
type PatchInput struct {
	ID   string
	Path string
	// PathFunc resolves the path from the stored actor inside the
	// transaction. It takes precedence over Path.
	PathFunc func(stored *entities.Actor) (string, error)
	Value    any
	// Check runs on the patched actor inside the transaction, after
	// validation. An error aborts the write.
	Check func(patched *entities.Actor) error
}

// PatchOutput defines the output for patching an actor
type PatchOutput struct {
	Actor *entities.Actor
}

// DeleteInput defines the input for deleting an actor
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting an actor
type DeleteOutput struct{}

// ListByPlayerIDInput defines the input for listing actors by player
type ListByPlayerIDInput struct {
	PlayerID string
}

// ListByPlayerIDOutput defines the output for listing actors by player
type ListByPlayerIDOutput struct {
	Actors []*entities.Actor
}
