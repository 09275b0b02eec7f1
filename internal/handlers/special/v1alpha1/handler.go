// Package v1alpha1 handles the actor grpc service interface
package v1alpha1

import (
	"context"

	"github.com/KirkDiggler/special-api/internal/errors"
	"github.com/KirkDiggler/special-api/internal/orchestrators/actor"
)

// ActorHandlerConfig holds dependencies for the actor handler
type ActorHandlerConfig struct {
	ActorService actor.Service
}

// Validate ensures all required dependencies are present
func (c *ActorHandlerConfig) Validate() error {
	if c.ActorService == nil {
		return errors.InvalidArgument("actor service is required")
	}
	return nil
}

// ActorHandler implements the actor gRPC service
type ActorHandler struct {
	UnimplementedActorServiceServer
	actorService actor.Service
}

// NewActorHandler creates a new actor handler with the given configuration
func NewActorHandler(cfg *ActorHandlerConfig) (*ActorHandler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &ActorHandler{
		actorService: cfg.ActorService,
	}, nil
}

// CreateActor stores a new actor and returns it prepared
func (h *ActorHandler) CreateActor(
	ctx context.Context,
	req *CreateActorRequest,
) (*CreateActorResponse, error) {
	if req.Actor == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("actor is required"))
	}

	out, err := h.actorService.CreateActor(ctx, &actor.CreateActorInput{
		Actor:  req.Actor,
		Locale: req.Locale,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &CreateActorResponse{View: out.View}, nil
}

// GetActor loads and prepares one actor
func (h *ActorHandler) GetActor(
	ctx context.Context,
	req *GetActorRequest,
) (*GetActorResponse, error) {
	if req.ID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("id is required"))
	}

	out, err := h.actorService.GetActor(ctx, &actor.GetActorInput{
		ID:     req.ID,
		Locale: req.Locale,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetActorResponse{View: out.View}, nil
}

// ListActors prepares every actor a player owns
func (h *ActorHandler) ListActors(
	ctx context.Context,
	req *ListActorsRequest,
) (*ListActorsResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	out, err := h.actorService.ListActors(ctx, &actor.ListActorsInput{
		PlayerID: req.PlayerID,
		Locale:   req.Locale,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ListActorsResponse{Views: out.Views}, nil
}

// UpdateRuleElements replaces an item's rule element sources. A batch with
// syntax errors is answered, not failed: Saved is false and nothing changed.
func (h *ActorHandler) UpdateRuleElements(
	ctx context.Context,
	req *UpdateRuleElementsRequest,
) (*UpdateRuleElementsResponse, error) {
	if req.ActorID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("actor_id is required"))
	}
	if req.ItemID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("item_id is required"))
	}

	out, err := h.actorService.UpdateRuleElements(ctx, &actor.UpdateRuleElementsInput{
		ActorID: req.ActorID,
		ItemID:  req.ItemID,
		Sources: req.Sources,
		Locale:  req.Locale,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &UpdateRuleElementsResponse{
		Saved:        out.Saved,
		Sources:      out.Sources,
		SyntaxErrors: out.SyntaxErrors,
		View:         out.View,
	}, nil
}

// UpdateResource sets the current value of hit points or action points
func (h *ActorHandler) UpdateResource(
	ctx context.Context,
	req *UpdateResourceRequest,
) (*UpdateResourceResponse, error) {
	if req.ActorID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("actor_id is required"))
	}
	if req.Resource == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("resource is required"))
	}

	out, err := h.actorService.UpdateResource(ctx, &actor.UpdateResourceInput{
		ActorID:  req.ActorID,
		Resource: req.Resource,
		Value:    req.Value,
		Locale:   req.Locale,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &UpdateResourceResponse{View: out.View}, nil
}

// DeleteActor removes an actor
func (h *ActorHandler) DeleteActor(
	ctx context.Context,
	req *DeleteActorRequest,
) (*DeleteActorResponse, error) {
	if req.ID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("id is required"))
	}

	if _, err := h.actorService.DeleteActor(ctx, &actor.DeleteActorInput{ID: req.ID}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &DeleteActorResponse{}, nil
}
