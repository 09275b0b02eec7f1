// Package actor implements the actor orchestrator: it loads and stores
// actors, runs the derivation pipeline and renders prepared views.
package actor

//go:generate mockgen -destination=mock/mock_service.go -package=actormock github.com/KirkDiggler/special-api/internal/orchestrators/actor Service

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"

	"github.com/KirkDiggler/special-api/internal/engine"
	"github.com/KirkDiggler/special-api/internal/entities"
	"github.com/KirkDiggler/special-api/internal/errors"
	"github.com/KirkDiggler/special-api/internal/i18n"
	"github.com/KirkDiggler/special-api/internal/pkg/idgen"
	actorrepo "github.com/KirkDiggler/special-api/internal/repositories/actor"
	"github.com/KirkDiggler/special-api/internal/rules"
)

// Service defines the actor operations
type Service interface {
	CreateActor(ctx context.Context, input *CreateActorInput) (*CreateActorOutput, error)
	GetActor(ctx context.Context, input *GetActorInput) (*GetActorOutput, error)
	ListActors(ctx context.Context, input *ListActorsInput) (*ListActorsOutput, error)
	UpdateRuleElements(ctx context.Context, input *UpdateRuleElementsInput) (*UpdateRuleElementsOutput, error)
	UpdateResource(ctx context.Context, input *UpdateResourceInput) (*UpdateResourceOutput, error)
	DeleteActor(ctx context.Context, input *DeleteActorInput) (*DeleteActorOutput, error)
}

// Config holds the dependencies for the actor orchestrator
type Config struct {
	ActorRepo        actorrepo.Repository
	Engine           engine.Engine
	Bundle           *i18n.Bundle
	ActorIDGenerator idgen.Generator
	ItemIDGenerator  idgen.Generator
	// DefaultLocale is used when a request names none
	DefaultLocale string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ActorRepo == nil {
		vb.RequiredField("ActorRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Bundle == nil {
		vb.RequiredField("Bundle")
	}
	if c.ActorIDGenerator == nil {
		vb.RequiredField("ActorIDGenerator")
	}
	if c.ItemIDGenerator == nil {
		vb.RequiredField("ItemIDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	actorRepo     actorrepo.Repository
	engine        engine.Engine
	bundle        *i18n.Bundle
	actorIDGen    idgen.Generator
	itemIDGen     idgen.Generator
	defaultLocale string
}

// NewOrchestrator creates a new actor orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	locale := cfg.DefaultLocale
	if locale == "" {
		locale = i18n.BaseLocale
	}

	return &orchestrator{
		actorRepo:     cfg.ActorRepo,
		engine:        cfg.Engine,
		bundle:        cfg.Bundle,
		actorIDGen:    cfg.ActorIDGenerator,
		itemIDGen:     cfg.ItemIDGenerator,
		defaultLocale: locale,
	}, nil
}

func (o *orchestrator) CreateActor(ctx context.Context, input *CreateActorInput) (*CreateActorOutput, error) {
	if input == nil || input.Actor == nil {
		return nil, errors.InvalidArgument("actor is required")
	}

	actor := input.Actor
	if actor.ID == "" {
		actor.ID = o.actorIDGen.Generate()
	}
	if actor.Type == "" {
		actor.Type = entities.ActorTypeCharacter
	}
	for _, item := range actor.Items {
		if item != nil && item.ID == "" {
			item.ID = o.itemIDGen.Generate()
		}
	}
	actor.LinkItems()

	out, err := o.actorRepo.Create(ctx, actorrepo.CreateInput{Actor: actor})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create actor")
	}

	slog.InfoContext(ctx, "actor created",
		"actor_id", out.Actor.ID,
		"player_id", out.Actor.PlayerID,
		"items", len(out.Actor.Items))

	view, err := o.prepare(ctx, out.Actor, input.Locale)
	if err != nil {
		return nil, err
	}
	return &CreateActorOutput{View: view}, nil
}

func (o *orchestrator) GetActor(ctx context.Context, input *GetActorInput) (*GetActorOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("actor ID is required")
	}

	out, err := o.actorRepo.Get(ctx, actorrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get actor")
	}

	view, err := o.prepare(ctx, out.Actor, input.Locale)
	if err != nil {
		return nil, err
	}
	return &GetActorOutput{View: view}, nil
}

func (o *orchestrator) ListActors(ctx context.Context, input *ListActorsInput) (*ListActorsOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	out, err := o.actorRepo.ListByPlayerID(ctx, actorrepo.ListByPlayerIDInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list actors")
	}

	views := make([]*ActorView, 0, len(out.Actors))
	for _, actor := range out.Actors {
		view, err := o.prepare(ctx, actor, input.Locale)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return &ListActorsOutput{Views: views}, nil
}

func (o *orchestrator) UpdateRuleElements(
	ctx context.Context,
	input *UpdateRuleElementsInput,
) (*UpdateRuleElementsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("actor_id", input.ActorID, vb)
	errors.ValidateRequired("item_id", input.ItemID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	_, syntaxErrors := rules.ParseSources(input.Sources)
	if len(syntaxErrors) > 0 {
		slog.InfoContext(ctx, "rule element batch rejected",
			"actor_id", input.ActorID,
			"item_id", input.ItemID,
			"syntax_errors", len(syntaxErrors))

		localizer := o.bundle.Localizer(o.locale(input.Locale))
		views := make([]SyntaxErrorView, len(syntaxErrors))
		for i, se := range syntaxErrors {
			views[i] = SyntaxErrorView{Index: se.Index, Message: messageView(se.Message, localizer)}
		}
		return &UpdateRuleElementsOutput{
			Saved:        false,
			Sources:      append([]string(nil), input.Sources...),
			SyntaxErrors: views,
		}, nil
	}

	patched, err := o.actorRepo.Patch(ctx, actorrepo.PatchInput{
		ID: input.ActorID,
		PathFunc: func(stored *entities.Actor) (string, error) {
			for i, item := range stored.Items {
				if item != nil && item.ID == input.ItemID {
					return "items." + strconv.Itoa(i) + ".rules", nil
				}
			}
			return "", errors.NotFoundf("item %s not found on actor %s", input.ItemID, input.ActorID)
		},
		Value: json.RawMessage("[" + strings.Join(input.Sources, ",") + "]"),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save rule elements")
	}

	slog.InfoContext(ctx, "rule elements saved",
		"actor_id", input.ActorID,
		"item_id", input.ItemID,
		"count", len(input.Sources))

	view, err := o.prepare(ctx, patched.Actor, input.Locale)
	if err != nil {
		return nil, err
	}
	return &UpdateRuleElementsOutput{
		Saved:   true,
		Sources: append([]string(nil), input.Sources...),
		View:    view,
	}, nil
}

func (o *orchestrator) UpdateResource(ctx context.Context, input *UpdateResourceInput) (*UpdateResourceOutput, error) {
	if input == nil || input.ActorID == "" {
		return nil, errors.InvalidArgument("actor ID is required")
	}
	if input.Resource != ResourceHitPoints && input.Resource != ResourceActionPoints {
		return nil, errors.InvalidArgumentf("unknown resource %q", input.Resource)
	}
	if input.Value < 0 {
		return nil, errors.InvalidArgumentf("%s must not be negative", input.Resource)
	}

	patched, err := o.actorRepo.Patch(ctx, actorrepo.PatchInput{
		ID:    input.ActorID,
		Path:  "vitals." + input.Resource + ".value",
		Value: input.Value,
		Check: func(next *entities.Actor) error {
			return o.checkResource(ctx, next, input.Resource)
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update %s", input.Resource)
	}

	view, err := o.prepare(ctx, patched.Actor, input.Locale)
	if err != nil {
		return nil, err
	}
	return &UpdateResourceOutput{View: view}, nil
}

// checkResource rejects a current value above the maximum derived from the
// same document.
func (o *orchestrator) checkResource(ctx context.Context, actor *entities.Actor, name string) error {
	if err := o.engine.PrepareActor(ctx, actor); err != nil {
		return errors.Wrapf(err, "failed to prepare actor")
	}

	resource, err := actor.DerivedResource("vitals." + name)
	if err != nil {
		return err
	}
	if resource.Value() > resource.Max() {
		return errors.OutOfRangef("%s %v exceeds maximum %v", name, resource.Value(), resource.Max())
	}
	return nil
}

func (o *orchestrator) DeleteActor(ctx context.Context, input *DeleteActorInput) (*DeleteActorOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("actor ID is required")
	}

	if _, err := o.actorRepo.Delete(ctx, actorrepo.DeleteInput{ID: input.ID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete actor")
	}

	slog.InfoContext(ctx, "actor deleted", "actor_id", input.ID)
	return &DeleteActorOutput{}, nil
}

func (o *orchestrator) locale(requested string) string {
	if requested == "" {
		return o.defaultLocale
	}
	return requested
}

func (o *orchestrator) prepare(ctx context.Context, actor *entities.Actor, locale string) (*ActorView, error) {
	if err := o.engine.PrepareActor(ctx, actor); err != nil {
		return nil, errors.Wrapf(err, "failed to prepare actor %s", actor.ID)
	}
	return BuildView(actor, o.bundle.Localizer(o.locale(locale)))
}
