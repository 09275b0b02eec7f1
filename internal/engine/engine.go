package engine

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/special-api/internal/entities"
	"github.com/KirkDiggler/special-api/internal/entities/composite"
	"github.com/KirkDiggler/special-api/internal/entities/special"
	"github.com/KirkDiggler/special-api/internal/errors"
	"github.com/KirkDiggler/special-api/internal/rules"
)

// Factory builds rule elements from raw sources
type Factory interface {
	FromOwningItem(raw json.RawMessage, item rules.Item) rules.ElementLike
}

// Config contains the engine dependencies
type Config struct {
	Factory Factory
	// EventBus is optional; without it nothing is published
	EventBus events.EventBus
	Logger   *slog.Logger
}

// Validate checks the configuration
func (cfg *Config) Validate() error {
	if cfg.Factory == nil {
		return errors.InvalidArgument("factory is required")
	}
	return nil
}

type engine struct {
	factory  Factory
	eventBus events.EventBus
	logger   *slog.Logger
}

// New creates an engine
func New(cfg *Config) (Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &engine{
		factory:  cfg.Factory,
		eventBus: cfg.EventBus,
		logger:   logger,
	}, nil
}

// pending pairs an element with the item it came from.
type pending struct {
	item    *entities.Item
	element rules.Element
}

func (e *engine) PrepareActor(ctx context.Context, actor *entities.Actor) error {
	if err := e.PrepareBaseData(ctx, actor); err != nil {
		return err
	}
	if err := e.PrepareEmbeddedDocuments(ctx, actor); err != nil {
		return err
	}
	return e.PrepareDerivedData(ctx, actor)
}

func (e *engine) PrepareBaseData(_ context.Context, actor *entities.Actor) error {
	if actor == nil {
		return errors.InvalidArgument("actor is required")
	}

	set := special.NewSet(actor.Leveling.Specials)
	specials := make(map[string]any, len(set))
	for name, s := range set {
		specials[string(name)] = s
	}

	skills := make(map[string]any)
	for _, skill := range special.Skills() {
		skills[string(skill)] = composite.NewNumber(0, special.SkillBounds())
	}

	actor.ResetDerived(map[string]any{
		"level":    float64(LevelForExperience(actor.Leveling.Experience)),
		"specials": specials,
		"skills":   skills,
		"vitals": map[string]any{
			"hitPoints":         composite.NewResource(actor.Vitals.HitPoints.Value, 0, composite.AtLeast(0)),
			"actionPoints":      composite.NewResource(actor.Vitals.ActionPoints.Value, 0, composite.AtLeast(0)),
			"radiationSickness": string(actor.RadiationSickness()),
		},
		"criticals": map[string]any{
			"success": composite.NewNumber(0, criticalBounds()),
			"failure": composite.NewNumber(0, criticalBounds()),
		},
		"carryWeight": composite.NewNumber(0, composite.AtLeast(0)),
	})
	for _, item := range actor.Items {
		if item != nil {
			item.SetRuleElements(nil)
		}
	}

	return nil
}

func (e *engine) PrepareEmbeddedDocuments(ctx context.Context, actor *entities.Actor) error {
	if actor == nil {
		return errors.InvalidArgument("actor is required")
	}
	if actor.Stage() < entities.StageBase {
		return errors.FailedPreconditionf("base data for actor %s has not been prepared", actor.ID)
	}

	var actorElements []pending
	for _, item := range actor.Items {
		if item == nil {
			continue
		}
		if err := e.PrepareItem(ctx, item); err != nil {
			return err
		}
		for _, el := range item.RuleElements() {
			element, ok := el.(rules.Element)
			if ok && element.Target() == rules.TargetActor {
				actorElements = append(actorElements, pending{item: item, element: element})
			}
		}
	}

	e.apply(ctx, actor, actorElements)
	actor.SetStage(entities.StageEmbedded)

	return nil
}

func (e *engine) PrepareItem(ctx context.Context, item *entities.Item) error {
	if item == nil {
		return errors.InvalidArgument("item is required")
	}

	item.ResetDerived(map[string]any{
		"name":   item.Name,
		"type":   item.Type,
		"value":  composite.NewNumber(item.Value, composite.AtLeast(0)),
		"weight": composite.NewNumber(item.Weight, composite.AtLeast(0)),
	})

	elements := make([]rules.ElementLike, 0, len(item.Rules))
	var itemElements []pending
	for _, raw := range item.Rules {
		el := e.factory.FromOwningItem(raw, item)
		elements = append(elements, el)

		element, ok := el.(rules.Element)
		if !ok {
			e.publishInvalid(ctx, item, el)
			continue
		}
		if element.Target() == rules.TargetItem {
			itemElements = append(itemElements, pending{item: item, element: element})
		}
	}
	item.SetRuleElements(elements)

	e.apply(ctx, item, itemElements)

	return nil
}

// apply runs elements in ascending priority. Ties keep source order.
func (e *engine) apply(ctx context.Context, owner core.Entity, elements []pending) {
	sort.SliceStable(elements, func(i, j int) bool {
		return elements[i].element.Priority() < elements[j].element.Priority()
	})

	for _, p := range elements {
		if p.element.ShouldNotModify() {
			e.publish(ctx, EventRuleElementSkipped, p.item, owner, p.element.Source(), skipReason(p.element))
			continue
		}

		if err := p.element.OnPrepareEmbeddedDocuments(); err != nil {
			e.logger.Warn("rule element failed to apply",
				"item_id", p.item.ID,
				"owner_id", owner.GetID(),
				"selector", p.element.Source().Selector,
				"error", err)
			e.publish(ctx, EventRuleElementSkipped, p.item, owner, p.element.Source(), ReasonApplyFailed)
			continue
		}

		e.publish(ctx, EventRuleElementApplied, p.item, owner, p.element.Source(), "")
	}
}

func (e *engine) PrepareDerivedData(_ context.Context, actor *entities.Actor) error {
	if actor == nil {
		return errors.InvalidArgument("actor is required")
	}
	if actor.Stage() < entities.StageEmbedded {
		return errors.FailedPreconditionf("embedded documents for actor %s have not been prepared", actor.ID)
	}

	level, ok := derivedFloat(actor, "level")
	if !ok {
		level = float64(LevelForExperience(actor.Leveling.Experience))
		e.logger.Warn("derived level is not a number, using experience level",
			"actor_id", actor.ID,
			"level", level)
	}

	specials := make(map[special.Name]*special.Special, len(special.Names))
	for _, name := range special.Names {
		s, err := derivedAs[*special.Special](actor, "specials."+string(name))
		if err != nil {
			return err
		}
		specials[name] = s
	}
	radiation := e.radiationLevel(actor)
	if err := special.Set(specials).ApplyRadiationSickness(radiation); err != nil {
		return errors.Wrapf(err, "failed to prepare derived data for actor %s", actor.ID)
	}
	if err := actor.SetDerivedProperty("vitals.radiationSickness", string(radiation)); err != nil {
		return err
	}
	luck := specials[special.Luck]

	for _, skill := range special.Skills() {
		governing, ok := special.GoverningSpecial(skill, actor.ThaumSpecial())
		if !ok {
			return errors.Internalf("skill %q has no governing special", skill)
		}
		final := special.ComputeBaseSkill(specials[governing].PermTotal(), luck.PermTotal(), actor.Leveling.SkillRanks[skill])
		if err := replaceNumber(actor, "skills."+string(skill), final); err != nil {
			return err
		}
	}

	hitPoints, err := derivedAs[*composite.Resource](actor, "vitals.hitPoints")
	if err != nil {
		return err
	}
	if err := replaceResource(actor, "vitals.hitPoints",
		composite.NewResource(hitPoints.Value(), MaxHitPoints(specials[special.Endurance].TempTotal(), level), composite.AtLeast(0))); err != nil {
		return err
	}

	actionPoints, err := derivedAs[*composite.Resource](actor, "vitals.actionPoints")
	if err != nil {
		return err
	}
	if err := replaceResource(actor, "vitals.actionPoints",
		composite.NewResource(actionPoints.Value(), MaxActionPoints(specials[special.Agility].TempTotal()), composite.AtLeast(0))); err != nil {
		return err
	}

	if err := replaceNumber(actor, "criticals.success",
		composite.NewNumber(CriticalSuccess(luck.TempTotal()), criticalBounds())); err != nil {
		return err
	}
	if err := replaceNumber(actor, "criticals.failure",
		composite.NewNumber(CriticalFailure(luck.TempTotal()), criticalBounds())); err != nil {
		return err
	}
	if err := replaceNumber(actor, "carryWeight",
		composite.NewNumber(CarryWeight(specials[special.Strength].TempTotal()), composite.AtLeast(0))); err != nil {
		return err
	}

	actor.SetStage(entities.StageDerived)
	return nil
}

// replaceNumber swaps the placeholder at path for final, replaying the
// components rule elements added to the placeholder.
func replaceNumber(actor *entities.Actor, path string, final *composite.Number) error {
	placeholder, err := derivedAs[*composite.Number](actor, path)
	if err != nil {
		return err
	}
	for _, c := range placeholder.Components() {
		final.Add(c)
	}
	return actor.SetDerivedProperty(path, final)
}

func replaceResource(actor *entities.Actor, path string, final *composite.Resource) error {
	placeholder, err := derivedAs[*composite.Resource](actor, path)
	if err != nil {
		return err
	}
	for _, c := range placeholder.Components() {
		final.Add(c)
	}
	return actor.SetDerivedProperty(path, final)
}

func derivedAs[T any](actor *entities.Actor, path string) (T, error) {
	var zero T
	v, ok := actor.GetDerivedProperty(path)
	if !ok {
		return zero, errors.Internalf("derived property %q missing for actor %s", path, actor.ID)
	}
	t, ok := v.(T)
	if !ok {
		return zero, errors.Internalf("derived property %q has unexpected type %T", path, v)
	}
	return t, nil
}

// derivedFloat reads a primitive number. Rule elements may have replaced it
// with another primitive kind.
// radiationLevel reads the level left by rule elements. A value that is not
// a known level falls back to the stored one.
func (e *engine) radiationLevel(actor *entities.Actor) special.RadiationLevel {
	v, _ := actor.GetDerivedProperty("vitals.radiationSickness")
	if level, ok := v.(string); ok && slices.Contains(special.RadiationLevels, special.RadiationLevel(level)) {
		return special.RadiationLevel(level)
	}
	e.logger.Warn("derived radiation sickness is not a known level, using stored level",
		"actor_id", actor.ID,
		"radiation_sickness", v)
	return actor.RadiationSickness()
}

func derivedFloat(actor *entities.Actor, path string) (float64, bool) {
	v, _ := actor.GetDerivedProperty(path)
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}
