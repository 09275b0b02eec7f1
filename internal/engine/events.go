package engine

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/special-api/internal/entities"
	"github.com/KirkDiggler/special-api/internal/rules"
)

// Rule element event types
const (
	EventRuleElementApplied = "special.rule_element.applied"
	EventRuleElementSkipped = "special.rule_element.skipped"
)

// Event context keys
const (
	EventKeyType     = "type"
	EventKeySelector = "selector"
	EventKeyLabel    = "label"
	EventKeyPriority = "priority"
	EventKeyReason   = "reason"
)

// Skip reasons
const (
	ReasonDisabled    = "disabled"
	ReasonErrors      = "errors"
	ReasonInvalid     = "invalid"
	ReasonApplyFailed = "apply failed"
)

func skipReason(el rules.Element) string {
	if !el.HasErrors() && !el.Source().Enabled {
		return ReasonDisabled
	}
	return ReasonErrors
}

func (e *engine) publishInvalid(ctx context.Context, item *entities.Item, el rules.ElementLike) {
	if e.eventBus == nil {
		return
	}
	event := events.NewGameEvent(EventRuleElementSkipped, item, item)
	event.Context().Set(EventKeyReason, ReasonInvalid)
	if err := e.eventBus.Publish(ctx, event); err != nil {
		e.logger.Warn("failed to publish rule element event",
			"event", EventRuleElementSkipped,
			"item_id", item.ID,
			"messages", len(el.Messages()),
			"error", err)
	}
}

func (e *engine) publish(ctx context.Context, eventType string, item *entities.Item, owner core.Entity, src rules.Source, reason string) {
	if e.eventBus == nil {
		return
	}

	event := events.NewGameEvent(eventType, item, owner)
	event.Context().Set(EventKeyType, src.Type)
	event.Context().Set(EventKeySelector, src.Selector)
	event.Context().Set(EventKeyLabel, src.Label)
	event.Context().Set(EventKeyPriority, src.Priority)
	if reason != "" {
		event.Context().Set(EventKeyReason, reason)
	}

	if err := e.eventBus.Publish(ctx, event); err != nil {
		e.logger.Warn("failed to publish rule element event",
			"event", eventType,
			"item_id", item.ID,
			"selector", src.Selector,
			"error", err)
	}
}
