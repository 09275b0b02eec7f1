package actor

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/special-api/internal/engine"
)

// SubscribeAudit logs every rule element application event at debug level
// and skips at info level. It returns the subscription IDs.
func SubscribeAudit(bus events.EventBus, logger *slog.Logger) []string {
	if logger == nil {
		logger = slog.Default()
	}

	handler := func(level slog.Level) events.HandlerFunc {
		return func(ctx context.Context, e events.Event) error {
			attrs := []any{"event", e.Type()}
			if src := e.Source(); src != nil {
				attrs = append(attrs, "item_id", src.GetID())
			}
			if target := e.Target(); target != nil {
				attrs = append(attrs, "owner_id", target.GetID(), "owner_type", target.GetType())
			}
			for _, key := range []string{engine.EventKeyType, engine.EventKeySelector, engine.EventKeyReason} {
				if v, ok := e.Context().Get(key); ok {
					attrs = append(attrs, key, v)
				}
			}
			logger.Log(ctx, level, "rule element event", attrs...)
			return nil
		}
	}

	return []string{
		bus.SubscribeFunc(engine.EventRuleElementApplied, 0, handler(slog.LevelDebug)),
		bus.SubscribeFunc(engine.EventRuleElementSkipped, 0, handler(slog.LevelInfo)),
	}
}
