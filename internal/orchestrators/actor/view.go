package actor

import (
	"github.com/KirkDiggler/special-api/internal/engine"
	"github.com/KirkDiggler/special-api/internal/entities"
	"github.com/KirkDiggler/special-api/internal/entities/composite"
	"github.com/KirkDiggler/special-api/internal/entities/special"
	"github.com/KirkDiggler/special-api/internal/errors"
	"github.com/KirkDiggler/special-api/internal/i18n"
	"github.com/KirkDiggler/special-api/internal/rules"
)

// BuildView renders a prepared actor for one locale. The actor must have been
// through PrepareActor.
func BuildView(actor *entities.Actor, localizer *i18n.Localizer) (*ActorView, error) {
	derived, err := buildDerived(actor, localizer)
	if err != nil {
		return nil, err
	}

	view := &ActorView{
		Locale:       localizer.Locale(),
		Actor:        actor,
		Derived:      *derived,
		RuleElements: []RuleElementView{},
	}

	for _, item := range actor.Items {
		if item == nil {
			continue
		}
		for i, el := range item.RuleElements() {
			view.RuleElements = append(view.RuleElements, ruleElementView(item.ID, i, el, localizer))
		}
	}

	return view, nil
}

func buildDerived(actor *entities.Actor, localizer *i18n.Localizer) (*DerivedView, error) {
	if actor.Stage() < entities.StageDerived {
		return nil, errors.FailedPreconditionf("derived data for actor %s has not been prepared", actor.ID)
	}
	levelValue, ok := level(actor)
	if !ok {
		levelValue = float64(engine.LevelForExperience(actor.Leveling.Experience))
	}

	derived := &DerivedView{
		Level:             levelValue,
		Specials:          make(map[string]SpecialView, len(special.Names)),
		Skills:            make(map[string]NumberView),
		RadiationSickness: radiationSickness(actor),
	}

	for _, name := range special.Names {
		s, err := actor.DerivedSpecial(name)
		if err != nil {
			return nil, err
		}
		derived.Specials[string(name)] = SpecialView{
			Label:          localizer.Resolve("specials." + string(name)),
			Points:         s.Points(),
			PermTotal:      s.PermTotal(),
			TempTotal:      s.TempTotal(),
			PermComponents: componentViews(s.PermComponents(), localizer),
			TempComponents: componentViews(s.TempComponents(), localizer),
		}
	}

	for _, skill := range special.Skills() {
		key := "skills." + string(skill)
		n, err := actor.DerivedNumber(key)
		if err != nil {
			return nil, err
		}
		derived.Skills[string(skill)] = numberView(key, n, localizer)
	}

	var err error
	if derived.HitPoints, err = resourceView(actor, "vitals.hitPoints", localizer); err != nil {
		return nil, err
	}
	if derived.ActionPoints, err = resourceView(actor, "vitals.actionPoints", localizer); err != nil {
		return nil, err
	}

	numbers := []struct {
		path string
		dst  *NumberView
	}{
		{"criticals.success", &derived.CriticalSuccess},
		{"criticals.failure", &derived.CriticalFailure},
		{"carryWeight", &derived.CarryWeight},
	}
	for _, n := range numbers {
		value, err := actor.DerivedNumber(n.path)
		if err != nil {
			return nil, err
		}
		*n.dst = numberView(n.path, value, localizer)
	}

	return derived, nil
}

func level(actor *entities.Actor) (float64, bool) {
	v, _ := actor.GetDerivedProperty("level")
	n, ok := v.(float64)
	return n, ok
}

func radiationSickness(actor *entities.Actor) string {
	if v, ok := actor.GetDerivedProperty("vitals.radiationSickness"); ok {
		if level, ok := v.(string); ok {
			return level
		}
	}
	return string(actor.RadiationSickness())
}

func resourceView(actor *entities.Actor, path string, localizer *i18n.Localizer) (ResourceView, error) {
	r, err := actor.DerivedResource(path)
	if err != nil {
		return ResourceView{}, err
	}
	return ResourceView{
		NumberView: numberView(path, &r.Number, localizer),
		Value:      r.Value(),
		Max:        r.Max(),
	}, nil
}

func numberView(labelKey string, n *composite.Number, localizer *i18n.Localizer) NumberView {
	return NumberView{
		Label:      localizer.Resolve(labelKey),
		Source:     n.Source(),
		Total:      n.Total(),
		Components: componentViews(n.Components(), localizer),
	}
}

func componentViews(components []composite.Component, localizer *i18n.Localizer) []ComponentView {
	out := make([]ComponentView, len(components))
	for i, c := range components {
		out[i] = ComponentView{Label: c.Label(localizer), Value: c.Value()}
	}
	return out
}

func ruleElementView(itemID string, index int, el rules.ElementLike, localizer *i18n.Localizer) RuleElementView {
	_, constructed := el.(rules.Element)
	view := RuleElementView{
		ItemID:   itemID,
		Index:    index,
		Source:   el.RawSource(),
		Valid:    constructed && !el.HasErrors(),
		Active:   !el.ShouldNotModify(),
		Messages: []MessageView{},
	}
	for _, m := range el.Messages() {
		view.Messages = append(view.Messages, messageView(m, localizer))
	}
	return view
}

func messageView(m rules.Message, localizer rules.Localizer) MessageView {
	return MessageView{
		Severity: string(m.Severity),
		Key:      m.Key,
		Field:    m.Field,
		Text:     m.Describe(localizer),
	}
}
