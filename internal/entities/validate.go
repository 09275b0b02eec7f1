package entities

import (
	"encoding/json"
	"fmt"

	"github.com/KirkDiggler/special-api/internal/entities/special"
	"github.com/KirkDiggler/special-api/internal/errors"
)

// Validate checks persisted actor data at the write boundary. Rule element
// sources are only required to be JSON; their meaning is checked when they
// are used.
func (a *Actor) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("id", a.ID, vb)
	errors.ValidateRequired("name", a.Name, vb)
	errors.ValidateEnum("type", a.Type, []string{ActorTypeCharacter, ActorTypeNPC}, vb)
	errors.ValidateNonNegative("leveling.experience", a.Leveling.Experience, vb)

	for name, points := range a.Leveling.Specials {
		field := "leveling.specials." + string(name)
		if !name.Valid() {
			vb.Field(field, "is not a known special")
			continue
		}
		errors.ValidateRange(field, points, special.MinPoints, special.MaxPoints, vb)
	}
	for skill, ranks := range a.Leveling.SkillRanks {
		field := "leveling.skillRanks." + string(skill)
		if !skill.Valid() {
			vb.Field(field, "is not a known skill")
			continue
		}
		if ranks < 0 {
			vb.Field(field, "must not be negative")
		}
	}

	if a.Magic.ThaumSpecial != "" {
		errors.ValidateEnum("magic.thaumSpecial", string(a.Magic.ThaumSpecial), special.NameStrings(), vb)
	}
	if a.Vitals.RadiationSickness != "" {
		errors.ValidateEnum("vitals.radiationSickness", string(a.Vitals.RadiationSickness), special.RadiationLevelStrings(), vb)
	}
	errors.ValidateNonNegative("vitals.hitPoints.value", a.Vitals.HitPoints.Value, vb)
	errors.ValidateNonNegative("vitals.actionPoints.value", a.Vitals.ActionPoints.Value, vb)

	seen := make(map[string]bool, len(a.Items))
	for i, item := range a.Items {
		field := errors.IndexedField("items", i)
		if item == nil {
			vb.Field(field, "must not be null")
			continue
		}
		if item.ID != "" && seen[item.ID] {
			vb.Fieldf(field+".id", "duplicate item id %s", item.ID)
		}
		seen[item.ID] = true
		item.validate(field, vb)
	}

	return vb.Build()
}

func (i *Item) validate(field string, vb *errors.ValidationBuilder) {
	errors.ValidateRequired(field+".id", i.ID, vb)
	errors.ValidateRequired(field+".name", i.Name, vb)
	errors.ValidateNonNegative(field+".value", i.Value, vb)
	errors.ValidateNonNegative(field+".weight", i.Weight, vb)
	for j, raw := range i.Rules {
		if !json.Valid(raw) {
			vb.Field(fmt.Sprintf("%s.rules[%d]", field, j), "is not valid JSON")
		}
	}
}
