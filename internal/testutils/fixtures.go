package testutils

import (
	"encoding/json"
	"fmt"

	"github.com/KirkDiggler/special-api/internal/entities"
	"github.com/KirkDiggler/special-api/internal/entities/special"
)

const (
	// TestActorName is the default actor name for fixtures
	TestActorName = "Lone Wanderer"
	// TestPlayerID is the default owning player
	TestPlayerID = "player_test"
)

// CreateTestActor returns a valid character with default specials and no items.
func CreateTestActor(id string) *entities.Actor {
	return &entities.Actor{
		ID:       id,
		Name:     TestActorName,
		Type:     entities.ActorTypeCharacter,
		PlayerID: TestPlayerID,
		Leveling: entities.Leveling{
			Experience: 0,
			Specials: map[special.Name]int{
				special.Strength:     5,
				special.Perception:   5,
				special.Endurance:    5,
				special.Charisma:     5,
				special.Intelligence: 5,
				special.Agility:      5,
				special.Luck:         5,
			},
			SkillRanks: map[special.Skill]int{},
		},
		Vitals: entities.Vitals{
			HitPoints:         entities.ResourceValue{Value: 16},
			ActionPoints:      entities.ResourceValue{Value: 7},
			RadiationSickness: special.RadiationNone,
		},
	}
}

// FlatModifierSource renders a flat-modifier rule element source.
func FlatModifierSource(target, selector, label string, value, priority float64) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(
		`{"enabled":true,"label":%q,"priority":%v,"selector":%q,"target":%q,"type":"flat-modifier","value":%v}`,
		label, priority, selector, target, value))
}

// CreateTestItem returns an item carrying the given rule element sources.
func CreateTestItem(id, name string, sources ...json.RawMessage) *entities.Item {
	return &entities.Item{
		ID:     id,
		Name:   name,
		Type:   "apparel",
		Value:  10,
		Weight: 1,
		Rules:  sources,
	}
}
