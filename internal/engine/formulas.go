package engine

import (
	"math"

	"github.com/KirkDiggler/special-api/internal/entities/composite"
)

const experiencePerLevel = 1000

// LevelForExperience returns the level reached with xp experience.
func LevelForExperience(xp float64) int {
	if xp <= 0 {
		return 1
	}
	return 1 + int(math.Floor(xp/experiencePerLevel))
}

// MaxHitPoints is 10 + endurance + level.
func MaxHitPoints(endurance, level float64) float64 {
	return 10 + endurance + level
}

// MaxActionPoints is 5 + half agility, rounded down.
func MaxActionPoints(agility float64) float64 {
	return 5 + math.Floor(agility/2)
}

// CriticalSuccess is the d100 roll at or below which a check critically succeeds.
func CriticalSuccess(luck float64) float64 {
	return luck
}

// CriticalFailure is the d100 roll at or above which a check critically fails.
func CriticalFailure(luck float64) float64 {
	return math.Min(100, 95+math.Floor(luck/5))
}

// CarryWeight is 50 + 10 per point of strength.
func CarryWeight(strength float64) float64 {
	return 50 + 10*strength
}

func criticalBounds() composite.Bounds {
	return composite.Between(0, 100)
}
