package special

import (
	"math"
	"sort"

	"github.com/KirkDiggler/special-api/internal/entities/composite"
)

// Skill identifies a skill.
type Skill string

// Skills
const (
	Barter        Skill = "barter"
	Diplomacy     Skill = "diplomacy"
	EnergyWeapons Skill = "energyWeapons"
	Explosives    Skill = "explosives"
	Firearms      Skill = "firearms"
	Intimidation  Skill = "intimidation"
	Lockpick      Skill = "lockpick"
	Magic         Skill = "magic"
	Mechanics     Skill = "mechanics"
	Medicine      Skill = "medicine"
	Melee         Skill = "melee"
	Science       Skill = "science"
	Sleight       Skill = "sleight"
	Sneak         Skill = "sneak"
	Survival      Skill = "survival"
	Unarmed       Skill = "unarmed"
)

// DefaultThaumSpecial governs Magic unless the actor chooses otherwise.
const DefaultThaumSpecial = Intelligence

// SkillPointsLabel is the label key of the invested-ranks component.
const SkillPointsLabel = "skills.points"

const (
	minSkill = 0
	maxSkill = 100
)

var governing = map[Skill]Name{
	Barter:        Charisma,
	Diplomacy:     Charisma,
	EnergyWeapons: Perception,
	Explosives:    Perception,
	Firearms:      Agility,
	Intimidation:  Strength,
	Lockpick:      Perception,
	Mechanics:     Intelligence,
	Medicine:      Intelligence,
	Melee:         Strength,
	Science:       Intelligence,
	Sleight:       Agility,
	Sneak:         Agility,
	Survival:      Endurance,
	Unarmed:       Endurance,
}

// Skills returns every skill, sorted.
func Skills() []Skill {
	out := make([]Skill, 0, len(governing)+1)
	for skill := range governing {
		out = append(out, skill)
	}
	out = append(out, Magic)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Valid reports whether s is a known skill.
func (s Skill) Valid() bool {
	if s == Magic {
		return true
	}
	_, ok := governing[s]
	return ok
}

// GoverningSpecial returns the special a skill derives from. Magic uses the
// actor's thaumaturgy special, falling back to DefaultThaumSpecial.
func GoverningSpecial(skill Skill, thaum Name) (Name, bool) {
	if skill == Magic {
		if thaum.Valid() {
			return thaum, true
		}
		return DefaultThaumSpecial, true
	}
	name, ok := governing[skill]
	return name, ok
}

// ComputeBaseSkill is 2*special + floor(luck/2), plus the invested ranks as
// a "skill points" component.
func ComputeBaseSkill(specialPermTotal, luckPermTotal float64, ranks int) *composite.Number {
	n := composite.NewNumber(2*specialPermTotal+math.Floor(luckPermTotal/2), composite.Between(minSkill, maxSkill))
	n.Add(composite.NewComponent(float64(ranks), composite.Key(SkillPointsLabel)))
	return n
}

// SkillBounds are the bounds of every skill total.
func SkillBounds() composite.Bounds {
	return composite.Between(minSkill, maxSkill)
}
