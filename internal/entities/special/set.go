package special

import (
	"github.com/KirkDiggler/special-api/internal/entities/composite"
	"github.com/KirkDiggler/special-api/internal/errors"
)

// Name identifies one of the seven specials.
type Name string

// The seven specials
const (
	Strength     Name = "strength"
	Perception   Name = "perception"
	Endurance    Name = "endurance"
	Charisma     Name = "charisma"
	Intelligence Name = "intelligence"
	Agility      Name = "agility"
	Luck         Name = "luck"
)

// Names lists the specials in display order.
var Names = []Name{Strength, Perception, Endurance, Charisma, Intelligence, Agility, Luck}

// Valid reports whether n is one of Names.
func (n Name) Valid() bool {
	for _, name := range Names {
		if n == name {
			return true
		}
	}
	return false
}

// NameStrings returns Names as strings, for enum validation.
func NameStrings() []string {
	out := make([]string, len(Names))
	for i, n := range Names {
		out[i] = string(n)
	}
	return out
}

// RadiationLevel is the severity of radiation sickness.
type RadiationLevel string

// Radiation sickness severities
const (
	RadiationNone     RadiationLevel = "none"
	RadiationMinor    RadiationLevel = "minor"
	RadiationModerate RadiationLevel = "moderate"
	RadiationMajor    RadiationLevel = "major"
	RadiationCritical RadiationLevel = "critical"
)

// RadiationLevels lists the severities in increasing order.
var RadiationLevels = []RadiationLevel{RadiationNone, RadiationMinor, RadiationModerate, RadiationMajor, RadiationCritical}

// RadiationLevelStrings returns RadiationLevels as strings.
func RadiationLevelStrings() []string {
	out := make([]string, len(RadiationLevels))
	for i, l := range RadiationLevels {
		out[i] = string(l)
	}
	return out
}

type penalty struct {
	name  Name
	value float64
}

func radiationPenalties(level RadiationLevel) ([]penalty, error) {
	switch level {
	case RadiationNone:
		return nil, nil
	case RadiationMinor:
		return []penalty{{Endurance, -1}}, nil
	case RadiationModerate:
		return []penalty{{Endurance, -2}, {Agility, -1}}, nil
	case RadiationMajor:
		return []penalty{{Endurance, -3}, {Agility, -2}, {Strength, -1}}, nil
	case RadiationCritical:
		return []penalty{{Endurance, -4}, {Agility, -3}, {Strength, -2}}, nil
	}
	return nil, errors.Internalf("unhandled radiation sickness level %q", level)
}

// Set holds one Special per name.
type Set map[Name]*Special

// NewSet builds a set from invested points; missing names get DefaultPoints.
func NewSet(points map[Name]int) Set {
	set := make(Set, len(Names))
	for _, name := range Names {
		p, ok := points[name]
		if !ok {
			p = DefaultPoints
		}
		set[name] = New(p)
	}
	return set
}

// Get returns the special for name, or nil.
func (s Set) Get(name Name) *Special {
	return s[name]
}

// ApplyRadiationSickness appends the severity's temporary penalties. Points
// and permanent totals are never touched.
func (s Set) ApplyRadiationSickness(level RadiationLevel) error {
	penalties, err := radiationPenalties(level)
	if err != nil {
		return err
	}
	for _, p := range penalties {
		target := s[p.name]
		if target == nil {
			return errors.Internalf("special %q missing from set", p.name)
		}
		target.AddTemp(composite.NewComponent(p.value,
			composite.Key("radiation.sickness"),
			composite.Key("radiation.level."+string(level)),
		))
	}
	return nil
}
