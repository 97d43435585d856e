// Package wotr holds the reference records and character data for the
// Wrath of the Righteous planner.
//
// Reference records are value types shared by every character in a session.
// Nothing outside the catalog constructs them from raw data, and the catalog
// hands out clones so that no character can mutate shared state.
package wotr

// Race represents a playable race from the reference catalog
type Race struct {
	Name             string
	Description      string
	Modifiers        map[Ability]int
	SkillPointsBonus int
	BonusFeats       []int
	Traits           []string
	Heritages        []string
}

// Clone returns a deep copy of the race
func (r Race) Clone() Race {
	r.Modifiers = cloneAbilityMap(r.Modifiers)
	r.BonusFeats = cloneInts(r.BonusFeats)
	r.Traits = cloneStrings(r.Traits)
	r.Heritages = cloneStrings(r.Heritages)
	return r
}

// Archetype is a class variant
type Archetype struct {
	Name        string
	Description string
}

// Class represents a character class from the reference catalog
type Class struct {
	Name              string
	Description       string
	BaseHP            int
	SkillPoints       int
	BonusFeatInterval int
	BonusFeats        []int
	Archetypes        []Archetype
}

// Clone returns a deep copy of the class
func (c Class) Clone() Class {
	c.BonusFeats = cloneInts(c.BonusFeats)
	if c.Archetypes != nil {
		c.Archetypes = append([]Archetype(nil), c.Archetypes...)
	}
	return c
}

// HasArchetype reports whether name is one of the class archetypes
func (c Class) HasArchetype(name string) bool {
	for _, a := range c.Archetypes {
		if a.Name == name {
			return true
		}
	}
	return false
}

// Heritage is a race sub-category. Its ability modifiers replace the race's
// modifiers rather than adding to them.
type Heritage struct {
	Name             string
	Description      string
	Race             string
	Modifiers        map[Ability]int
	Traits           []string
	TraitsRemoved    []string
	SkillPointsBonus int
}

// Clone returns a deep copy of the heritage
func (h Heritage) Clone() Heritage {
	h.Modifiers = cloneAbilityMap(h.Modifiers)
	h.Traits = cloneStrings(h.Traits)
	h.TraitsRemoved = cloneStrings(h.TraitsRemoved)
	return h
}

// CompatibleWith reports whether the heritage may be taken with race
func (h Heritage) CompatibleWith(race Race) bool {
	if h.Race != "" && h.Race == race.Name {
		return true
	}
	for _, name := range race.Heritages {
		if name == h.Name {
			return true
		}
	}
	return false
}

// Background grants flat skill bonuses
type Background struct {
	Name           string
	Description    string
	SkillModifiers map[Skill]int
}

// Clone returns a deep copy of the background
func (b Background) Clone() Background {
	b.SkillModifiers = cloneSkillMap(b.SkillModifiers)
	return b
}

// SkillDefinition describes one of the fixed skills
type SkillDefinition struct {
	Name        Skill
	Ability     Ability
	Description string
}

// Feat represents a selectable feat and its prerequisites
type Feat struct {
	Name              string
	Description       string
	PrerequisiteLevel int
	PrerequisiteStats map[Ability]int
	PrerequisiteFeats []string
	Modifiers         map[Ability]int
	SkillModifiers    map[Skill]int
}

// Clone returns a deep copy of the feat
func (f Feat) Clone() Feat {
	f.PrerequisiteStats = cloneAbilityMap(f.PrerequisiteStats)
	f.PrerequisiteFeats = cloneStrings(f.PrerequisiteFeats)
	f.Modifiers = cloneAbilityMap(f.Modifiers)
	f.SkillModifiers = cloneSkillMap(f.SkillModifiers)
	return f
}

// MinimumLevel returns the level prerequisite, which defaults to 1
func (f Feat) MinimumLevel() int {
	if f.PrerequisiteLevel < 1 {
		return 1
	}
	return f.PrerequisiteLevel
}
