// Package catalog provides the reference data for races, classes, heritages,
// backgrounds, skills, feats and traits.
package catalog

//go:generate mockgen -destination=mock/mock_reader.go -package=catalogmock github.com/KirkDiggler/wotr-planner/internal/clients/catalog Reader

import (
	"log/slog"

	"github.com/KirkDiggler/wotr-planner/internal/entities/wotr"
)

// Reader answers lookups against loaded reference data. Every record it
// returns is a copy the caller may keep or modify.
type Reader interface {
	GetRace(name string) (wotr.Race, bool)
	GetClass(name string) (wotr.Class, bool)
	GetHeritage(name string) (wotr.Heritage, bool)
	GetBackground(name string) (wotr.Background, bool)
	GetSkill(name wotr.Skill) (wotr.SkillDefinition, bool)
	GetFeat(name string) (wotr.Feat, bool)
	GetTrait(name string) (wotr.Trait, bool)

	ListRaces() []wotr.Race
	ListClasses() []wotr.Class
	ListHeritages() []wotr.Heritage
	ListBackgrounds() []wotr.Background
	ListSkills() []wotr.SkillDefinition
	ListFeats() []wotr.Feat
	ListTraits() []wotr.Trait

	// HeritagesForRace returns the heritages that may be taken with the race
	HeritagesForRace(raceName string) []wotr.Heritage
}

// StaticData is the full content of a catalog
type StaticData struct {
	Races       []wotr.Race
	Classes     []wotr.Class
	Heritages   []wotr.Heritage
	Backgrounds []wotr.Background
	Skills      []wotr.SkillDefinition
	Feats       []wotr.Feat
	Traits      []wotr.Trait
}

// Catalog is an immutable, in-memory set of reference records
type Catalog struct {
	races       index[wotr.Race]
	classes     index[wotr.Class]
	heritages   index[wotr.Heritage]
	backgrounds index[wotr.Background]
	skills      index[wotr.SkillDefinition]
	feats       index[wotr.Feat]
	traits      index[wotr.Trait]
}

var _ Reader = (*Catalog)(nil)

// NewStatic builds a catalog from records already in memory
func NewStatic(data StaticData) *Catalog {
	return &Catalog{
		races:       newIndex("race", data.Races, raceName, wotr.Race.Clone),
		classes:     newIndex("class", data.Classes, className, wotr.Class.Clone),
		heritages:   newIndex("heritage", data.Heritages, heritageName, wotr.Heritage.Clone),
		backgrounds: newIndex("background", data.Backgrounds, backgroundName, wotr.Background.Clone),
		skills:      newIndex("skill", data.Skills, skillName, cloneSkill),
		feats:       newIndex("feat", data.Feats, featName, wotr.Feat.Clone),
		traits:      newIndex("trait", data.Traits, traitName, wotr.Trait.Clone),
	}
}

func raceName(r wotr.Race) string { return r.Name }
func className(c wotr.Class) string { return c.Name }
func heritageName(h wotr.Heritage) string { return h.Name }
func backgroundName(b wotr.Background) string { return b.Name }
func skillName(s wotr.SkillDefinition) string { return string(s.Name) }
func featName(f wotr.Feat) string { return f.Name }
func traitName(t wotr.Trait) string { return t.Name }
func cloneSkill(s wotr.SkillDefinition) wotr.SkillDefinition { return s }

// GetRace looks up a race by name
func (c *Catalog) GetRace(name string) (wotr.Race, bool) {
	return c.races.get(name)
}

// GetClass looks up a class by name
func (c *Catalog) GetClass(name string) (wotr.Class, bool) {
	return c.classes.get(name)
}

// GetHeritage looks up a heritage by name
func (c *Catalog) GetHeritage(name string) (wotr.Heritage, bool) {
	return c.heritages.get(name)
}

// GetBackground looks up a background by name
func (c *Catalog) GetBackground(name string) (wotr.Background, bool) {
	return c.backgrounds.get(name)
}

// GetSkill looks up a skill definition
func (c *Catalog) GetSkill(name wotr.Skill) (wotr.SkillDefinition, bool) {
	return c.skills.get(string(name))
}

// GetFeat looks up a feat by name
func (c *Catalog) GetFeat(name string) (wotr.Feat, bool) {
	return c.feats.get(name)
}

// GetTrait looks up a trait by name
func (c *Catalog) GetTrait(name string) (wotr.Trait, bool) {
	return c.traits.get(name)
}

func (c *Catalog) ListRaces() []wotr.Race {
	return c.races.list()
}

func (c *Catalog) ListClasses() []wotr.Class {
	return c.classes.list()
}

func (c *Catalog) ListHeritages() []wotr.Heritage {
	return c.heritages.list()
}

func (c *Catalog) ListBackgrounds() []wotr.Background {
	return c.backgrounds.list()
}

func (c *Catalog) ListSkills() []wotr.SkillDefinition {
	return c.skills.list()
}

func (c *Catalog) ListFeats() []wotr.Feat {
	return c.feats.list()
}

func (c *Catalog) ListTraits() []wotr.Trait {
	return c.traits.list()
}

// HeritagesForRace returns compatible heritages in catalog order. An unknown
// race has no heritages.
func (c *Catalog) HeritagesForRace(name string) []wotr.Heritage {
	out := []wotr.Heritage{}
	race, ok := c.races.get(name)
	if !ok {
		return out
	}
	for _, h := range c.heritages.items {
		if h.CompatibleWith(race) {
			out = append(out, h.Clone())
		}
	}
	return out
}

// index keeps records in file order with a name lookup. The first record
// with a given name wins.
type index[T any] struct {
	items  []T
	byName map[string]int
	clone  func(T) T
}

func newIndex[T any](kind string, records []T, name func(T) string, clone func(T) T) index[T] {
	idx := index[T]{
		items:  make([]T, 0, len(records)),
		byName: make(map[string]int, len(records)),
		clone:  clone,
	}
	for _, r := range records {
		n := name(r)
		if n == "" {
			slog.Warn("skipping unnamed catalog record", "kind", kind)
			continue
		}
		if _, dup := idx.byName[n]; dup {
			slog.Warn("skipping duplicate catalog record", "kind", kind, "name", n)
			continue
		}
		idx.byName[n] = len(idx.items)
		idx.items = append(idx.items, clone(r))
	}
	return idx
}

func (i index[T]) get(name string) (T, bool) {
	pos, ok := i.byName[name]
	if !ok {
		var zero T
		return zero, false
	}
	return i.clone(i.items[pos]), true
}

func (i index[T]) list() []T {
	out := make([]T, 0, len(i.items))
	for _, item := range i.items {
		out = append(out, i.clone(item))
	}
	return out
}
