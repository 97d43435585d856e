// Package character implements the character aggregate: one character's
// selections, the values derived from them and every mutation on them.
package character

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/wotr-planner/internal/clients/catalog"
	"github.com/KirkDiggler/wotr-planner/internal/engine"
	"github.com/KirkDiggler/wotr-planner/internal/entities/wotr"
	"github.com/KirkDiggler/wotr-planner/internal/errors"
)

// EntityType identifies characters as event sources
const EntityType = "character"

// Config holds the dependencies and starting selections for a character
type Config struct {
	Catalog  catalog.Reader
	Engine   engine.Engine
	EventBus events.EventBus

	ID   string
	Name string

	// RaceName and ClassName default to Human and Fighter
	RaceName  string
	ClassName string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}

	return vb.Build()
}

// Character is the mutable aggregate for a single planning session. It is
// not safe for concurrent use.
type Character struct {
	catalog catalog.Reader
	engine  engine.Engine
	bus     events.EventBus

	id   string
	name string

	race       wotr.Race
	class      wotr.Class
	archetype  *wotr.Archetype
	heritage   *wotr.Heritage
	background *wotr.Background
	level      int

	pointBuy  wotr.AbilityScores
	baseStats wotr.AbilityScores
	stats     wotr.AbilityScores

	skillRanks wotr.SkillValues
	skills     wotr.SkillValues

	feats []wotr.Feat

	traits       []string
	traitBonuses *wotr.TraitBonuses

	heritageOptions  []wotr.Heritage
	lastRemovedFeats []string

	updating bool
}

var _ core.Entity = (*Character)(nil)

// New creates a level 1 character with the baseline point buy
func New(cfg *Config) (*Character, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	raceName := cfg.RaceName
	if raceName == "" {
		raceName = wotr.DefaultRaceName
	}
	className := cfg.ClassName
	if className == "" {
		className = wotr.DefaultClassName
	}

	race, ok := cfg.Catalog.GetRace(raceName)
	if !ok {
		return nil, errors.NotFoundf("race %q not found", raceName).WithMeta("race", raceName)
	}
	class, ok := cfg.Catalog.GetClass(className)
	if !ok {
		return nil, errors.NotFoundf("class %q not found", className).WithMeta("class", className)
	}

	pointBuy := wotr.NewAbilityScores(wotr.PointBuyDefault)
	c := &Character{
		catalog:         cfg.Catalog,
		engine:          cfg.Engine,
		bus:             cfg.EventBus,
		id:              cfg.ID,
		name:            cfg.Name,
		race:            race,
		class:           class,
		level:           1,
		pointBuy:        pointBuy,
		baseStats:       pointBuy.Clone(),
		skillRanks:      wotr.NewSkillValues(),
		feats:           []wotr.Feat{},
		heritageOptions: cfg.Catalog.HeritagesForRace(race.Name),
	}
	c.recompute(context.Background(), false)

	slog.Debug("character created", "id", c.id, "race", race.Name, "class", class.Name)

	return c, nil
}

// GetID implements core.Entity
func (c *Character) GetID() string {
	return c.id
}

// GetType implements core.Entity
func (c *Character) GetType() string {
	return EntityType
}

func (c *Character) ID() string {
	return c.id
}

func (c *Character) Name() string {
	return c.name
}

func (c *Character) Race() wotr.Race {
	return c.race.Clone()
}

func (c *Character) Class() wotr.Class {
	return c.class.Clone()
}

// Archetype returns the selected archetype, if any
func (c *Character) Archetype() (wotr.Archetype, bool) {
	if c.archetype == nil {
		return wotr.Archetype{}, false
	}
	return *c.archetype, true
}

// Heritage returns the selected heritage, if any
func (c *Character) Heritage() (wotr.Heritage, bool) {
	if c.heritage == nil {
		return wotr.Heritage{}, false
	}
	return c.heritage.Clone(), true
}

// Background returns the selected background, if any
func (c *Character) Background() (wotr.Background, bool) {
	if c.background == nil {
		return wotr.Background{}, false
	}
	return c.background.Clone(), true
}

func (c *Character) Level() int {
	return c.level
}

// PointBuyStats are the purchased scores before any modifier
func (c *Character) PointBuyStats() wotr.AbilityScores {
	return c.pointBuy.Clone()
}

// BaseStats is the point buy as it was when the character was created
func (c *Character) BaseStats() wotr.AbilityScores {
	return c.baseStats.Clone()
}

// Stats are the effective ability scores
func (c *Character) Stats() wotr.AbilityScores {
	return c.stats.Clone()
}

func (c *Character) SkillRanks() wotr.SkillValues {
	return c.skillRanks.Clone()
}

// Skills are the effective skill values
func (c *Character) Skills() wotr.SkillValues {
	return c.skills.Clone()
}

// Feats returns the chosen feats in the order they were taken
func (c *Character) Feats() []wotr.Feat {
	out := make([]wotr.Feat, 0, len(c.feats))
	for _, f := range c.feats {
		out = append(out, f.Clone())
	}
	return out
}

func (c *Character) FeatNames() []string {
	out := make([]string, 0, len(c.feats))
	for _, f := range c.feats {
		out = append(out, f.Name)
	}
	return out
}

func (c *Character) HasFeat(name string) bool {
	return c.featIndex(name) >= 0
}

func (c *Character) Traits() []string {
	return append([]string{}, c.traits...)
}

func (c *Character) TraitBonuses() *wotr.TraitBonuses {
	return c.traitBonuses.Clone()
}

func (c *Character) TotalPointsSpent() int {
	return c.engine.TotalPointsSpent(c.pointBuy)
}

func (c *Character) PointsRemaining() int {
	return wotr.PointBuyBudget - c.TotalPointsSpent()
}

func (c *Character) SkillPointsPerLevel() int {
	return c.engine.SkillPointsPerLevel(&engine.SkillPointsInput{
		Class:        &c.class,
		Race:         &c.race,
		Stats:        c.stats,
		TraitBonuses: c.traitBonuses,
	})
}

// SkillPointsSpent is the sum of all purchased ranks
func (c *Character) SkillPointsSpent() int {
	return c.skillRanks.Total()
}

// SkillPointPool is what remains of level times skill points per level
func (c *Character) SkillPointPool() int {
	return c.allowedSkillPoints() - c.SkillPointsSpent()
}

func (c *Character) allowedSkillPoints() int {
	return c.level * c.SkillPointsPerLevel()
}

func (c *Character) TotalFeatSlots() int {
	return c.engine.TotalFeatSlots(&engine.FeatSlotsInput{
		Level: c.level,
		Class: &c.class,
		Race:  &c.race,
	})
}

// AvailableFeats lists catalog feats whose prerequisites are currently met.
// Feats already chosen are included.
func (c *Character) AvailableFeats() []wotr.Feat {
	return c.engine.AvailableFeats(&engine.AvailableFeatsInput{
		Candidates: c.catalog.ListFeats(),
		Context:    c.featContext(),
	})
}

// HeritageOptions lists the heritages compatible with the current race
func (c *Character) HeritageOptions() []wotr.Heritage {
	out := make([]wotr.Heritage, 0, len(c.heritageOptions))
	for _, h := range c.heritageOptions {
		out = append(out, h.Clone())
	}
	return out
}

// LastRemovedFeats returns the feats dropped by the most recent validation
func (c *Character) LastRemovedFeats() []string {
	return append([]string{}, c.lastRemovedFeats...)
}

// Data returns the choices that make up this build
func (c *Character) Data() *wotr.CharacterData {
	data := &wotr.CharacterData{
		ID:            c.id,
		Name:          c.name,
		Race:          c.race.Name,
		Class:         c.class.Name,
		Level:         c.level,
		PointBuyStats: c.pointBuy.Clone(),
		SkillRanks:    c.skillRanks.Clone(),
		Feats:         c.FeatNames(),
	}
	if c.archetype != nil {
		data.Archetype = c.archetype.Name
	}
	if c.heritage != nil {
		data.Heritage = c.heritage.Name
	}
	if c.background != nil {
		data.Background = c.background.Name
	}
	return data
}

func (c *Character) featContext() *engine.FeatContext {
	return &engine.FeatContext{
		Level:       c.level,
		Stats:       c.stats,
		ChosenFeats: c.FeatNames(),
	}
}

func (c *Character) featIndex(name string) int {
	for i, f := range c.feats {
		if f.Name == name {
			return i
		}
	}
	return -1
}
