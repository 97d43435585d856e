package character_test

import (
	"github.com/KirkDiggler/wotr-planner/internal/entities/wotr"
	"github.com/KirkDiggler/wotr-planner/internal/orchestrators/character"
	"github.com/KirkDiggler/wotr-planner/internal/testutils"
)

func (s *CharacterTestSuite) TestHeritageSupersedesRaceModifiers() {
	c := s.char
	s.True(c.SetAbilityScore(s.ctx, wotr.AbilityStr, 10))
	s.True(c.SetRace(s.ctx, testutils.RaceDwarf))

	stats := c.Stats()
	s.Equal(10, stats[wotr.AbilityStr])
	s.Equal(12, stats[wotr.AbilityCon])
	s.Equal(12, stats[wotr.AbilityWis])
	s.Equal(8, stats[wotr.AbilityCha])

	s.True(c.SetHeritage(s.ctx, testutils.HeritageAncientDwarf))

	stats = c.Stats()
	s.Equal(12, stats[wotr.AbilityStr])
	s.Equal(12, stats[wotr.AbilityCon])
	s.Equal(10, stats[wotr.AbilityWis], "race Wis bonus no longer applies")
	s.Equal(8, stats[wotr.AbilityCha])

	s.True(c.SetHeritage(s.ctx, ""))
	s.Equal(10, c.Stats()[wotr.AbilityStr])
	s.Equal(12, c.Stats()[wotr.AbilityWis])
}

func (s *CharacterTestSuite) TestElfDrowHeritage() {
	c := s.char
	s.True(c.SetRace(s.ctx, testutils.RaceElf))
	s.Equal(12, c.Stats()[wotr.AbilityInt])
	s.Equal(3, c.SkillPointsPerLevel())

	options := c.HeritageOptions()
	s.Require().Len(options, 1)
	s.Equal(testutils.HeritageDrow, options[0].Name)

	s.True(c.SetHeritage(s.ctx, testutils.HeritageDrow))

	stats := c.Stats()
	s.Equal(12, stats[wotr.AbilityDex])
	s.Equal(12, stats[wotr.AbilityCha])
	s.Equal(8, stats[wotr.AbilityCon])
	s.Equal(10, stats[wotr.AbilityInt])
	s.Equal(2, c.SkillPointsPerLevel())

	s.Equal([]string{"Elven Immunities", "Darkvision"}, c.Traits())
	s.Equal(2, c.TraitBonuses().Saves["Will"])
	s.Zero(c.TraitBonuses().SkillBonuses[string(wotr.SkillPerception)], "Keen Senses was removed")
}

func (s *CharacterTestSuite) TestRaceChangeClearsIncompatibleHeritage() {
	c := s.char
	s.True(c.SetRace(s.ctx, testutils.RaceElf))
	s.True(c.SetHeritage(s.ctx, testutils.HeritageDrow))

	s.True(c.SetRace(s.ctx, testutils.RaceDwarf))
	_, ok := c.Heritage()
	s.False(ok)
	s.Equal(8, c.Stats()[wotr.AbilityCha], "dwarf modifiers apply again")

	s.resetEvents()
	s.False(c.SetHeritage(s.ctx, testutils.HeritageDrow), "drow is not a dwarf heritage")
	s.False(c.SetRace(s.ctx, "Tiefling"))
	s.Empty(s.bus.published)
	s.Equal(testutils.RaceDwarf, c.Race().Name)
}

func (s *CharacterTestSuite) TestRaceChangeRevalidatesFeats() {
	c := s.char
	s.True(c.SetAbilityScore(s.ctx, wotr.AbilityDex, 11))
	s.True(c.SetRace(s.ctx, testutils.RaceElf))
	s.Equal(13, c.Stats()[wotr.AbilityDex])
	s.True(c.AddFeat(s.ctx, testutils.FeatDodge))

	s.resetEvents()
	s.True(c.SetRace(s.ctx, testutils.RaceHuman))

	s.Empty(c.FeatNames())
	s.Equal([]string{testutils.FeatDodge}, c.LastRemovedFeats())
	s.Equal([]string{character.EventRaceChanged}, s.bus.published)
}

func (s *CharacterTestSuite) TestTraitAggregation() {
	c := s.char
	s.True(c.SetRace(s.ctx, testutils.RaceDwarf))

	s.Equal([]string{"Hardy", "Darkvision", "Stability"}, c.Traits())
	bonuses := c.TraitBonuses()
	s.Equal(2, bonuses.Saves["Fortitude"])
	s.Equal(2, bonuses.Resistances["Poison"])
	s.Equal(4, bonuses.CombatManeuverDefense)

	s.True(c.SetHeritage(s.ctx, testutils.HeritageAncientDwarf))

	s.Equal([]string{"Hardy", "Darkvision", "Steel Soul"}, c.Traits())
	bonuses = c.TraitBonuses()
	s.Equal(0, bonuses.CombatManeuverDefense)
	s.Equal(2, bonuses.Saves["Will"])
	s.Equal(2, bonuses.Saves["Fortitude"])
}
