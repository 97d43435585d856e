package character_test

import (
	"github.com/KirkDiggler/wotr-planner/internal/entities/wotr"
	"github.com/KirkDiggler/wotr-planner/internal/orchestrators/character"
	"github.com/KirkDiggler/wotr-planner/internal/testutils"
)

func (s *CharacterTestSuite) TestAddFeat() {
	c := s.char

	s.False(c.AddFeat(s.ctx, testutils.FeatPowerAttack), "Str 10 is below the minimum")
	s.True(c.SetAbilityScore(s.ctx, wotr.AbilityStr, 13))

	s.resetEvents()
	s.True(c.AddFeat(s.ctx, testutils.FeatPowerAttack))
	s.True(c.AddFeat(s.ctx, testutils.FeatCleave))
	s.Equal([]string{character.EventFeatsChanged, character.EventFeatsChanged}, s.bus.published)

	s.resetEvents()
	s.False(c.AddFeat(s.ctx, testutils.FeatPowerAttack), "duplicate")
	s.False(c.AddFeat(s.ctx, "Mythic Power"), "unknown")
	s.False(c.AddFeat(s.ctx, testutils.FeatGreatCleave), "level 4 required")
	s.False(c.AddFeat(s.ctx, testutils.FeatMobility), "Dodge required")
	s.Empty(s.bus.published)

	s.True(c.AddFeat(s.ctx, testutils.FeatToughness))
	s.Equal(3, c.TotalFeatSlots())
	s.False(c.AddFeat(s.ctx, testutils.FeatIronWill), "no free slot")

	s.Equal([]string{
		testutils.FeatPowerAttack,
		testutils.FeatCleave,
		testutils.FeatToughness,
	}, c.FeatNames())
}

func (s *CharacterTestSuite) TestFeatModifiersFeedStats() {
	s.True(s.char.AddFeat(s.ctx, testutils.FeatInnerStrength))
	s.Equal(11, s.char.Stats()[wotr.AbilityStr])
	s.Equal(10, s.char.PointBuyStats()[wotr.AbilityStr])

	s.True(s.char.RemoveFeat(s.ctx, testutils.FeatInnerStrength))
	s.Equal(10, s.char.Stats()[wotr.AbilityStr])
}

func (s *CharacterTestSuite) TestAvailableFeats() {
	names := func() []string {
		var out []string
		for _, f := range s.char.AvailableFeats() {
			out = append(out, f.Name)
		}
		return out
	}

	s.NotContains(names(), testutils.FeatPowerAttack)
	s.Contains(names(), testutils.FeatToughness)

	s.True(s.char.SetAbilityScore(s.ctx, wotr.AbilityStr, 13))
	s.Contains(names(), testutils.FeatPowerAttack)
	s.NotContains(names(), testutils.FeatCleave)

	s.True(s.char.AddFeat(s.ctx, testutils.FeatPowerAttack))
	s.Contains(names(), testutils.FeatCleave)
	s.Contains(names(), testutils.FeatPowerAttack, "chosen feats stay listed")
}

func (s *CharacterTestSuite) TestStatLossCascades() {
	c := s.char
	s.True(c.SetAbilityScore(s.ctx, wotr.AbilityStr, 13))
	s.True(c.AddFeat(s.ctx, testutils.FeatPowerAttack))
	s.True(c.AddFeat(s.ctx, testutils.FeatCleave))
	s.True(c.AddFeat(s.ctx, testutils.FeatToughness))

	s.resetEvents()
	s.True(c.SetAbilityScore(s.ctx, wotr.AbilityStr, 12))

	s.Equal([]string{testutils.FeatToughness}, c.FeatNames())
	s.Equal([]string{testutils.FeatCleave, testutils.FeatPowerAttack}, c.LastRemovedFeats())
	s.Equal([]string{character.EventStatsChanged}, s.bus.published)
}

func (s *CharacterTestSuite) TestFeatGrantedStatCascades() {
	// Inner Strength lifts Str from 12 to 13, which is all Power Attack has
	c := s.char
	s.True(c.SetAbilityScore(s.ctx, wotr.AbilityStr, 12))
	s.True(c.AddFeat(s.ctx, testutils.FeatInnerStrength))
	s.True(c.AddFeat(s.ctx, testutils.FeatPowerAttack))
	s.True(c.AddFeat(s.ctx, testutils.FeatCleave))

	s.True(c.RemoveFeat(s.ctx, testutils.FeatInnerStrength))
	s.Equal([]string{testutils.FeatPowerAttack, testutils.FeatCleave}, c.FeatNames())

	removed := c.ValidateFeats(s.ctx)
	s.Equal([]string{testutils.FeatCleave, testutils.FeatPowerAttack}, removed)
	s.Empty(c.FeatNames())
}

func (s *CharacterTestSuite) TestRemoveFeatThenValidate() {
	c := s.char
	s.True(c.SetAbilityScore(s.ctx, wotr.AbilityDex, 13))
	s.True(c.AddFeat(s.ctx, testutils.FeatDodge))
	s.True(c.AddFeat(s.ctx, testutils.FeatMobility))

	s.resetEvents()
	s.True(c.RemoveFeat(s.ctx, testutils.FeatDodge))
	s.Equal([]string{testutils.FeatMobility}, c.FeatNames(), "removal does not cascade")
	s.False(c.RemoveFeat(s.ctx, testutils.FeatDodge))

	removed := c.ValidateFeats(s.ctx)
	s.Equal([]string{testutils.FeatMobility}, removed)
	s.Empty(c.FeatNames())
	s.Equal([]string{character.EventFeatsChanged, character.EventFeatsChanged}, s.bus.published)

	s.resetEvents()
	s.Empty(c.ValidateFeats(s.ctx), "validation reaches a fixed point")
	s.Empty(s.bus.published, "nothing removed, nothing published")
}

func (s *CharacterTestSuite) TestSlotLossKeepsEarliestFeats() {
	c := s.char
	s.True(c.SetLevel(s.ctx, 6))
	for _, name := range []string{
		testutils.FeatToughness,
		testutils.FeatIronWill,
		testutils.FeatSkillFocus,
		testutils.FeatInnerStrength,
	} {
		s.True(c.AddFeat(s.ctx, name), name)
	}

	s.True(c.SetLevel(s.ctx, 1))

	s.Equal([]string{
		testutils.FeatToughness,
		testutils.FeatIronWill,
		testutils.FeatSkillFocus,
	}, c.FeatNames())
	s.Equal([]string{testutils.FeatInnerStrength}, c.LastRemovedFeats())
	s.Equal(10, c.Stats()[wotr.AbilityStr])
}

func (s *CharacterTestSuite) TestClassChangeRevalidates() {
	c := s.char
	s.True(c.AddFeat(s.ctx, testutils.FeatToughness))
	s.True(c.AddFeat(s.ctx, testutils.FeatIronWill))
	s.True(c.AddFeat(s.ctx, testutils.FeatSkillFocus))

	s.True(c.SetClass(s.ctx, testutils.ClassWizard, ""))

	s.Equal(2, c.TotalFeatSlots())
	s.Equal([]string{testutils.FeatToughness, testutils.FeatIronWill}, c.FeatNames())
	s.Equal([]string{testutils.FeatSkillFocus}, c.LastRemovedFeats())
}

func (s *CharacterTestSuite) TestSetClassArchetype() {
	c := s.char

	s.True(c.SetClass(s.ctx, testutils.ClassFighter, testutils.ArchetypeAldoriDefender))
	a, ok := c.Archetype()
	s.True(ok)
	s.Equal(testutils.ArchetypeAldoriDefender, a.Name)

	s.resetEvents()
	s.False(c.SetClass(s.ctx, testutils.ClassWizard, testutils.ArchetypeAldoriDefender))
	s.False(c.SetClass(s.ctx, "Kineticist", ""))
	s.Empty(s.bus.published)
	s.Equal(testutils.ClassFighter, c.Class().Name)

	s.True(c.SetClass(s.ctx, testutils.ClassRogue, ""))
	_, ok = c.Archetype()
	s.False(ok)
}
