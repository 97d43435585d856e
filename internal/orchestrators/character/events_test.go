package character_test

import (
	"context"
	"errors"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/wotr-planner/internal/entities/wotr"
	"github.com/KirkDiggler/wotr-planner/internal/orchestrators/character"
	"github.com/KirkDiggler/wotr-planner/internal/testutils"
)

func (s *CharacterTestSuite) TestOneEventPerAcceptedMutation() {
	c := s.char
	ctx := s.ctx

	s.True(c.SetName(ctx, testutils.TestCharacterName))
	s.True(c.SetAbilityScore(ctx, wotr.AbilityStr, 13))
	s.True(c.SetRace(ctx, testutils.RaceElf))
	s.True(c.SetHeritage(ctx, testutils.HeritageDrow))
	s.True(c.SetClass(ctx, testutils.ClassFighter, testutils.ArchetypeAldoriDefender))
	s.True(c.SetBackground(ctx, testutils.BackgroundScholar))
	s.True(c.SetSkillRank(ctx, wotr.SkillAthletics, 1))
	s.True(c.AddFeat(ctx, testutils.FeatPowerAttack))
	s.True(c.RemoveFeat(ctx, testutils.FeatPowerAttack))
	s.True(c.LevelUp(ctx))
	s.True(c.SetLevel(ctx, 1))

	s.Equal([]string{
		character.EventNameChanged,
		character.EventStatsChanged,
		character.EventRaceChanged,
		character.EventHeritageChanged,
		character.EventClassChanged,
		character.EventBackgroundChanged,
		character.EventSkillsChanged,
		character.EventFeatsChanged,
		character.EventFeatsChanged,
		character.EventLevelChanged,
		character.EventLevelChanged,
	}, s.bus.published)
}

func (s *CharacterTestSuite) TestRejectedMutationsPublishNothing() {
	c := s.char
	ctx := s.ctx
	before := c.Data()

	s.False(c.SetRace(ctx, "Tiefling"))
	s.False(c.SetClass(ctx, testutils.ClassWizard, testutils.ArchetypeAldoriDefender))
	s.False(c.SetHeritage(ctx, testutils.HeritageDrow))
	s.False(c.SetBackground(ctx, "Pirate"))
	s.False(c.SetAbilityScore(ctx, wotr.AbilityStr, 19))
	s.False(c.SetSkillRank(ctx, wotr.SkillAthletics, -1))
	s.False(c.AddFeat(ctx, "Mythic Power"))
	s.False(c.RemoveFeat(ctx, testutils.FeatToughness))
	s.False(c.SetLevel(ctx, 0))

	s.Empty(s.bus.published)
	s.Equal(before, c.Data())
}

func (s *CharacterTestSuite) TestNestedMutationIsRejected() {
	c := s.char
	var nested []bool
	s.bus.onPublish = func(ctx context.Context, _ events.Event) {
		nested = append(nested,
			c.SetName(ctx, "nested"),
			c.LevelUp(ctx),
			c.ValidateFeats(ctx) != nil,
		)
	}

	s.True(c.SetName(s.ctx, testutils.TestCharacterName))

	s.Equal([]bool{false, false, false}, nested)
	s.Equal(testutils.TestCharacterName, c.Name())
	s.Equal(1, c.Level())
	s.Equal([]string{character.EventNameChanged}, s.bus.published)

	s.bus.onPublish = nil
	s.True(c.SetName(s.ctx, "Lann"), "guard is released after the mutation")
	s.Equal("Lann", c.Name())
}

func (s *CharacterTestSuite) TestGuardReleasedAfterPanic() {
	c := s.char
	s.bus.onPublish = func(context.Context, events.Event) {
		panic("subscriber blew up")
	}

	s.Panics(func() {
		c.SetName(s.ctx, "Wenduag")
	})

	s.bus.onPublish = nil
	s.True(c.SetName(s.ctx, "Ember"))
}

func (s *CharacterTestSuite) TestPublishFailureDoesNotRejectMutation() {
	s.bus.err = errors.New("bus unavailable")

	s.True(s.char.LevelUp(s.ctx))
	s.Equal(2, s.char.Level())
}

func (s *CharacterTestSuite) TestSubscribersSeeUpdatedState() {
	bus := events.NewBus()
	e := s.engine
	c, err := character.New(&character.Config{
		Catalog:  s.catalog,
		Engine:   e,
		EventBus: bus,
		ID:       "char-2",
	})
	s.Require().NoError(err)

	var seenLevel int
	var sourceID string
	bus.SubscribeFunc(character.EventLevelChanged, 100, func(_ context.Context, event events.Event) error {
		seenLevel = c.Level()
		sourceID = event.Source().GetID()
		return nil
	})

	s.True(c.SetLevel(s.ctx, 6))
	s.Equal(6, seenLevel)
	s.Equal("char-2", sourceID)
}

func (s *CharacterTestSuite) TestData() {
	c := s.char
	ctx := s.ctx
	s.True(c.SetName(ctx, testutils.TestCharacterName))
	s.True(c.SetRace(ctx, testutils.RaceDwarf))
	s.True(c.SetHeritage(ctx, testutils.HeritageAncientDwarf))
	s.True(c.SetClass(ctx, testutils.ClassFighter, testutils.ArchetypeAldoriDefender))
	s.True(c.SetBackground(ctx, testutils.BackgroundFarmhand))
	s.True(c.SetLevel(ctx, 2))
	s.True(c.SetAbilityScore(ctx, wotr.AbilityStr, 13))
	s.True(c.SetSkillRank(ctx, wotr.SkillAthletics, 2))
	s.True(c.AddFeat(ctx, testutils.FeatPowerAttack))

	data := c.Data()

	s.Equal("char-1", data.ID)
	s.Equal(testutils.TestCharacterName, data.Name)
	s.Equal(testutils.RaceDwarf, data.Race)
	s.Equal(testutils.HeritageAncientDwarf, data.Heritage)
	s.Equal(testutils.ClassFighter, data.Class)
	s.Equal(testutils.ArchetypeAldoriDefender, data.Archetype)
	s.Equal(testutils.BackgroundFarmhand, data.Background)
	s.Equal(2, data.Level)
	s.Equal(13, data.PointBuyStats[wotr.AbilityStr])
	s.Equal(2, data.SkillRanks[wotr.SkillAthletics])
	s.Equal([]string{testutils.FeatPowerAttack}, data.Feats)

	data.Feats[0] = "tampered"
	s.Equal([]string{testutils.FeatPowerAttack}, c.FeatNames())
}
