package engine_test

import (
	"github.com/KirkDiggler/wotr-planner/internal/engine"
	"github.com/KirkDiggler/wotr-planner/internal/entities/wotr"
)

type traitBook map[string]wotr.Trait

func (b traitBook) GetTrait(name string) (wotr.Trait, bool) {
	t, ok := b[name]
	return t, ok
}

func (s *EngineTestSuite) TestAggregateTraits() {
	registry := traitBook{
		"Hardy": {
			Name:            "Hardy",
			Saves:           map[string]int{"Fortitude": 2},
			DamageReduction: []wotr.DamageReduction{{Amount: 1, Bypass: "Adamantine"}},
		},
		"Darkvision": {Name: "Darkvision", InnateAbilities: []string{"Darkvision"}},
		"Stonecunning": {
			Name:         "Stonecunning",
			SkillBonuses: map[string]int{"Perception": 2},
		},
		"Tunnel Rat": {
			Name:             "Tunnel Rat",
			Saves:            map[string]int{"Fortitude": 1, "Reflex": 1},
			SkillPointsBonus: 1,
		},
	}
	dwarf := &wotr.Race{Name: "Dwarf", Traits: []string{"Hardy", "Darkvision", "Stonecunning"}}

	s.Run("race only", func() {
		out := s.engine.AggregateTraits(&engine.AggregateTraitsInput{Race: dwarf, Registry: registry})
		s.Equal([]string{"Hardy", "Darkvision", "Stonecunning"}, out.Traits)
		s.Equal(2, out.Bonuses.Saves["Fortitude"])
		s.Equal([]string{"Darkvision"}, out.Bonuses.InnateAbilities)
		s.Len(out.Bonuses.DamageReduction, 1)
		s.Empty(out.Unresolved)
	})

	s.Run("heritage removes and adds", func() {
		heritage := &wotr.Heritage{
			Name:             "Deep Dwarf",
			Traits:           []string{"Tunnel Rat", "Stonecunning"},
			TraitsRemoved:    []string{"Stonecunning"},
			SkillPointsBonus: 2,
		}
		out := s.engine.AggregateTraits(&engine.AggregateTraitsInput{
			Race:     dwarf,
			Heritage: heritage,
			Registry: registry,
		})
		s.Equal([]string{"Hardy", "Darkvision", "Tunnel Rat"}, out.Traits)
		s.Equal(3, out.Bonuses.Saves["Fortitude"])
		s.Equal(1, out.Bonuses.Saves["Reflex"])
		s.Empty(out.Bonuses.SkillBonuses)
		s.Equal(3, out.Bonuses.SkillPointsBonus)
	})

	s.Run("unresolved names are reported", func() {
		out := s.engine.AggregateTraits(&engine.AggregateTraitsInput{
			Race:     &wotr.Race{Traits: []string{"Hardy", "Mystery"}},
			Registry: registry,
		})
		s.Equal([]string{"Hardy", "Mystery"}, out.Traits)
		s.Equal([]string{"Mystery"}, out.Unresolved)
	})

	s.Run("not incremental", func() {
		input := &engine.AggregateTraitsInput{Race: dwarf, Registry: registry}
		first := s.engine.AggregateTraits(input)
		second := s.engine.AggregateTraits(input)
		s.Equal(first.Bonuses, second.Bonuses)
		s.Equal(2, second.Bonuses.Saves["Fortitude"])
	})

	s.Run("nothing selected is the zero form", func() {
		out := s.engine.AggregateTraits(&engine.AggregateTraitsInput{Registry: registry})
		s.Empty(out.Traits)
		s.Equal(wotr.NewTraitBonuses(), out.Bonuses)
	})
}
