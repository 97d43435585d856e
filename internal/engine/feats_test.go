package engine_test

import (
	"github.com/KirkDiggler/wotr-planner/internal/engine"
	"github.com/KirkDiggler/wotr-planner/internal/entities/wotr"
)

type featBook map[string]wotr.Feat

func (b featBook) GetFeat(name string) (wotr.Feat, bool) {
	f, ok := b[name]
	return f, ok
}

func newFeatBook(feats ...wotr.Feat) featBook {
	book := featBook{}
	for _, f := range feats {
		book[f.Name] = f
	}
	return book
}

func featNames(feats []wotr.Feat) []string {
	out := make([]string, 0, len(feats))
	for _, f := range feats {
		out = append(out, f.Name)
	}
	return out
}

func (s *EngineTestSuite) TestIsFeatEligible() {
	cleave := wotr.Feat{
		Name:              "Cleave",
		PrerequisiteLevel: 3,
		PrerequisiteStats: map[wotr.Ability]int{wotr.AbilityStr: 13},
		PrerequisiteFeats: []string{"Power Attack"},
	}
	strong := wotr.NewAbilityScores(10)
	strong[wotr.AbilityStr] = 13

	s.True(s.engine.IsFeatEligible(cleave, &engine.FeatContext{
		Level: 3, Stats: strong, ChosenFeats: []string{"Power Attack"},
	}))
	s.False(s.engine.IsFeatEligible(cleave, &engine.FeatContext{
		Level: 2, Stats: strong, ChosenFeats: []string{"Power Attack"},
	}), "level")
	s.False(s.engine.IsFeatEligible(cleave, &engine.FeatContext{
		Level: 3, Stats: wotr.NewAbilityScores(10), ChosenFeats: []string{"Power Attack"},
	}), "stat")
	s.False(s.engine.IsFeatEligible(cleave, &engine.FeatContext{
		Level: 3, Stats: strong,
	}), "feat")

	s.True(s.engine.IsFeatEligible(wotr.Feat{Name: "Dodge"}, &engine.FeatContext{Level: 1}))
	s.True(s.engine.IsFeatEligible(wotr.Feat{Name: "Dodge"}, &engine.FeatContext{
		Level: 1, ChosenFeats: []string{"Dodge"},
	}), "already chosen feats are not excluded")
}

func (s *EngineTestSuite) TestAvailableFeats() {
	candidates := []wotr.Feat{
		{Name: "Dodge"},
		{Name: "Mobility", PrerequisiteFeats: []string{"Dodge"}},
		{Name: "Great Fortitude"},
		{Name: "Vital Strike", PrerequisiteLevel: 6},
	}

	got := s.engine.AvailableFeats(&engine.AvailableFeatsInput{
		Candidates: candidates,
		Context:    &engine.FeatContext{Level: 1, Stats: wotr.NewAbilityScores(10)},
	})
	s.Equal([]string{"Dodge", "Great Fortitude"}, featNames(got))

	got = s.engine.AvailableFeats(&engine.AvailableFeatsInput{
		Candidates: candidates,
		Context:    &engine.FeatContext{Level: 6, ChosenFeats: []string{"Dodge"}},
	})
	s.Equal([]string{"Dodge", "Mobility", "Great Fortitude", "Vital Strike"}, featNames(got))
}

func (s *EngineTestSuite) TestValidateFeatsCascade() {
	a := wotr.Feat{Name: "A"}
	b := wotr.Feat{Name: "B", PrerequisiteFeats: []string{"A"}}
	c := wotr.Feat{Name: "C", PrerequisiteFeats: []string{"B"}}
	book := newFeatBook(a, b, c)

	s.Run("missing prerequisite cascades through the chain", func() {
		out := s.engine.ValidateFeats(&engine.ValidateFeatsInput{
			Chosen:  []wotr.Feat{c, b},
			Catalog: book,
			Level:   1,
			Stats:   wotr.NewAbilityScores(10),
			Slots:   10,
		})
		s.Empty(out.Kept)
		s.Equal([]string{"B", "C"}, out.Removed)
	})

	s.Run("stat loss removes dependents", func() {
		strong := wotr.Feat{Name: "Power Attack", PrerequisiteStats: map[wotr.Ability]int{wotr.AbilityStr: 13}}
		cleave := wotr.Feat{Name: "Cleave", PrerequisiteFeats: []string{"Power Attack"}}
		out := s.engine.ValidateFeats(&engine.ValidateFeatsInput{
			Chosen:  []wotr.Feat{strong, cleave, a},
			Catalog: newFeatBook(strong, cleave, a),
			Level:   1,
			Stats:   wotr.NewAbilityScores(10),
			Slots:   10,
		})
		s.Equal([]string{"A"}, featNames(out.Kept))
		s.Equal([]string{"Cleave", "Power Attack"}, out.Removed)
	})

	s.Run("catalog definition wins over the held copy", func() {
		held := wotr.Feat{Name: "Vital Strike"}
		out := s.engine.ValidateFeats(&engine.ValidateFeatsInput{
			Chosen:  []wotr.Feat{held},
			Catalog: newFeatBook(wotr.Feat{Name: "Vital Strike", PrerequisiteLevel: 6}),
			Level:   1,
			Slots:   10,
		})
		s.Equal([]string{"Vital Strike"}, out.Removed)
	})

	s.Run("unknown feats are kept", func() {
		ghost := wotr.Feat{Name: "Homebrew", PrerequisiteLevel: 20}
		out := s.engine.ValidateFeats(&engine.ValidateFeatsInput{
			Chosen:  []wotr.Feat{ghost},
			Catalog: book,
			Level:   1,
			Slots:   10,
		})
		s.Equal([]string{"Homebrew"}, featNames(out.Kept))
		s.Empty(out.Removed)
	})
}

func (s *EngineTestSuite) TestValidateFeatsSlotTrim() {
	p, q, r, x := wotr.Feat{Name: "P"}, wotr.Feat{Name: "Q"}, wotr.Feat{Name: "R"}, wotr.Feat{Name: "S"}

	out := s.engine.ValidateFeats(&engine.ValidateFeatsInput{
		Chosen:  []wotr.Feat{p, q, r, x},
		Catalog: newFeatBook(p, q, r, x),
		Level:   1,
		Slots:   3,
	})

	s.Equal([]string{"P", "Q", "R"}, featNames(out.Kept))
	s.Equal([]string{"S"}, out.Removed)
}

func (s *EngineTestSuite) TestValidateFeatsFixedPoint() {
	feats := []wotr.Feat{
		{Name: "A"},
		{Name: "B", PrerequisiteFeats: []string{"A"}},
		{Name: "C", PrerequisiteFeats: []string{"B"}, PrerequisiteLevel: 4},
		{Name: "D", PrerequisiteFeats: []string{"C"}},
		{Name: "E"},
		{Name: "F"},
	}
	book := newFeatBook(feats...)
	input := &engine.ValidateFeatsInput{
		Chosen:  feats,
		Catalog: book,
		Level:   2,
		Stats:   wotr.NewAbilityScores(10),
		Slots:   3,
	}

	first := s.engine.ValidateFeats(input)
	s.Equal([]string{"A", "B", "E"}, featNames(first.Kept))
	s.Equal([]string{"C", "D", "F"}, first.Removed)
	s.LessOrEqual(first.Passes, len(feats)+1)

	input.Chosen = first.Kept
	second := s.engine.ValidateFeats(input)
	s.Empty(second.Removed)
	s.Equal(featNames(first.Kept), featNames(second.Kept))
	s.Equal(1, second.Passes)

	s.Len(feats, 6, "input slice is not mutated")
	s.Equal("D", feats[3].Name)
}

func (s *EngineTestSuite) TestValidateFeatsEmpty() {
	out := s.engine.ValidateFeats(&engine.ValidateFeatsInput{Level: 1, Slots: 1})
	s.NotNil(out.Kept)
	s.NotNil(out.Removed)
	s.Empty(out.Removed)
}
