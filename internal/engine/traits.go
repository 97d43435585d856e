package engine

import (
	"github.com/KirkDiggler/wotr-planner/internal/entities/wotr"
)

// AggregateTraits rebuilds the active trait list and its bonuses from
// scratch. Heritage removals apply to the heritage's own additions as well.
func (e *engine) AggregateTraits(input *AggregateTraitsInput) *AggregateTraitsOutput {
	out := &AggregateTraitsOutput{
		Traits:     []string{},
		Bonuses:    wotr.NewTraitBonuses(),
		Unresolved: []string{},
	}
	if input == nil {
		return out
	}

	removed := map[string]struct{}{}
	if input.Heritage != nil {
		for _, name := range input.Heritage.TraitsRemoved {
			removed[name] = struct{}{}
		}
	}

	var sources [][]string
	if input.Race != nil {
		sources = append(sources, input.Race.Traits)
	}
	if input.Heritage != nil {
		sources = append(sources, input.Heritage.Traits)
	}
	for _, list := range sources {
		for _, name := range list {
			if _, gone := removed[name]; gone {
				continue
			}
			out.Traits = append(out.Traits, name)
		}
	}

	for _, name := range out.Traits {
		if input.Registry == nil {
			out.Unresolved = append(out.Unresolved, name)
			continue
		}
		trait, ok := input.Registry.GetTrait(name)
		if !ok {
			out.Unresolved = append(out.Unresolved, name)
			continue
		}
		out.Bonuses.Add(trait)
	}

	if input.Heritage != nil {
		out.Bonuses.SkillPointsBonus += input.Heritage.SkillPointsBonus
	}

	return out
}
