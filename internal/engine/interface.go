// Package engine implements the planner's rules: point buy, skill points,
// feat slots, feat prerequisites and trait aggregation
package engine

import (
	"github.com/KirkDiggler/wotr-planner/internal/entities/wotr"
)

// Engine provides game mechanics and rules calculations.
// Every method is a pure function of its input; none of them mutate the
// records or maps they are given.
type Engine interface {
	// Point buy
	PointCost(score int) int
	TotalPointsSpent(scores wotr.AbilityScores) int
	AbilityModifier(score int) int

	// Derived values
	CalculateStats(input *CalculateStatsInput) wotr.AbilityScores
	CalculateSkills(input *CalculateSkillsInput) wotr.SkillValues
	SkillPointsPerLevel(input *SkillPointsInput) int
	TotalFeatSlots(input *FeatSlotsInput) int

	// Skill limit enforcement
	TrimSkillRanks(input *TrimSkillRanksInput) *TrimSkillRanksOutput

	// Feats
	IsFeatEligible(feat wotr.Feat, input *FeatContext) bool
	AvailableFeats(input *AvailableFeatsInput) []wotr.Feat
	ValidateFeats(input *ValidateFeatsInput) *ValidateFeatsOutput

	// Traits
	AggregateTraits(input *AggregateTraitsInput) *AggregateTraitsOutput
}

// FeatLookup resolves a feat definition by name
type FeatLookup interface {
	GetFeat(name string) (wotr.Feat, bool)
}

// TraitLookup resolves a trait definition by name
type TraitLookup interface {
	GetTrait(name string) (wotr.Trait, bool)
}
