package engine

import (
	"github.com/KirkDiggler/wotr-planner/internal/entities/wotr"
)

// CalculateStatsInput contains everything that contributes to effective
// ability scores
type CalculateStatsInput struct {
	PointBuy wotr.AbilityScores
	Race     *wotr.Race
	Heritage *wotr.Heritage
	Feats    []wotr.Feat
}

// CalculateSkillsInput contains everything that contributes to effective
// skill values
type CalculateSkillsInput struct {
	Ranks      wotr.SkillValues
	Feats      []wotr.Feat
	Background *wotr.Background
}

// SkillPointsInput contains the sources of skill points per level
type SkillPointsInput struct {
	Class        *wotr.Class
	Race         *wotr.Race
	Stats        wotr.AbilityScores
	TraitBonuses *wotr.TraitBonuses
}

// FeatSlotsInput contains the sources of feat slots
type FeatSlotsInput struct {
	Level int
	Class *wotr.Class
	Race  *wotr.Race
}

// FeatContext is the character state feat prerequisites are checked against
type FeatContext struct {
	Level       int
	Stats       wotr.AbilityScores
	ChosenFeats []string
}

// AvailableFeatsInput contains the candidate feats and the character state
type AvailableFeatsInput struct {
	Candidates []wotr.Feat
	Context    *FeatContext
}

// ValidateFeatsInput contains the chosen feats to validate
type ValidateFeatsInput struct {
	Chosen  []wotr.Feat
	Catalog FeatLookup
	Level   int
	Stats   wotr.AbilityScores
	Slots   int
}

// ValidateFeatsOutput contains the surviving feats and what was removed
type ValidateFeatsOutput struct {
	// Kept preserves the insertion order of the input
	Kept []wotr.Feat
	// Removed is sorted by name
	Removed []string
	// Passes is the number of prerequisite passes it took to reach a fixed point
	Passes int
}

// TrimSkillRanksInput contains ranks that may exceed the allowed total
type TrimSkillRanksInput struct {
	Ranks   wotr.SkillValues
	Allowed int
}

// TrimSkillRanksOutput contains the trimmed ranks
type TrimSkillRanksOutput struct {
	Ranks   wotr.SkillValues
	Trimmed int
}

// AggregateTraitsInput contains the trait sources
type AggregateTraitsInput struct {
	Race     *wotr.Race
	Heritage *wotr.Heritage
	Registry TraitLookup
}

// AggregateTraitsOutput contains the active traits and their combined bonuses
type AggregateTraitsOutput struct {
	Traits     []string
	Bonuses    *wotr.TraitBonuses
	Unresolved []string
}
