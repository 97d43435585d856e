package engine

import (
	"github.com/KirkDiggler/wotr-planner/internal/entities/wotr"
	"github.com/KirkDiggler/wotr-planner/internal/errors"
)

// DefaultPointCosts is the point-buy price of each purchasable score
var DefaultPointCosts = map[int]int{
	7:  -4,
	8:  -2,
	9:  -1,
	10: 0,
	11: 1,
	12: 2,
	13: 3,
	14: 5,
	15: 7,
	16: 10,
	17: 13,
	18: 17,
}

type engine struct {
	pointCosts map[int]int
}

// Config configures the rules engine
type Config struct {
	// PointCosts overrides the point-buy table. Nil uses DefaultPointCosts.
	PointCosts map[int]int
}

// Validate checks the point-buy table if one was supplied
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config is required")
	}
	if cfg.PointCosts != nil && len(cfg.PointCosts) == 0 {
		return errors.InvalidArgument("point costs must not be empty")
	}
	return nil
}

// New creates a rules engine
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	costs := DefaultPointCosts
	if cfg.PointCosts != nil {
		costs = cfg.PointCosts
	}
	table := make(map[int]int, len(costs))
	for score, cost := range costs {
		table[score] = cost
	}

	return &engine{pointCosts: table}, nil
}

var _ Engine = (*engine)(nil)

// PointCost returns the purchase cost of a score, 0 for anything off the table
func (e *engine) PointCost(score int) int {
	return e.pointCosts[score]
}

func (e *engine) TotalPointsSpent(scores wotr.AbilityScores) int {
	total := 0
	for _, a := range wotr.Abilities {
		if v, ok := scores[a]; ok {
			total += e.PointCost(v)
		}
	}
	return total
}

// AbilityModifier returns floor((score-10)/2). Go integer division truncates
// toward zero, so negative odd differences need one more step down.
func (e *engine) AbilityModifier(score int) int {
	d := score - 10
	if d < 0 {
		return -((-d + 1) / 2)
	}
	return d / 2
}

// CalculateStats derives effective scores from the point buy, the active
// modifier source and chosen feats. A heritage with modifiers replaces the
// race's modifiers entirely.
func (e *engine) CalculateStats(input *CalculateStatsInput) wotr.AbilityScores {
	if input == nil {
		return wotr.NewAbilityScores(wotr.PointBuyDefault)
	}

	stats := make(wotr.AbilityScores, len(wotr.Abilities))
	for _, a := range wotr.Abilities {
		v, ok := input.PointBuy[a]
		if !ok {
			v = wotr.PointBuyDefault
		}
		stats[a] = v
	}

	var source map[wotr.Ability]int
	switch {
	case input.Heritage != nil && len(input.Heritage.Modifiers) > 0:
		source = input.Heritage.Modifiers
	case input.Race != nil:
		source = input.Race.Modifiers
	}
	applyAbilityModifiers(stats, source)

	for _, feat := range input.Feats {
		applyAbilityModifiers(stats, feat.Modifiers)
	}

	return stats
}

func applyAbilityModifiers(stats wotr.AbilityScores, mods map[wotr.Ability]int) {
	for a, delta := range mods {
		if _, ok := stats[a]; ok {
			stats[a] += delta
		}
	}
}

// CalculateSkills derives effective skills from ranks, feats and background
func (e *engine) CalculateSkills(input *CalculateSkillsInput) wotr.SkillValues {
	skills := wotr.NewSkillValues()
	if input == nil {
		return skills
	}

	for s, rank := range input.Ranks {
		if wotr.IsSkill(s) {
			skills[s] = rank
		}
	}
	for _, feat := range input.Feats {
		applySkillModifiers(skills, feat.SkillModifiers)
	}
	if input.Background != nil {
		applySkillModifiers(skills, input.Background.SkillModifiers)
	}

	return skills
}

func applySkillModifiers(skills wotr.SkillValues, mods map[wotr.Skill]int) {
	for s, delta := range mods {
		if _, ok := skills[s]; ok {
			skills[s] += delta
		}
	}
}

// SkillPointsPerLevel never returns less than 1
func (e *engine) SkillPointsPerLevel(input *SkillPointsInput) int {
	if input == nil {
		return 1
	}

	intelligence, ok := input.Stats[wotr.AbilityInt]
	if !ok {
		intelligence = wotr.PointBuyDefault
	}

	points := e.AbilityModifier(intelligence)
	if input.Class != nil {
		points += input.Class.SkillPoints
	}
	if input.Race != nil {
		points += input.Race.SkillPointsBonus
	}
	if input.TraitBonuses != nil {
		points += input.TraitBonuses.SkillPointsBonus
	}

	return max(1, points)
}

// TotalFeatSlots counts the base progression plus class and race bonus feats
func (e *engine) TotalFeatSlots(input *FeatSlotsInput) int {
	if input == nil || input.Level < 1 {
		return 0
	}
	level := input.Level

	slots := (level + 1) / 2
	if input.Class != nil {
		slots += thresholdsReached(input.Class.BonusFeats, level)
		if input.Class.BonusFeatInterval > 0 {
			slots += level / input.Class.BonusFeatInterval
		}
	}
	if input.Race != nil {
		slots += thresholdsReached(input.Race.BonusFeats, level)
	}

	return slots
}

func thresholdsReached(thresholds []int, level int) int {
	n := 0
	for _, l := range thresholds {
		if level >= l {
			n++
		}
	}
	return n
}

// TrimSkillRanks walks the skills in reverse declaration order, zeroing each
// in turn until the ranks fit the allowed total
func (e *engine) TrimSkillRanks(input *TrimSkillRanksInput) *TrimSkillRanksOutput {
	if input == nil {
		return &TrimSkillRanksOutput{Ranks: wotr.NewSkillValues()}
	}

	ranks := input.Ranks.Clone()
	if ranks == nil {
		ranks = wotr.NewSkillValues()
	}

	deficit := ranks.Total() - max(0, input.Allowed)
	trimmed := 0
	for i := len(wotr.Skills) - 1; i >= 0 && deficit > 0; i-- {
		s := wotr.Skills[i]
		take := min(ranks[s], deficit)
		if take <= 0 {
			continue
		}
		ranks[s] -= take
		deficit -= take
		trimmed += take
	}

	return &TrimSkillRanksOutput{Ranks: ranks, Trimmed: trimmed}
}
