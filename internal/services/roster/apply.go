package roster

import (
	"context"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/wotr-planner/internal/entities/wotr"
	"github.com/KirkDiggler/wotr-planner/internal/orchestrators/character"
)

// Choice names used in rejections
const (
	ChoiceName       = "name"
	ChoiceRace       = "race"
	ChoiceClass      = "class"
	ChoiceHeritage   = "heritage"
	ChoiceBackground = "background"
	ChoiceLevel      = "level"
	ChoiceStat       = "stat"
	ChoiceSkill      = "skill"
	ChoiceFeat       = "feat"
)

// Rejection is one choice the character refused
type Rejection struct {
	Choice string
	Value  string
}

func (r Rejection) String() string {
	return fmt.Sprintf("%s %s", r.Choice, r.Value)
}

// ApplyBuild replays build choices onto c through its mutators, in the order
// the choices depend on each other: race before heritage, class before
// feats, level and scores before ranks and feats. Empty and zero fields are
// left alone. Every refused choice is returned.
func ApplyBuild(ctx context.Context, c *character.Character, build *wotr.CharacterData) []Rejection {
	var rejected []Rejection
	reject := func(choice, value string) {
		rejected = append(rejected, Rejection{Choice: choice, Value: value})
	}

	if build.Name != "" && build.Name != c.Name() && !c.SetName(ctx, build.Name) {
		reject(ChoiceName, build.Name)
	}
	if build.Race != "" && build.Race != c.Race().Name && !c.SetRace(ctx, build.Race) {
		reject(ChoiceRace, build.Race)
	}
	if build.Class != "" || build.Archetype != "" {
		className := build.Class
		if className == "" {
			className = c.Class().Name
		}
		if !c.SetClass(ctx, className, build.Archetype) {
			reject(ChoiceClass, classLabel(className, build.Archetype))
		}
	}
	if build.Heritage != "" && !c.SetHeritage(ctx, build.Heritage) {
		reject(ChoiceHeritage, build.Heritage)
	}
	if build.Background != "" && !c.SetBackground(ctx, build.Background) {
		reject(ChoiceBackground, build.Background)
	}
	if build.Level > 0 && build.Level != c.Level() && !c.SetLevel(ctx, build.Level) {
		reject(ChoiceLevel, strconv.Itoa(build.Level))
	}

	for _, ability := range scoreOrder(c.PointBuyStats(), build.PointBuyStats) {
		value := build.PointBuyStats[ability]
		if !c.SetAbilityScore(ctx, ability, value) {
			reject(ChoiceStat, fmt.Sprintf("%s=%d", ability, value))
		}
	}

	for _, skill := range wotr.Skills {
		rank, ok := build.SkillRanks[skill]
		if !ok || rank == c.SkillRanks()[skill] {
			continue
		}
		if !c.SetSkillRank(ctx, skill, rank) {
			reject(ChoiceSkill, fmt.Sprintf("%s=%d", skill, rank))
		}
	}

	for _, name := range build.Feats {
		if c.HasFeat(name) {
			continue
		}
		if !c.AddFeat(ctx, name) {
			reject(ChoiceFeat, name)
		}
	}

	return rejected
}

// scoreOrder lists the abilities that change, refunds first so a build that
// spends the whole budget never passes through an over-budget state
func scoreOrder(current, target wotr.AbilityScores) []wotr.Ability {
	var lower, higher []wotr.Ability
	for _, ability := range wotr.Abilities {
		value, ok := target[ability]
		if !ok || value == current[ability] {
			continue
		}
		if value < current[ability] {
			lower = append(lower, ability)
		} else {
			higher = append(higher, ability)
		}
	}
	return append(lower, higher...)
}

func classLabel(class, archetype string) string {
	if archetype == "" {
		return class
	}
	return class + "/" + archetype
}
