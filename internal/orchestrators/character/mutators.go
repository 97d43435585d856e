package character

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/wotr-planner/internal/entities/wotr"
)

// Every mutator reports whether the change was accepted. A rejected change
// leaves the character exactly as it was and publishes nothing.

// SetName renames the character
func (c *Character) SetName(ctx context.Context, name string) bool {
	if !c.begin(ctx, "SetName") {
		return false
	}
	defer c.end()

	c.name = name
	c.notify(ctx, EventNameChanged)
	return true
}

// LevelUp advances the character one level
func (c *Character) LevelUp(ctx context.Context) bool {
	if !c.begin(ctx, "LevelUp") {
		return false
	}
	defer c.end()

	c.level++
	c.recompute(ctx, true)
	c.notify(ctx, EventLevelChanged)
	return true
}

// SetLevel jumps to any level of at least 1. Lowering the level revalidates
// feats and trims skill ranks.
func (c *Character) SetLevel(ctx context.Context, level int) bool {
	if level < 1 {
		slog.DebugContext(ctx, "rejected level", "id", c.id, "level", level)
		return false
	}
	if !c.begin(ctx, "SetLevel") {
		return false
	}
	defer c.end()

	c.level = level
	c.recompute(ctx, true)
	c.notify(ctx, EventLevelChanged)
	return true
}

// SetRace replaces the race. A heritage that does not fit the new race is
// cleared.
func (c *Character) SetRace(ctx context.Context, name string) bool {
	race, ok := c.catalog.GetRace(name)
	if !ok {
		slog.DebugContext(ctx, "rejected unknown race", "id", c.id, "race", name)
		return false
	}
	if !c.begin(ctx, "SetRace") {
		return false
	}
	defer c.end()

	c.race = race
	c.heritageOptions = c.catalog.HeritagesForRace(race.Name)
	if c.heritage != nil && !c.heritage.CompatibleWith(race) {
		slog.DebugContext(ctx, "cleared incompatible heritage",
			"id", c.id,
			"heritage", c.heritage.Name,
			"race", race.Name)
		c.heritage = nil
	}

	c.recompute(ctx, true)
	c.notify(ctx, EventRaceChanged)
	return true
}

// SetClass replaces the class and archetype. The archetype must belong to the
// class; an empty archetype selects none.
func (c *Character) SetClass(ctx context.Context, name, archetype string) bool {
	class, ok := c.catalog.GetClass(name)
	if !ok {
		slog.DebugContext(ctx, "rejected unknown class", "id", c.id, "class", name)
		return false
	}
	var selected *wotr.Archetype
	if archetype != "" {
		for _, a := range class.Archetypes {
			if a.Name == archetype {
				selected = &a
				break
			}
		}
		if selected == nil {
			slog.DebugContext(ctx, "rejected archetype",
				"id", c.id,
				"class", name,
				"archetype", archetype)
			return false
		}
	}
	if !c.begin(ctx, "SetClass") {
		return false
	}
	defer c.end()

	c.class = class
	c.archetype = selected
	c.recompute(ctx, true)
	c.notify(ctx, EventClassChanged)
	return true
}

// SetHeritage selects one of the current heritage options. An empty name
// clears the heritage.
func (c *Character) SetHeritage(ctx context.Context, name string) bool {
	var selected *wotr.Heritage
	if name != "" {
		for _, h := range c.heritageOptions {
			if h.Name == name {
				h = h.Clone()
				selected = &h
				break
			}
		}
		if selected == nil {
			slog.DebugContext(ctx, "rejected heritage",
				"id", c.id,
				"heritage", name,
				"race", c.race.Name)
			return false
		}
	}
	if !c.begin(ctx, "SetHeritage") {
		return false
	}
	defer c.end()

	c.heritage = selected
	c.recompute(ctx, true)
	c.notify(ctx, EventHeritageChanged)
	return true
}

// SetBackground selects a background. An empty name clears it.
func (c *Character) SetBackground(ctx context.Context, name string) bool {
	var selected *wotr.Background
	if name != "" {
		b, ok := c.catalog.GetBackground(name)
		if !ok {
			slog.DebugContext(ctx, "rejected unknown background", "id", c.id, "background", name)
			return false
		}
		selected = &b
	}
	if !c.begin(ctx, "SetBackground") {
		return false
	}
	defer c.end()

	c.background = selected
	c.recompute(ctx, false)
	c.notify(ctx, EventBackgroundChanged)
	return true
}

// SetAbilityScore changes one purchased score. The value must be on the
// point-buy table and the total cost must stay within budget.
func (c *Character) SetAbilityScore(ctx context.Context, ability wotr.Ability, value int) bool {
	if !wotr.IsAbility(ability) || value < wotr.PointBuyMin || value > wotr.PointBuyMax {
		slog.DebugContext(ctx, "rejected ability score",
			"id", c.id,
			"ability", ability,
			"value", value)
		return false
	}

	proposed := c.pointBuy.Clone()
	proposed[ability] = value
	if spent := c.engine.TotalPointsSpent(proposed); spent > wotr.PointBuyBudget {
		slog.DebugContext(ctx, "rejected ability score over budget",
			"id", c.id,
			"ability", ability,
			"value", value,
			"spent", spent)
		return false
	}
	if !c.begin(ctx, "SetAbilityScore") {
		return false
	}
	defer c.end()

	c.pointBuy = proposed
	c.recompute(ctx, true)
	c.notify(ctx, EventStatsChanged)
	return true
}

// SetSkillRank sets the ranks in one skill. Ranks above the character level
// are clamped to it; a rank that would overspend the pool is rejected.
func (c *Character) SetSkillRank(ctx context.Context, skill wotr.Skill, rank int) bool {
	if !wotr.IsSkill(skill) || rank < 0 {
		slog.DebugContext(ctx, "rejected skill rank", "id", c.id, "skill", skill, "rank", rank)
		return false
	}
	rank = min(rank, c.level)

	proposed := c.skillRanks.Clone()
	proposed[skill] = rank
	if proposed.Total() > c.allowedSkillPoints() {
		slog.DebugContext(ctx, "rejected skill rank over pool",
			"id", c.id,
			"skill", skill,
			"rank", rank,
			"pool", c.SkillPointPool())
		return false
	}
	if !c.begin(ctx, "SetSkillRank") {
		return false
	}
	defer c.end()

	c.skillRanks = proposed
	c.recompute(ctx, false)
	c.notify(ctx, EventSkillsChanged)
	return true
}

// AddFeat takes a feat from the catalog if a slot is free and every
// prerequisite is met
func (c *Character) AddFeat(ctx context.Context, name string) bool {
	feat, ok := c.catalog.GetFeat(name)
	if !ok {
		slog.DebugContext(ctx, "rejected unknown feat", "id", c.id, "feat", name)
		return false
	}
	if reason := c.featRejection(feat); reason != "" {
		slog.DebugContext(ctx, "rejected feat", "id", c.id, "feat", name, "reason", reason)
		return false
	}
	if !c.begin(ctx, "AddFeat") {
		return false
	}
	defer c.end()

	c.feats = append(c.feats, feat)
	c.recompute(ctx, false)
	c.notify(ctx, EventFeatsChanged)
	return true
}

func (c *Character) featRejection(feat wotr.Feat) string {
	switch {
	case c.HasFeat(feat.Name):
		return "already chosen"
	case len(c.feats) >= c.TotalFeatSlots():
		return "no free slot"
	case !c.engine.IsFeatEligible(feat, c.featContext()):
		return "prerequisites not met"
	}
	return ""
}

// RemoveFeat drops a single chosen feat. Feats that required it stay until
// the next validation.
func (c *Character) RemoveFeat(ctx context.Context, name string) bool {
	i := c.featIndex(name)
	if i < 0 {
		slog.DebugContext(ctx, "rejected removal of feat not chosen", "id", c.id, "feat", name)
		return false
	}
	if !c.begin(ctx, "RemoveFeat") {
		return false
	}
	defer c.end()

	c.feats = append(c.feats[:i:i], c.feats[i+1:]...)
	c.recompute(ctx, false)
	c.notify(ctx, EventFeatsChanged)
	return true
}

// ValidateFeats removes chosen feats that no longer qualify, cascading to
// anything that depended on them, and returns the removed names in sorted
// order. A notification is published only if something was removed.
func (c *Character) ValidateFeats(ctx context.Context) []string {
	if !c.begin(ctx, "ValidateFeats") {
		return nil
	}
	defer c.end()

	removed := c.recompute(ctx, true)
	if len(removed) > 0 {
		c.notify(ctx, EventFeatsChanged)
	}
	return append([]string{}, removed...)
}
