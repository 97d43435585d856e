package character

import (
	"context"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/wotr-planner/internal/engine"
)

// recompute re-derives every dependent value in dependency order. Traits go
// first because they feed skill points; stats next because feats and skill
// points read them. With validate set, chosen feats are checked until stable
// and the names removed are returned.
func (c *Character) recompute(ctx context.Context, validate bool) []string {
	c.refreshTraits(ctx)
	c.refreshStats()

	var removed []string
	if validate {
		removed = c.enforceFeats(ctx)
		c.lastRemovedFeats = removed
	}

	c.enforceSkillLimits(ctx)
	c.refreshSkills()

	return removed
}

func (c *Character) refreshTraits(ctx context.Context) {
	out := c.engine.AggregateTraits(&engine.AggregateTraitsInput{
		Race:     &c.race,
		Heritage: c.heritage,
		Registry: c.catalog,
	})
	if len(out.Unresolved) > 0 {
		slog.DebugContext(ctx, "traits missing from catalog", "id", c.id, "traits", out.Unresolved)
	}
	c.traits = out.Traits
	c.traitBonuses = out.Bonuses
}

func (c *Character) refreshStats() {
	c.stats = c.engine.CalculateStats(&engine.CalculateStatsInput{
		PointBuy: c.pointBuy,
		Race:     &c.race,
		Heritage: c.heritage,
		Feats:    c.feats,
	})
}

func (c *Character) refreshSkills() {
	c.skills = c.engine.CalculateSkills(&engine.CalculateSkillsInput{
		Ranks:      c.skillRanks,
		Feats:      c.feats,
		Background: c.background,
	})
}

// enforceFeats drops feats until a validation pass removes nothing. Stats are
// re-derived between passes since a dropped feat may have carried the ability
// bonus another feat depends on.
func (c *Character) enforceFeats(ctx context.Context) []string {
	removed := map[string]struct{}{}

	for range len(c.feats) + 1 {
		out := c.engine.ValidateFeats(&engine.ValidateFeatsInput{
			Chosen:  c.feats,
			Catalog: c.catalog,
			Level:   c.level,
			Stats:   c.stats,
			Slots:   c.TotalFeatSlots(),
		})
		if len(out.Removed) == 0 {
			break
		}
		for _, name := range out.Removed {
			removed[name] = struct{}{}
		}
		c.feats = out.Kept
		c.refreshStats()
	}

	names := make([]string, 0, len(removed))
	for name := range removed {
		names = append(names, name)
	}
	sort.Strings(names)

	if len(names) > 0 {
		slog.InfoContext(ctx, "removed feats that no longer qualify", "id", c.id, "feats", names)
	}
	return names
}

// enforceSkillLimits caps each rank at the character level and then trims
// ranks until the total fits the pool
func (c *Character) enforceSkillLimits(ctx context.Context) {
	for s, rank := range c.skillRanks {
		if rank > c.level {
			c.skillRanks[s] = c.level
		}
	}

	allowed := c.allowedSkillPoints()
	if c.skillRanks.Total() <= allowed {
		return
	}

	out := c.engine.TrimSkillRanks(&engine.TrimSkillRanksInput{
		Ranks:   c.skillRanks,
		Allowed: allowed,
	})
	c.skillRanks = out.Ranks

	slog.InfoContext(ctx, "trimmed skill ranks over the limit",
		"id", c.id,
		"trimmed", out.Trimmed,
		"allowed", allowed)
}
