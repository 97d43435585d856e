package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/KirkDiggler/wotr-planner/internal/engine"
	"github.com/KirkDiggler/wotr-planner/internal/entities/wotr"
	"github.com/KirkDiggler/wotr-planner/internal/orchestrators/character"
	"github.com/KirkDiggler/wotr-planner/internal/services/roster"
)

func writeSheet(w io.Writer, c *character.Character, e engine.Engine) {
	name := c.Name()
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Fprintf(w, "%s", name)
	if c.ID() != "" {
		fmt.Fprintf(w, "  [%s]", c.ID())
	}
	fmt.Fprintln(w)

	class := c.Class().Name
	if a, ok := c.Archetype(); ok {
		class += " (" + a.Name + ")"
	}
	fmt.Fprintf(w, "Level %d %s %s\n", c.Level(), c.Race().Name, class)

	heritage, background := "-", "-"
	if h, ok := c.Heritage(); ok {
		heritage = h.Name
	}
	if b, ok := c.Background(); ok {
		background = b.Name
	}
	fmt.Fprintf(w, "Heritage: %s  Background: %s\n\n", heritage, background)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Ability\tBought\tScore\tMod")
	bought, stats := c.PointBuyStats(), c.Stats()
	for _, ability := range wotr.Abilities {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%+d\n", ability, bought[ability], stats[ability], e.AbilityModifier(stats[ability]))
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "Points spent %d of %d\n\n", c.TotalPointsSpent(), wotr.PointBuyBudget)

	fmt.Fprintf(w, "Skills: %d per level, %d unspent\n", c.SkillPointsPerLevel(), c.SkillPointPool())
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	ranks, skills := c.SkillRanks(), c.Skills()
	for _, skill := range wotr.Skills {
		if skills[skill] == 0 && ranks[skill] == 0 {
			continue
		}
		fmt.Fprintf(tw, "  %s\t%d ranks\t%d\n", skill, ranks[skill], skills[skill])
	}
	_ = tw.Flush()
	fmt.Fprintln(w)

	feats := c.FeatNames()
	fmt.Fprintf(w, "Feats (%d of %d): %s\n", len(feats), c.TotalFeatSlots(), joinOrDash(feats))
	fmt.Fprintf(w, "Traits: %s\n", joinOrDash(c.Traits()))
	writeTraitBonuses(w, c.TraitBonuses())
}

func writeTraitBonuses(w io.Writer, b *wotr.TraitBonuses) {
	var parts []string
	add := func(label string, m map[string]int) {
		for _, k := range sortedKeys(m) {
			parts = append(parts, fmt.Sprintf("%s %s %+d", label, k, m[k]))
		}
	}
	add("save", b.Saves)
	add("attack", b.AttackBonuses)
	add("skill", b.SkillBonuses)
	add("resist", b.Resistances)
	add("spell DC", b.SpellDCBonuses)
	add("dodge AC vs", b.DodgeACBonuses)
	if b.NaturalAC != 0 {
		parts = append(parts, fmt.Sprintf("natural AC %+d", b.NaturalAC))
	}
	if b.CombatManeuverBonus != 0 {
		parts = append(parts, fmt.Sprintf("CMB %+d", b.CombatManeuverBonus))
	}
	if b.CombatManeuverDefense != 0 {
		parts = append(parts, fmt.Sprintf("CMD %+d", b.CombatManeuverDefense))
	}
	for _, dr := range b.DamageReduction {
		parts = append(parts, fmt.Sprintf("DR %d/%s", dr.Amount, dr.Bypass))
	}
	for _, na := range b.NaturalAttacks {
		parts = append(parts, fmt.Sprintf("%s %s", na.Name, na.Damage))
	}
	parts = append(parts, b.InnateAbilities...)
	parts = append(parts, b.InnateFeats...)
	if b.SkillPointsBonus != 0 {
		parts = append(parts, fmt.Sprintf("skill points %+d", b.SkillPointsBonus))
	}
	if len(parts) > 0 {
		fmt.Fprintf(w, "Trait bonuses: %s\n", strings.Join(parts, ", "))
	}
}

func writeRejected(w io.Writer, rejected []roster.Rejection) {
	if len(rejected) == 0 {
		return
	}
	fmt.Fprintln(w, "Rejected choices:")
	for _, r := range rejected {
		fmt.Fprintf(w, "  %s\n", r)
	}
}

func joinOrDash(s []string) string {
	if len(s) == 0 {
		return "-"
	}
	return strings.Join(s, ", ")
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
