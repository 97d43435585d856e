package catalog

import (
	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/wotr-planner/internal/entities/wotr"
)

func parseRace(r gjson.Result) wotr.Race {
	return wotr.Race{
		Name:             str(r, "name"),
		Description:      str(r, "description"),
		Modifiers:        abilityMap(r, "modifiers"),
		SkillPointsBonus: num(r, "skill_points_bonus", 0),
		BonusFeats:       ints(r, "bonus_feats"),
		Traits:           strs(r, "traits"),
		Heritages:        strs(r, "heritages"),
	}
}

func parseClass(r gjson.Result) wotr.Class {
	c := wotr.Class{
		Name:              str(r, "name"),
		Description:       str(r, "description"),
		BaseHP:            num(r, "base_hp", 0),
		SkillPoints:       num(r, "skill_points", 0),
		BonusFeatInterval: num(r, "bonus_feat_interval", 0),
		BonusFeats:        ints(r, "bonus_feats"),
	}
	for _, a := range array(r, "archetypes") {
		if !a.IsObject() {
			continue
		}
		c.Archetypes = append(c.Archetypes, wotr.Archetype{
			Name:        str(a, "name"),
			Description: str(a, "description"),
		})
	}
	return c
}

func parseHeritage(r gjson.Result) wotr.Heritage {
	return wotr.Heritage{
		Name:             str(r, "name"),
		Description:      str(r, "description"),
		Race:             str(r, "race"),
		Modifiers:        abilityMap(r, "modifiers"),
		Traits:           strs(r, "traits"),
		TraitsRemoved:    strs(r, "traits_removed"),
		SkillPointsBonus: num(r, "skill_points_bonus", 0),
	}
}

func parseBackground(r gjson.Result) wotr.Background {
	return wotr.Background{
		Name:           str(r, "name"),
		Description:    str(r, "description"),
		SkillModifiers: skillMap(r, "skill_modifiers"),
	}
}

func parseSkill(r gjson.Result) wotr.SkillDefinition {
	return wotr.SkillDefinition{
		Name:        wotr.Skill(str(r, "name")),
		Ability:     wotr.Ability(str(r, "ability")),
		Description: str(r, "description"),
	}
}

func parseFeat(r gjson.Result) wotr.Feat {
	return wotr.Feat{
		Name:              str(r, "name"),
		Description:       str(r, "description"),
		PrerequisiteLevel: num(r, "prerequisite_level", 1),
		PrerequisiteStats: abilityMap(r, "prerequisite_stats"),
		PrerequisiteFeats: strs(r, "prerequisite_feats"),
		Modifiers:         abilityMap(r, "modifiers"),
		SkillModifiers:    skillMap(r, "skill_modifiers"),
	}
}

func parseTrait(r gjson.Result) wotr.Trait {
	t := wotr.Trait{
		Name:                  str(r, "name"),
		Description:           str(r, "description"),
		Saves:                 intMap(r, "saves"),
		AttackBonuses:         intMap(r, "attack_bonuses"),
		SkillBonuses:          intMap(r, "skill_bonuses"),
		Resistances:           intMap(r, "resistances"),
		SpellDCBonuses:        intMap(r, "spell_dc_bonuses"),
		DodgeACBonuses:        intMap(r, "dodge_ac_bonuses"),
		NaturalAC:             num(r, "natural_ac", 0),
		CombatManeuverBonus:   num(r, "cmb", 0),
		CombatManeuverDefense: num(r, "cmd", 0),
		InnateAbilities:       strs(r, "innate_abilities"),
		InnateFeats:           strs(r, "innate_feats"),
		SkillPointsBonus:      num(r, "skill_points_bonus", 0),
	}
	for _, dr := range array(r, "damage_reduction") {
		if !dr.IsObject() {
			continue
		}
		t.DamageReduction = append(t.DamageReduction, wotr.DamageReduction{
			Amount: num(dr, "amount", 0),
			Bypass: str(dr, "type"),
		})
	}
	for _, na := range array(r, "natural_attacks") {
		if !na.IsObject() {
			continue
		}
		t.NaturalAttacks = append(t.NaturalAttacks, wotr.NaturalAttack{
			Name:   str(na, "name"),
			Damage: str(na, "damage"),
		})
	}
	return t
}

// field reads a top-level key without interpreting gjson path syntax
func field(r gjson.Result, key string) gjson.Result {
	if !r.IsObject() {
		return gjson.Result{}
	}
	return r.Get(gjson.Escape(key))
}

func str(r gjson.Result, key string) string {
	v := field(r, key)
	if v.Type != gjson.String {
		return ""
	}
	return v.Str
}

func num(r gjson.Result, key string, fallback int) int {
	v := field(r, key)
	if v.Type != gjson.Number {
		return fallback
	}
	return int(v.Int())
}

func array(r gjson.Result, key string) []gjson.Result {
	v := field(r, key)
	if !v.IsArray() {
		return nil
	}
	return v.Array()
}

func strs(r gjson.Result, key string) []string {
	var out []string
	for _, v := range array(r, key) {
		if v.Type == gjson.String {
			out = append(out, v.Str)
		}
	}
	return out
}

func ints(r gjson.Result, key string) []int {
	var out []int
	for _, v := range array(r, key) {
		if v.Type == gjson.Number {
			out = append(out, int(v.Int()))
		}
	}
	return out
}

func intMap(r gjson.Result, key string) map[string]int {
	v := field(r, key)
	if !v.IsObject() {
		return nil
	}
	out := map[string]int{}
	v.ForEach(func(k, val gjson.Result) bool {
		if val.Type == gjson.Number {
			out[k.String()] = int(val.Int())
		}
		return true
	})
	return out
}

func abilityMap(r gjson.Result, key string) map[wotr.Ability]int {
	m := intMap(r, key)
	if m == nil {
		return nil
	}
	out := make(map[wotr.Ability]int, len(m))
	for k, v := range m {
		out[wotr.Ability(k)] = v
	}
	return out
}

func skillMap(r gjson.Result, key string) map[wotr.Skill]int {
	m := intMap(r, key)
	if m == nil {
		return nil
	}
	out := make(map[wotr.Skill]int, len(m))
	for k, v := range m {
		out[wotr.Skill(k)] = v
	}
	return out
}
