package main

import (
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/KirkDiggler/wotr-planner/internal/entities/wotr"
	"github.com/KirkDiggler/wotr-planner/internal/errors"
)

// buildFlags are the choices a command applies to a character
type buildFlags struct {
	name       string
	race       string
	class      string
	archetype  string
	heritage   string
	background string
	level      int
	stats      []string
	skills     []string
	feats      []string
}

func (b *buildFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&b.name, "name", "", "character name")
	fs.StringVar(&b.race, "race", "", "race, e.g. Dwarf")
	fs.StringVar(&b.class, "class", "", "class, e.g. Fighter")
	fs.StringVar(&b.archetype, "archetype", "", "archetype of the class")
	fs.StringVar(&b.heritage, "heritage", "", "heritage compatible with the race")
	fs.StringVar(&b.background, "background", "", "background, e.g. Farmhand")
	fs.IntVar(&b.level, "level", 0, "character level")
	fs.StringArrayVar(&b.stats, "stat", nil, "purchased score as Ability=value, e.g. Str=14 (repeatable)")
	fs.StringArrayVar(&b.skills, "skill", nil, "skill ranks as Skill=ranks, e.g. Athletics=1 (repeatable)")
	fs.StringArrayVar(&b.feats, "feat", nil, "feat to take, in order (repeatable)")
}

// data converts the flags into build choices. Only the syntax is checked
// here; the character decides what is legal.
func (b *buildFlags) data() (*wotr.CharacterData, error) {
	stats, err := assignments(b.stats, "stat")
	if err != nil {
		return nil, err
	}
	skills, err := assignments(b.skills, "skill")
	if err != nil {
		return nil, err
	}

	data := &wotr.CharacterData{
		Name:       b.name,
		Race:       b.race,
		Class:      b.class,
		Archetype:  b.archetype,
		Heritage:   b.heritage,
		Background: b.background,
		Level:      b.level,
		Feats:      b.feats,
	}
	if len(stats) > 0 {
		data.PointBuyStats = wotr.AbilityScores{}
		for k, v := range stats {
			data.PointBuyStats[wotr.Ability(k)] = v
		}
	}
	if len(skills) > 0 {
		data.SkillRanks = wotr.SkillValues{}
		for k, v := range skills {
			data.SkillRanks[wotr.Skill(k)] = v
		}
	}
	return data, nil
}

func assignments(values []string, flag string) (map[string]int, error) {
	out := make(map[string]int, len(values))
	for _, v := range values {
		key, raw, ok := strings.Cut(v, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.InvalidArgumentf("--%s %q: expected Name=value", flag, v)
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, errors.InvalidArgumentf("--%s %q: value must be a whole number", flag, v)
		}
		out[key] = n
	}
	return out, nil
}
