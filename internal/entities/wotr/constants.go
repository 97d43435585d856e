package wotr

// Ability is one of the six ability score keys
type Ability string

// Ability constants, in sheet order
const (
	AbilityStr Ability = "Str"
	AbilityDex Ability = "Dex"
	AbilityCon Ability = "Con"
	AbilityInt Ability = "Int"
	AbilityWis Ability = "Wis"
	AbilityCha Ability = "Cha"
)

// Abilities lists the fixed ability keys in sheet order
var Abilities = []Ability{
	AbilityStr,
	AbilityDex,
	AbilityCon,
	AbilityInt,
	AbilityWis,
	AbilityCha,
}

// Skill is one of the eleven skill keys
type Skill string

// Skill constants, in declaration order. The order matters: rank trimming
// walks this list backwards.
const (
	SkillAthletics       Skill = "Athletics"
	SkillMobility        Skill = "Mobility"
	SkillTrickery        Skill = "Trickery"
	SkillStealth         Skill = "Stealth"
	SkillKnowledgeArcana Skill = "Knowledge(Arcana)"
	SkillKnowledgeWorld  Skill = "Knowledge(World)"
	SkillLoreNature      Skill = "Lore(Nature)"
	SkillLoreReligion    Skill = "Lore(Religion)"
	SkillPerception      Skill = "Perception"
	SkillPersuasion      Skill = "Persuasion"
	SkillUseMagicDevice  Skill = "Use Magic Device"
)

// Skills lists the fixed skill keys in declaration order
var Skills = []Skill{
	SkillAthletics,
	SkillMobility,
	SkillTrickery,
	SkillStealth,
	SkillKnowledgeArcana,
	SkillKnowledgeWorld,
	SkillLoreNature,
	SkillLoreReligion,
	SkillPerception,
	SkillPersuasion,
	SkillUseMagicDevice,
}

// Point buy rules
const (
	PointBuyBudget  = 25
	PointBuyDefault = 10
	PointBuyMin     = 7
	PointBuyMax     = 18
)

// Baseline selections used when a character is created without a race or class
const (
	DefaultRaceName  = "Human"
	DefaultClassName = "Fighter"
)

// IsAbility reports whether a is one of the six fixed ability keys
func IsAbility(a Ability) bool {
	for _, known := range Abilities {
		if a == known {
			return true
		}
	}
	return false
}

// IsSkill reports whether s is one of the eleven fixed skill keys
func IsSkill(s Skill) bool {
	for _, known := range Skills {
		if s == known {
			return true
		}
	}
	return false
}
