package testutils

import (
	"github.com/KirkDiggler/wotr-planner/internal/clients/catalog"
	"github.com/KirkDiggler/wotr-planner/internal/entities/wotr"
)

// Fixture names used across package tests
const (
	TestCharacterName = "Seelah"

	RaceHuman = "Human"
	RaceElf   = "Elf"
	RaceDwarf = "Dwarf"

	HeritageDrow            = "Drow"
	HeritageAncientDwarf    = "Ancient Bloodline"
	HeritageSkilledHuman    = "Skilled Human"
	ClassFighter            = "Fighter"
	ClassWizard             = "Wizard"
	ClassRogue              = "Rogue"
	ArchetypeAldoriDefender = "Aldori Defender"
	BackgroundFarmhand      = "Farmhand"
	BackgroundScholar       = "Scholar"

	FeatPowerAttack   = "Power Attack"
	FeatCleave        = "Cleave"
	FeatGreatCleave   = "Great Cleave"
	FeatDodge         = "Dodge"
	FeatMobility      = "Mobility"
	FeatToughness     = "Toughness"
	FeatIronWill      = "Iron Will"
	FeatSkillFocus    = "Skill Focus (Athletics)"
	FeatInnerStrength = "Inner Strength"
	FeatVitalStrike   = "Vital Strike"
)

// TestCatalogData returns a small but complete reference data set: the
// Fighter/Human baseline plus enough feats, heritages and traits to exercise
// prerequisites, heritage overrides and trait aggregation.
func TestCatalogData() catalog.StaticData {
	return catalog.StaticData{
		Races: []wotr.Race{
			{
				Name:             RaceHuman,
				SkillPointsBonus: 1,
				BonusFeats:       []int{1},
				Traits:           []string{"Versatile"},
			},
			{
				Name: RaceElf,
				Modifiers: map[wotr.Ability]int{
					wotr.AbilityDex: 2, wotr.AbilityInt: 2, wotr.AbilityCon: -2,
				},
				Traits:    []string{"Keen Senses", "Elven Immunities"},
				Heritages: []string{HeritageDrow},
			},
			{
				Name: RaceDwarf,
				Modifiers: map[wotr.Ability]int{
					wotr.AbilityCon: 2, wotr.AbilityWis: 2, wotr.AbilityCha: -2,
				},
				Traits: []string{"Hardy", "Darkvision", "Stability"},
			},
		},
		Classes: []wotr.Class{
			{
				Name:              ClassFighter,
				BaseHP:            10,
				SkillPoints:       2,
				BonusFeatInterval: 2,
				BonusFeats:        []int{1},
				Archetypes: []wotr.Archetype{
					{Name: ArchetypeAldoriDefender},
					{Name: "Tower Shield Specialist"},
				},
			},
			{
				Name:        ClassWizard,
				BaseHP:      6,
				SkillPoints: 2,
				BonusFeats:  []int{5, 10, 15, 20},
			},
			{
				Name:        ClassRogue,
				BaseHP:      8,
				SkillPoints: 8,
			},
		},
		Heritages: []wotr.Heritage{
			{
				Name: HeritageDrow,
				Modifiers: map[wotr.Ability]int{
					wotr.AbilityDex: 2, wotr.AbilityCha: 2, wotr.AbilityCon: -2,
				},
				Traits:        []string{"Darkvision"},
				TraitsRemoved: []string{"Keen Senses"},
			},
			{
				Name: HeritageAncientDwarf,
				Race: RaceDwarf,
				Modifiers: map[wotr.Ability]int{
					wotr.AbilityStr: 2, wotr.AbilityCon: 2, wotr.AbilityCha: -2,
				},
				Traits:        []string{"Steel Soul"},
				TraitsRemoved: []string{"Stability"},
			},
			{
				Name:             HeritageSkilledHuman,
				Race:             RaceHuman,
				SkillPointsBonus: 1,
			},
		},
		Backgrounds: []wotr.Background{
			{
				Name: BackgroundFarmhand,
				SkillModifiers: map[wotr.Skill]int{
					wotr.SkillAthletics: 1, wotr.SkillLoreNature: 1,
				},
			},
			{
				Name:           BackgroundScholar,
				SkillModifiers: map[wotr.Skill]int{wotr.SkillKnowledgeArcana: 2},
			},
		},
		Skills: testSkills(),
		Feats: []wotr.Feat{
			{Name: FeatPowerAttack, PrerequisiteStats: map[wotr.Ability]int{wotr.AbilityStr: 13}},
			{Name: FeatCleave, PrerequisiteFeats: []string{FeatPowerAttack}},
			{Name: FeatGreatCleave, PrerequisiteLevel: 4, PrerequisiteFeats: []string{FeatCleave}},
			{Name: FeatDodge, PrerequisiteStats: map[wotr.Ability]int{wotr.AbilityDex: 13}},
			{Name: FeatMobility, PrerequisiteFeats: []string{FeatDodge}},
			{Name: FeatToughness},
			{Name: FeatIronWill},
			{Name: FeatSkillFocus, SkillModifiers: map[wotr.Skill]int{wotr.SkillAthletics: 3}},
			{Name: FeatInnerStrength, Modifiers: map[wotr.Ability]int{wotr.AbilityStr: 1}},
			{Name: FeatVitalStrike, PrerequisiteLevel: 6},
		},
		Traits: []wotr.Trait{
			{Name: "Versatile"},
			{Name: "Keen Senses", SkillBonuses: map[string]int{"Perception": 2}},
			{Name: "Elven Immunities", Saves: map[string]int{"Will": 2}},
			{Name: "Darkvision", InnateAbilities: []string{"Darkvision"}},
			{Name: "Hardy", Saves: map[string]int{"Fortitude": 2}, Resistances: map[string]int{"Poison": 2}},
			{Name: "Stability", CombatManeuverDefense: 4},
			{Name: "Steel Soul", Saves: map[string]int{"Will": 2}},
		},
	}
}

// TestCatalog returns the fixture data as a catalog
func TestCatalog() *catalog.Catalog {
	return catalog.NewStatic(TestCatalogData())
}

func testSkills() []wotr.SkillDefinition {
	abilities := map[wotr.Skill]wotr.Ability{
		wotr.SkillAthletics:       wotr.AbilityStr,
		wotr.SkillMobility:        wotr.AbilityDex,
		wotr.SkillTrickery:        wotr.AbilityDex,
		wotr.SkillStealth:         wotr.AbilityDex,
		wotr.SkillKnowledgeArcana: wotr.AbilityInt,
		wotr.SkillKnowledgeWorld:  wotr.AbilityInt,
		wotr.SkillLoreNature:      wotr.AbilityWis,
		wotr.SkillLoreReligion:    wotr.AbilityWis,
		wotr.SkillPerception:      wotr.AbilityWis,
		wotr.SkillPersuasion:      wotr.AbilityCha,
		wotr.SkillUseMagicDevice:  wotr.AbilityCha,
	}
	out := make([]wotr.SkillDefinition, 0, len(wotr.Skills))
	for _, s := range wotr.Skills {
		out = append(out, wotr.SkillDefinition{Name: s, Ability: abilities[s]})
	}
	return out
}
