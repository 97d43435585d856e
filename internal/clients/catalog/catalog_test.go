package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/wotr-planner/internal/clients/catalog"
	"github.com/KirkDiggler/wotr-planner/internal/entities/wotr"
	"github.com/KirkDiggler/wotr-planner/internal/errors"
	"github.com/KirkDiggler/wotr-planner/internal/testutils"
)

type CatalogTestSuite struct {
	suite.Suite
	ctx context.Context
	dir string
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.dir = s.T().TempDir()

	for _, file := range []string{
		catalog.RacesFile,
		catalog.ClassesFile,
		catalog.HeritagesFile,
		catalog.BackgroundsFile,
		catalog.SkillsFile,
		catalog.FeatsFile,
		catalog.TraitsFile,
	} {
		s.writeFile(file, `[]`)
	}
}

func (s *CatalogTestSuite) writeFile(name, content string) {
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, name), []byte(content), 0o600))
}

func (s *CatalogTestSuite) TestLoadParsesRecords() {
	s.writeFile(catalog.RacesFile, `[
		{"name": "Elf", "modifiers": {"Dex": 2, "Int": 2, "Con": -2},
		 "traits": ["Keen Senses"], "heritages": ["Drow"], "bonus_feats": [1]}
	]`)
	s.writeFile(catalog.ClassesFile, `[
		{"name": "Fighter", "skill_points": 2, "bonus_feat_interval": 2, "bonus_feats": [1],
		 "archetypes": [{"name": "Aldori Defender"}, "junk"]}
	]`)
	s.writeFile(catalog.HeritagesFile, `[
		{"name": "Drow", "modifiers": {"Cha": 2}, "traits_removed": ["Keen Senses"]}
	]`)
	s.writeFile(catalog.BackgroundsFile, `[
		{"name": "Scholar", "skill_modifiers": {"Knowledge(Arcana)": 2}}
	]`)
	s.writeFile(catalog.SkillsFile, `[{"name": "Athletics", "ability": "Str"}]`)
	s.writeFile(catalog.FeatsFile, `[
		{"name": "Cleave", "prerequisite_level": 3, "prerequisite_stats": {"Str": 13},
		 "prerequisite_feats": ["Power Attack"]}
	]`)
	s.writeFile(catalog.TraitsFile, `[
		{"name": "Hardy", "saves": {"Fortitude": 2}, "natural_ac": 1, "cmb": 1, "cmd": 2,
		 "damage_reduction": [{"amount": 3, "type": "Cold Iron"}],
		 "natural_attacks": [{"name": "Bite", "damage": "1d6"}]}
	]`)

	c, err := catalog.Load(s.ctx, s.dir)
	s.Require().NoError(err)

	elf, ok := c.GetRace("Elf")
	s.Require().True(ok)
	s.Equal(2, elf.Modifiers[wotr.AbilityDex])
	s.Equal([]string{"Drow"}, elf.Heritages)
	s.Equal([]int{1}, elf.BonusFeats)

	fighter, ok := c.GetClass("Fighter")
	s.Require().True(ok)
	s.Equal(2, fighter.SkillPoints)
	s.Equal(2, fighter.BonusFeatInterval)
	s.Len(fighter.Archetypes, 1)
	s.True(fighter.HasArchetype("Aldori Defender"))

	scholar, ok := c.GetBackground("Scholar")
	s.Require().True(ok)
	s.Equal(2, scholar.SkillModifiers[wotr.SkillKnowledgeArcana])

	athletics, ok := c.GetSkill(wotr.SkillAthletics)
	s.Require().True(ok)
	s.Equal(wotr.AbilityStr, athletics.Ability)

	cleave, ok := c.GetFeat("Cleave")
	s.Require().True(ok)
	s.Equal(3, cleave.PrerequisiteLevel)
	s.Equal(13, cleave.PrerequisiteStats[wotr.AbilityStr])
	s.Equal([]string{"Power Attack"}, cleave.PrerequisiteFeats)

	hardy, ok := c.GetTrait("Hardy")
	s.Require().True(ok)
	s.Equal(2, hardy.Saves["Fortitude"])
	s.Equal(1, hardy.NaturalAC)
	s.Equal(2, hardy.CombatManeuverDefense)
	s.Equal([]wotr.DamageReduction{{Amount: 3, Bypass: "Cold Iron"}}, hardy.DamageReduction)
	s.Equal([]wotr.NaturalAttack{{Name: "Bite", Damage: "1d6"}}, hardy.NaturalAttacks)

	s.Len(c.HeritagesForRace("Elf"), 1)
}

func (s *CatalogTestSuite) TestLoadToleratesMalformedFields() {
	s.writeFile(catalog.FeatsFile, `[
		{"name": "Odd", "prerequisite_level": "x", "prerequisite_stats": [1, 2],
		 "prerequisite_feats": "Dodge", "modifiers": {"Str": "lots", "Dex": 1}},
		{"description": "no name"},
		"not an object",
		{"name": "Odd", "prerequisite_level": 9}
	]`)

	c, err := catalog.Load(s.ctx, s.dir)
	s.Require().NoError(err)

	feats := c.ListFeats()
	s.Require().Len(feats, 1)

	odd := feats[0]
	s.Equal("Odd", odd.Name)
	s.Equal(1, odd.PrerequisiteLevel)
	s.Empty(odd.PrerequisiteStats)
	s.Empty(odd.PrerequisiteFeats)
	s.Equal(map[wotr.Ability]int{wotr.AbilityDex: 1}, odd.Modifiers)
}

func (s *CatalogTestSuite) TestLoadMissingFile() {
	s.Require().NoError(os.Remove(filepath.Join(s.dir, catalog.TraitsFile)))

	c, err := catalog.Load(s.ctx, s.dir)
	s.Error(err)
	s.Nil(c)
	s.True(errors.IsNotFound(err))
}

func (s *CatalogTestSuite) TestLoadInvalidJSON() {
	s.writeFile(catalog.ClassesFile, `{ invalid json }`)

	c, err := catalog.Load(s.ctx, s.dir)
	s.Error(err)
	s.Nil(c)
	s.True(errors.IsInvalidArgument(err))
}

func (s *CatalogTestSuite) TestLoadRequiresArray() {
	s.writeFile(catalog.RacesFile, `{"name": "Human"}`)

	_, err := catalog.Load(s.ctx, s.dir)
	s.Error(err)
	s.Contains(err.Error(), "JSON array")
}

func (s *CatalogTestSuite) TestLoadRequiresDirectory() {
	_, err := catalog.Load(s.ctx, "")
	s.True(errors.IsInvalidArgument(err))
}

func (s *CatalogTestSuite) TestRecordsAreCopies() {
	c := testutils.TestCatalog()

	elf, ok := c.GetRace(testutils.RaceElf)
	s.Require().True(ok)
	elf.Modifiers[wotr.AbilityDex] = 99
	elf.Traits[0] = "Changed"

	again, _ := c.GetRace(testutils.RaceElf)
	s.Equal(2, again.Modifiers[wotr.AbilityDex])
	s.Equal("Keen Senses", again.Traits[0])

	feats := c.ListFeats()
	feats[0].PrerequisiteStats[wotr.AbilityStr] = 1
	power, _ := c.GetFeat(testutils.FeatPowerAttack)
	s.Equal(13, power.PrerequisiteStats[wotr.AbilityStr])
}

func (s *CatalogTestSuite) TestHeritagesForRace() {
	c := testutils.TestCatalog()

	s.Run("listed by race", func() {
		hs := c.HeritagesForRace(testutils.RaceElf)
		s.Require().Len(hs, 1)
		s.Equal(testutils.HeritageDrow, hs[0].Name)
	})

	s.Run("declared by heritage", func() {
		hs := c.HeritagesForRace(testutils.RaceDwarf)
		s.Require().Len(hs, 1)
		s.Equal(testutils.HeritageAncientDwarf, hs[0].Name)
	})

	s.Run("unknown race", func() {
		s.Empty(c.HeritagesForRace("Tiefling"))
	})
}

func (s *CatalogTestSuite) TestListOrder() {
	c := testutils.TestCatalog()

	var names []string
	for _, r := range c.ListRaces() {
		names = append(names, r.Name)
	}
	s.Equal([]string{testutils.RaceHuman, testutils.RaceElf, testutils.RaceDwarf}, names)
	s.Len(c.ListSkills(), len(wotr.Skills))
	s.Len(c.ListClasses(), 3)
	s.Len(c.ListHeritages(), 3)
	s.Len(c.ListBackgrounds(), 2)
	s.Len(c.ListTraits(), 7)
}
