package wotr

// DamageReduction is one damage reduction entry granted by a trait
type DamageReduction struct {
	Amount int
	Bypass string
}

// NaturalAttack is a natural weapon granted by a trait
type NaturalAttack struct {
	Name   string
	Damage string
}

// Trait is a named bonus-granting attribute attached through race or heritage
type Trait struct {
	Name                  string
	Description           string
	Saves                 map[string]int
	AttackBonuses         map[string]int
	SkillBonuses          map[string]int
	Resistances           map[string]int
	SpellDCBonuses        map[string]int
	DodgeACBonuses        map[string]int
	NaturalAC             int
	CombatManeuverBonus   int
	CombatManeuverDefense int
	DamageReduction       []DamageReduction
	InnateAbilities       []string
	InnateFeats           []string
	NaturalAttacks        []NaturalAttack
	SkillPointsBonus      int
}

// Clone returns a deep copy of the trait
func (t Trait) Clone() Trait {
	t.Saves = cloneIntMap(t.Saves)
	t.AttackBonuses = cloneIntMap(t.AttackBonuses)
	t.SkillBonuses = cloneIntMap(t.SkillBonuses)
	t.Resistances = cloneIntMap(t.Resistances)
	t.SpellDCBonuses = cloneIntMap(t.SpellDCBonuses)
	t.DodgeACBonuses = cloneIntMap(t.DodgeACBonuses)
	if t.DamageReduction != nil {
		t.DamageReduction = append([]DamageReduction(nil), t.DamageReduction...)
	}
	t.InnateAbilities = cloneStrings(t.InnateAbilities)
	t.InnateFeats = cloneStrings(t.InnateFeats)
	if t.NaturalAttacks != nil {
		t.NaturalAttacks = append([]NaturalAttack(nil), t.NaturalAttacks...)
	}
	return t
}

// TraitBonuses is the aggregate of every active trait. Map fields are keyed
// by sub-category (save name, damage type, school) and summed; list fields
// keep trait processing order.
type TraitBonuses struct {
	Saves                 map[string]int
	AttackBonuses         map[string]int
	SkillBonuses          map[string]int
	Resistances           map[string]int
	SpellDCBonuses        map[string]int
	DodgeACBonuses        map[string]int
	NaturalAC             int
	CombatManeuverBonus   int
	CombatManeuverDefense int
	DamageReduction       []DamageReduction
	InnateAbilities       []string
	InnateFeats           []string
	NaturalAttacks        []NaturalAttack
	SkillPointsBonus      int
}

// NewTraitBonuses returns the zero form with every map allocated and every
// list empty
func NewTraitBonuses() *TraitBonuses {
	return &TraitBonuses{
		Saves:           map[string]int{},
		AttackBonuses:   map[string]int{},
		SkillBonuses:    map[string]int{},
		Resistances:     map[string]int{},
		SpellDCBonuses:  map[string]int{},
		DodgeACBonuses:  map[string]int{},
		DamageReduction: []DamageReduction{},
		InnateAbilities: []string{},
		InnateFeats:     []string{},
		NaturalAttacks:  []NaturalAttack{},
	}
}

// Add accumulates one trait into the bonuses
func (b *TraitBonuses) Add(t Trait) {
	addInto(b.Saves, t.Saves)
	addInto(b.AttackBonuses, t.AttackBonuses)
	addInto(b.SkillBonuses, t.SkillBonuses)
	addInto(b.Resistances, t.Resistances)
	addInto(b.SpellDCBonuses, t.SpellDCBonuses)
	addInto(b.DodgeACBonuses, t.DodgeACBonuses)
	b.NaturalAC += t.NaturalAC
	b.CombatManeuverBonus += t.CombatManeuverBonus
	b.CombatManeuverDefense += t.CombatManeuverDefense
	b.DamageReduction = append(b.DamageReduction, t.DamageReduction...)
	b.InnateAbilities = append(b.InnateAbilities, t.InnateAbilities...)
	b.InnateFeats = append(b.InnateFeats, t.InnateFeats...)
	b.NaturalAttacks = append(b.NaturalAttacks, t.NaturalAttacks...)
	b.SkillPointsBonus += t.SkillPointsBonus
}

// Clone returns a deep copy of the bonuses
func (b *TraitBonuses) Clone() *TraitBonuses {
	if b == nil {
		return nil
	}
	out := NewTraitBonuses()
	addInto(out.Saves, b.Saves)
	addInto(out.AttackBonuses, b.AttackBonuses)
	addInto(out.SkillBonuses, b.SkillBonuses)
	addInto(out.Resistances, b.Resistances)
	addInto(out.SpellDCBonuses, b.SpellDCBonuses)
	addInto(out.DodgeACBonuses, b.DodgeACBonuses)
	out.NaturalAC = b.NaturalAC
	out.CombatManeuverBonus = b.CombatManeuverBonus
	out.CombatManeuverDefense = b.CombatManeuverDefense
	out.DamageReduction = append(out.DamageReduction, b.DamageReduction...)
	out.InnateAbilities = append(out.InnateAbilities, b.InnateAbilities...)
	out.InnateFeats = append(out.InnateFeats, b.InnateFeats...)
	out.NaturalAttacks = append(out.NaturalAttacks, b.NaturalAttacks...)
	out.SkillPointsBonus = b.SkillPointsBonus
	return out
}

func addInto(dst, src map[string]int) {
	for k, v := range src {
		dst[k] += v
	}
}
