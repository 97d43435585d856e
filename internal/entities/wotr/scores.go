package wotr

// AbilityScores maps each ability key to a score
type AbilityScores map[Ability]int

// NewAbilityScores returns scores with every ability set to value
func NewAbilityScores(value int) AbilityScores {
	scores := make(AbilityScores, len(Abilities))
	for _, a := range Abilities {
		scores[a] = value
	}
	return scores
}

// Clone returns an independent copy
func (s AbilityScores) Clone() AbilityScores {
	if s == nil {
		return nil
	}
	out := make(AbilityScores, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// SkillValues maps each skill key to a rank or effective value
type SkillValues map[Skill]int

// NewSkillValues returns values with every skill at zero
func NewSkillValues() SkillValues {
	values := make(SkillValues, len(Skills))
	for _, s := range Skills {
		values[s] = 0
	}
	return values
}

// Clone returns an independent copy
func (v SkillValues) Clone() SkillValues {
	if v == nil {
		return nil
	}
	out := make(SkillValues, len(v))
	for k, n := range v {
		out[k] = n
	}
	return out
}

// Total sums every value
func (v SkillValues) Total() int {
	total := 0
	for _, n := range v {
		total += n
	}
	return total
}

func cloneAbilityMap(m map[Ability]int) map[Ability]int {
	if m == nil {
		return nil
	}
	out := make(map[Ability]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneSkillMap(m map[Skill]int) map[Skill]int {
	if m == nil {
		return nil
	}
	out := make(map[Skill]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneIntMap(m map[string]int) map[string]int {
	if m == nil {
		return nil
	}
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

func cloneInts(s []int) []int {
	if s == nil {
		return nil
	}
	return append([]int(nil), s...)
}
