package wotr

// CharacterData is the saved form of a build.
// NOTE: This is a data-only struct. It records choices by name; every derived
// value (stats, skills, slots, traits) is recomputed by the engine on load.
type CharacterData struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Race          string        `json:"race"`
	Class         string        `json:"class"`
	Archetype     string        `json:"archetype,omitempty"`
	Heritage      string        `json:"heritage,omitempty"`
	Background    string        `json:"background,omitempty"`
	Level         int           `json:"level"`
	PointBuyStats AbilityScores `json:"point_buy_stats"`
	SkillRanks    SkillValues   `json:"skill_ranks"`
	Feats         []string      `json:"feats"`
	CreatedAt     int64         `json:"created_at"`
	UpdatedAt     int64         `json:"updated_at"`
}
