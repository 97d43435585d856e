package engine

import (
	"sort"

	"github.com/KirkDiggler/wotr-planner/internal/entities/wotr"
)

// IsFeatEligible checks the level, stat and feat prerequisites. It does not
// exclude feats that are already chosen.
func (e *engine) IsFeatEligible(feat wotr.Feat, input *FeatContext) bool {
	if input == nil {
		return false
	}
	if feat.MinimumLevel() > input.Level {
		return false
	}
	for ability, minimum := range feat.PrerequisiteStats {
		if input.Stats[ability] < minimum {
			return false
		}
	}
	if len(feat.PrerequisiteFeats) == 0 {
		return true
	}

	chosen := make(map[string]struct{}, len(input.ChosenFeats))
	for _, name := range input.ChosenFeats {
		chosen[name] = struct{}{}
	}
	return hasAll(chosen, feat.PrerequisiteFeats)
}

func hasAll(set map[string]struct{}, names []string) bool {
	for _, name := range names {
		if _, ok := set[name]; !ok {
			return false
		}
	}
	return true
}

// AvailableFeats filters candidates down to the eligible ones, keeping order
func (e *engine) AvailableFeats(input *AvailableFeatsInput) []wotr.Feat {
	if input == nil {
		return nil
	}
	out := make([]wotr.Feat, 0, len(input.Candidates))
	for _, feat := range input.Candidates {
		if e.IsFeatEligible(feat, input.Context) {
			out = append(out, feat)
		}
	}
	return out
}

// ValidateFeats drops chosen feats that no longer qualify until nothing else
// changes, then truncates to the slot count keeping the earliest choices.
// Feats the catalog does not know are left alone.
func (e *engine) ValidateFeats(input *ValidateFeatsInput) *ValidateFeatsOutput {
	out := &ValidateFeatsOutput{Kept: []wotr.Feat{}, Removed: []string{}}
	if input == nil {
		return out
	}

	kept := append([]wotr.Feat(nil), input.Chosen...)
	names := make(map[string]struct{}, len(kept))
	for _, f := range kept {
		names[f.Name] = struct{}{}
	}
	removed := make(map[string]struct{})

	// Every productive pass removes at least one feat, so len+1 passes is
	// always enough to observe a pass with no removals.
	maxPasses := len(kept) + 1
	for out.Passes < maxPasses {
		out.Passes++
		next := make([]wotr.Feat, 0, len(kept))
		changed := false
		for _, chosen := range kept {
			if e.stillQualifies(chosen, input, names) {
				next = append(next, chosen)
				continue
			}
			delete(names, chosen.Name)
			removed[chosen.Name] = struct{}{}
			changed = true
		}
		kept = next
		if !changed {
			break
		}
	}

	if input.Slots >= 0 && len(kept) > input.Slots {
		for _, dropped := range kept[input.Slots:] {
			removed[dropped.Name] = struct{}{}
		}
		kept = kept[:input.Slots]
	}

	out.Kept = kept
	for name := range removed {
		out.Removed = append(out.Removed, name)
	}
	sort.Strings(out.Removed)

	return out
}

func (e *engine) stillQualifies(chosen wotr.Feat, input *ValidateFeatsInput, names map[string]struct{}) bool {
	def := chosen
	if input.Catalog != nil {
		found, ok := input.Catalog.GetFeat(chosen.Name)
		if !ok {
			return true
		}
		def = found
	}

	if def.MinimumLevel() > input.Level {
		return false
	}
	for ability, minimum := range def.PrerequisiteStats {
		if input.Stats[ability] < minimum {
			return false
		}
	}
	return hasAll(names, def.PrerequisiteFeats)
}
