package catalog

import "sort"

// ParseGodseed computes the dynamic conditions for the distinguished
// "godseed" pseudo-mutation and returns its ParsedMutation. raw supplies
// godseed's own size/effects/drops (conditions are ignored and replaced
// by the computed set-cover, even if raw.Conditions is non-empty).
//
// The candidate pool is every mutation already cached in c other than id
// itself. A greedy set-cover repeatedly picks the candidate — restricted
// to mutations with only positive effects, no special condition, and no
// isolation requirement — that covers the most currently-uncovered
// positive effect types (harvest_boost, water_retain, xp_boost, immunity,
// bonus_drops, effect_spread; an improved_X tag satisfies type X).
// Candidates are considered in ascending footprint-area order, then
// descending effect count, matching spec.md S4.1's tie-break. The loop
// stops once nothing uncovered remains or no remaining candidate would
// add any new coverage.
//
// The resulting set becomes godseed's Deps, each required count 1. The
// other cached entries are only read; the result is stored in c under id.
func (c *Cache) ParseGodseed(id string, raw RawMutation) (*ParsedMutation, error) {
	w, h, err := parseSize(raw.Size)
	if err != nil {
		return nil, err
	}

	parsed := &ParsedMutation{
		ID:      id,
		Name:    raw.Name,
		W:       w,
		H:       h,
		Crops:   make(map[string]int),
		Deps:    make(map[string]int),
		Effects: make(map[EffectTag]bool, len(raw.Effects)),
	}
	for _, e := range raw.Effects {
		parsed.Effects[EffectTag(e)] = true
	}

	selected := c.coverPositiveEffects(id)
	for _, candidateID := range selected {
		parsed.Deps[candidateID] = 1
	}

	c.mu.Lock()
	c.parsed[id] = parsed
	c.rawByID[id] = raw
	c.mu.Unlock()

	return parsed, nil
}

// coverPositiveEffects runs the greedy set-cover described in
// ParseGodseed's doc comment and returns the chosen mutation ids in
// selection order.
func (c *Cache) coverPositiveEffects(excludeID string) []string {
	c.mu.RLock()
	candidates := make([]*ParsedMutation, 0)
	for cid, m := range c.parsed {
		if cid == excludeID {
			continue
		}
		if m.AutoPlaceable() && !m.Isolated && m.HasOnlyPositiveEffect() {
			candidates = append(candidates, m)
		}
	}
	c.mu.RUnlock()

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Area() != candidates[j].Area() {
			return candidates[i].Area() < candidates[j].Area()
		}
		if len(candidates[i].Effects) != len(candidates[j].Effects) {
			return len(candidates[i].Effects) > len(candidates[j].Effects)
		}
		return candidates[i].ID < candidates[j].ID
	})

	uncovered := make(map[EffectTag]bool, len(positiveEffectTypes))
	for _, t := range positiveEffectTypes {
		uncovered[t] = true
	}

	var selected []string
	for len(uncovered) > 0 {
		bestIdx := -1
		bestGain := 0
		for i, cand := range candidates {
			gain := 0
			for t := range cand.coveredPositiveTypes() {
				if uncovered[t] {
					gain++
				}
			}
			if gain > bestGain {
				bestGain = gain
				bestIdx = i
			}
		}
		if bestIdx < 0 {
			break // nothing helps
		}
		chosen := candidates[bestIdx]
		selected = append(selected, chosen.ID)
		for t := range chosen.coveredPositiveTypes() {
			delete(uncovered, t)
		}
		candidates = append(candidates[:bestIdx], candidates[bestIdx+1:]...)
	}

	return selected
}
