package objective

import (
	"sort"

	"github.com/f4bii/crop-mutation/catalog"
)

// Pool is the filtered set of mutation ids the engine may freely choose
// among. BuildPool applies the two static filters from spec.md S4.12:
// mutations with an unsatisfiable "special" condition are dropped, and so
// are mutations whose dependency requirements name a mutation id absent
// from the surviving pool (they could never be satisfied).
type Pool struct {
	ids   []string
	byID  map[string]*catalog.ParsedMutation
	cache *catalog.Cache
}

// BuildPool filters candidateIDs against cache and returns the usable
// pool. Returns ErrAllSpecial if nothing survives.
func BuildPool(cache *catalog.Cache, candidateIDs []string) (*Pool, error) {
	autoPlaceable := make(map[string]*catalog.ParsedMutation)
	for _, id := range candidateIDs {
		m, ok := cache.Get(id)
		if !ok || !m.AutoPlaceable() {
			continue
		}
		autoPlaceable[id] = m
	}

	// Second pass: drop mutations whose dep requirements name an id that
	// didn't survive the first pass.
	usable := make(map[string]*catalog.ParsedMutation)
	for id, m := range autoPlaceable {
		satisfiable := true
		for depID := range m.Deps {
			if _, ok := autoPlaceable[depID]; !ok {
				satisfiable = false
				break
			}
		}
		if satisfiable {
			usable[id] = m
		}
	}

	if len(usable) == 0 {
		return nil, ErrAllSpecial
	}

	ids := make([]string, 0, len(usable))
	for id := range usable {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return &Pool{ids: ids, byID: usable, cache: cache}, nil
}

// IDs returns the pool's mutation ids, sorted.
func (p *Pool) IDs() []string { return p.ids }

// Get returns the ParsedMutation for id if it is in the pool.
func (p *Pool) Get(id string) (*catalog.ParsedMutation, bool) {
	m, ok := p.byID[id]
	return m, ok
}

// cropOnlySeedOrder returns the pool's crop-only (no dep requirement)
// mutation ids, sorted tier-descending; within a tie, smaller footprint
// first when countMaximizing (spec.md S4.12's greedy seed).
func (p *Pool) cropOnlySeedOrder(countMaximizing bool) []string {
	var ids []string
	for _, id := range p.ids {
		m := p.byID[id]
		if len(m.Deps) == 0 {
			ids = append(ids, id)
		}
	}
	sort.SliceStable(ids, func(i, j int) bool {
		mi, mj := p.byID[ids[i]], p.byID[ids[j]]
		if mi.Tier() != mj.Tier() {
			return mi.Tier() > mj.Tier()
		}
		if countMaximizing && mi.Area() != mj.Area() {
			return mi.Area() < mj.Area()
		}
		return ids[i] < ids[j]
	})
	return ids
}
