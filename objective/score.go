package objective

import (
	"github.com/f4bii/crop-mutation/board"
	"github.com/f4bii/crop-mutation/catalog"
)

// Score evaluates s under mode, using cache to resolve each placement's
// ParsedMutation and RawMutation.
func Score(s *board.State, mode Mode, cache *catalog.Cache) float64 {
	var total float64
	for _, p := range s.Placements.All() {
		m, ok := cache.Get(p.MutationID)
		if !ok {
			continue
		}
		switch mode {
		case CountMode:
			total += 1 + 0.25*float64(m.Tier()) + 0.1*float64(m.Area())
		case ProfitMode:
			total += profitOf(m, cache)
		}
	}
	return total
}

// profitOf is one placement's contribution to the profit objective:
// 0.01*sum(drop amounts) + sum(effect weights) + 10*tier.
func profitOf(m *catalog.ParsedMutation, cache *catalog.Cache) float64 {
	var dropTotal int
	if raw, ok := cache.Raw(m.ID); ok {
		for _, amount := range raw.Drops {
			dropTotal += amount
		}
	}
	var effectTotal float64
	for tag := range m.Effects {
		effectTotal += effectWeights[tag]
	}
	return 0.01*float64(dropTotal) + effectTotal + 10*float64(m.Tier())
}
