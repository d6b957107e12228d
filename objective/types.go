package objective

import "github.com/f4bii/crop-mutation/catalog"

// Mode selects which scalar the Metropolis acceptance rule maximizes.
type Mode int

const (
	// CountMode rewards raw instance count, tier, and footprint.
	CountMode Mode = iota
	// ProfitMode rewards drop totals, effect weights, and tier.
	ProfitMode
)

// RunParams are the tunable knobs of one annealing run (spec.md S4.12).
type RunParams struct {
	MaxIterations int
	InitialT      float64
	Cooling       float64
}

// QuickParams is the fast, low-fidelity preset.
func QuickParams() RunParams { return RunParams{MaxIterations: 1000, InitialT: 50, Cooling: 0.99} }

// DefaultParams is the balanced preset.
func DefaultParams() RunParams {
	return RunParams{MaxIterations: 20000, InitialT: 200, Cooling: 0.9995}
}

// ThoroughParams is the slow, high-fidelity preset.
func ThoroughParams() RunParams {
	return RunParams{MaxIterations: 50000, InitialT: 500, Cooling: 0.9999}
}

// effectWeights is the closed profit-mode effect weight table, spec.md
// S4.12.
var effectWeights = map[catalog.EffectTag]float64{
	catalog.EffectImprovedHarvestBoost: 100,
	catalog.EffectHarvestBoost:         60,
	catalog.EffectImprovedWaterRetain:  40,
	catalog.EffectWaterRetain:          25,
	catalog.EffectImprovedXPBoost:      35,
	catalog.EffectXPBoost:              20,
	catalog.EffectImmunity:             80,
	catalog.EffectBonusDrops:           70,
	catalog.EffectImprovedSpread:       50,
	catalog.EffectSpread:               30,
	catalog.EffectHarvestLoss:          -40,
	catalog.EffectWaterDrain:           -30,
	catalog.EffectXPLoss:               -20,
}

// ProgressEvent is yielded to a caller's progress callback at the cadence
// described in spec.md S5 (every max(1, maxIterations/50) iterations).
type ProgressEvent struct {
	Iter         int
	MaxIter      int
	CurrentScore float64
	BestScore    float64
	T            float64
	PlacedCount  int
}

// ProgressFunc receives periodic progress snapshots during Run.
type ProgressFunc func(ProgressEvent)
