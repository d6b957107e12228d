package solver

import (
	"math"
	"math/rand"
	"sort"

	"github.com/f4bii/crop-mutation/board"
	"github.com/f4bii/crop-mutation/catalog"
	"github.com/f4bii/crop-mutation/fitness"
	"github.com/f4bii/crop-mutation/layout"
)

// SAConfig holds the tunable constants of the annealing loop. Zero value
// is not meaningful; use DefaultSAConfig and override fields as needed.
type SAConfig struct {
	InitialT              float64
	FloorT                float64
	IterationsPerTempStep int
	BaseCooling           float64
	ReheatThreshold       int
	ReheatFactor          float64
	MaxReheats            int
	ConvergenceThreshold  int
	TabuCapacity          int
}

// DefaultSAConfig returns the constants from spec.md S4.8.
func DefaultSAConfig() SAConfig {
	return SAConfig{
		InitialT:              100,
		FloorT:                0.01,
		IterationsPerTempStep: 30,
		BaseCooling:           0.97,
		ReheatThreshold:       50,
		ReheatFactor:          0.5,
		MaxReheats:            3,
		ConvergenceThreshold:  100,
		TabuCapacity:          10,
	}
}

// tabuEntry is a (instanceId, anchor) pair forbidden until expireIter.
type tabuEntry struct {
	anchor     board.Point
	expireIter int
}

// pendingTabuEntry is a relocate candidate's would-be tabu entry; it is
// committed to e.tabu only if runTempStep accepts the move (spec.md S4.8:
// "after an accepted relocate, record (instanceId, newAnchor)").
type pendingTabuEntry struct {
	id     board.InstanceID
	anchor board.Point
}

// scoredAnchor pairs a feasible anchor with its placement score, used by
// both relocate's top-5 pick and bulk packing.
type scoredAnchor struct {
	anchor board.Point
	fp     *layout.FeasiblePlacement
	score  float64
}

// saEngine holds all annealing state, mirroring the dedicated-engine style
// used for hot search loops: explicit fields instead of captured closures
// keep the move/accept/cool phases easy to read in isolation.
type saEngine struct {
	cache   *catalog.Cache
	profile layout.StrategyProfile
	target  int
	cfg     SAConfig
	rng     *rand.Rand

	current      *board.State
	currentScore float64
	best         *board.State
	bestScore    float64

	tabu map[board.InstanceID]tabuEntry

	T            float64
	coolingRatio float64
	iter         int
	idle         int
	reheats      int
	accepted     int
	attempted    int
}

// Anneal refines seed via simulated annealing with tabu, adaptive cooling,
// and reheats, and returns the best state encountered (spec.md S4.8). seed
// is not mutated; the returned state is a clone.
func Anneal(seed *board.State, cache *catalog.Cache, profile layout.StrategyProfile, target int, cfg SAConfig, rng *rand.Rand) *board.State {
	e := &saEngine{
		cache:   cache,
		profile: profile,
		target:  target,
		cfg:     cfg,
		rng:     rng,
		current: seed.Clone(),
		tabu:    make(map[board.InstanceID]tabuEntry),
		T:       cfg.InitialT,
	}
	e.currentScore = fitness.Score(e.current, target, cache)
	e.best = e.current.Clone()
	e.bestScore = e.currentScore

	for {
		e.runTempStep()
		e.adaptCooling()
		e.T *= e.coolingRatio
		e.maybeReheat()
		if e.shouldStop() {
			break
		}
	}
	return e.best
}

// runTempStep executes cfg.IterationsPerTempStep moves at the current
// temperature, updating accepted/attempted/idle bookkeeping.
func (e *saEngine) runTempStep() {
	for i := 0; i < e.cfg.IterationsPerTempStep; i++ {
		e.iter++
		candidate, delta, pendingTabu, moved := e.proposeMove()
		if !moved {
			e.idle++
			continue
		}
		e.attempted++
		accept := delta > 0 || e.rng.Float64() < math.Exp(delta/e.T)
		if !accept {
			e.idle++
			continue
		}
		e.accepted++
		e.current = candidate
		e.currentScore += delta
		if pendingTabu != nil {
			e.tabu[pendingTabu.id] = tabuEntry{anchor: pendingTabu.anchor, expireIter: e.iter + e.cfg.TabuCapacity}
		}
		if e.currentScore > e.bestScore {
			e.best = e.current.Clone()
			e.bestScore = e.currentScore
			e.idle = 0
		} else {
			e.idle++
		}
		if e.attempted > 100 {
			e.accepted /= 2
			e.attempted /= 2
		}
	}
}

// adaptCooling sets e.coolingRatio from the running acceptance rate (the
// accepted/attempted counters, halved once attempts pass 100 and reset on
// reheat): cool faster when the search is accepting too freely, slower
// when it is nearly stuck and still far from the floor.
func (e *saEngine) adaptCooling() {
	ratio := e.cfg.BaseCooling
	if e.attempted > 0 {
		rate := float64(e.accepted) / float64(e.attempted)
		switch {
		case rate > 0.5:
			ratio = e.cfg.BaseCooling * 0.98
		case rate < 0.1 && e.T > 10*e.cfg.FloorT:
			ratio = e.cfg.BaseCooling * 1.01
		}
	}
	e.coolingRatio = ratio
}

// maybeReheat raises T back up when the search has stalled and reheats are
// still available.
func (e *saEngine) maybeReheat() {
	if e.idle < e.cfg.ReheatThreshold || e.reheats >= e.cfg.MaxReheats {
		return
	}
	e.T = e.cfg.InitialT * e.cfg.ReheatFactor * math.Pow(0.7, float64(e.reheats))
	e.reheats++
	e.tabu = make(map[board.InstanceID]tabuEntry)
	e.idle = 0
	e.accepted = 0
	e.attempted = 0
}

// shouldStop reports whether the loop has converged or cooled past floor.
func (e *saEngine) shouldStop() bool {
	if e.T < e.cfg.FloorT {
		return true
	}
	return e.idle >= e.cfg.ConvergenceThreshold && e.reheats >= e.cfg.MaxReheats
}

// isTabu reports whether moving instance id to anchor is currently
// forbidden.
func (e *saEngine) isTabu(id board.InstanceID, anchor board.Point) bool {
	entry, ok := e.tabu[id]
	return ok && entry.anchor == anchor && entry.expireIter > e.iter
}

// proposeMove picks relocate or swap per spec.md's 0.3 swap probability
// (only available with >=2 placements), applies it to a clone of
// e.current, and reports the resulting state and fitness delta. moved is
// false when no legal move could be constructed this iteration (e.g. zero
// placements exist).
func (e *saEngine) proposeMove() (candidate *board.State, delta float64, pendingTabu *pendingTabuEntry, moved bool) {
	placements := e.current.Placements.All()
	if len(placements) == 0 {
		return nil, 0, nil, false
	}
	useSwap := len(placements) >= 2 && e.rng.Float64() < 0.3
	if useSwap {
		candidate, delta, moved = e.proposeSwap(placements)
		return candidate, delta, nil, moved
	}
	return e.proposeRelocate(placements)
}

// proposeRelocate removes a random placement and tries to re-place it at
// one of its top-5 scoring feasible anchors (uniform pick), skipping
// anchors currently tabu for that instance. The returned pendingTabuEntry
// is not yet recorded in e.tabu; runTempStep commits it only if this
// candidate is accepted.
func (e *saEngine) proposeRelocate(placements []*board.Placement) (*board.State, float64, *pendingTabuEntry, bool) {
	p := placements[e.rng.Intn(len(placements))]
	m, ok := e.cache.Get(p.MutationID)
	if !ok {
		return nil, 0, nil, false
	}

	clone := e.current.Clone()
	if err := layout.Remove(clone, p.ID); err != nil {
		return nil, 0, nil, false
	}

	var candidates []scoredAnchor
	for _, anchor := range anchorsFor(m.W, m.H) {
		if anchor == p.Anchor || e.isTabu(p.ID, anchor) {
			continue
		}
		fp, err := layout.Check(clone, m, anchor)
		if err != nil {
			continue
		}
		candidates = append(candidates, scoredAnchor{anchor: anchor, fp: fp, score: layout.Score(clone, m, fp, e.profile, e.cache)})
	}
	if len(candidates) == 0 {
		return nil, 0, nil, false
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].score > candidates[j].score })
	top := candidates
	if len(top) > 5 {
		top = top[:5]
	}
	pick := top[e.rng.Intn(len(top))]

	if err := layout.Execute(clone, pick.fp, p.ID); err != nil {
		return nil, 0, nil, false
	}

	newScore := fitness.Score(clone, e.target, e.cache)
	return clone, newScore - e.currentScore, &pendingTabuEntry{id: p.ID, anchor: pick.anchor}, true
}

// proposeSwap picks two placements sharing the same footprint size,
// removes both, and tries to place each at the other's former anchor,
// rolling back to the unmodified current state if either leg fails. Swaps
// carry no tabu entry of their own.
func (e *saEngine) proposeSwap(placements []*board.Placement) (*board.State, float64, bool) {
	pairs := samePairFootprintIndices(placements)
	if len(pairs) == 0 {
		return nil, 0, false
	}
	pair := pairs[e.rng.Intn(len(pairs))]
	a, b := placements[pair[0]], placements[pair[1]]

	ma, okA := e.cache.Get(a.MutationID)
	mb, okB := e.cache.Get(b.MutationID)
	if !okA || !okB {
		return nil, 0, false
	}
	if e.isTabu(a.ID, b.Anchor) || e.isTabu(b.ID, a.Anchor) {
		return nil, 0, false
	}

	clone := e.current.Clone()
	if err := layout.Remove(clone, a.ID); err != nil {
		return nil, 0, false
	}
	if err := layout.Remove(clone, b.ID); err != nil {
		return nil, 0, false
	}

	fpA, errA := layout.Check(clone, ma, b.Anchor)
	fpB, errB := layout.Check(clone, mb, a.Anchor)
	if errA != nil || errB != nil {
		return nil, 0, false // rollback: discard clone, keep current unchanged
	}
	if err := layout.Execute(clone, fpA, a.ID); err != nil {
		return nil, 0, false
	}
	if err := layout.Execute(clone, fpB, b.ID); err != nil {
		return nil, 0, false
	}

	newScore := fitness.Score(clone, e.target, e.cache)
	return clone, newScore - e.currentScore, true
}

// samePairFootprintIndices returns every index pair (i,j), i<j, whose
// placements share the same (W,H) footprint size.
func samePairFootprintIndices(placements []*board.Placement) [][2]int {
	var pairs [][2]int
	for i := 0; i < len(placements); i++ {
		for j := i + 1; j < len(placements); j++ {
			if placements[i].W == placements[j].W && placements[i].H == placements[j].H {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return pairs
}
