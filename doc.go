// Package cropmutation computes near-optimal placements of mutation
// tiles and their supporting crop cells on a bounded 10x10 board, subject
// to adjacency and isolation constraints.
//
// Two workload modes are supported: a wishlist of target mutations with
// multiplicities (Optimize / OptimizeWithBreakdown / OptimizeAll, backed
// by solver.MultiStrategy's five scoring profiles plus a genetic layer
// and a bulk fast path), or a free objective search over an allowed
// mutation pool (OptimizeLayout, backed by objective.Run's ADD/REMOVE/
// MOVE/SWAP annealing loop).
//
// Subpackages:
//
//	board/     — Board, CropMap, PlacementMap, State
//	catalog/   — raw catalog decoding, ParsedMutation, godseed set-cover
//	layout/    — FeasibilityChecker, Placer, PlacementScorer
//	fitness/   — the global placement fitness function
//	solver/    — GreedySolver, BulkPlacer, SimulatedAnnealing, GeneticOptimizer, MultiStrategyOptimizer
//	objective/ — the free-objective ADD/REMOVE/MOVE/SWAP annealing engine
//	gridout/   — output grid projection and compact persistence encoding
package cropmutation
