// Package solver builds and refines States: a greedy constructive pass, a
// bulk-pattern fast path for dominant single-mutation workloads, a
// simulated-annealing refinement loop, a genetic layer seeding that loop
// from varied greedy runs, and an orchestrator that dispatches across
// named strategy profiles and returns the best result found.
package solver
