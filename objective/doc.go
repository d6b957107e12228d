// Package objective implements the alternative annealing mode: instead of
// placing a fixed workload, the search chooses freely from an allowed pool
// of mutations and maximizes a user-selected scalar (instance count or
// drop/effect profit) via ADD/REMOVE/MOVE/SWAP moves.
package objective
