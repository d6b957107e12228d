package solver

import "errors"

// ErrUnknownMutationID is returned when a workload names a mutation id
// the catalog cache has never parsed.
var ErrUnknownMutationID = errors.New("solver: unknown mutation id in workload")
