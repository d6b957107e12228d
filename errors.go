package cropmutation

import "errors"

// ErrNoCandidateMutations is returned by OptimizeLayout when allowedIDs is
// empty; it is distinguished from objective.ErrAllSpecial, which fires
// only once ids are resolved against the catalog.
var ErrNoCandidateMutations = errors.New("cropmutation: no candidate mutation ids supplied")
