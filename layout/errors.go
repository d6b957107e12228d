package layout

import "errors"

// ErrInfeasible is returned by Check when a mutation cannot be placed at
// the requested anchor. It is a routine branch, not a programmer error:
// callers enumerate anchors and treat ErrInfeasible as "try the next
// one", matching spec.md S7 ("the engine never throws for placement
// failure").
var ErrInfeasible = errors.New("layout: placement infeasible at anchor")
