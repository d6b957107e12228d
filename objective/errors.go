package objective

import "errors"

// ErrAllSpecial is returned when no candidate is auto-placeable: every
// mutation is unknown, carries an unsatisfiable "special" condition, or
// depends on a mutation that is itself excluded, leaving nothing the
// engine may ever auto-place.
var ErrAllSpecial = errors.New("objective: candidate pool has no auto-placeable mutation")
