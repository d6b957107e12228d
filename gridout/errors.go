package gridout

import "errors"

// ErrMalformedCompact is returned by DecodeCompact when the decoded bytes
// do not form a whole number of well-formed triples.
var ErrMalformedCompact = errors.New("gridout: malformed compact payload")
