package catalog

import "errors"

// Sentinel errors for catalog parsing.
var (
	// ErrMalformedSize indicates a raw record's Size field is not a valid
	// "WxH" string with W,H in {1,2,3}.
	ErrMalformedSize = errors.New("catalog: malformed size string")
	// ErrUnknownID indicates a lookup referenced an id absent from the
	// catalog.
	ErrUnknownID = errors.New("catalog: unknown mutation id")
	// ErrNegativeCondition indicates a condition value was negative or not
	// a number.
	ErrNegativeCondition = errors.New("catalog: negative condition value")
)
