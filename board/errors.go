package board

import "errors"

// Sentinel errors for board and state operations.
var (
	// ErrOutOfBounds indicates a coordinate or rectangle falls outside the 10x10 board.
	ErrOutOfBounds = errors.New("board: coordinate out of bounds")
	// ErrCellLocked indicates a cell is not in the unlocked set.
	ErrCellLocked = errors.New("board: cell is locked")
	// ErrCellOccupied indicates a footprint or crop cell is already occupied.
	ErrCellOccupied = errors.New("board: cell already occupied")
	// ErrRectDoesNotFit indicates occupy_rect/fits_rect failed for the requested footprint.
	ErrRectDoesNotFit = errors.New("board: rectangle does not fit")
	// ErrUnknownInstance indicates a PlacementMap lookup/removal referenced a missing instance.
	ErrUnknownInstance = errors.New("board: unknown instance id")
	// ErrDuplicateInstance indicates an instance id was already recorded.
	ErrDuplicateInstance = errors.New("board: duplicate instance id")
)
