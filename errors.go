package autocuber

import "errors"

// Sentinel errors for the autocuber package.
var (
	// Parsing and validation errors
	ErrInvalidNotation = errors.New("autocuber: invalid move notation")
	ErrInvalidDepth    = errors.New("autocuber: slice depth out of range")

	// Sequencer errors
	ErrAnimating   = errors.New("autocuber: animation in progress")
	ErrUnknownStep = errors.New("autocuber: history step out of range")
	ErrNoHistory   = errors.New("autocuber: move history disabled")
)
