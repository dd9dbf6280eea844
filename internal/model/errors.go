package model

import "errors"

var (
	// ErrCorruptedFile marks a logs file that breaks the line format or the
	// log's ordering rules, or that cannot be found. It is never repaired
	// automatically.
	ErrCorruptedFile = errors.New("corrupted file")

	// ErrSituational marks a command that is not valid in the current state,
	// e.g. starting twice.
	ErrSituational = errors.New("situational mistake")
)
