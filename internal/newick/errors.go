package newick

import "go.trai.ch/zerr"

var (
	// ErrEmpty is returned when the input holds no topology at all.
	ErrEmpty = zerr.New("empty newick")

	// ErrUnexpectedEOF is returned when the input ends inside a bracket group.
	ErrUnexpectedEOF = zerr.New("unexpected end of newick")

	// ErrUnexpectedCharacter is returned for a character outside the newick alphabet.
	ErrUnexpectedCharacter = zerr.New("unexpected character in newick")

	// ErrUnexpectedToken is returned when a valid token appears in the wrong place.
	ErrUnexpectedToken = zerr.New("unexpected token in newick")

	// ErrInvalidCount is returned for a lineage count that is zero, has a leading zero or overflows.
	ErrInvalidCount = zerr.New("lineage count must be a positive integer")

	// ErrTooFewChildren is returned for a bracket group holding fewer than two children.
	ErrTooFewChildren = zerr.New("bracket group must hold at least two children")

	// ErrTrailingInput is returned when characters follow a complete newick.
	ErrTrailingInput = zerr.New("trailing input after newick")
)
