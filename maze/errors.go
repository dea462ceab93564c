package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze construction, verification and parsing.
var (
	// ErrEmptyGrid indicates a requested grid has zero rows or zero columns.
	ErrEmptyGrid = errors.New("maze: grid must have at least one row and one column")
	// ErrNotPerfect indicates the open passages do not form a spanning tree.
	ErrNotPerfect = errors.New("maze: passages do not form a spanning tree")

	// ErrBadCharacter indicates a character other than '_', '|' or ' '.
	ErrBadCharacter = errors.New("maze: bad character")
	// ErrUnevenLines indicates lines of differing lengths.
	ErrUnevenLines = errors.New("maze: lines must all have the same length")
	// ErrTooFewLines indicates fewer than two lines.
	ErrTooFewLines = errors.New("maze: at least two lines are required")
	// ErrTooNarrow indicates lines shorter than three characters.
	ErrTooNarrow = errors.New("maze: lines must be at least three characters wide")
	// ErrEvenWidth indicates lines of even length.
	ErrEvenWidth = errors.New("maze: line width must be odd")
)

// ParseError reports malformed text input together with its position.
// Line and Column are one based.
type ParseError struct {
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: %v", e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
