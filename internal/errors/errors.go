// Package errors provides sentinel errors and error types for the sgf-extract tool.
// Board and game operations report failures with the sentinels below; loaders
// wrap them in GameError or ParseError so callers keep file and move context
// while still being able to inspect them with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrOutOfRange indicates an intersection outside the board.
	ErrOutOfRange = errors.New("intersection out of range")

	// ErrPointOccupied indicates a placement on a point that already holds a stone.
	ErrPointOccupied = errors.New("point occupied")

	// ErrUnknownPosition indicates a position id that is not in the game tree.
	ErrUnknownPosition = errors.New("unknown position")

	// ErrInvalidBoardSize indicates a board size that cannot be used.
	ErrInvalidBoardSize = errors.New("invalid board size")

	// ErrSetupAfterMove indicates a board resize once stones are on the board.
	ErrSetupAfterMove = errors.New("setup after first placement")

	// ErrInvalidCoordinate indicates a malformed textual coordinate.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrParseFailure indicates a general SGF parsing error.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDuplicateGame indicates a duplicate game was detected.
	ErrDuplicateGame = errors.New("duplicate game")

	// ErrInvalidCriterion indicates a selection criterion that cannot be used.
	ErrInvalidCriterion = errors.New("invalid criterion")
)

// GameError wraps errors with game context: which record, which position in
// the move tree and which move was being applied.
type GameError struct {
	Err        error  // The underlying error
	File       string // Source file name (if known)
	GameNum    int    // 1-based game number in the file (0 if unknown)
	PositionID int    // Position the move was played from (-1 if not applicable)
	MoveNumber int    // Move number that failed (0 for setup stones)
	Point      string // The SGF point text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.File != "" {
		parts = append(parts, e.File)
	}
	if e.GameNum > 0 {
		parts = append(parts, fmt.Sprintf("game %d", e.GameNum))
	}
	if e.PositionID >= 0 {
		parts = append(parts, fmt.Sprintf("position %d", e.PositionID))
	}
	if e.MoveNumber > 0 {
		parts = append(parts, fmt.Sprintf("move %d", e.MoveNumber))
	} else {
		parts = append(parts, "setup")
	}
	if e.Point != "" {
		parts = append(parts, fmt.Sprintf("point %q", e.Point))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the GameError wrapper.
func (e *GameError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing error with file location context.
type ParseError struct {
	Err      error  // The underlying error
	File     string // Source file name
	Line     int    // Line number (1-based)
	Column   int    // Column number (1-based)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	loc := e.File
	if e.Line > 0 {
		if loc != "" {
			loc += ":"
		}
		loc += fmt.Sprintf("%d", e.Line)
		if e.Column > 0 {
			loc += fmt.Sprintf(":%d", e.Column)
		}
	}
	if loc != "" {
		parts = append(parts, loc)
	}

	switch {
	case e.Expected != "" && e.Got != "":
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	case e.Expected != "":
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	case e.Got != "":
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
