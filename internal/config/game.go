package config

import "github.com/lgbarn/sgf-extract-go/internal/goban"

// GameConfig holds settings used while building games from records.
type GameConfig struct {
	// BoardSize is used when a record has no SZ property
	BoardSize int

	// SkipIllegalMoves logs and drops placements that fail instead of
	// rejecting the whole record
	SkipIllegalMoves bool
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		BoardSize: goban.DefaultBoardSize,
	}
}

// Validate checks that the game configuration is valid.
func (g *GameConfig) Validate() error {
	if g.BoardSize < 1 || g.BoardSize > goban.MaxBoardSize {
		return invalidf("board size must be between 1 and %d, got %d", goban.MaxBoardSize, g.BoardSize)
	}
	return nil
}
