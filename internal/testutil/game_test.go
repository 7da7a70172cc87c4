package testutil

import (
	"os"
	"testing"

	"github.com/lgbarn/sgf-extract-go/internal/goban"
)

func TestLoadTestGame(t *testing.T) {
	tests := []struct {
		name      string
		sgf       string
		wantNil   bool
		wantMoves int
		wantBlack string
		wantSize  int
	}{
		{
			name:      "simple game",
			sgf:       "(;SZ[9]PB[Alpha];B[ee];W[cc];B[gg])",
			wantMoves: 3,
			wantBlack: "Alpha",
			wantSize:  9,
		},
		{
			name:      "default size",
			sgf:       "(;B[pd];W[dp])",
			wantMoves: 2,
			wantSize:  19,
		},
		{
			name:      "variations follow the first line",
			sgf:       "(;SZ[9];B[ee](;W[cc];B[gg])(;W[gg]))",
			wantMoves: 3,
			wantSize:  9,
		},
		{name: "empty input", sgf: "", wantNil: true},
		{name: "whitespace only", sgf: "   \n\t  ", wantNil: true},
		{name: "occupied point", sgf: "(;SZ[9];B[ee];W[ee])", wantNil: true},
		{name: "unterminated", sgf: "(;SZ[9];B[ee]", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := LoadTestGame(tt.sgf)
			if tt.wantNil {
				if game != nil {
					t.Errorf("LoadTestGame() = %v, want nil", game)
				}
				return
			}
			if game == nil {
				t.Fatal("LoadTestGame() = nil, want game")
			}
			if got := game.FinalMoveNumber(); got != tt.wantMoves {
				t.Errorf("FinalMoveNumber() = %d, want %d", got, tt.wantMoves)
			}
			if got := game.BoardSize(); got != tt.wantSize {
				t.Errorf("BoardSize() = %d, want %d", got, tt.wantSize)
			}
			if tt.wantBlack != "" && game.Player(goban.Black) != tt.wantBlack {
				t.Errorf("Player(Black) = %q, want %q", game.Player(goban.Black), tt.wantBlack)
			}
		})
	}
}

func TestLoadTestGames(t *testing.T) {
	games := LoadTestGames("(;SZ[9];B[ee])(;SZ[13];B[gg];W[cc])")
	if len(games) != 2 {
		t.Fatalf("LoadTestGames() returned %d games, want 2", len(games))
	}
	if games[1].BoardSize() != 13 || games[1].FinalMoveNumber() != 2 {
		t.Errorf("second game: size %d, moves %d", games[1].BoardSize(), games[1].FinalMoveNumber())
	}
	if LoadTestGames("") != nil {
		t.Error("LoadTestGames(\"\") should be nil")
	}
}

func TestMustLoadGame(t *testing.T) {
	game := MustLoadGame(t, "(;SZ[9]AB[cc];W[dd])")
	if got := len(game.HandicapStones()); got != 1 {
		t.Errorf("HandicapStones() has %d stones, want 1", got)
	}
}

func TestMustLoadFile(t *testing.T) {
	games := MustLoadFile(t, "two_games.sgf")
	if len(games) != 2 {
		t.Fatalf("MustLoadFile() returned %d games, want 2", len(games))
	}
}

func TestTestdataPaths(t *testing.T) {
	for _, path := range []string{Infile(t, "variations.sgf"), Golden(t, "variations.txt")} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("stat %s: %v", path, err)
		}
	}
}

func TestBoardDiagramRoundTrip(t *testing.T) {
	rows := []string{
		".....",
		".XO..",
		"..X..",
		"O...X",
		".....",
	}
	b := BoardFromDiagram(t, rows...)

	if got := b.Count(goban.Black); got != 3 {
		t.Errorf("Count(Black) = %d, want 3", got)
	}
	if got := b.Count(goban.White); got != 2 {
		t.Errorf("Count(White) = %d, want 2", got)
	}
	AssertBoard(t, b, rows...)
}
