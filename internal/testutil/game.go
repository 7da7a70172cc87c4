package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/sgf-extract-go/internal/config"
	"github.com/lgbarn/sgf-extract-go/internal/engine"
	"github.com/lgbarn/sgf-extract-go/internal/goban"
)

// LoadTestGame builds the first game of an SGF string, or returns nil if the
// record fails to parse or build.
func LoadTestGame(sgf string) *goban.Game {
	if games := LoadTestGames(sgf); len(games) > 0 {
		return games[0]
	}
	return nil
}

// LoadTestGames builds every game of an SGF string. It returns nil if any
// game fails.
func LoadTestGames(sgf string) []*goban.Game {
	games, err := engine.NewBuilder(config.NewConfig(), nil).ReadAll(strings.NewReader(sgf))
	if err != nil || len(games) == 0 {
		return nil
	}
	return games
}

// MustLoadGame builds the first game of an SGF string and calls t.Fatal on
// failure.
func MustLoadGame(t testing.TB, sgf string) *goban.Game {
	t.Helper()
	game, err := engine.LoadGame(strings.NewReader(sgf), nil, nil)
	if err != nil {
		t.Fatalf("failed to load test game: %v\n%s", err, sgf)
	}
	return game
}

// MustLoadFile builds every game of a file under testdata/infiles.
func MustLoadFile(t testing.TB, name string) []*goban.Game {
	t.Helper()
	games, err := engine.LoadFile(Infile(t, name), nil, nil)
	if err != nil {
		t.Fatalf("failed to load %s: %v", name, err)
	}
	return games
}

// Infile returns the path of a file under testdata/infiles.
func Infile(t testing.TB, name string) string {
	t.Helper()
	return filepath.Join(TestdataDir(t), "infiles", name)
}

// Golden returns the path of a file under testdata/golden.
func Golden(t testing.TB, name string) string {
	t.Helper()
	return filepath.Join(TestdataDir(t), "golden", name)
}

// TestdataDir finds the repository testdata directory by walking up from the
// working directory to the directory holding go.mod.
func TestdataDir(t testing.TB) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return filepath.Join(dir, "testdata")
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("testdata: no go.mod above working directory")
		}
		dir = parent
	}
}

// BoardFromDiagram builds a board from rows of 'X' (black), 'O' (white) and
// '.' (empty), top row first. Stones get move number 0 and are placed in
// row order, so a diagram holding a group without liberties loses it.
func BoardFromDiagram(t testing.TB, rows ...string) *goban.Board {
	t.Helper()
	b, err := goban.NewBoard(len(rows))
	if err != nil {
		t.Fatal(err)
	}
	for r, row := range rows {
		if len(row) != len(rows) {
			t.Fatalf("row %d has %d cells, want %d", r, len(row), len(rows))
		}
		for c, cell := range row {
			var colour goban.Colour
			switch cell {
			case 'X':
				colour = goban.Black
			case 'O':
				colour = goban.White
			case '.':
				continue
			default:
				t.Fatalf("row %d: unexpected cell %q", r, cell)
			}
			if _, err := b.Place(goban.Intersection{Row: r, Col: c}, colour, 0); err != nil {
				t.Fatal(err)
			}
		}
	}
	return b
}

// BoardDiagram renders the stones of b in the BoardFromDiagram format.
func BoardDiagram(b *goban.Board) string {
	rows := make([]string, b.Size())
	for r := range rows {
		var sb strings.Builder
		for c := 0; c < b.Size(); c++ {
			p, _ := b.Point(r, c)
			if p.IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(p.Colour.Symbol())
			}
		}
		rows[r] = sb.String()
	}
	return strings.Join(rows, "\n")
}
