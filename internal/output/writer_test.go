package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/sgf-extract-go/internal/config"
	"github.com/lgbarn/sgf-extract-go/internal/testutil"
)

func TestGameWriter_Interface(t *testing.T) {
	var _ GameWriter = (*ASCIIWriter)(nil)
	var _ GameWriter = (*LaTeXWriter)(nil)
	var _ GameWriter = (*JSONWriter)(nil)
	var _ GameWriter = (*StatsWriter)(nil)
}

func TestNewGameWriter(t *testing.T) {
	tests := []struct {
		format config.OutputFormat
		check  func(GameWriter) bool
	}{
		{config.ASCII, func(w GameWriter) bool { _, ok := w.(*ASCIIWriter); return ok }},
		{config.LaTeX, func(w GameWriter) bool { _, ok := w.(*LaTeXWriter); return ok }},
		{config.JSON, func(w GameWriter) bool { _, ok := w.(*JSONWriter); return ok }},
		{config.Stats, func(w GameWriter) bool { _, ok := w.(*StatsWriter); return ok }},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			cfg := config.NewConfigBuilder().WithOutputFormat(tt.format).Build()
			if !tt.check(NewGameWriter(&bytes.Buffer{}, cfg)) {
				t.Errorf("NewGameWriter(%v) returned the wrong writer", tt.format)
			}
		})
	}
}

func TestASCIIWriter_WriteGame(t *testing.T) {
	games := testutil.MustLoadFile(t, "two_games.sgf")
	var buf bytes.Buffer
	w := NewASCIIWriter(&buf, config.NewConfig())

	for _, g := range games {
		testutil.AssertNoError(t, w.WriteGame(g))
	}
	testutil.AssertNoError(t, w.Close())

	board := ".  .  .  .  .  .  .  .  .  \n" +
		".  .  .  .  .  .  .  .  .  \n" +
		".  .  O  .  .  .  .  .  .  \n" +
		".  .  .  .  .  .  .  .  .  \n" +
		".  .  .  .  X  .  .  .  .  \n" +
		".  .  .  .  .  .  .  .  .  \n" +
		".  .  .  .  .  .  X  .  .  \n" +
		".  .  .  .  .  .  .  .  .  \n" +
		".  .  .  .  .  .  .  .  .  \n"
	testutil.AssertEqual(t, buf.String(), board+"\n"+board)
}

func TestASCIIWriter_Position(t *testing.T) {
	g := loadFixture(t, "handicap.sgf")
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithPosition(0).Build()

	testutil.AssertNoError(t, NewASCIIWriter(&buf, cfg).WriteGame(g))
	testutil.AssertEqual(t, strings.Count(buf.String(), "X"), 1)
	testutil.AssertEqual(t, strings.Count(buf.String(), "O"), 0)

	cfg.Output.Position = 5
	testutil.AssertError(t, NewASCIIWriter(&buf, cfg).WriteGame(g))
}

func TestLaTeXWriter_WriteGame(t *testing.T) {
	g := loadFixture(t, "variations.sgf")
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithOutputFormat(config.LaTeX).WithDiagramStep(8).Build()

	testutil.AssertNoError(t, NewLaTeXWriter(&buf, cfg).WriteGame(g))
	testutil.AssertEqual(t, buf.String(), readGolden(t, "variations.tex"))
}

func TestLaTeXWriter_Position(t *testing.T) {
	g := loadFixture(t, "handicap.sgf")
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithOutputFormat(config.LaTeX).WithPosition(1).Build()

	testutil.AssertNoError(t, NewLaTeXWriter(&buf, cfg).WriteGame(g))
	testutil.AssertEqual(t, strings.Count(buf.String(), "\\cleargoban"), 1)
	testutil.AssertContains(t, buf.String(), "\\white[1]{d4}")
}

func TestJSONWriter_WriteGame(t *testing.T) {
	g := loadFixture(t, "variations.sgf")
	var buf bytes.Buffer
	w := NewJSONWriter(&buf, config.NewConfig())

	testutil.AssertNoError(t, w.WriteGame(g))
	testutil.AssertEqual(t, buf.Len(), 0, "batch writer should buffer until Close")
	testutil.AssertNoError(t, w.Close())

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if len(out.Games) != 1 {
		t.Fatalf("got %d games, want 1", len(out.Games))
	}

	jg := out.Games[0]
	testutil.AssertEqual(t, jg.BoardSize, 9)
	testutil.AssertEqual(t, jg.Black, JSONPlayer{Name: "Black Player", Rank: "3d"})
	testutil.AssertEqual(t, jg.Info["RE"], "W+2.5")
	testutil.AssertEqual(t, jg.Handicap, []string{"cc"})
	testutil.AssertEqual(t, jg.FinalMoveNumber, 16)
	testutil.AssertEqual(t, jg.Positions, 21)
	testutil.AssertEqual(t, len(jg.Moves), 16)

	second := jg.Moves[1]
	testutil.AssertEqual(t, second.Point, "ee")
	testutil.AssertEqual(t, second.Label, "e5")
	testutil.AssertEqual(t, second.Colour, "black")
	if len(second.Variations) != 1 {
		t.Fatalf("move 2 has %d variations, want 1", len(second.Variations))
	}
	alt := second.Variations[0]
	testutil.AssertEqual(t, len(alt), 3)
	testutil.AssertEqual(t, alt[0].Point, "dd")
	testutil.AssertEqual(t, alt[0].PositionID, 18)
	testutil.AssertEqual(t, alt[2].MoveNumber, 4)
	testutil.AssertEqual(t, len(alt[0].Variations), 0)

	seventh := jg.Moves[6]
	testutil.AssertEqual(t, seventh.Captured, []string{"cc"})
	testutil.AssertEqual(t, len(seventh.Variations), 1)
	testutil.AssertEqual(t, seventh.Variations[0][0].Point, "gf")

	testutil.AssertEqual(t, jg.Moves[14].Captured, []string{"ee"})
}

func TestJSONWriterSingle(t *testing.T) {
	games := testutil.MustLoadFile(t, "two_games.sgf")
	var buf bytes.Buffer
	cfg := config.NewConfig()
	cfg.Output.JSONIndent = false
	w := NewJSONWriterSingle(&buf, cfg)

	for _, g := range games {
		testutil.AssertNoError(t, w.WriteGame(g))
	}
	testutil.AssertNoError(t, w.Close())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	testutil.AssertEqual(t, len(lines), 2)
	for _, line := range lines {
		var jg JSONGame
		testutil.AssertNoError(t, json.Unmarshal([]byte(line), &jg))
		testutil.AssertEqual(t, jg.FinalMoveNumber, 3)
	}
}

func TestJSONWriter_Flush(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf, config.NewConfig())

	testutil.AssertNoError(t, w.Flush())
	testutil.AssertEqual(t, buf.Len(), 0, "empty flush writes nothing")

	testutil.AssertNoError(t, w.WriteGame(loadFixture(t, "handicap.sgf")))
	testutil.AssertNoError(t, w.Flush())
	n := buf.Len()
	testutil.AssertTrue(t, n > 0)

	testutil.AssertNoError(t, w.Close())
	testutil.AssertEqual(t, buf.Len(), n, "close after flush writes nothing more")
}

func TestStatsWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewStatsWriter(&buf)

	testutil.AssertNoError(t, w.WriteGame(loadFixture(t, "variations.sgf")))
	testutil.AssertNoError(t, w.WriteGame(loadFixture(t, "handicap.sgf")))

	want := "game 1: size 9, moves 16, positions 21, branch points 2, variations 2, depth 16, captures B 0 W 2, transpositions 0\n" +
		"game 2: size 19, moves 1, positions 2, branch points 0, variations 0, depth 1, captures B 0 W 0, transpositions 0\n"
	testutil.AssertEqual(t, buf.String(), want)
}
