package output

import (
	"os"
	"strings"
	"testing"

	"github.com/lgbarn/sgf-extract-go/internal/config"
	"github.com/lgbarn/sgf-extract-go/internal/goban"
	"github.com/lgbarn/sgf-extract-go/internal/testutil"
)

func readGolden(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(testutil.Golden(t, name))
	if err != nil {
		t.Fatalf("read golden %s: %v", name, err)
	}
	return string(data)
}

func loadFixture(t *testing.T, name string) *goban.Game {
	t.Helper()
	return testutil.MustLoadFile(t, name)[0]
}

func TestASCII(t *testing.T) {
	b := testutil.BoardFromDiagram(t,
		"X..",
		".O.",
		"...",
	)
	want := "X  .  .  \n.  O  .  \n.  .  .  \n"
	testutil.AssertEqual(t, ASCII(b), want)
}

func TestASCIIGolden(t *testing.T) {
	tests := []struct {
		input  string
		golden string
	}{
		{"handicap.sgf", "handicap.txt"},
		{"variations.sgf", "variations.txt"},
		{"long.sgf", "long.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			g := loadFixture(t, tt.input)
			b, err := SelectPosition(g, config.NewConfig().Output)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, ASCII(b), readGolden(t, tt.golden))
		})
	}
}

func TestSelectPosition(t *testing.T) {
	g := loadFixture(t, "variations.sgf")
	cfg := config.NewConfigBuilder().WithPosition(17).Build()

	b, err := SelectPosition(g, cfg.Output)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, b.ID(), 17)

	cfg.Output.Position = 99
	_, err = SelectPosition(g, cfg.Output)
	testutil.AssertError(t, err)

	b, err = SelectPosition(g, nil)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, b.ID(), g.MainlineEnd())
}

func TestDiagram(t *testing.T) {
	g := loadFixture(t, "handicap.sgf")
	b, _ := g.Board(1)
	moves, _ := g.LineMoves(1)

	want := "\\black{c3}\n\\white[1]{d4}\n" +
		"\n\\begin{center}\n\\rotategobanright\n\\shortstack{\\showfullgoban \\\\ From move 1}\n\\end{center}\n\\cleargoban\n"
	testutil.AssertEqual(t, Diagram(b, 1, moves), want)

	// stones before from are drawn without numbers
	testutil.AssertContains(t, Diagram(b, 2, moves), "\\white{d4}\n")
}

func TestDiagramColumnSkipsI(t *testing.T) {
	g := testutil.MustLoadGame(t, "(;SZ[19];B[hd];W[id])")
	b, _ := g.Board(g.MainlineEnd())
	moves, _ := g.LineMoves(g.MainlineEnd())

	got := Diagram(b, 1, moves)
	testutil.AssertContains(t, got, "\\black[1]{h4}\n\\white[2]{j4}\n")
}

func TestDiagramCaptureNotes(t *testing.T) {
	// 2 is captured by 3 and 5 refills the point; 6 is captured by 9 and
	// the point stays empty.
	g := testutil.MustLoadGame(t,
		"(;SZ[9];B[ba];W[aa];B[ab];W[ee];B[aa];W[ii];B[hi];W[gg];B[ih])")
	end := g.MainlineEnd()
	b, _ := g.Board(end)
	moves, _ := g.LineMoves(end)

	want := "\\black[5]{a1}\n\\black[3]{a2}\n\\black[1]{b1}\n" +
		"\\white[4]{e5}\n\\white[8]{g7}\n\\black[7]{h9}\n\\black[9]{j8}\n" +
		"\\gobansymbol{j9}{A}\n" +
		"\n\\begin{center}\n\\rotategobanright\n\\shortstack{\\showfullgoban \\\\ From move 1}\n\\end{center}\n\\cleargoban\n" +
		"2 at 5\\\\\n6 at A\\\\\n"
	testutil.AssertEqual(t, Diagram(b, 1, moves), want)
}

func TestCaptureLabel(t *testing.T) {
	tests := []struct {
		i    int
		want string
	}{
		{0, "A"},
		{1, "B"},
		{8, "I"},
		{19, "T"},
		{20, "AA"},
		{21, "AB"},
		{39, "AT"},
		{40, "BA"},
		{419, "TT"},
		{420, "AAA"},
	}
	for _, tt := range tests {
		if got := captureLabel(tt.i); got != tt.want {
			t.Errorf("captureLabel(%d) = %q, want %q", tt.i, got, tt.want)
		}
	}
}

func TestGameLaTeXGolden(t *testing.T) {
	tests := []struct {
		input  string
		step   int
		golden string
	}{
		{"variations.sgf", 8, "variations.tex"},
		{"long.sgf", 50, "long.tex"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := GameLaTeX(loadFixture(t, tt.input), tt.step)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, readGolden(t, tt.golden))
		})
	}
}

func TestGameLaTeXWindows(t *testing.T) {
	g := loadFixture(t, "long.sgf")

	got, err := GameLaTeX(g, 50)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, strings.Count(got, "\\cleargoban"), 5)
	for _, from := range []string{"0", "50", "100", "150", "200"} {
		testutil.AssertContains(t, got, "From move "+from+"}")
	}

	got, err = GameLaTeX(g, 220)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, strings.Count(got, "\\cleargoban"), 1)
}

func TestGameLaTeXEdgeCases(t *testing.T) {
	empty := testutil.MustLoadGame(t, "(;SZ[9]AB[ee])")
	got, err := GameLaTeX(empty, 10)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, "")

	_, err = GameLaTeX(empty, 0)
	testutil.AssertError(t, err)
}
