package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lgbarn/sgf-extract-go/internal/config"
	"github.com/lgbarn/sgf-extract-go/internal/goban"
	"github.com/lgbarn/sgf-extract-go/internal/logging"
	"github.com/lgbarn/sgf-extract-go/internal/testutil"
)

var namedKeys = map[string]tea.KeyType{
	"right":  tea.KeyRight,
	"left":   tea.KeyLeft,
	"up":     tea.KeyUp,
	"down":   tea.KeyDown,
	"home":   tea.KeyHome,
	"end":    tea.KeyEnd,
	"esc":    tea.KeyEsc,
	"ctrl+c": tea.KeyCtrlC,
}

func keyPress(name string) tea.KeyMsg {
	if t, ok := namedKeys[name]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

func press(t *testing.T, m model, keys ...string) model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyPress(k))
		var ok bool
		m, ok = next.(model)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func openFixture(t *testing.T, name string) model {
	t.Helper()
	m, err := loadModel(testutil.Infile(t, name), 1, config.NewConfig(), logging.Nop())
	testutil.RequireNoError(t, err)
	return m
}

func TestForwardFollowsMainline(t *testing.T) {
	m := openFixture(t, "variations.sgf")
	testutil.AssertEqual(t, m.current, goban.RootPosition)

	m = press(t, m, "right", "l")
	testutil.AssertEqual(t, m.current, 2)
	testutil.AssertEqual(t, m.selected, 0)
}

func TestSelectVariation(t *testing.T) {
	m := openFixture(t, "variations.sgf")
	m = press(t, m, "right")
	testutil.RequireEqual(t, m.current, 1)

	m = press(t, m, "down", "down")
	testutil.AssertEqual(t, m.selected, 1, "selection stops at the last continuation")
	m = press(t, m, "up", "up")
	testutil.AssertEqual(t, m.selected, 0, "selection stops at the first continuation")

	m = press(t, m, "j", "right")
	testutil.AssertEqual(t, m.current, 18)
	m = press(t, m, "right", "right")
	testutil.AssertEqual(t, m.current, 20)

	m = press(t, m, "right")
	testutil.AssertEqual(t, m.current, 20)
	testutil.AssertEqual(t, m.status, "end of variation")
}

func TestBackRemembersVariation(t *testing.T) {
	m := openFixture(t, "variations.sgf")
	m = press(t, m, "right", "down", "right", "right")
	testutil.RequireEqual(t, m.current, 19)

	m = press(t, m, "left", "h")
	testutil.AssertEqual(t, m.current, 1)
	testutil.AssertEqual(t, m.selected, 1)

	m = press(t, m, "right")
	testutil.AssertEqual(t, m.current, 18)
}

func TestBackAtRoot(t *testing.T) {
	m := openFixture(t, "variations.sgf")
	m = press(t, m, "left")
	testutil.AssertEqual(t, m.current, goban.RootPosition)
	testutil.AssertContains(t, m.status, "start")

	m = press(t, m, "right")
	testutil.AssertEmpty(t, m.status, "status clears on the next key")
}

func TestHomeAndEnd(t *testing.T) {
	m := openFixture(t, "variations.sgf")

	m = press(t, m, "end")
	testutil.AssertEqual(t, m.current, 16)
	m = press(t, m, "home")
	testutil.AssertEqual(t, m.current, goban.RootPosition)
	m = press(t, m, "G")
	testutil.AssertEqual(t, m.current, 16)
	m = press(t, m, "g")
	testutil.AssertEqual(t, m.current, goban.RootPosition)
}

func TestSwitchGames(t *testing.T) {
	m := openFixture(t, "two_games.sgf")
	m = press(t, m, "end")

	m = press(t, m, "n")
	testutil.AssertEqual(t, m.gameIdx, 1)
	testutil.AssertEqual(t, m.current, goban.RootPosition)
	testutil.AssertEqual(t, m.game().Player(goban.Black), "Gamma")

	m = press(t, m, "n")
	testutil.AssertEqual(t, m.gameIdx, 1)
	testutil.AssertEqual(t, m.status, "no more games")

	m = press(t, m, "p")
	testutil.AssertEqual(t, m.gameIdx, 0)
}

func TestQuit(t *testing.T) {
	for _, k := range []string{"q", "esc", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			_, cmd := openFixture(t, "handicap.sgf").Update(keyPress(k))
			testutil.RequireNotNil(t, cmd)
			_, ok := cmd().(tea.QuitMsg)
			testutil.AssertTrue(t, ok)
		})
	}
}

func TestWindowSize(t *testing.T) {
	next, cmd := openFixture(t, "handicap.sgf").Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	testutil.AssertNil(t, cmd)
	m := next.(model)
	testutil.AssertEqual(t, m.width, 80)
	testutil.AssertEqual(t, m.height, 40)
}

func TestView(t *testing.T) {
	m := openFixture(t, "variations.sgf")

	view := m.View()
	testutil.AssertContains(t, view, "Black Player (3d) vs ")
	testutil.AssertContains(t, view, "Start of game")
	testutil.AssertContains(t, view, "Next: ")

	m = press(t, m, "right")
	view = m.View()
	testutil.AssertContains(t, view, "1) e5")
	testutil.AssertContains(t, view, "2) d4")

	m = press(t, m, "end")
	b := m.board()
	view = m.View()
	stones := strings.Count(view, blackStone) + strings.Count(view, whiteStone)
	testutil.AssertEqual(t, stones, b.Count(goban.Black)+b.Count(goban.White))
	testutil.AssertContains(t, view, "Move 16: Black a1")
	testutil.AssertContains(t, view, "No further moves")
	testutil.AssertNotContains(t, view, "next game", "game keys are hidden for single games")
}

func TestHelpToggle(t *testing.T) {
	m := openFixture(t, "variations.sgf")
	testutil.AssertNotContains(t, m.View(), "previous variation")

	m = press(t, m, "?")
	testutil.AssertTrue(t, m.help.ShowAll)
	testutil.AssertContains(t, m.View(), "previous variation")
}

func TestViewMultipleGames(t *testing.T) {
	view := openFixture(t, "two_games.sgf").View()
	testutil.AssertContains(t, view, "game 1 of 2")
	testutil.AssertContains(t, view, "next game")
}

func TestRenderBoardLabels(t *testing.T) {
	g := testutil.MustLoadGame(t, "(;SZ[10];B[ia])")
	b, err := g.Board(g.MainlineEnd())
	testutil.RequireNoError(t, err)

	out := renderBoard(b)
	lines := strings.Split(out, "\n")
	testutil.AssertEqual(t, lines[0], "   a b c d e f g h j k ", "column i is skipped")
	testutil.AssertTrue(t, strings.HasPrefix(lines[1], "10 "))
	testutil.AssertTrue(t, strings.HasPrefix(lines[10], " 1 "))
	testutil.AssertContains(t, lines[10], blackStone)
	testutil.AssertEqual(t, strings.Count(out, blackStone), 1)
}

func TestModelFor(t *testing.T) {
	games := testutil.MustLoadFile(t, "two_games.sgf")

	m, err := modelFor(games, 2)
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, m.gameIdx, 1)

	_, err = modelFor(games, 3)
	testutil.AssertError(t, err)
	_, err = modelFor(games, 0)
	testutil.AssertError(t, err)
}

func TestLoadModelMissingFile(t *testing.T) {
	_, err := loadModel(t.TempDir()+"/missing.sgf", 1, config.NewConfig(), logging.Nop())
	testutil.AssertError(t, err)
}
