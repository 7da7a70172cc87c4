package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lgbarn/sgf-extract-go/internal/goban"
)

const (
	blackStone = "●"
	whiteStone = "○"
	emptyPoint = "·"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginLeft(2)

	boardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			MarginLeft(2)

	lastMoveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	infoStyle = lipgloss.NewStyle().
			MarginLeft(2)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			MarginLeft(2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginLeft(2)
)

func (m model) View() string {
	b := m.board()

	sections := []string{
		titleStyle.Render(m.title()),
		boardStyle.Render(renderBoard(b)),
		infoStyle.Render(m.positionInfo(b)),
		infoStyle.Render(m.continuations(b)),
	}
	if m.status != "" {
		sections = append(sections, statusStyle.Render(m.status))
	}
	if len(m.games) > 1 {
		sections = append(sections, infoStyle.Render(fmt.Sprintf("game %d of %d", m.gameIdx+1, len(m.games))))
	}
	sections = append(sections, helpStyle.Render(m.help.View(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m model) title() string {
	g := m.game()
	player := func(c goban.Colour) string {
		name := g.Player(c)
		if name == "" {
			name = c.String()
		}
		if rank := g.Rank(c); rank != "" {
			name += " (" + rank + ")"
		}
		return name
	}
	title := player(goban.Black) + " vs " + player(goban.White)
	if name := g.Info("GN"); name != "" {
		title = name + ": " + title
	}
	return title
}

// renderBoard draws the highest row first, with column letters skipping i.
func renderBoard(b *goban.Board) string {
	size := b.Size()
	last, hasLast := b.LastMove()

	var sb strings.Builder
	header := func() {
		sb.WriteString("   ")
		for c := 0; c < size; c++ {
			label := goban.Intersection{Col: c}.Label()
			sb.WriteString(labelStyle.Render(label[:1]))
			sb.WriteByte(' ')
		}
	}

	header()
	sb.WriteByte('\n')
	for r := size - 1; r >= 0; r-- {
		sb.WriteString(labelStyle.Render(fmt.Sprintf("%2d", r+1)))
		sb.WriteByte(' ')
		for c := 0; c < size; c++ {
			p, _ := b.Point(r, c)
			cell := emptyPoint
			if p.Filled {
				cell = blackStone
				if p.Colour == goban.White {
					cell = whiteStone
				}
			}
			if hasLast && last.Intersection == (goban.Intersection{Row: r, Col: c}) {
				cell = lastMoveStyle.Render(cell)
			}
			sb.WriteString(cell)
			sb.WriteByte(' ')
		}
		sb.WriteString(labelStyle.Render(fmt.Sprintf("%d", r+1)))
		sb.WriteByte('\n')
	}
	header()
	return sb.String()
}

func (m model) positionInfo(b *goban.Board) string {
	stones := fmt.Sprintf("stones: black %d, white %d", b.Count(goban.Black), b.Count(goban.White))
	last, ok := b.LastMove()
	if !ok {
		return fmt.Sprintf("Start of game · position %d · %s", b.ID(), stones)
	}
	return fmt.Sprintf("Move %d: %s %s · position %d · %s",
		last.Number, last.Colour, last.Intersection.Label(), b.ID(), stones)
}

// continuations lists the moves that can follow, marking the selected one.
func (m model) continuations(b *goban.Board) string {
	next := b.NextBoards()
	if len(next) == 0 {
		return "No further moves"
	}

	items := make([]string, len(next))
	for i, id := range next {
		nb, err := m.game().Board(id)
		if err != nil {
			continue
		}
		mv, _ := nb.LastMove()
		item := fmt.Sprintf("%d) %s", i+1, mv.Intersection.Label())
		if i == m.selected {
			item = selectedStyle.Render("[" + item + "]")
		}
		items[i] = item
	}
	return "Next: " + strings.Join(items, "  ")
}
