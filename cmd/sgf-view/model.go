package main

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lgbarn/sgf-extract-go/internal/goban"
)

// model is the viewer state. The games are fully built before the program
// starts and are only read from here on.
type model struct {
	games   []*goban.Game
	gameIdx int

	current  int // position id on display
	selected int // continuation taken by the next step forward

	keys keyMap
	help help.Model

	width  int
	height int
	status string
}

func newModel(games []*goban.Game) model {
	return model{
		games:   games,
		current: goban.RootPosition,
		keys:    newKeyMap(len(games)),
		help:    help.New(),
	}
}

func (m model) game() *goban.Game {
	return m.games[m.gameIdx]
}

// board returns the position on display. Ids always come from the tree, so
// the lookup cannot fail.
func (m model) board() *goban.Board {
	b, _ := m.game().Board(m.current)
	return b
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		m.status = ""
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m = m.forward()
		case key.Matches(msg, m.keys.Back):
			m = m.back()
		case key.Matches(msg, m.keys.Up):
			if m.selected > 0 {
				m.selected--
			}
		case key.Matches(msg, m.keys.Down):
			if m.selected < m.board().VariationCount()-1 {
				m.selected++
			}
		case key.Matches(msg, m.keys.Start):
			m.current = goban.RootPosition
			m.selected = 0
		case key.Matches(msg, m.keys.End):
			m.current = m.game().MainlineEnd()
			m.selected = 0
		case key.Matches(msg, m.keys.NextGame):
			m = m.switchGame(m.gameIdx + 1)
		case key.Matches(msg, m.keys.PrevGame):
			m = m.switchGame(m.gameIdx - 1)
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

// forward follows the selected continuation.
func (m model) forward() model {
	id, ok := m.board().Next(m.selected)
	if !ok {
		m.status = "end of variation"
		return m
	}
	m.current = id
	m.selected = 0
	return m
}

// back returns to the previous position and selects the continuation that
// leads to where we came from.
func (m model) back() model {
	b := m.board()
	if b.ID() == goban.RootPosition {
		m.status = "at the start of the game"
		return m
	}
	parent, _ := m.game().Board(b.Prev())
	m.selected = 0
	for i, id := range parent.NextBoards() {
		if id == b.ID() {
			m.selected = i
			break
		}
	}
	m.current = parent.ID()
	return m
}

func (m model) switchGame(idx int) model {
	if idx < 0 || idx >= len(m.games) {
		m.status = "no more games"
		return m
	}
	m.gameIdx = idx
	m.current = goban.RootPosition
	m.selected = 0
	return m
}
