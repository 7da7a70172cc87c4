package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next     key.Binding
	Back     key.Binding
	Up       key.Binding
	Down     key.Binding
	Start    key.Binding
	End      key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap(games int) keyMap {
	k := keyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l", " "),
			key.WithHelp("→/l", "next"),
		),
		Back: key.NewBinding(
			key.WithKeys("left", "h", "backspace"),
			key.WithHelp("←/h", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous variation"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next variation"),
		),
		Start: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "start"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "end"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "previous game"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
	k.NextGame.SetEnabled(games > 1)
	k.PrevGame.SetEnabled(games > 1)
	return k
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Back, k.Down, k.Start, k.End, k.NextGame, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Back, k.Up, k.Down},
		{k.Start, k.End, k.NextGame, k.PrevGame},
		{k.Help, k.Quit},
	}
}
