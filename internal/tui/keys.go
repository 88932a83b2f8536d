package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/kingrea/submission-builder/internal/wizard"
)

type keyMap struct {
	Next      key.Binding
	Back      key.Binding
	Jump      key.Binding
	FocusNext key.Binding
	FocusPrev key.Binding
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	Copy      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "next step"),
		),
		Back: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "previous step"),
		),
		Jump: key.NewBinding(
			key.WithKeys("f1", "f2", "f3", "f4", "f5"),
			key.WithHelp("f1-f5", "jump to step"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		FocusPrev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "left", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "right", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "select"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c", "ctrl+y"),
			key.WithHelp("c", "copy to clipboard"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

var jumpTargets = map[string]wizard.Step{
	"f1": 1,
	"f2": 2,
	"f3": 3,
	"f4": 4,
	"f5": 5,
}

// bindings returns the help line for what the current screen accepts.
func (k keyMap) bindings(info wizard.StepInfo, kind wizard.FieldKind, last bool) []key.Binding {
	var out []key.Binding
	if !last {
		out = append(out, k.Next)
	}
	out = append(out, k.Back, k.Jump)
	if info.Preview() {
		return append(out, k.Up, k.Down, k.Copy, k.Quit)
	}
	if len(info.Fields) > 1 {
		out = append(out, k.FocusNext)
	}
	if kind == wizard.KindChoice || kind == wizard.KindChecklist {
		out = append(out, k.Up, k.Down, k.Toggle)
	}
	return append(out, k.Quit)
}
