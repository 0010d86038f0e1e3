package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"shopfront/internal/ui/input/types"
)

// keyMap lists the bindings shown in the help line. Key handling itself
// lives in the input modes.
type keyMap struct {
	Move       key.Binding
	Open       key.Binding
	Back       key.Binding
	Slider     key.Binding
	AutoPlay   key.Binding
	Tabs       key.Binding
	Comment    key.Binding
	Field      key.Binding
	Stars      key.Binding
	Submit     key.Binding
	Cancel     key.Binding
	SubmitForm key.Binding
	Logout     key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Move:       key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("←↑↓→/hjkl", "move")),
		Open:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Slider:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "focus slider")),
		AutoPlay:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "autoplay")),
		Tabs:       key.NewBinding(key.WithKeys("[", "]"), key.WithHelp("[/]", "tabs")),
		Comment:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "comment")),
		Field:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Stars:      key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→ 0-5", "rating")),
		Submit:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit")),
		Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		SubmitForm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "login")),
		Logout:     key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "logout")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// bindings returns the help line of a page and input mode
func (k keyMap) bindings(page types.Page, mode types.Mode) []key.Binding {
	switch {
	case page == types.PageLogin:
		return []key.Binding{k.Field, k.SubmitForm, k.ForceQuit}
	case mode == types.ModeComment:
		return []key.Binding{k.Field, k.Stars, k.Submit, k.Cancel}
	case page == types.PageProduct:
		return []key.Binding{k.Back, k.Slider, k.AutoPlay, k.Tabs, k.Comment, k.Help, k.Quit}
	default:
		return []key.Binding{k.Move, k.Open, k.Logout, k.Help, k.Quit}
	}
}
