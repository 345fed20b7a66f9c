package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/icash/internal/state"
)

// KeyMap defines the key bindings of the game screens.
// Letter keys are left free while a guess is being typed, so every binding
// that is active in the PLAY scene uses a non-printable key.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Cycle   key.Binding
	Select  key.Binding
	Submit  key.Binding
	Yes     key.Binding
	No      key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "down"),
		),
		Cycle: key.NewBinding(
			key.WithKeys("right", "left", "tab", " ", "l", "h"),
			key.WithHelp("left/right", "change timer"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit word"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "keep progress"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N"),
			key.WithHelp("n", "discard"),
		),
		Restart: key.NewBinding(
			key.WithKeys("n", "N", "r", "enter"),
			key.WithHelp("n", "new game"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// sceneKeys implements help.KeyMap for the bindings active in one scene.
type sceneKeys struct {
	bindings []key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k sceneKeys) ShortHelp() []key.Binding {
	return k.bindings
}

// FullHelp returns key bindings for the full help view.
func (k sceneKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.bindings}
}

// forScene returns the bindings shown in the help bar for scene.
func (k KeyMap) forScene(scene state.Scene) sceneKeys {
	switch scene {
	case state.SceneModes:
		return sceneKeys{[]key.Binding{k.Up, k.Down, k.Select, k.Quit}}
	case state.SceneSetTimer:
		return sceneKeys{[]key.Binding{k.Cycle, k.Select, k.Quit}}
	case state.ScenePlay:
		return sceneKeys{[]key.Binding{k.Submit, k.Quit}}
	case state.SceneGameOver:
		return sceneKeys{[]key.Binding{k.Restart, k.Quit}}
	case state.SceneSave:
		return sceneKeys{[]key.Binding{k.Yes, k.No}}
	default:
		return sceneKeys{[]key.Binding{k.Select, k.Quit}}
	}
}
