// ABOUTME: Key bindings mapping keyboard input to review commands, with config-driven overrides.
// ABOUTME: Letter keys are matched case-insensitively; KeyMap also feeds the bubbles help view.
package tui

import (
	"fmt"
	"strings"

	"github.com/2389-research/sortstudy/review"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines all key bindings for the review TUI.
type KeyMap struct {
	// Reviewing
	ToggleBack key.Binding
	Wrong      key.Binding
	Right      key.Binding
	Delete     key.Binding

	// Pass complete
	NextPass key.Binding
	Shuffle  key.Binding
	Flip     key.Binding

	// Anywhere
	ToggleBorders key.Binding
	Reload        key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the built-in key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ToggleBack: key.NewBinding(
			key.WithKeys("j", " "),
			key.WithHelp("j/space", "show/hide back"),
		),
		Wrong: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("k", "wrong"),
		),
		Right: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "right"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete card"),
		),
		NextPass: key.NewBinding(
			key.WithKeys("n", "enter"),
			key.WithHelp("n/enter", "next pass"),
		),
		Shuffle: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "shuffle"),
		),
		Flip: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "flip"),
		),
		ToggleBorders: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "borders"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// binding returns the binding that issues cmd, or nil if cmd has none.
func (k *KeyMap) binding(cmd review.Command) *key.Binding {
	switch cmd {
	case review.CmdToggleBack:
		return &k.ToggleBack
	case review.CmdMarkWrong:
		return &k.Wrong
	case review.CmdMarkRight:
		return &k.Right
	case review.CmdDelete:
		return &k.Delete
	case review.CmdNextPass:
		return &k.NextPass
	case review.CmdShuffle:
		return &k.Shuffle
	case review.CmdFlip:
		return &k.Flip
	case review.CmdToggleBorders:
		return &k.ToggleBorders
	case review.CmdReload:
		return &k.Reload
	case review.CmdQuit:
		return &k.Quit
	default:
		return nil
	}
}

// boundCommands lists every command that has a key binding, in match order.
var boundCommands = []review.Command{
	review.CmdQuit,
	review.CmdToggleBack,
	review.CmdMarkWrong,
	review.CmdMarkRight,
	review.CmdDelete,
	review.CmdNextPass,
	review.CmdShuffle,
	review.CmdFlip,
	review.CmdToggleBorders,
	review.CmdReload,
}

// Rebind replaces the keys of the named commands. Names are the command
// names accepted by review.ParseCommand. A key may belong to only one
// command; on any error k is left unchanged.
func (k *KeyMap) Rebind(overrides map[string][]string) error {
	next := *k
	for name, keys := range overrides {
		cmd, ok := review.ParseCommand(name)
		if !ok {
			return fmt.Errorf("unknown command %q", name)
		}
		b := next.binding(cmd)
		if b == nil {
			return fmt.Errorf("command %q cannot be bound to keys", name)
		}
		if len(keys) == 0 {
			return fmt.Errorf("command %q needs at least one key", name)
		}

		lowered := make([]string, len(keys))
		for i, s := range keys {
			lowered[i] = normalizeKeyName(s)
		}
		b.SetKeys(lowered...)
		b.SetHelp(strings.Join(lowered, "/"), b.Help().Desc)
	}

	if err := next.checkDuplicates(); err != nil {
		return err
	}
	*k = next
	return nil
}

// checkDuplicates reports a key bound to more than one command.
func (k *KeyMap) checkDuplicates() error {
	owner := map[string]string{}
	claim := func(name string, b key.Binding) error {
		for _, s := range b.Keys() {
			if prev, ok := owner[s]; ok && prev != name {
				return fmt.Errorf("key %q is bound to both %q and %q", s, prev, name)
			}
			owner[s] = name
		}
		return nil
	}

	for _, cmd := range boundCommands {
		if err := claim(cmd.String(), *k.binding(cmd)); err != nil {
			return err
		}
	}
	return claim("help", k.Help)
}

// Command returns the review command bound to msg, or review.CmdNone.
func (k KeyMap) Command(msg tea.KeyMsg) review.Command {
	msg = foldCase(msg)
	for _, cmd := range boundCommands {
		if key.Matches(msg, *k.binding(cmd)) {
			return cmd
		}
	}
	return review.CmdNone
}

// IsHelp reports whether msg toggles the full help view.
func (k KeyMap) IsHelp(msg tea.KeyMsg) bool {
	return key.Matches(foldCase(msg), k.Help)
}

// ReviewHelp returns the bindings worth showing while cards are presented.
func (k KeyMap) ReviewHelp() []key.Binding {
	return []key.Binding{k.ToggleBack, k.Wrong, k.Right, k.Delete, k.Help, k.Quit}
}

// SummaryHelp returns the bindings worth showing on the pass summary.
func (k KeyMap) SummaryHelp() []key.Binding {
	return []key.Binding{k.NextPass, k.Shuffle, k.Flip, k.Help, k.Quit}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return k.ReviewHelp()
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ToggleBack, k.Wrong, k.Right, k.Delete},
		{k.NextPass, k.Shuffle, k.Flip},
		{k.ToggleBorders, k.Reload, k.Help, k.Quit},
	}
}

// foldCase lower-cases rune input so "L" matches a binding for "l".
func foldCase(msg tea.KeyMsg) tea.KeyMsg {
	if msg.Type != tea.KeyRunes {
		return msg
	}
	msg.Runes = []rune(strings.ToLower(string(msg.Runes)))
	return msg
}

// normalizeKeyName lower-cases single-letter key names from config.
func normalizeKeyName(s string) string {
	if len([]rune(s)) == 1 {
		return strings.ToLower(s)
	}
	return s
}
