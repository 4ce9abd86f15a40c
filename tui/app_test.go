// ABOUTME: Tests for the top-level AppModel that drives a review session from key presses.
// ABOUTME: Covers key routing, case folding, small-terminal guard, quitting, help toggling, and view rendering.
package tui

import (
	"strings"
	"testing"

	"github.com/2389-research/sortstudy/deck"
	"github.com/2389-research/sortstudy/review"
	tea "github.com/charmbracelet/bubbletea"
)

// testAppModel creates a sized AppModel over a three-card deck.
func testAppModel(t *testing.T) (AppModel, *review.Session) {
	t.Helper()
	d, err := deck.New([]deck.Card{
		{Front: "capital of France", Back: "Paris"},
		{Front: "capital of Japan", Back: "Tokyo"},
		{Front: "capital of Peru", Back: "Lima"},
	})
	if err != nil {
		t.Fatalf("deck.New failed: %v", err)
	}
	s := review.NewSession(d, review.Config{})
	m := NewAppModel(s, DefaultKeyMap())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(AppModel), s
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m AppModel, msg tea.KeyMsg) (AppModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	am, ok := updated.(AppModel)
	if !ok {
		t.Fatalf("Update returned %T, want AppModel", updated)
	}
	return am, cmd
}

func TestAppModelInitReturnsNil(t *testing.T) {
	m, _ := testAppModel(t)
	if cmd := m.Init(); cmd != nil {
		t.Error("Init() should not start any background command")
	}
}

func TestAppModelWindowSize(t *testing.T) {
	m, _ := testAppModel(t)
	if m.width != 100 || m.height != 40 {
		t.Errorf("size = %dx%d, want 100x40", m.width, m.height)
	}
}

func TestAppModelViewBeforeSize(t *testing.T) {
	d, _ := deck.New([]deck.Card{{Front: "a", Back: "b"}})
	m := NewAppModel(review.NewSession(d, review.Config{}), DefaultKeyMap())
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View() = %q, want Initializing...", got)
	}
}

func TestAppModelShowsFrontOnly(t *testing.T) {
	m, _ := testAppModel(t)
	view := m.View()
	if !strings.Contains(view, "capital of France") {
		t.Error("view should show the front of the first card")
	}
	if strings.Contains(view, "Paris") {
		t.Error("back should be hidden until revealed")
	}
	if !strings.Contains(view, "1/3") {
		t.Error("view should show position 1/3")
	}
}

func TestAppModelRevealBack(t *testing.T) {
	m, s := testAppModel(t)
	m, _ = press(t, m, runeKey("j"))
	if !s.Snapshot().BackVisible {
		t.Fatal("j should reveal the back")
	}
	if !strings.Contains(m.View(), "Paris") {
		t.Error("view should show the revealed back")
	}
}

func TestAppModelSpaceRevealsBack(t *testing.T) {
	m, s := testAppModel(t)
	press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if !s.Snapshot().BackVisible {
		t.Error("space should reveal the back")
	}
}

func TestAppModelKeysAreCaseInsensitive(t *testing.T) {
	m, s := testAppModel(t)
	m, _ = press(t, m, runeKey("L"))
	press(t, m, runeKey("K"))

	snap := s.Snapshot()
	if snap.Right != 1 || snap.Wrong != 1 {
		t.Errorf("right/wrong = %d/%d, want 1/1", snap.Right, snap.Wrong)
	}
}

func TestAppModelUnknownKeyIgnored(t *testing.T) {
	m, s := testAppModel(t)
	before := s.Snapshot()
	_, cmd := press(t, m, runeKey("z"))
	if cmd != nil {
		t.Error("unknown key should not return a command")
	}
	if s.Snapshot() != before {
		t.Error("unknown key should not change the session")
	}
}

func TestAppModelPassSummary(t *testing.T) {
	m, _ := testAppModel(t)
	m, _ = press(t, m, runeKey("l"))
	m, _ = press(t, m, runeKey("k"))
	m, _ = press(t, m, runeKey("l"))

	view := m.View()
	if !strings.Contains(view, "Pass 1 complete") {
		t.Errorf("view should show pass summary:\n%s", view)
	}
	if !strings.Contains(view, "1 missed of 3") {
		t.Errorf("summary should report one missed card:\n%s", view)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.Contains(m.View(), "capital of Japan") {
		t.Error("enter should start the next pass with the missed card")
	}
}

func TestAppModelQuit(t *testing.T) {
	m, s := testAppModel(t)
	_, cmd := press(t, m, runeKey("q"))
	if !s.Done() {
		t.Error("q should finish the session")
	}
	if cmd == nil {
		t.Fatal("q should return tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should return tea.Quit")
	}
}

func TestAppModelCtrlCQuits(t *testing.T) {
	m, s := testAppModel(t)
	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !s.Done() {
		t.Error("ctrl+c should finish the session")
	}
}

func TestAppModelSmallWindow(t *testing.T) {
	m, s := testAppModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	m = updated.(AppModel)

	if !strings.Contains(m.View(), SmallWindowText) {
		t.Errorf("small terminal should show warning, got %q", m.View())
	}

	m, _ = press(t, m, runeKey("l"))
	if s.Snapshot().Right != 0 {
		t.Error("answers should be ignored while the terminal is too small")
	}

	_, cmd := press(t, m, runeKey("q"))
	if cmd == nil || !s.Done() {
		t.Error("quit should still work while the terminal is too small")
	}
}

func TestAppModelResizeKeepsState(t *testing.T) {
	m, s := testAppModel(t)
	m, _ = press(t, m, runeKey("l"))
	before := s.Snapshot()

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(AppModel)
	if s.Snapshot() != before {
		t.Error("resize should not change the session")
	}
	if !strings.Contains(m.View(), "capital of Japan") {
		t.Error("view after resize should still show the current card")
	}
}

func TestAppModelHelpToggle(t *testing.T) {
	m, _ := testAppModel(t)
	if m.help.ShowAll {
		t.Fatal("full help should start hidden")
	}
	m, _ = press(t, m, runeKey("?"))
	if !m.help.ShowAll {
		t.Fatal("? should show full help")
	}
	if !strings.Contains(m.View(), "reload") {
		t.Error("full help should list the reload key")
	}
	m, _ = press(t, m, runeKey("?"))
	if m.help.ShowAll {
		t.Error("second ? should hide full help")
	}
}

func TestAppModelBordersToggle(t *testing.T) {
	m, s := testAppModel(t)
	if !strings.Contains(m.View(), "╭") {
		t.Error("bordered view should contain rounded border corners")
	}
	m, _ = press(t, m, runeKey("b"))
	if s.Snapshot().BordersVisible {
		t.Fatal("b should hide borders")
	}
	if strings.Contains(m.View(), "╭") {
		t.Error("borderless view should not contain border corners")
	}
}

func TestAppModelDeleteLastCardShowsStatus(t *testing.T) {
	d, _ := deck.New([]deck.Card{{Front: "only", Back: "card"}})
	s := review.NewSession(d, review.Config{})
	m := NewAppModel(s, DefaultKeyMap())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(AppModel)

	m, _ = press(t, m, runeKey("d"))
	if !strings.Contains(m.View(), review.ActionDeleteRefused) {
		t.Error("view should explain why the delete was refused")
	}
	if d.Len() != 1 {
		t.Errorf("Len() = %d, want 1", d.Len())
	}
}
