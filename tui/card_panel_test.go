// ABOUTME: Tests for CardPanelModel and fitText: wrapping, overflow marking, hiding, and exact sizing.
package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestFitTextShortTextUnchanged(t *testing.T) {
	got := fitText("hello", 20, 3)
	if got != "hello" {
		t.Errorf("fitText = %q, want %q", got, "hello")
	}
}

func TestFitTextWraps(t *testing.T) {
	got := fitText("one two three four", 9, 5)
	lines := strings.Split(got, "\n")
	if len(lines) < 2 {
		t.Fatalf("expected wrapped output, got %q", got)
	}
	for _, l := range lines {
		if w := ansi.StringWidth(l); w > 9 {
			t.Errorf("line %q is %d wide, limit 9", l, w)
		}
	}
}

func TestFitTextKeepsEmbeddedNewlines(t *testing.T) {
	got := fitText("B\nC", 10, 3)
	if got != "B\nC" {
		t.Errorf("fitText = %q, want %q", got, "B\nC")
	}
}

func TestFitTextOverflowMarker(t *testing.T) {
	got := fitText("a\nb\nc\nd", 5, 2)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), got)
	}
	if !strings.HasSuffix(lines[1], overflowMarker) {
		t.Errorf("last line %q should end with %q", lines[1], overflowMarker)
	}
	if w := ansi.StringWidth(lines[1]); w != 5 {
		t.Errorf("last line width = %d, want 5", w)
	}
}

func TestFitTextOverflowTruncatesLongLine(t *testing.T) {
	got := fitText("abcdefghij\nmore", 4, 1)
	if got != "abc>" {
		t.Errorf("fitText = %q, want %q", got, "abc>")
	}
}

func TestCardPanelViewSize(t *testing.T) {
	for _, borders := range []bool{true, false} {
		m := NewCardPanelModel(FrontStyle)
		m.SetBorders(borders)
		m.SetSize(30, 6)
		m.SetText("What is the capital of Australia?")

		view := m.View()
		if w := lipgloss.Width(view); w != 30 {
			t.Errorf("borders=%t: width = %d, want 30", borders, w)
		}
		if h := lipgloss.Height(view); h != 6 {
			t.Errorf("borders=%t: height = %d, want 6", borders, h)
		}
		if !strings.Contains(view, "capital") {
			t.Errorf("borders=%t: view missing text:\n%s", borders, view)
		}
	}
}

func TestCardPanelHidden(t *testing.T) {
	m := NewCardPanelModel(BackStyle)
	m.SetSize(20, 4)
	m.SetText("secret")
	m.SetHidden(true)

	view := m.View()
	if strings.Contains(view, "secret") {
		t.Error("hidden panel should not render its text")
	}
	if h := lipgloss.Height(view); h != 4 {
		t.Errorf("hidden panel height = %d, want 4", h)
	}
}
