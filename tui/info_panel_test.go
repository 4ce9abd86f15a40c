// ABOUTME: Tests for InfoPanelModel which renders pass progress, counters, and the last action.
// ABOUTME: Covers value capping, pass labelling, and borderless rendering.
package tui

import (
	"strings"
	"testing"

	"github.com/2389-research/sortstudy/review"
)

func TestCapped(t *testing.T) {
	tests := []struct {
		name string
		n    int
		max  int
		want string
	}{
		{name: "below", n: 12, max: 999, want: "12"},
		{name: "at max", n: 999, max: 999, want: "999"},
		{name: "above", n: 1000, max: 999, want: "999+"},
		{name: "counter above", n: 123456, max: 99999, want: "99999+"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := capped(tt.n, tt.max); got != tt.want {
				t.Errorf("capped(%d, %d) = %q, want %q", tt.n, tt.max, got, tt.want)
			}
		})
	}
}

func TestInfoPanelView(t *testing.T) {
	m := NewInfoPanelModel()
	m.SetSnapshot(review.Snapshot{
		Position:       2,
		Total:          5,
		Right:          7,
		Wrong:          3,
		Pass:           1,
		LastAction:     review.ActionMarkedRight,
		BordersVisible: true,
	})

	view := m.View()
	for _, want := range []string{"2/5", "right:", "7", "wrong:", "3", "pass:", "2", review.ActionMarkedRight} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "(full)") {
		t.Error("non-full pass should not be labelled full")
	}
}

func TestInfoPanelFullReviewLabel(t *testing.T) {
	m := NewInfoPanelModel()
	m.SetSnapshot(review.Snapshot{Position: 1, Total: 3, FullReview: true})
	if !strings.Contains(m.View(), "(full)") {
		t.Error("full review pass should be labelled")
	}
}

func TestInfoPanelCapsLargeValues(t *testing.T) {
	m := NewInfoPanelModel()
	m.SetSnapshot(review.Snapshot{Position: 1500, Total: 2000, Right: 100000})
	view := m.View()
	if !strings.Contains(view, "999+/999+") {
		t.Errorf("position should be capped:\n%s", view)
	}
	if !strings.Contains(view, "99999+") {
		t.Errorf("right counter should be capped:\n%s", view)
	}
}

func TestInfoPanelBorders(t *testing.T) {
	m := NewInfoPanelModel()
	m.SetSnapshot(review.Snapshot{Position: 1, Total: 1, BordersVisible: false})
	if strings.Contains(m.View(), "╭") {
		t.Error("borderless info panel should not draw corners")
	}
	m.SetSnapshot(review.Snapshot{Position: 1, Total: 1, BordersVisible: true})
	if !strings.Contains(m.View(), "╭") {
		t.Error("bordered info panel should draw corners")
	}
}
