// ABOUTME: Read-only view of a Session consumed by the rendering layer.
package review

import "github.com/2389-research/sortstudy/deck"

// Snapshot is everything a renderer needs to draw the session.
type Snapshot struct {
	Front string
	Back  string

	Position int // ordinal of the shown card within the pass, 1-based
	Total    int // cards in this pass
	DeckSize int
	Due      int // cards currently due; at pass end, the size of the next pass
	Pass     int

	Right int
	Wrong int

	LastAction string

	FullReview     bool
	PassComplete   bool
	BordersVisible bool
	BackVisible    bool
	Flipped        bool
}

// Snapshot captures the session's current display state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Position:       s.passPos,
		Total:          s.passTotal,
		DeckSize:       s.deck.Len(),
		Due:            s.deck.Count(deck.DoReview),
		Pass:           s.pass,
		Right:          s.right,
		Wrong:          s.wrong,
		LastAction:     s.lastAction,
		FullReview:     s.fullReview,
		PassComplete:   s.phase == PassComplete,
		BordersVisible: s.bordersVisible,
		BackVisible:    s.backVisible,
		Flipped:        s.deck.Flipped(),
	}
	if s.phase == Reviewing && s.pos < s.deck.Len() {
		card := s.deck.Card(s.pos)
		snap.Front = card.Front
		snap.Back = card.Back
	}
	return snap
}
