// ABOUTME: Core deck types: Card front/back pairs and the per-card review State.
// ABOUTME: Entry binds a Card to its State so the two can never drift out of alignment.
package deck

// Card is a single front/back study pair.
type Card struct {
	Front string
	Back  string
}

// State is the review disposition of a card within the current pass.
type State int

const (
	// DontReview means the card was answered correctly this pass.
	DontReview State = iota
	// DoReview means the card is due in the current or next pass.
	DoReview
	// ToDelete marks a card for removal by the next DeleteMarked sweep.
	ToDelete
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case DontReview:
		return "dont_review"
	case DoReview:
		return "do_review"
	case ToDelete:
		return "to_delete"
	default:
		return "unknown"
	}
}

// Entry is one slot of a deck: a card and its review state.
type Entry struct {
	Card  Card
	State State
}
