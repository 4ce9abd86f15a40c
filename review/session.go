// ABOUTME: Review Session state machine driving passes over a deck until every card is answered right.
// ABOUTME: Applies right/wrong/delete/flip/shuffle/reload commands and exposes a read-only Snapshot.
package review

import (
	"crypto/rand"
	"errors"
	"io"
	"log"

	"github.com/2389-research/sortstudy/deck"
	"github.com/oklog/ulid/v2"
)

// Last-action messages shown in the info panel.
const (
	ActionMarkedRight         = "marked right"
	ActionMarkedWrong         = "marked wrong"
	ActionDeleted             = "deleted card"
	ActionDeleteFailed        = "delete failed"
	ActionDeleteRefused       = "can't delete last card"
	ActionShuffled            = "shuffled cards"
	ActionShuffleFailed       = "shuffle failed"
	ActionFlipped             = "flipped cards"
	ActionUnflipped           = "unflipped cards"
	ActionReloaded            = "reloaded deck"
	ActionReloadFailed        = "reload failed"
	ActionReloadShuffleFailed = "reloaded, shuffle failed"
	ActionPassComplete        = "pass complete"
	ActionBordersShown        = "borders on"
	ActionBordersHidden       = "borders off"
	ActionNothingDue          = "nothing due, restarting"
	ActionStartupShuffle      = "startup shuffle failed"
)

// ReloadFunc builds a fresh deck from the same deck files.
type ReloadFunc func() (*deck.Deck, error)

// Config holds the startup options of a Session.
type Config struct {
	Shuffle   bool // shuffle before the first pass and after each reload
	NoBorders bool // start with panel borders hidden
	Flip      bool // start with front and back swapped

	Reload ReloadFunc  // optional; enables CmdReload
	Logger *log.Logger // optional; defaults to discarding output
}

// Session is one interactive review over a deck. It is not safe for
// concurrent use; the caller feeds it one command at a time.
type Session struct {
	id     ulid.ULID
	deck   *deck.Deck
	cfg    Config
	logger *log.Logger

	phase Phase
	pass  int
	pos   int // deck index of the card being shown

	passPos   int // 1-based ordinal of the shown card within the pass
	passTotal int // cards due when the pass began, less deletions

	right, wrong  int
	wrongThisPass bool
	fullReview    bool

	backVisible    bool
	bordersVisible bool
	lastAction     string
	lastErr        error
}

// NewSession prepares a session over d and presents the first card.
func NewSession(d *deck.Deck, cfg Config) *Session {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	s := &Session{
		id:             ulid.MustNew(ulid.Now(), rand.Reader),
		deck:           d,
		cfg:            cfg,
		logger:         logger,
		bordersVisible: !cfg.NoBorders,
	}

	if cfg.Flip {
		d.Flip()
	}
	if cfg.Shuffle {
		if err := d.Shuffle(); err != nil {
			s.fail(ActionStartupShuffle, "startup_shuffle", err)
		}
	}

	s.logger.Printf("component=review action=session_started session=%s cards=%d shuffle=%t flip=%t",
		s.id, d.Len(), cfg.Shuffle, cfg.Flip)
	s.beginPass()
	return s
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id.String()
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Done reports whether the user has quit.
func (s *Session) Done() bool {
	return s.phase == Finished
}

// Err returns the error behind the most recent failed action, if any.
func (s *Session) Err() error {
	return s.lastErr
}

// Apply runs a single command. Commands that make no sense in the current
// phase are ignored.
func (s *Session) Apply(cmd Command) {
	if s.phase == Finished {
		return
	}

	switch cmd {
	case CmdQuit:
		s.phase = Finished
		s.logger.Printf("component=review action=quit session=%s right=%d wrong=%d", s.id, s.right, s.wrong)
		return
	case CmdToggleBorders:
		s.toggleBorders()
		return
	case CmdReload:
		s.reload()
		return
	}

	switch s.phase {
	case Reviewing:
		switch cmd {
		case CmdToggleBack:
			s.backVisible = !s.backVisible
		case CmdMarkWrong:
			s.markWrong()
		case CmdMarkRight:
			s.markRight()
		case CmdDelete:
			s.deleteCurrent()
		}

	case PassComplete:
		switch cmd {
		case CmdNextPass:
			s.pass++
			s.beginPass()
		case CmdShuffle:
			s.shuffle()
		case CmdFlip:
			s.flip()
		}
	}
}

// beginPass enters Reviewing and presents the first due card.
func (s *Session) beginPass() {
	s.phase = Reviewing
	s.wrongThisPass = false
	s.passTotal = s.deck.Count(deck.DoReview)
	if s.passTotal == 0 {
		s.deck.ResetStates(deck.DoReview)
		s.passTotal = s.deck.Len()
		s.lastAction = ActionNothingDue
	}
	s.fullReview = s.passTotal == s.deck.Len()
	s.passPos = 0

	s.logger.Printf("component=review action=pass_started session=%s pass=%d due=%d full_review=%t",
		s.id, s.pass, s.passTotal, s.fullReview)
	s.advanceFrom(0)
}

// advanceFrom presents the first due card at or after index start, or ends
// the pass if there is none.
func (s *Session) advanceFrom(start int) {
	s.backVisible = false
	for i := start; i < s.deck.Len(); i++ {
		if s.deck.State(i) == deck.DoReview {
			s.pos = i
			s.passPos++
			return
		}
	}
	s.completePass()
}

// completePass moves to PassComplete. A pass without wrong answers makes
// the whole deck due again.
func (s *Session) completePass() {
	s.phase = PassComplete
	if !s.wrongThisPass {
		s.deck.ResetStates(deck.DoReview)
	}
	s.fullReview = s.deck.Count(deck.DoReview) == s.deck.Len()
	s.lastAction = ActionPassComplete

	s.logger.Printf("component=review action=pass_complete session=%s pass=%d next_due=%d full_review=%t",
		s.id, s.pass, s.deck.Count(deck.DoReview), s.fullReview)
}

func (s *Session) markWrong() {
	s.deck.SetState(s.pos, deck.DoReview)
	s.wrong++
	s.wrongThisPass = true
	s.lastAction = ActionMarkedWrong
	s.advanceFrom(s.pos + 1)
}

func (s *Session) markRight() {
	s.deck.SetState(s.pos, deck.DontReview)
	s.right++
	s.lastAction = ActionMarkedRight
	s.advanceFrom(s.pos + 1)
}

// deleteCurrent removes the shown card. The last remaining card is never
// deleted; a failed sweep restores the card and shows it again.
func (s *Session) deleteCurrent() {
	if s.deck.Len() <= 1 {
		s.lastAction = ActionDeleteRefused
		return
	}

	s.deck.SetState(s.pos, deck.ToDelete)
	if err := s.deck.DeleteMarked(); err != nil {
		s.deck.SetState(s.pos, deck.DoReview)
		s.fail(ActionDeleteFailed, "delete", err)
		return
	}

	s.lastAction = ActionDeleted
	s.lastErr = nil
	s.passTotal--
	s.passPos--
	// The following card has slid into the deleted card's index.
	s.advanceFrom(s.pos)
}

func (s *Session) shuffle() {
	if err := s.deck.Shuffle(); err != nil {
		s.fail(ActionShuffleFailed, "shuffle", err)
		return
	}
	s.lastAction = ActionShuffled
	s.lastErr = nil
}

func (s *Session) flip() {
	s.deck.Flip()
	if s.deck.Flipped() {
		s.lastAction = ActionFlipped
	} else {
		s.lastAction = ActionUnflipped
	}
}

func (s *Session) toggleBorders() {
	s.bordersVisible = !s.bordersVisible
	if s.bordersVisible {
		s.lastAction = ActionBordersShown
	} else {
		s.lastAction = ActionBordersHidden
	}
}

// reload swaps in a freshly parsed deck and restarts from its first card.
// The current deck is kept if parsing fails.
func (s *Session) reload() {
	if s.cfg.Reload == nil {
		return
	}

	next, err := s.cfg.Reload()
	if err == nil && next == nil {
		err = deck.ErrNoCards
	}
	if err != nil {
		s.fail(ActionReloadFailed, "reload", err)
		return
	}

	wasFlipped := s.deck.Flipped()
	s.deck.Replace(next)
	if wasFlipped {
		s.deck.Flip()
	}
	var shuffleErr error
	if s.cfg.Shuffle {
		shuffleErr = s.deck.Shuffle()
	}

	s.logger.Printf("component=review action=reloaded session=%s cards=%d", s.id, s.deck.Len())
	s.pass++
	s.beginPass()
	if shuffleErr != nil {
		s.fail(ActionReloadShuffleFailed, "reload_shuffle", shuffleErr)
		return
	}
	s.lastAction = ActionReloaded
	s.lastErr = nil
}

// fail records a recoverable in-session error as the last action.
func (s *Session) fail(action, op string, err error) {
	s.lastAction = action
	s.lastErr = err
	reason := "error"
	if errors.Is(err, deck.ErrAlloc) {
		reason = "alloc"
	}
	s.logger.Printf("component=review action=%s_failed session=%s reason=%s err=%v", op, s.id, reason, err)
}
