// ABOUTME: Deck is the card store: an ordered slice of Entry values plus the global flipped flag.
// ABOUTME: Provides all-or-nothing Replace, DeleteMarked, and Shuffle, and in-place Flip.
package deck

import (
	"fmt"
	"math/rand/v2"
)

// Allocator returns backing storage for n entries. Deletion and shuffling
// build their result in freshly allocated storage so a failed allocation
// leaves the deck untouched.
type Allocator func(n int) ([]Entry, error)

func defaultAlloc(n int) ([]Entry, error) {
	return make([]Entry, 0, n), nil
}

// Option configures a Deck.
type Option func(*Deck)

// WithAllocator replaces the storage allocator used by DeleteMarked and Shuffle.
func WithAllocator(alloc Allocator) Option {
	return func(d *Deck) {
		if alloc != nil {
			d.alloc = alloc
		}
	}
}

// WithRand sets the random source used by Shuffle.
func WithRand(rng *rand.Rand) Option {
	return func(d *Deck) {
		if rng != nil {
			d.rng = rng
		}
	}
}

// Deck owns the ordered cards and their review states as one unit.
type Deck struct {
	entries []Entry
	flipped bool
	alloc   Allocator
	rng     *rand.Rand
}

// New builds a Deck from cards with every card due for review.
func New(cards []Card, opts ...Option) (*Deck, error) {
	if len(cards) == 0 {
		return nil, ErrNoCards
	}

	d := &Deck{
		entries: make([]Entry, len(cards)),
		alloc:   defaultAlloc,
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for i, c := range cards {
		d.entries[i] = Entry{Card: c, State: DoReview}
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Len returns the number of cards.
func (d *Deck) Len() int {
	return len(d.entries)
}

// Card returns the card at index i.
func (d *Deck) Card(i int) Card {
	return d.entries[i].Card
}

// State returns the review state of the card at index i.
func (d *Deck) State(i int) State {
	return d.entries[i].State
}

// SetState sets the review state of the card at index i.
func (d *Deck) SetState(i int, s State) {
	d.entries[i].State = s
}

// ResetStates sets every card to s.
func (d *Deck) ResetStates(s State) {
	for i := range d.entries {
		d.entries[i].State = s
	}
}

// Count returns how many cards are in state s.
func (d *Deck) Count(s State) int {
	n := 0
	for _, e := range d.entries {
		if e.State == s {
			n++
		}
	}
	return n
}

// Entries returns a copy of the deck's entries in order.
func (d *Deck) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

// Flipped reports whether front and back have been swapped an odd number of times.
func (d *Deck) Flipped() bool {
	return d.flipped
}

// Replace takes over the entries of next, discarding the current cards.
// next must be a fully built deck and must not be used afterwards. The
// flipped flag follows next, since its text is what the deck now holds.
func (d *Deck) Replace(next *Deck) {
	d.entries = next.entries
	d.flipped = next.flipped
	next.entries = nil
}

// DeleteMarked removes every ToDelete card, keeping the relative order of the
// rest. If nothing would survive, ErrLastCard is returned and the deck is
// unchanged; on allocation failure ErrAlloc is returned and the deck is
// unchanged.
func (d *Deck) DeleteMarked() error {
	survivors := len(d.entries) - d.Count(ToDelete)
	if survivors == len(d.entries) {
		return nil
	}
	if survivors == 0 {
		return ErrLastCard
	}

	kept, err := d.alloc(survivors)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAlloc, err)
	}
	for _, e := range d.entries {
		if e.State != ToDelete {
			kept = append(kept, e)
		}
	}
	d.entries = kept
	return nil
}

// Flip swaps front and back on every card and toggles the flipped flag.
func (d *Deck) Flip() {
	for i := range d.entries {
		c := &d.entries[i].Card
		c.Front, c.Back = c.Back, c.Front
	}
	d.flipped = !d.flipped
}

// Shuffle reorders the deck uniformly at random. Each state moves with its
// card. On allocation failure the previous order is kept.
func (d *Deck) Shuffle() error {
	n := len(d.entries)
	out, err := d.alloc(n)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAlloc, err)
	}

	// Draw a not-yet-used source index uniformly, then retire it by moving
	// the last unused index into its slot.
	unused := make([]int, n)
	for i := range unused {
		unused[i] = i
	}
	for remaining := n; remaining > 0; remaining-- {
		j := d.rng.IntN(remaining)
		out = append(out, d.entries[unused[j]])
		unused[j] = unused[remaining-1]
	}
	d.entries = out
	return nil
}
