// ABOUTME: Sentinel and typed errors returned by the deck parser and card store.
// ABOUTME: Callers inspect them with errors.Is / errors.As to build user-facing messages.
package deck

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCards indicates the input contained no complete front/back pair.
	ErrNoCards = errors.New("no cards found in deck")

	// ErrLastCard indicates a deletion would leave the deck empty.
	ErrLastCard = errors.New("cannot delete the last card in the deck")

	// ErrAlloc indicates the store could not allocate backing storage.
	ErrAlloc = errors.New("could not allocate deck storage")
)

// DanglingFrontError reports a front line at the end of the input with no back.
type DanglingFrontError struct {
	File string
	Line int
}

func (e *DanglingFrontError) Error() string {
	return fmt.Sprintf("deck %s: line %d has a front but no back", e.File, e.Line)
}
