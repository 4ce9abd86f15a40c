// ABOUTME: Deck parser that turns plain-text deck files into front/back Card pairs.
// ABOUTME: Handles \n escapes, escaped newlines, forced line breaks, and dangling-front detection.
package deck

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// DefaultMaxLineChars is the longest logical line the parser collects before
// forcing a line break.
const DefaultMaxLineChars = 1000

// ErrNoFiles indicates ParseFiles was called without any deck paths.
var ErrNoFiles = errors.New("no deck files given")

// Parser pairs logical lines into cards. Lines alternate front, back, front,
// back across every input fed to the same Parser, so a card may start in one
// file and finish in the next.
type Parser struct {
	maxLineChars int

	cards []Card

	// front holds the text of an unmatched front line, if pending is set.
	front       string
	pending     bool
	pendingFile string
	pendingLine int
}

// NewParser creates a Parser. A maxLineChars of zero or less selects
// DefaultMaxLineChars.
func NewParser(maxLineChars int) *Parser {
	if maxLineChars <= 0 {
		maxLineChars = DefaultMaxLineChars
	}
	return &Parser{maxLineChars: maxLineChars}
}

// Feed reads every logical line from r. name identifies the input in errors.
func (p *Parser) Feed(name string, r io.Reader) error {
	br := bufio.NewReader(r)
	buf := make([]rune, 0, 64)
	line := 0

	emit := func() {
		line++
		p.addLine(name, line, string(buf))
		buf = buf[:0]
	}
	push := func(c rune) {
		if len(buf) >= p.maxLineChars {
			emit()
		}
		buf = append(buf, c)
	}

	for {
		c, _, err := br.ReadRune()
		if errors.Is(err, io.EOF) {
			if len(buf) > 0 {
				emit()
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("read deck %s: %w", name, err)
		}

		switch c {
		case '\n':
			emit()

		case '\r':
			if crlf(br) {
				emit()
			} else {
				push('\r')
			}

		case '\\':
			next, _, err := br.ReadRune()
			switch {
			case errors.Is(err, io.EOF):
				push('\\')
			case err != nil:
				return fmt.Errorf("read deck %s: %w", name, err)
			case next == 'n':
				push('\n')
			case next == '\r' && crlf(br):
				push('\\')
				push('\n')
			default:
				// An escaped newline keeps the line open; anything else
				// passes through untouched.
				push('\\')
				push(next)
			}

		default:
			push(c)
		}
	}
}

// addLine records one logical line, completing a card on every second line.
func (p *Parser) addLine(name string, line int, text string) {
	if !p.pending {
		p.front = text
		p.pending = true
		p.pendingFile = name
		p.pendingLine = line
		return
	}
	p.cards = append(p.cards, Card{Front: p.front, Back: text})
	p.front = ""
	p.pending = false
}

// Cards finishes parsing and returns the collected cards.
func (p *Parser) Cards() ([]Card, error) {
	if p.pending {
		return nil, &DanglingFrontError{File: p.pendingFile, Line: p.pendingLine}
	}
	if len(p.cards) == 0 {
		return nil, ErrNoCards
	}
	return p.cards, nil
}

// ParseFiles reads the given deck files in order and returns their cards
// concatenated. Any error aborts the whole parse and no cards are returned.
func ParseFiles(paths []string, maxLineChars int) ([]Card, error) {
	if len(paths) == 0 {
		return nil, ErrNoFiles
	}

	p := NewParser(maxLineChars)
	for _, path := range paths {
		if err := feedFile(p, path); err != nil {
			return nil, err
		}
	}
	return p.Cards()
}

func feedFile(p *Parser, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open deck %s: %w", path, err)
	}
	defer f.Close()

	return p.Feed(path, f)
}

// Load parses the deck files and builds a Deck with every card due.
func Load(paths []string, maxLineChars int, opts ...Option) (*Deck, error) {
	cards, err := ParseFiles(paths, maxLineChars)
	if err != nil {
		return nil, err
	}
	return New(cards, opts...)
}

// crlf consumes a '\n' that directly follows a '\r' and reports whether it did.
// A CRLF pair is treated exactly like a bare newline.
func crlf(br *bufio.Reader) bool {
	b, err := br.Peek(1)
	if err != nil || b[0] != '\n' {
		return false
	}
	br.Discard(1)
	return true
}
