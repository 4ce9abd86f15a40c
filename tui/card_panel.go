// ABOUTME: Bubble Tea sub-model for one side of a card, wrapped to fit a fixed-size panel.
// ABOUTME: Text that does not fit is cut off and the last visible cell is replaced by ">".
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// overflowMarker replaces the last visible cell of a card that does not fit.
const overflowMarker = ">"

// CardPanelModel renders one side of the current card.
type CardPanelModel struct {
	text    string
	style   lipgloss.Style
	borders bool
	hidden  bool
	width   int
	height  int
}

// NewCardPanelModel creates a card panel whose text is drawn with style.
func NewCardPanelModel(style lipgloss.Style) CardPanelModel {
	return CardPanelModel{style: style, borders: true}
}

// SetText sets the card text.
func (m *CardPanelModel) SetText(text string) {
	m.text = text
}

// SetBorders sets whether the panel frame is drawn.
func (m *CardPanelModel) SetBorders(borders bool) {
	m.borders = borders
}

// SetHidden sets whether the panel renders as blank space.
func (m *CardPanelModel) SetHidden(hidden bool) {
	m.hidden = hidden
}

// SetSize sets the outer dimensions of the panel, frame included.
func (m *CardPanelModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// View renders the panel at exactly its configured size.
func (m CardPanelModel) View() string {
	frame := PanelStyle(m.borders)
	innerW := m.width - frame.GetHorizontalFrameSize()
	innerH := m.height - frame.GetVerticalFrameSize()
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}

	if m.hidden {
		return lipgloss.NewStyle().Width(m.width).Height(m.height).Render("")
	}

	body := m.style.Render(fitText(m.text, innerW, innerH))
	return frame.Width(innerW + frame.GetHorizontalPadding()).
		Height(innerH + frame.GetVerticalPadding()).
		Render(body)
}

// fitText wraps text to width w and keeps at most h lines, marking any cut
// with overflowMarker in the last visible cell.
func fitText(text string, w, h int) string {
	wrapped := ansi.Wrap(text, w, "")
	lines := strings.Split(wrapped, "\n")
	if len(lines) <= h {
		return wrapped
	}

	lines = lines[:h]
	last := ansi.Truncate(lines[h-1], w-1, "")
	if pad := w - 1 - ansi.StringWidth(last); pad > 0 {
		last += strings.Repeat(" ", pad)
	}
	lines[h-1] = last + overflowMarker
	return strings.Join(lines, "\n")
}
