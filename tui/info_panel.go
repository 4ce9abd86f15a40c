// ABOUTME: Implements the info panel in the top-left corner showing pass progress and answer counters.
// ABOUTME: Displays card position, right/wrong totals, the pass number, and the last action taken.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/2389-research/sortstudy/review"
)

const (
	// maxInfoCards caps card position and total values in the info panel.
	maxInfoCards = 999
	// maxInfoRightWrong caps the right and wrong counters in the info panel.
	maxInfoRightWrong = 99999
)

// InfoPanelModel displays session progress in a small fixed-width panel.
type InfoPanelModel struct {
	snap review.Snapshot
}

// NewInfoPanelModel creates an empty InfoPanelModel.
func NewInfoPanelModel() InfoPanelModel {
	return InfoPanelModel{}
}

// SetSnapshot updates the values the panel shows.
func (m *InfoPanelModel) SetSnapshot(snap review.Snapshot) {
	m.snap = snap
}

// capped formats n, replacing anything above max with "max+".
func capped(n, max int) string {
	if n > max {
		return strconv.Itoa(max) + "+"
	}
	return strconv.Itoa(n)
}

// View renders the info panel.
func (m InfoPanelModel) View() string {
	s := m.snap

	var card string
	if s.PassComplete {
		card = fmt.Sprintf("%s/%s", capped(s.Total, maxInfoCards), capped(s.Total, maxInfoCards))
	} else {
		card = fmt.Sprintf("%s/%s", capped(s.Position, maxInfoCards), capped(s.Total, maxInfoCards))
	}

	pass := fmt.Sprintf("%d", s.Pass+1)
	if s.FullReview {
		pass += " (full)"
	}

	lines := []string{
		row("card:", card),
		LabelStyle.Render("right:") + RightStyle.Render(capped(s.Right, maxInfoRightWrong)),
		LabelStyle.Render("wrong:") + WrongStyle.Render(capped(s.Wrong, maxInfoRightWrong)),
		row("pass:", pass),
	}
	if s.LastAction != "" {
		lines = append(lines, ActionStyle.Render(s.LastAction))
	}

	return PanelStyle(s.BordersVisible).Width(infoPanelWidth).Render(strings.Join(lines, "\n"))
}

// infoPanelWidth fits the longest last-action message plus padding.
const infoPanelWidth = 26

// row renders a label-value pair using the standard label and value styles.
func row(label, value string) string {
	return LabelStyle.Render(label) + ValueStyle.Render(value)
}
