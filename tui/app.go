// ABOUTME: Top-level Bubble Tea AppModel that drives a review Session from keyboard input.
// ABOUTME: Implements tea.Model (Init, Update, View) and lays out the info panel, card panels, summary, and help.
package tui

import (
	"fmt"
	"strings"

	"github.com/2389-research/sortstudy/review"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	// SmallWindowText is shown instead of the layout when the terminal is too small.
	SmallWindowText = "This window is too small to run sort study"

	minWidth  = 40
	minHeight = 20
)

// AppModel is the top-level Bubble Tea model. Every key press becomes at
// most one review command; the session is the only state that matters.
type AppModel struct {
	session *review.Session
	keys    KeyMap
	help    help.Model

	info  InfoPanelModel
	front CardPanelModel
	back  CardPanelModel

	width  int
	height int
}

// NewAppModel creates an AppModel over session using keys.
func NewAppModel(session *review.Session, keys KeyMap) AppModel {
	return AppModel{
		session: session,
		keys:    keys,
		help:    help.New(),
		info:    NewInfoPanelModel(),
		front:   NewCardPanelModel(FrontStyle),
		back:    NewCardPanelModel(BackStyle),
	}
}

// Init implements tea.Model. Nothing runs in the background.
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// handleWindowSize records the new size; the session itself is unaffected.
func (m AppModel) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.session.Apply(review.CmdResize)
	return m, nil
}

// handleKeyMsg maps a key to a review command and applies it.
func (m AppModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd := m.keys.Command(msg)

	// Only quitting is possible until the terminal is large enough.
	if m.tooSmall() && cmd != review.CmdQuit {
		return m, nil
	}

	if m.keys.IsHelp(msg) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	if cmd == review.CmdNone {
		return m, nil
	}

	m.session.Apply(cmd)
	if m.session.Done() {
		return m, tea.Quit
	}
	return m, nil
}

func (m AppModel) tooSmall() bool {
	return m.width < minWidth || m.height < minHeight
}

// View implements tea.Model.
func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	if m.tooSmall() {
		return WarnStyle.Render(SmallWindowText)
	}

	snap := m.session.Snapshot()

	m.info.SetSnapshot(snap)
	infoView := m.info.View()

	helpView := m.helpView(snap)

	bodyHeight := m.height - lipgloss.Height(infoView) - lipgloss.Height(helpView)
	var body string
	if snap.PassComplete {
		body = m.summaryView(snap, bodyHeight)
	} else {
		body = m.cardsView(snap, bodyHeight)
	}

	var b strings.Builder
	b.WriteString(infoView)
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(helpView)
	return b.String()
}

// cardsView renders the front panel above the back panel, centered.
func (m AppModel) cardsView(snap review.Snapshot, height int) string {
	cardWidth := m.width - 10
	cardHeight := height/2 - 1
	if cardHeight < 3 {
		cardHeight = 3
	}

	m.front.SetSize(cardWidth, cardHeight)
	m.front.SetBorders(snap.BordersVisible)
	m.front.SetText(snap.Front)

	m.back.SetSize(cardWidth, cardHeight)
	m.back.SetBorders(snap.BordersVisible)
	m.back.SetText(snap.Back)
	m.back.SetHidden(!snap.BackVisible)

	cards := lipgloss.JoinVertical(lipgloss.Center, m.front.View(), "", m.back.View())
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, cards)
}

// summaryView renders the end-of-pass box describing the next pass.
func (m AppModel) summaryView(snap review.Snapshot, height int) string {
	var next string
	if snap.FullReview {
		next = fmt.Sprintf("Next pass: full review of %d cards", snap.DeckSize)
	} else {
		next = fmt.Sprintf("Next pass: %d missed of %d cards", snap.Due, snap.DeckSize)
	}

	lines := []string{
		TitleStyle.Render(fmt.Sprintf("Pass %d complete", snap.Pass+1)),
		"",
		ValueStyle.Render(next),
		RightStyle.Render(fmt.Sprintf("right: %d", snap.Right)) + "  " +
			WrongStyle.Render(fmt.Sprintf("wrong: %d", snap.Wrong)),
	}
	if snap.Flipped {
		lines = append(lines, ValueStyle.Render("Cards are flipped"))
	}

	box := SummaryStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, box)
}

// helpView renders key help for the current phase.
func (m AppModel) helpView(snap review.Snapshot) string {
	if m.help.ShowAll {
		return m.help.FullHelpView(m.keys.FullHelp())
	}
	if snap.PassComplete {
		return m.help.ShortHelpView(m.keys.SummaryHelp())
	}
	return m.help.ShortHelpView(m.keys.ReviewHelp())
}
