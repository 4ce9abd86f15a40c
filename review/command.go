// ABOUTME: Commands accepted by the review session and the phases they move it through.
// ABOUTME: Command names double as the keys used for key binding overrides in the config file.
package review

// Phase is the top-level state of a review session.
type Phase int

const (
	// Reviewing means cards of the current pass are being presented.
	Reviewing Phase = iota
	// PassComplete means the pass ended and the summary is showing.
	PassComplete
	// Finished means the user quit.
	Finished
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case Reviewing:
		return "reviewing"
	case PassComplete:
		return "pass_complete"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Command is one user action fed into a Session.
type Command int

const (
	CmdNone Command = iota
	CmdToggleBack
	CmdMarkWrong
	CmdMarkRight
	CmdDelete
	CmdFlip
	CmdShuffle
	CmdToggleBorders
	CmdNextPass
	CmdReload
	CmdResize
	CmdQuit
)

var commandNames = map[Command]string{
	CmdNone:          "none",
	CmdToggleBack:    "toggle_back",
	CmdMarkWrong:     "wrong",
	CmdMarkRight:     "right",
	CmdDelete:        "delete",
	CmdFlip:          "flip",
	CmdShuffle:       "shuffle",
	CmdToggleBorders: "toggle_borders",
	CmdNextPass:      "next_pass",
	CmdReload:        "reload",
	CmdResize:        "resize",
	CmdQuit:          "quit",
}

// String returns the command's config name.
func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseCommand maps a config name back to its Command.
func ParseCommand(name string) (Command, bool) {
	for c, n := range commandNames {
		if n == name && c != CmdNone {
			return c, true
		}
	}
	return CmdNone, false
}
