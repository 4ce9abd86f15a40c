// ABOUTME: CLI entrypoint for sortstudy, the terminal flashcard reviewer.
// ABOUTME: Layers config file, environment, and flags, loads the deck, and runs the Bubble Tea review UI.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/2389-research/sortstudy/config"
	"github.com/2389-research/sortstudy/deck"
	"github.com/2389-research/sortstudy/review"
	"github.com/2389-research/sortstudy/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
)

var version = "dev"

// cliFlags holds everything parsed from the command line.
type cliFlags struct {
	configPath   string
	shuffle      bool
	noBorders    bool
	flip         bool
	noColor      bool
	logFile      string
	maxLineChars int
	showVersion  bool
	showHelp     bool
	deckFiles    []string

	// set records which flags were given explicitly, so that only those
	// override the config file and environment.
	set map[string]bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// parseFlags parses command-line flags and positional deck paths.
func parseFlags(args []string) (cliFlags, error) {
	var f cliFlags

	fs := pflag.NewFlagSet("sortstudy", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVarP(&f.configPath, "config", "c", "", "Config file (default: $XDG_CONFIG_HOME/sortstudy/config.yaml)")
	fs.BoolVarP(&f.shuffle, "shuffle", "s", false, "Shuffle the deck before starting")
	fs.BoolVarP(&f.noBorders, "no-borders", "b", false, "Start with panel borders hidden")
	fs.BoolVarP(&f.flip, "flip", "f", false, "Start with front and back swapped")
	fs.BoolVar(&f.noColor, "no-color", false, "Disable colors")
	fs.StringVar(&f.logFile, "log-file", "", "Write diagnostic log lines to this file")
	fs.IntVar(&f.maxLineChars, "max-line-chars", deck.DefaultMaxLineChars, "Longest deck line before a forced break")
	fs.BoolVarP(&f.showVersion, "version", "v", false, "Print version and exit")
	fs.BoolVarP(&f.showHelp, "help", "h", false, "Show this help")

	if err := fs.Parse(args); err != nil {
		return f, err
	}

	f.deckFiles = fs.Args()
	f.set = map[string]bool{}
	fs.Visit(func(fl *pflag.Flag) {
		f.set[fl.Name] = true
	})
	return f, nil
}

// resolveConfig layers defaults, the config file, SORTSTUDY_* variables,
// and explicit flags, in that order.
func resolveConfig(f cliFlags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if f.set["shuffle"] {
		cfg.Shuffle = f.shuffle
	}
	if f.set["no-borders"] {
		cfg.NoBorders = f.noBorders
	}
	if f.set["flip"] {
		cfg.Flip = f.flip
	}
	if f.set["no-color"] {
		cfg.NoColor = f.noColor
	}
	if f.set["log-file"] {
		cfg.LogFile = f.logFile
	}
	if f.set["max-line-chars"] {
		cfg.MaxLineChars = f.maxLineChars
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openLogger returns a logger writing to path, or discarding output when
// path is empty. The returned closer is never nil.
func openLogger(path string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(io.Discard, "", 0), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return log.New(f, "", log.LstdFlags|log.Lmicroseconds), f, nil
}

// studySetup is everything needed to start the review UI.
type studySetup struct {
	session *review.Session
	keys    tui.KeyMap
	logger  *log.Logger
	closer  io.Closer
}

// prepare loads config and deck and builds the session, without touching the terminal.
func prepare(f cliFlags) (*studySetup, error) {
	if len(f.deckFiles) == 0 {
		return nil, errors.New("at least one deck file is required")
	}

	cfg, err := resolveConfig(f)
	if err != nil {
		return nil, err
	}

	keys := tui.DefaultKeyMap()
	if err := keys.Rebind(cfg.Keys); err != nil {
		return nil, fmt.Errorf("key bindings: %w", err)
	}

	if cfg.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	logger, closer, err := openLogger(cfg.LogFile)
	if err != nil {
		return nil, err
	}

	d, err := deck.Load(f.deckFiles, cfg.MaxLineChars)
	if err != nil {
		logger.Printf("component=cli action=deck_load_failed files=%d err=%v", len(f.deckFiles), err)
		closer.Close()
		return nil, err
	}
	logger.Printf("component=cli action=deck_loaded files=%d cards=%d", len(f.deckFiles), d.Len())

	files := f.deckFiles
	maxLineChars := cfg.MaxLineChars
	session := review.NewSession(d, review.Config{
		Shuffle:   cfg.Shuffle,
		NoBorders: cfg.NoBorders,
		Flip:      cfg.Flip,
		Reload: func() (*deck.Deck, error) {
			return deck.Load(files, maxLineChars)
		},
		Logger: logger,
	})

	return &studySetup{session: session, keys: keys, logger: logger, closer: closer}, nil
}

// run parses args and runs the review UI.
// Returns an exit code: 0 for success, 1 for failure, 2 for bad usage.
func run(args []string, stdout, stderr io.Writer) int {
	f, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stdout, version)
			return 0
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		fmt.Fprintln(stderr, "Run 'sortstudy --help' for usage.")
		return 2
	}

	if f.showHelp {
		printHelp(stdout, version)
		return 0
	}
	if f.showVersion {
		fmt.Fprintf(stdout, "sortstudy %s\n", version)
		return 0
	}

	setup, err := prepare(f)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	defer setup.closer.Close()

	model := tui.NewAppModel(setup.session, setup.keys)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		setup.logger.Printf("component=cli action=ui_failed err=%v", err)
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	snap := setup.session.Snapshot()
	fmt.Fprintf(stdout, "right: %d  wrong: %d\n", snap.Right, snap.Wrong)
	return 0
}
