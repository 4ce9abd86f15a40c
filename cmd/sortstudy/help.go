// ABOUTME: Help display for the sortstudy CLI with flags, review keys, deck format, and environment status.
// ABOUTME: Provides printHelp for usage output and envStatus for SORTSTUDY_* variable detection.
package main

import (
	"fmt"
	"io"
	"os"
)

const cardASCII = `
   .------------------.
   | front            |
   |------------------|
   | back             |
   '------------------'
`

// printHelp writes a formatted help message to w, including usage patterns,
// flags, review keys, the deck format, and environment status.
func printHelp(w io.Writer, ver string) {
	fmt.Fprint(w, cardASCII)
	fmt.Fprintf(w, "sortstudy %s: terminal flashcard review\n", ver)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  sortstudy [flags] <deck.txt> [more.txt ...]")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -s, --shuffle            Shuffle the deck before starting")
	fmt.Fprintln(w, "  -b, --no-borders         Start with panel borders hidden")
	fmt.Fprintln(w, "  -f, --flip               Start with front and back swapped")
	fmt.Fprintln(w, "      --no-color           Disable colors")
	fmt.Fprintln(w, "  -c, --config <file>      Config file (default: $XDG_CONFIG_HOME/sortstudy/config.yaml)")
	fmt.Fprintln(w, "      --log-file <file>    Write diagnostic log lines to this file")
	fmt.Fprintln(w, "      --max-line-chars <n> Longest deck line before a forced break (default: 1000)")
	fmt.Fprintln(w, "  -v, --version            Print version and exit")
	fmt.Fprintln(w, "  -h, --help               Show this help")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Review keys:")
	fmt.Fprintln(w, "  j / space   show or hide the back")
	fmt.Fprintln(w, "  k           mark wrong (card comes back next pass)")
	fmt.Fprintln(w, "  l           mark right")
	fmt.Fprintln(w, "  d           delete card")
	fmt.Fprintln(w, "  b           toggle borders")
	fmt.Fprintln(w, "  r           reload deck files")
	fmt.Fprintln(w, "  q           quit")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "After a pass:")
	fmt.Fprintln(w, "  n / enter   next pass")
	fmt.Fprintln(w, "  s           shuffle")
	fmt.Fprintln(w, "  f           flip front and back")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Deck format:")
	fmt.Fprintln(w, "  Lines alternate front, back, front, back. Write \\n for a line break")
	fmt.Fprintln(w, "  inside a card. Several files are read as one deck, in order.")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment:")
	for _, key := range []string{
		"SORTSTUDY_CONFIG", "SORTSTUDY_SHUFFLE", "SORTSTUDY_NO_BORDERS",
		"SORTSTUDY_FLIP", "SORTSTUDY_NO_COLOR", "SORTSTUDY_LOG_FILE",
	} {
		fmt.Fprintf(w, "  %-22s%s\n", key, envStatus(key))
	}
}

// envStatus returns "[set]" if the named environment variable is non-empty,
// or "[not set]" otherwise.
func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "[set]"
	}
	return "[not set]"
}
