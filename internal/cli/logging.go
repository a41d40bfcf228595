// SPDX-License-Identifier: MIT

package cli

import (
	"io"

	log "github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// newLogger returns a text logger writing to w. Colours are on only when w is
// a terminal; verbose lowers the level to Debug.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	tty := isTerminal(w)
	logger := log.New()
	logger.SetOutput(w)
	logger.SetFormatter(&log.TextFormatter{
		ForceColors:      tty,
		DisableColors:    !tty,
		DisableTimestamp: !tty,
		FullTimestamp:    tty,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	return logger
}

// isTerminal reports whether w is a file descriptor attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })

	return ok && term.IsTerminal(int(f.Fd()))
}
