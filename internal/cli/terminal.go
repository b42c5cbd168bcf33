// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// =============================================================================
// TERMINAL
// =============================================================================

const (
	defaultWidth = 80
	minWidth     = 40
)

// Terminal is the pair of streams a host talks to.
type Terminal struct {
	In  *os.File
	Out *os.File
}

// Stdio returns the process terminal.
func Stdio() Terminal {
	return Terminal{In: os.Stdin, Out: os.Stdout}
}

// Interactive reports whether both ends are terminals, which the
// full-screen host needs.
func (t Terminal) Interactive() bool {
	return isTerminal(t.In) && isTerminal(t.Out)
}

// OutputIsTerminal reports whether Out is a terminal. Piped output gets
// plain text.
func (t Terminal) OutputIsTerminal() bool {
	return isTerminal(t.Out)
}

// Width returns the column count of Out, clamped to at least minWidth.
// Anything that is not a terminal is defaultWidth wide.
func (t Terminal) Width() int {
	if t.Out == nil {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(t.Out.Fd()))
	switch {
	case err != nil || width <= 0:
		return defaultWidth
	case width < minWidth:
		return minWidth
	default:
		return width
	}
}

// writesToTerminal reports whether w is a terminal file.
func writesToTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

func isTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// =============================================================================
// COLOR
// =============================================================================

// colorProfile honours NO_COLOR, then FORCE_COLOR, then whether stdout is
// a terminal.
func colorProfile(getenv func(string) string, tty bool) termenv.Profile {
	switch {
	case getenv("NO_COLOR") != "":
		return termenv.Ascii
	case getenv("FORCE_COLOR") != "":
		return termenv.ANSI256
	case !tty:
		return termenv.Ascii
	default:
		return termenv.ColorProfile()
	}
}
