// shellsplit.go - turns a shell-like command line into an argv slice.
// SPDX-License-Identifier: GPL-3.0-or-later

package cfgarg

import "github.com/kballard/go-shellquote"

// SplitCommandLine splits a single shell-like command-line string (e.g.
// one read from a REPL prompt or a recorded session) into the argv-shaped
// []string that [Parser.Parse] expects, honoring shell quoting rules.
func SplitCommandLine(line string) ([]string, error) {
	return shellquote.Split(line)
}
