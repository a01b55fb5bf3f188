// scan.go - shape checks shared by the long- and short-form matchers.
// SPDX-License-Identifier: GPL-3.0-or-later

package directmatch

import "strings"

func isAlnumByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func isAllAlnum(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isAlnumByte(s[i]) {
			return false
		}
	}
	return true
}

// splitAssignment splits s on its first '=', mirroring the upstream
// getArgVal/split helpers this package's matchers are modeled on.
func splitAssignment(s string) (name, value string, hasValue bool) {
	if i := strings.IndexByte(s, '='); i >= 0 {
		return s[:i], s[i+1:], true
	}
	return s, "", false
}

// isLongName reports whether name is a bare alnum run optionally broken
// up by single '_' or '-' separators (e.g. "foo", "foo_bar", "foo-bar_baz"),
// the shape the grammar-driven recognizer accepts via SimpleLongArg plus
// chained UnderscoreExtension/DashExtension productions.
func isLongName(name string) bool {
	if name == "" {
		return false
	}
	expectAlnum := true
	for i := 0; i < len(name); i++ {
		b := name[i]
		switch {
		case isAlnumByte(b):
			expectAlnum = false
		case (b == '_' || b == '-') && !expectAlnum:
			expectAlnum = true
		default:
			return false
		}
	}
	return !expectAlnum
}
