// nonterminal.go - dense identifiers shared by terminal classes and CNF non-terminals.
// SPDX-License-Identifier: GPL-3.0-or-later

package grammar

// NonTerminal is a dense small-integer identifier. The same identifier
// space is used for terminal classes (e.g. [Alnum]) and for CNF
// non-terminals (e.g. [LongArg]), because the chart in [pkg/cyk] is a
// 3-D array indexed by row, column, and one of these identifiers — row 0
// is populated straight from the terminal mapping, and every other row
// from grammar productions.
type NonTerminal int

// These constants enumerate every identifier used by [Default] and
// [DefaultTerminalMapping]. Values are dense and start at zero so they can
// index directly into a slice.
const (
	Digit NonTerminal = iota
	SmallLetter
	BigLetter
	Letter
	Alnum
	NonAlnum
	Printable
	NonShortArgPrefix
	ShortArgPrefix
	AssignmentOp
	Comma
	Underscore

	ArgTerm
	LongArgPrefix
	ShortArg
	AlnumString
	PrintableString
	SimpleLongArg
	LongArg
	LongArgExtension
	UnderscoreExtension
	DashExtension
	AssignmentRight
	ArgAssignment
	CompoundArg
	FreeValue
	Start

	numNonTerminals
)

var names = map[NonTerminal]string{
	Digit:                "Digit",
	SmallLetter:          "SmallLetter",
	BigLetter:            "BigLetter",
	Letter:               "Letter",
	Alnum:                "Alnum",
	NonAlnum:             "NonAlnum",
	Printable:            "Printable",
	NonShortArgPrefix:    "NonShortArgPrefix",
	ShortArgPrefix:       "ShortArgPrefix",
	AssignmentOp:         "AssignmentOp",
	Comma:                "Comma",
	Underscore:           "Underscore",
	ArgTerm:              "ArgTerm",
	LongArgPrefix:        "LongArgPrefix",
	ShortArg:             "ShortArg",
	AlnumString:          "AlnumString",
	PrintableString:      "PrintableString",
	SimpleLongArg:        "SimpleLongArg",
	LongArg:              "LongArg",
	LongArgExtension:     "LongArgExtension",
	UnderscoreExtension:  "UnderscoreExtension",
	DashExtension:        "DashExtension",
	AssignmentRight:      "AssignmentRight",
	ArgAssignment:        "ArgAssignment",
	CompoundArg:          "CompoundArg",
	FreeValue:            "FreeValue",
	Start:                "Start",
}

// String implements [fmt.Stringer], mostly useful for log messages emitted
// while walking a derivation.
func (nt NonTerminal) String() string {
	if name, ok := names[nt]; ok {
		return name
	}
	return "NonTerminal(?)"
}
