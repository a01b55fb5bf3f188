// grammar.go - the CNF grammar recognizing a single command-line token.
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package grammar describes, in Chomsky Normal Form, the shape of a single
command-line token: a short flag ("-v"), a bundled short-flag list
("-abc"), a long name with optional hyphen/underscore extensions
("--foo", "--foo-bar_baz"), either form with an inline assignment
("--foo=bar", "-v=10"; the assigned value is at least two bytes long), or
a free value (at least three bytes long, not starting with "-").

Every production is binary (A -> B C); terminals are classified
separately by [TerminalMapping] and seeded directly into row 0 of a
[pkg/cyk] chart, so this package has no A -> a productions of its own.

A [Grammar] pairs each production with an optional [Action] that mutates
a [tokinfo.Info] when the production fires during derivation extraction.
Grammars built by [Default] are immutable after construction and safe for
concurrent use by multiple [pkg/cyk] engines.
*/
package grammar

// Variant is one right-hand side A -> B C of a production, together with
// the semantic action to run when it fires.
type Variant struct {
	B, C   NonTerminal
	Action Action
}

// Grammar is the complete set of productions, indexed by left-hand side.
type Grammar struct {
	variants [][]Variant
}

// Variants returns the productions with lhs on the left-hand side. The
// returned slice is owned by g and must not be mutated.
func (g *Grammar) Variants(lhs NonTerminal) []Variant {
	if int(lhs) < 0 || int(lhs) >= len(g.variants) {
		return nil
	}
	return g.variants[lhs]
}

// Size returns the number of identifiers the grammar was built for; a
// [pkg/cyk] chart dimensions its non-terminal axis to this value.
func (g *Grammar) Size() int {
	return len(g.variants)
}

func buildDefault() *Grammar {
	g := &Grammar{variants: make([][]Variant, numNonTerminals)}

	rule := func(lhs NonTerminal, variants ...Variant) {
		g.variants[lhs] = append(g.variants[lhs], variants...)
	}

	rule(ArgTerm,
		Variant{ShortArgPrefix, ShortArgPrefix, nil},
	)

	rule(LongArgPrefix,
		Variant{ShortArgPrefix, ShortArgPrefix, nil},
	)

	rule(AlnumString,
		Variant{Alnum, Alnum, nil},
		Variant{Alnum, AlnumString, nil},
	)

	rule(PrintableString,
		Variant{Printable, Printable, nil},
		Variant{Printable, PrintableString, nil},
	)

	rule(ShortArg,
		Variant{ShortArgPrefix, Alnum, addName},
	)

	rule(CompoundArg,
		Variant{ShortArgPrefix, AlnumString, argListAddName},
	)

	rule(SimpleLongArg,
		Variant{LongArgPrefix, Alnum, addName},
		Variant{LongArgPrefix, AlnumString, addName},
	)

	rule(UnderscoreExtension,
		Variant{Underscore, AlnumString, addExt},
		Variant{Underscore, Alnum, addExt},
	)

	rule(DashExtension,
		Variant{ShortArgPrefix, AlnumString, addExt},
		Variant{ShortArgPrefix, Alnum, addExt},
	)

	// LongArgExtension composes with itself via UnderscoreExtension and
	// DashExtension as the left child, so "--foo_bar-baz" is recognized by
	// peeling one hyphen/underscore run off the front at a time.
	rule(LongArgExtension,
		Variant{Underscore, AlnumString, addExt},
		Variant{Underscore, Alnum, addExt},
		Variant{ShortArgPrefix, Alnum, addExt},
		Variant{ShortArgPrefix, AlnumString, addExt},
		Variant{UnderscoreExtension, LongArgExtension, nil},
		Variant{DashExtension, LongArgExtension, nil},
	)

	rule(LongArg,
		Variant{SimpleLongArg, LongArgExtension, mergeExt},
		Variant{LongArgPrefix, Alnum, addName},
		Variant{LongArgPrefix, AlnumString, addName},
	)

	rule(FreeValue,
		Variant{NonShortArgPrefix, PrintableString, nil},
	)

	rule(AssignmentRight,
		Variant{AssignmentOp, PrintableString, assign},
	)

	rule(Start,
		Variant{LongArgPrefix, Alnum, addName},
		Variant{LongArgPrefix, AlnumString, addName},
		Variant{SimpleLongArg, LongArgExtension, mergeExt},
		Variant{ShortArgPrefix, Alnum, addName},
		Variant{ShortArgPrefix, AlnumString, argListAddName},
		Variant{NonShortArgPrefix, PrintableString, freeVal},
		Variant{CompoundArg, AssignmentRight, nil},
		Variant{LongArg, AssignmentRight, nil},
		Variant{ShortArg, AssignmentRight, nil},
	)

	return g
}

var defaultGrammar = buildDefault()

// Default returns the shared, immutable CNF grammar for recognizing a
// single command-line token, rooted at [Start].
func Default() *Grammar {
	return defaultGrammar
}
