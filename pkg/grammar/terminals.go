// terminals.go - terminal-class membership for the bytes that may appear in a token.
// SPDX-License-Identifier: GPL-3.0-or-later

package grammar

// TerminalMapping answers "which terminal classes does this byte belong
// to". A byte may belong to more than one class at once (e.g. 'a' is a
// [SmallLetter], a [Letter], an [Alnum], and a [Printable]), which is why
// row 0 of a CYK chart can set several bits for a single column.
type TerminalMapping struct {
	classes [256][]NonTerminal
}

func (tm *TerminalMapping) add(c NonTerminal, ch byte) {
	tm.classes[ch] = append(tm.classes[ch], c)
}

// Has reports whether ch belongs to terminal class c.
func (tm *TerminalMapping) Has(c NonTerminal, ch byte) bool {
	for _, got := range tm.classes[ch] {
		if got == c {
			return true
		}
	}
	return false
}

// ClassesOf returns every terminal class ch belongs to. The returned slice
// is owned by tm and must not be mutated.
func (tm *TerminalMapping) ClassesOf(ch byte) []NonTerminal {
	return tm.classes[ch]
}

func isAlnumByte(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9')
}

func isPrintableByte(ch byte) bool {
	return ch >= 33 && ch <= 126
}

// buildTerminalMapping constructs the terminal mapping described by the
// character classes: every printable byte (33..126) is in Printable and,
// except '-', in NonShortArgPrefix; letters are also in
// {SmallLetter|BigLetter, Letter, Alnum} and digits in {Digit, Alnum};
// every printable byte that is not alnum is in NonAlnum; and '-', '=',
// ',' and '_' are additionally in ShortArgPrefix, AssignmentOp, Comma and
// Underscore respectively ('-' is deliberately excluded from
// [NonShortArgPrefix]).
//
// The upstream reference implementation this package's rules are modeled
// on assembles this table from three hand-written ASCII range lists, one
// of which reuses the lowercase loop variable while tagging uppercase
// letters, so capital letters there never land in Letter or Alnum, and a
// second that lists NonAlnum ranges that skip the 0x5B-0x60 block
// ('['..'`', minus '_'). Both omissions would silently reject
// upper-case-bearing long names and punctuation like '[' from ever
// matching CompoundArg/AlnumString/NonAlnum productions. This mapping is
// built from the character-class rule directly instead of transcribing
// those ranges, so every printable byte lands in every class it
// structurally belongs to.
func buildTerminalMapping() *TerminalMapping {
	tm := &TerminalMapping{}
	for ch := 0; ch < 256; ch++ {
		b := byte(ch)
		if !isPrintableByte(b) {
			continue
		}
		tm.add(Printable, b)
		switch {
		case b >= 'a' && b <= 'z':
			tm.add(SmallLetter, b)
			tm.add(Letter, b)
			tm.add(Alnum, b)
		case b >= 'A' && b <= 'Z':
			tm.add(BigLetter, b)
			tm.add(Letter, b)
			tm.add(Alnum, b)
		case b >= '0' && b <= '9':
			tm.add(Digit, b)
			tm.add(Alnum, b)
		}
		if !isAlnumByte(b) {
			tm.add(NonAlnum, b)
		}
		switch b {
		case '-':
			tm.add(ShortArgPrefix, b)
		default:
			tm.add(NonShortArgPrefix, b)
		}
		switch b {
		case '=':
			tm.add(AssignmentOp, b)
		case ',':
			tm.add(Comma, b)
		case '_':
			tm.add(Underscore, b)
		}
	}
	return tm
}

var defaultTerminalMapping = buildTerminalMapping()

// DefaultTerminalMapping returns the shared, immutable terminal mapping
// used by [pkg/cyk] to seed row 0 of a parse chart. Callers must not
// mutate the returned value.
func DefaultTerminalMapping() *TerminalMapping {
	return defaultTerminalMapping
}
