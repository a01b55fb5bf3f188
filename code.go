// code.go - result code enumeration shared by every package-level failure.
// SPDX-License-Identifier: GPL-3.0-or-later

package cfgarg

import "fmt"

// Code is the symbolic result code enumeration from the specification this
// module implements. Every exported failure mode maps to exactly one Code;
// [Error] carries both the Code and (where one exists) the underlying typed
// error that triggered it.
type Code int

const (
	// Success indicates that an operation completed without error. Methods
	// that can fail return a nil error instead of an explicit Success
	// Code; it exists so toString(code) covers every symbolic name.
	Success Code = iota

	// NullArgument indicates that a required argument was missing. This
	// module's API uses Go's type system to avoid null-argument failures
	// and no operation returns this Code; it is kept for parity with the
	// full result enumeration.
	NullArgument

	// MemoryAllocationFailure indicates a catastrophic allocation failure.
	// Go's runtime does not expose allocation failure as a recoverable
	// error, so this module never returns it; it is kept for parity with
	// the full result enumeration.
	MemoryAllocationFailure

	// BeginEndRangeNotValid indicates that Parse was called with a
	// [begin, end) range outside [0, len(tokens)] or with begin > end.
	BeginEndRangeNotValid

	// OptionRequiresValue indicates that an option was the last token, or
	// was followed by a token that looks like another argument.
	OptionRequiresValue

	// EmptyStringParameter indicates that AddFlag/AddOption was called
	// with an empty long form.
	EmptyStringParameter

	// IdAlreadyInUse indicates that a long or short form collides with an
	// already-registered flag or option.
	IdAlreadyInUse

	// StringNotValid indicates that a long form contains a
	// non-alphanumeric character.
	StringNotValid

	// CharacterNotValid indicates that a short form is not alphanumeric.
	CharacterNotValid

	// ArgLongFormNotValid indicates an unrecognized long-form identifier,
	// either during parsing or during a query.
	ArgLongFormNotValid

	// ArgShortFormNotValid indicates an unrecognized short-form
	// identifier during parsing.
	ArgShortFormNotValid

	// InstanceIndexNotValid indicates an out-of-range instance index.
	InstanceIndexNotValid

	// TerminalTokenNotValid indicates that a token recognizer found a
	// byte with no terminal-class membership.
	TerminalTokenNotValid

	// StartSymbolNotDerivedFromInput indicates that a token recognizer
	// could not derive the start symbol for the given token.
	StartSymbolNotDerivedFromInput

	// ExpectedArgListToken indicates that a bundled short-flag token had
	// a character that is not a registered short flag in a position that
	// must be a flag, or a last character registered as neither a flag
	// nor an option.
	ExpectedArgListToken

	// RuleIdentifierNotValid indicates an internal grammar consistency
	// failure. This module's grammar tables are fixed at compile time and
	// never produce this Code in practice; it is kept for parity with the
	// full result enumeration.
	RuleIdentifierNotValid

	// ResultCodeNotValid indicates that a failure occurred whose cause
	// does not map onto any of the other Codes (used for wrapping a
	// registry error of a type the driver does not classify; errors from
	// a recognizer this module did not originate are reported as
	// StartSymbolNotDerivedFromInput instead).
	ResultCodeNotValid

	// TokenNotHandled indicates that the parser's internal state machine
	// reached a state with no defined transition. This module's state
	// machine is exhaustive over [Mode] and the token shapes the
	// recognizer contract allows, so this Code is never returned in
	// practice; it is kept for parity with the full result enumeration.
	TokenNotHandled
)

var codeNames = map[Code]string{
	Success:                        "Success",
	NullArgument:                   "NullArgument",
	MemoryAllocationFailure:        "MemoryAllocationFailure",
	BeginEndRangeNotValid:          "BeginEndRangeNotValid",
	OptionRequiresValue:            "OptionRequiresValue",
	EmptyStringParameter:           "EmptyStringParameter",
	IdAlreadyInUse:                 "IdAlreadyInUse",
	StringNotValid:                 "StringNotValid",
	CharacterNotValid:              "CharacterNotValid",
	ArgLongFormNotValid:            "ArgLongFormNotValid",
	ArgShortFormNotValid:           "ArgShortFormNotValid",
	InstanceIndexNotValid:          "InstanceIndexNotValid",
	TerminalTokenNotValid:          "TerminalTokenNotValid",
	StartSymbolNotDerivedFromInput: "StartSymbolNotDerivedFromInput",
	ExpectedArgListToken:           "ExpectedArgListToken",
	RuleIdentifierNotValid:         "RuleIdentifierNotValid",
	ResultCodeNotValid:             "ResultCodeNotValid",
	TokenNotHandled:                "TokenNotHandled",
}

// String returns the symbolic name of code, implementing the
// specification's "toString(code) -> name" requirement via the standard Go
// [fmt.Stringer] interface.
func (code Code) String() string {
	if name, ok := codeNames[code]; ok {
		return name
	}
	return fmt.Sprintf("Code(%d)", int(code))
}

// Error is the error type returned by every fallible [Parser] method. It
// carries the symbolic [Code] from the specification's result
// enumeration plus, where one is available, the underlying typed error
// (from [pkg/registry] or a [tokinfo.Recognizer]) that triggered it.
type Error struct {
	// Code is the symbolic result code.
	Code Code

	// Err is the underlying error, or nil if this Code was produced
	// directly by the driver rather than forwarded from a lower layer.
	Err error
}

var _ error = &Error{}

// Error returns a string representation of this error.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cfgarg: %s: %v", e.Code, e.Err)
	}
	return fmt.Sprintf("cfgarg: %s", e.Code)
}

// Unwrap returns the underlying error, allowing [errors.Is] and
// [errors.As] to see through an [*Error] to the typed error it wraps.
func (e *Error) Unwrap() error {
	return e.Err
}
