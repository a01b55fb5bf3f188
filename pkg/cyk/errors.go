// errors.go - recognition failures reported by the CYK engine.
// SPDX-License-Identifier: GPL-3.0-or-later

package cyk

import "fmt"

// ErrTerminalNotValid indicates that a byte of the token under
// recognition belongs to none of the terminal classes in the grammar's
// terminal mapping, so row 0 of the chart could not be seeded for it.
type ErrTerminalNotValid struct {
	// Token is the token that failed recognition.
	Token string

	// Offset is the byte offset, within Token, of the offending byte.
	Offset int
}

var _ error = ErrTerminalNotValid{}

// Error returns a string representation of this error.
func (err ErrTerminalNotValid) Error() string {
	return fmt.Sprintf("cyk: byte %q at offset %d of %q matches no terminal class",
		err.Token[err.Offset], err.Offset, err.Token)
}

// ErrStartSymbolNotDerived indicates that the chart was filled
// successfully but the start symbol does not span the whole token, i.e.
// the token has no derivation under the grammar.
type ErrStartSymbolNotDerived struct {
	// Token is the token that failed recognition.
	Token string
}

var _ error = ErrStartSymbolNotDerived{}

// Error returns a string representation of this error.
func (err ErrStartSymbolNotDerived) Error() string {
	return fmt.Sprintf("cyk: start symbol does not derive %q", err.Token)
}
