// engine.go - the CNF/CYK token recognizer.
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package cyk recognizes a single command-line token by filling a CYK
parse chart against [grammar.Default] and walking the resulting
derivation to populate a [tokinfo.Info]. It is one of two interchangeable
recognizers behind [tokinfo.Recognizer]; see [pkg/directmatch] for the
hand-coded alternative.
*/
package cyk

import (
	"fmt"

	"github.com/relay-tools/cfgarg/pkg/grammar"
	"github.com/relay-tools/cfgarg/pkg/tokinfo"
)

// Engine recognizes tokens by CYK chart parsing. The zero value is not
// ready to use; construct one with [NewEngine].
type Engine struct {
	g  *grammar.Grammar
	tm *grammar.TerminalMapping
}

// Option configures an [Engine] built by [NewEngine].
type Option func(*Engine)

// WithGrammar overrides the grammar an [Engine] parses against. Intended
// for tests that exercise a restricted or malformed grammar; production
// code should rely on the default.
func WithGrammar(g *grammar.Grammar) Option {
	return func(e *Engine) { e.g = g }
}

// WithTerminalMapping overrides the terminal mapping an [Engine] seeds
// its chart from.
func WithTerminalMapping(tm *grammar.TerminalMapping) Option {
	return func(e *Engine) { e.tm = tm }
}

// NewEngine builds an [Engine], defaulting to [grammar.Default] and
// [grammar.DefaultTerminalMapping].
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		g:  grammar.Default(),
		tm: grammar.DefaultTerminalMapping(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var _ tokinfo.Recognizer = (*Engine)(nil)

// Recognize implements [tokinfo.Recognizer].
func (e *Engine) Recognize(token string) (tokinfo.Info, error) {
	if len(token) == 0 {
		return tokinfo.Info{}, fmt.Errorf("cyk: empty token has no derivation")
	}

	chart := NewChart(e.g, e.tm, len(token))
	if err := chart.Fill(token); err != nil {
		return tokinfo.Info{}, err
	}

	steps := chart.ExtractDerivation(0)

	var ti tokinfo.Info
	Dispatch(e.g, token, steps, &ti)
	return ti, nil
}
