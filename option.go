// option.go - functional options for NewParser.
// SPDX-License-Identifier: GPL-3.0-or-later

package cfgarg

import "github.com/relay-tools/cfgarg/pkg/tokinfo"

// Mode controls how the parser reacts to a token it cannot place into the
// registered schema.
type Mode int

const (
	// Strict rejects malformed or unrecognized argument tokens with an
	// error. This is the default.
	Strict Mode = iota

	// Lenient demotes an unrecognized "-"-prefixed token (or a token the
	// recognizer itself rejects) to a free value instead of failing the
	// parse.
	Lenient
)

var modeNames = map[Mode]string{
	Strict:  "Strict",
	Lenient: "Lenient",
}

// String returns the symbolic name of mode.
func (mode Mode) String() string {
	if name, ok := modeNames[mode]; ok {
		return name
	}
	return "Mode(invalid)"
}

// Option configures a [Parser] constructed by [NewParser].
type Option func(*Parser)

// WithMode sets the parser's [Mode]. The default is [Strict].
func WithMode(mode Mode) Option {
	return func(p *Parser) {
		p.mode = mode
	}
}

// WithRecognizer sets the token [tokinfo.Recognizer] the parser uses. The
// default is the grammar-driven engine in [pkg/cyk]; pass a
// [pkg/directmatch.Engine] (or any other implementation) to swap it out,
// per the specification's requirement that both variants share the same
// external contract.
func WithRecognizer(recognizer tokinfo.Recognizer) Option {
	return func(p *Parser) {
		p.recognizer = recognizer
	}
}

// WithLogger sets the parser's [Logger]. The default is a no-op logger;
// passing nil explicitly also selects the no-op logger.
func WithLogger(logger Logger) Option {
	return func(p *Parser) {
		if logger == nil {
			logger = noopLogger{}
		}
		p.logger = logger
	}
}
