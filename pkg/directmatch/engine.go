// engine.go - hand-coded token recognizer.
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package directmatch recognizes a single command-line token the same way
[pkg/cyk] does, but by direct prefix matching instead of chart parsing:
strip a "-" or "--" prefix, split off an inline "=value" assignment, and
validate what remains against the same long/short/free-value shapes. It
is the "simpler variant" behind [tokinfo.Recognizer].

Unlike [pkg/cyk], whose grammar cannot derive a PrintableString shorter
than two bytes, this package imposes no minimum length on a free value or
an assigned value: "-v=1" and a bare one-byte positional argument both
recognize cleanly here. The two recognizers are expected to diverge on
this corner; pick whichever matches the behavior your callers need, or
query both and compare when a token's acceptance matters more than its
performance.
*/
package directmatch

import "github.com/relay-tools/cfgarg/pkg/tokinfo"

// Engine recognizes tokens by direct prefix matching. The zero value is
// ready to use.
type Engine struct{}

// NewEngine builds an [Engine]. There is currently nothing to configure;
// the constructor exists so callers have a stable spelling to switch to
// if that changes.
func NewEngine() *Engine {
	return &Engine{}
}

var _ tokinfo.Recognizer = (*Engine)(nil)

// Recognize implements [tokinfo.Recognizer].
func (e *Engine) Recognize(token string) (tokinfo.Info, error) {
	switch {
	case len(token) == 0:
		return tokinfo.Info{IsFreeVal: true}, nil
	case len(token) >= 2 && token[:2] == "--":
		return e.recognizeLong(token)
	case token[0] == '-' && len(token) >= 2:
		return e.recognizeShort(token)
	default:
		return tokinfo.Info{IsFreeVal: true}, nil
	}
}

func (e *Engine) recognizeLong(token string) (tokinfo.Info, error) {
	rest := token[2:]
	name, value, hasValue := splitAssignment(rest)

	if name == "" {
		return tokinfo.Info{}, ErrArgNameEmpty{Token: token}
	}
	if !isLongName(name) {
		return tokinfo.Info{}, ErrArgNameNotValid{Token: token, Name: name}
	}

	ti := tokinfo.Info{ArgName: name}
	if hasValue {
		ti.ArgVal = value
	}
	return ti, nil
}

func (e *Engine) recognizeShort(token string) (tokinfo.Info, error) {
	rest := token[1:]
	name, value, hasValue := splitAssignment(rest)

	if name == "" {
		return tokinfo.Info{}, ErrArgNameEmpty{Token: token}
	}
	if !isAllAlnum(name) {
		return tokinfo.Info{}, ErrArgNameNotValid{Token: token, Name: name}
	}

	ti := tokinfo.Info{ArgName: name, IsArgList: len(name) > 1}
	if hasValue {
		ti.ArgVal = value
	}
	return ti, nil
}
