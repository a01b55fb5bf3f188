// parser.go - parse driver and state machine over the argument schema.
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package cfgarg is a command-line argument parser whose token recognition is
delegated to a [tokinfo.Recognizer] (the CNF/CYK chart engine in [pkg/cyk]
by default, or the hand-coded engine in [pkg/directmatch]) and whose
argument-schema bookkeeping is delegated to [pkg/registry]. [Parser] is the
driver that ties the two together: it registers flags and options, runs
the recognizer token by token, and interprets the resulting [tokinfo.Info]
against the registry to update occurrence counts, option values, and the
free-value list.

# Token shapes

	--name           long flag
	--name value     long option with value in the next token
	--name=value     long option with an inline value
	--foo-bar        long identifier with a hyphen/underscore extension
	-x               short flag or short option
	-x value         short option with value in the next token
	-x=value         short option with an inline value
	-abc             bundled short flags
	-abco=v          bundled short flags ending in a short option with an inline value
	--               end of options: every remaining token becomes a free value
	anything else    free (positional) value

A one-byte token is always a free value. Every longer token outside the
"--" rogue state goes through the recognizer, so its shape limits apply:
the default [pkg/cyk] grammar only derives a free value of at least three
printable ASCII bytes and an inline value of at least two, so a token such
as "ok", "-v=1" or one containing a space is a recognition failure (an
error in [Strict] mode, a free value in [Lenient] mode).

# Modes

[Strict] (the default) rejects a token that does not fit any of the above
shapes for the registered schema. [Lenient] demotes such a token to a free
value instead of failing the parse.
*/
package cfgarg

import (
	"github.com/relay-tools/cfgarg/pkg/assert"
	"github.com/relay-tools/cfgarg/pkg/cyk"
	"github.com/relay-tools/cfgarg/pkg/registry"
	"github.com/relay-tools/cfgarg/pkg/tokinfo"
)

type parseState int

const (
	stateParseInputToken parseState = iota
	stateHandleOptionValue
	stateHandleOptionRogueValue
	stateHandleRogueFreeValue
)

// Parser parses command-line tokens against a registered schema of flags
// and options. The zero value is not ready to use; construct one with
// [NewParser].
type Parser struct {
	reg        *registry.Registry
	recognizer tokinfo.Recognizer
	logger     Logger
	mode       Mode

	freeValues []registry.ArgInstance

	state           parseState
	targetOption    *registry.Entry
	begin           int
	pendingPosition int
	errorPosition   int
}

// NewParser builds a [Parser]. By default it recognizes tokens with the
// grammar-driven engine from [pkg/cyk], logs nothing, and runs in [Strict]
// mode; use [WithRecognizer], [WithLogger], and [WithMode] to change any of
// that.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		reg:        registry.New(),
		recognizer: cyk.NewEngine(),
		logger:     noopLogger{},
		mode:       Strict,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AddFlag registers a flag under the given long form, optionally aliased
// by a single-byte short form (pass 0 for none).
func (p *Parser) AddFlag(long string, short byte) error {
	exit := p.logger.Enter("AddFlag")
	defer exit()
	if err := p.reg.AddFlag(long, short); err != nil {
		return wrapRegistryErr(err)
	}
	return nil
}

// AddOption registers an option under the given long form, optionally
// aliased by a single-byte short form (pass 0 for none).
func (p *Parser) AddOption(long string, short byte) error {
	exit := p.logger.Enter("AddOption")
	defer exit()
	if err := p.reg.AddOption(long, short); err != nil {
		return wrapRegistryErr(err)
	}
	return nil
}

// Parse parses tokens[begin:end], updating flag and option occurrences and
// the free-value list.
//
// Calling Parse a second time on the same [Parser] first resets every
// registered flag's and option's instance list, the free-value list, and
// the internal state machine, so a [Parser] can be reused across
// independent command lines; the schema itself (which flags and options
// are registered) is left untouched.
func (p *Parser) Parse(tokens []string, begin, end int) error {
	exit := p.logger.Enter("Parse")
	defer exit()

	if begin < 0 || end > len(tokens) || begin > end {
		return &Error{Code: BeginEndRangeNotValid}
	}

	p.reset(begin)

	for i := begin; i < end; i++ {
		token := tokens[i]

		var err error
		switch p.state {
		case stateParseInputToken:
			err = p.parseInputToken(i, token)
		case stateHandleOptionValue:
			err = p.handleOptionValue(i, token, false)
		case stateHandleOptionRogueValue:
			err = p.handleOptionValue(i, token, true)
		case stateHandleRogueFreeValue:
			p.emitFreeValue(i, token)
		}
		if err != nil {
			p.errorPosition = i
			p.logger.Error(err.Error())
			return err
		}
	}

	if p.state == stateHandleOptionValue || p.state == stateHandleOptionRogueValue {
		p.errorPosition = p.pendingPosition
		err := &Error{Code: OptionRequiresValue}
		p.logger.Error(err.Error())
		return err
	}

	return nil
}

// ErrorPosition returns the absolute token index (as passed to Parse, not
// relative to begin) at which the last failed Parse call produced its
// error. Its value is meaningless after a successful Parse.
func (p *Parser) ErrorPosition() int {
	return p.errorPosition
}

func (p *Parser) reset(begin int) {
	p.reg.Reset()
	p.freeValues = nil
	p.state = stateParseInputToken
	p.targetOption = nil
	p.begin = begin
	p.pendingPosition = -1
	p.errorPosition = -1
}

func (p *Parser) relativePosition(i int) int {
	return i - p.begin
}

func (p *Parser) emitFreeValue(i int, token string) {
	p.freeValues = append(p.freeValues, registry.ArgInstance{
		Position: p.relativePosition(i),
		Value:    token,
	})
}

// parseInputToken implements state S0 from the specification: the normal
// per-token dispatch that runs the recognizer and routes its result to one
// of the schema-aware sub-handlers.
func (p *Parser) parseInputToken(i int, token string) error {
	if token == "--" {
		// End-of-options: every remaining token becomes a free value, no
		// matter its shape. Unlike the literal state transition the
		// specification's prose describes for a single following token,
		// this parser keeps the rogue state for the rest of the input —
		// see DESIGN.md for why the external-interface contract ("--"
		// makes "remaining tokens" free values, plural) wins over that
		// one sentence.
		p.state = stateHandleRogueFreeValue
		return nil
	}

	if len(token) == 1 {
		p.emitFreeValue(i, token)
		return nil
	}

	ti, err := p.recognizer.Recognize(token)
	if err != nil {
		if p.mode == Lenient {
			p.emitFreeValue(i, token)
			return nil
		}
		return wrapRecognizerErr(err)
	}

	switch {
	case ti.IsFreeVal:
		p.emitFreeValue(i, token)
		return nil
	case ti.IsArgList:
		return p.handleArgList(i, token, ti)
	case len(ti.ArgName) == 1:
		return p.handleShortArg(i, token, ti)
	default:
		return p.handleLongArg(i, token, ti)
	}
}

// handleOptionValue implements states S1 (HandleOptionValue) and S2
// (HandleOptionRogueValue): the next token is consumed as the pending
// option's value. In the rogue variant the "looks like another argument"
// check is disabled, per the specification's note that the driver must
// not "peek" past a literal "--".
//
// A literal "--" encountered in S1 does not itself become the option's
// value: it switches to S2 so the token that actually follows is taken
// verbatim, even if it begins with "-" (e.g. "-o -- -x" assigns "-x" to
// the option output).
func (p *Parser) handleOptionValue(i int, token string, rogue bool) error {
	if !rogue && token == "--" {
		p.state = stateHandleOptionRogueValue
		return nil
	}
	if !rogue && len(token) > 0 && token[0] == '-' {
		p.errorPosition = i
		return &Error{Code: OptionRequiresValue}
	}
	assert.True(p.targetOption != nil, "handleOptionValue: no pending option to assign a value to")
	p.targetOption.SetLastValue(token)
	p.targetOption = nil
	p.state = stateParseInputToken
	return nil
}

// handleArgList implements §4.6.1: a bundled short-flag list such as
// "-abc" or "-abco=v". Every character but the last must be a registered
// flag; the last may be a flag or an option.
func (p *Parser) handleArgList(i int, token string, ti tokinfo.Info) error {
	relPos := p.relativePosition(i)
	name := ti.ArgName
	prefix, last := name[:len(name)-1], name[len(name)-1]

	valid := true
	for j := 0; j < len(prefix); j++ {
		if _, ok := p.reg.FlagByShort(prefix[j]); !ok {
			valid = false
			break
		}
	}
	if valid {
		_, isFlag := p.reg.FlagByShort(last)
		_, isOption := p.reg.OptionByShort(last)
		if !isFlag && !isOption {
			valid = false
		}
	}

	if !valid {
		if p.mode == Lenient {
			p.emitFreeValue(i, token)
			return nil
		}
		return &Error{Code: ExpectedArgListToken}
	}

	for j := 0; j < len(prefix); j++ {
		e, ok := p.reg.FlagByShort(prefix[j])
		assert.True(ok, "handleArgList: the validity check above guarantees every prefix byte is a registered flag")
		e.Append(relPos, "")
	}

	if e, ok := p.reg.FlagByShort(last); ok {
		e.Append(relPos, "")
		return nil
	}

	e, ok := p.reg.OptionByShort(last)
	assert.True(ok, "handleArgList: the validity check above guarantees last is a registered flag or option")
	if ti.ArgVal != "" {
		e.Append(relPos, ti.ArgVal)
		return nil
	}
	e.Append(relPos, "")
	p.targetOption = e
	p.pendingPosition = i
	p.state = stateHandleOptionValue
	return nil
}

// handleShortArg implements §4.6.2: a single-character argument name, e.g.
// "-v" or "-v=1".
func (p *Parser) handleShortArg(i int, token string, ti tokinfo.Info) error {
	relPos := p.relativePosition(i)
	c := ti.ArgName[0]

	if e, ok := p.reg.OptionByShort(c); ok {
		if ti.ArgVal != "" {
			e.Append(relPos, ti.ArgVal)
			return nil
		}
		e.Append(relPos, "")
		p.targetOption = e
		p.pendingPosition = i
		p.state = stateHandleOptionValue
		return nil
	}

	if e, ok := p.reg.FlagByShort(c); ok {
		e.Append(relPos, "")
		return nil
	}

	if p.mode == Lenient {
		p.emitFreeValue(i, token)
		return nil
	}
	return &Error{Code: ArgShortFormNotValid}
}

// handleLongArg implements §4.6.3: a multi-character argument name, e.g.
// "--foo" or "--foo=bar".
func (p *Parser) handleLongArg(i int, token string, ti tokinfo.Info) error {
	relPos := p.relativePosition(i)
	name := ti.ArgName

	if e, ok := p.reg.OptionByLong(name); ok {
		if ti.ArgVal != "" {
			e.Append(relPos, ti.ArgVal)
			return nil
		}
		e.Append(relPos, "")
		p.targetOption = e
		p.pendingPosition = i
		p.state = stateHandleOptionValue
		return nil
	}

	if e, ok := p.reg.FlagByLong(name); ok {
		e.Append(relPos, "")
		return nil
	}

	if p.mode == Lenient {
		p.emitFreeValue(i, token)
		return nil
	}
	return &Error{Code: ArgLongFormNotValid}
}

func wrapRegistryErr(err error) *Error {
	switch err.(type) {
	case registry.ErrEmptyLongForm:
		return &Error{Code: EmptyStringParameter, Err: err}
	case registry.ErrLongFormNotValid:
		return &Error{Code: StringNotValid, Err: err}
	case registry.ErrShortFormNotValid:
		return &Error{Code: CharacterNotValid, Err: err}
	case registry.ErrIDAlreadyInUse:
		return &Error{Code: IdAlreadyInUse, Err: err}
	case registry.ErrLongFormNotRegistered:
		return &Error{Code: ArgLongFormNotValid, Err: err}
	case registry.ErrShortFormNotRegistered:
		return &Error{Code: ArgShortFormNotValid, Err: err}
	case registry.ErrInstanceIndexNotValid:
		return &Error{Code: InstanceIndexNotValid, Err: err}
	default:
		return &Error{Code: ResultCodeNotValid, Err: err}
	}
}

// wrapRecognizerErr classifies an error returned by a [tokinfo.Recognizer].
// The two failure modes [pkg/cyk] defines map onto dedicated Codes; a
// recognizer this package did not originate (including [pkg/directmatch],
// or any caller-supplied implementation) gets the general
// StartSymbolNotDerivedFromInput Code, since any such error means the same
// thing at this layer: "this token has no valid shape."
func wrapRecognizerErr(err error) *Error {
	switch err.(type) {
	case cyk.ErrTerminalNotValid:
		return &Error{Code: TerminalTokenNotValid, Err: err}
	case cyk.ErrStartSymbolNotDerived:
		return &Error{Code: StartSymbolNotDerivedFromInput, Err: err}
	default:
		return &Error{Code: StartSymbolNotDerivedFromInput, Err: err}
	}
}
