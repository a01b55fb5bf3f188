// query.go - read-only result query surface (C7).
// SPDX-License-Identifier: GPL-3.0-or-later

package cfgarg

// FlagCount returns how many times the flag registered under long has
// occurred. It is 0 if long is not a registered flag.
func (p *Parser) FlagCount(long string) int {
	return p.reg.FlagCount(long)
}

// FlagInstancePosition returns the position of the index-th occurrence of
// the flag registered under long.
func (p *Parser) FlagInstancePosition(long string, index int) (int, error) {
	inst, err := p.reg.FlagInstance(long, index)
	if err != nil {
		return 0, wrapRegistryErr(err)
	}
	return inst.Position, nil
}

// OptionCount returns how many times the option registered under long has
// occurred. It is 0 if long is not a registered option.
func (p *Parser) OptionCount(long string) int {
	return p.reg.OptionCount(long)
}

// OptionInstancePosition returns the position of the index-th occurrence
// of the option registered under long.
func (p *Parser) OptionInstancePosition(long string, index int) (int, error) {
	inst, err := p.reg.OptionInstance(long, index)
	if err != nil {
		return 0, wrapRegistryErr(err)
	}
	return inst.Position, nil
}

// OptionInstanceValue returns the value of the index-th occurrence of the
// option registered under long.
func (p *Parser) OptionInstanceValue(long string, index int) (string, error) {
	inst, err := p.reg.OptionInstance(long, index)
	if err != nil {
		return "", wrapRegistryErr(err)
	}
	return inst.Value, nil
}

// OptionValues returns every value recorded against the option registered
// under long, in occurrence order. It is nil if long is not registered.
func (p *Parser) OptionValues(long string) []string {
	return p.reg.OptionValues(long)
}

// FreeValueCount returns the number of free (positional) values recorded
// by the last Parse call.
func (p *Parser) FreeValueCount() int {
	return len(p.freeValues)
}

// FreeValueInstancePosition returns the position of the index-th free
// value.
func (p *Parser) FreeValueInstancePosition(index int) (int, error) {
	if index < 0 || index >= len(p.freeValues) {
		return 0, &Error{Code: InstanceIndexNotValid}
	}
	return p.freeValues[index].Position, nil
}

// FreeValueInstanceValue returns the index-th free value.
func (p *Parser) FreeValueInstanceValue(index int) (string, error) {
	if index < 0 || index >= len(p.freeValues) {
		return "", &Error{Code: InstanceIndexNotValid}
	}
	return p.freeValues[index].Value, nil
}
