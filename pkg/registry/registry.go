/*
Package registry is the schema-aware half of this module's argument
handling: it tracks which long and short forms have been declared as
flags or options, rejects malformed or colliding declarations, and
records an [ArgInstance] (position plus value) every time the driver
sees one of those forms on the command line.

It mirrors the long-form-owns/short-form-aliases design of the original
C++ implementation's ArgInstanceDatabaseT: a long form owns the instance
list, and a short form (when one is registered alongside it) is just
another key into the same entry. Flags and options are tracked as two
separate categories, the way the original keeps two independent
databases, but identifiers are checked for uniqueness across both: a
flag and an option can never share a long or short form.
*/
package registry

// ArgInstance records one occurrence of a flag or option on the command
// line: its position in the input and, for options, the value that was
// associated with it.
type ArgInstance struct {
	// Position is the zero-based offset, within the parsed [begin, end)
	// range, of the token this occurrence came from.
	Position int

	// Value is empty for a flag occurrence. For an option it holds the
	// assigned value once one is attached to it; a just-appended option
	// occurrence with no value yet has an empty Value until the driver
	// calls SetLastValue.
	Value string
}

// Entry is a single registered long-form identifier, optionally aliased
// by a short-form byte, together with every instance recorded against
// it so far.
type Entry struct {
	// LongForm is the identifier's long-form spelling.
	LongForm string

	// ShortForm is the identifier's short-form byte, or 0 if none was
	// registered.
	ShortForm byte

	instances []ArgInstance
}

// Count returns the number of times this entry has been recorded as
// occurring.
func (e *Entry) Count() int {
	return len(e.instances)
}

// Instances returns every instance recorded against this entry, in the
// order they were appended.
func (e *Entry) Instances() []ArgInstance {
	out := make([]ArgInstance, len(e.instances))
	copy(out, e.instances)
	return out
}

// Instance returns the instance at index, or an
// [ErrInstanceIndexNotValid] if index is out of range.
func (e *Entry) Instance(index int) (ArgInstance, error) {
	if index < 0 || index >= len(e.instances) {
		return ArgInstance{}, ErrInstanceIndexNotValid{Index: index, Count: len(e.instances)}
	}
	return e.instances[index], nil
}

// Append records a new occurrence of this entry.
func (e *Entry) Append(position int, value string) {
	e.instances = append(e.instances, ArgInstance{Position: position, Value: value})
}

// SetLastValue overwrites the value of the most recently appended
// instance. It is a no-op if no instance has been appended yet; callers
// that just called Append have nothing to worry about.
func (e *Entry) SetLastValue(value string) {
	if n := len(e.instances); n > 0 {
		e.instances[n-1].Value = value
	}
}

type category struct {
	longForm  map[string]*Entry
	shortForm map[byte]*Entry
}

func newCategory() category {
	return category{
		longForm:  make(map[string]*Entry),
		shortForm: make(map[byte]*Entry),
	}
}

// Registry holds the flags and options declared for a parser, each
// indexed by long form and, optionally, by short form.
type Registry struct {
	flags   category
	options category
}

// New builds an empty [Registry].
func New() *Registry {
	return &Registry{flags: newCategory(), options: newCategory()}
}

// Reset clears every recorded instance from every registered flag and
// option, without unregistering any of them. It is used to make a parser
// safe to reuse across an independent command line.
func (r *Registry) Reset() {
	for _, e := range r.flags.longForm {
		e.instances = nil
	}
	for _, e := range r.options.longForm {
		e.instances = nil
	}
}

func isAlnumByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// add validates and inserts a new entry into own, rejecting collisions
// against both own and other (the sibling category: options when own
// is flags, and vice versa).
func add(own, other *category, long string, short byte) (*Entry, error) {
	if long == "" {
		return nil, ErrEmptyLongForm{}
	}
	for i := 0; i < len(long); i++ {
		if !isAlnumByte(long[i]) {
			return nil, ErrLongFormNotValid{LongForm: long}
		}
	}
	if short != 0 && !isAlnumByte(short) {
		return nil, ErrShortFormNotValid{ShortForm: short}
	}
	if _, ok := own.longForm[long]; ok {
		return nil, ErrIDAlreadyInUse{Name: long}
	}
	if _, ok := other.longForm[long]; ok {
		return nil, ErrIDAlreadyInUse{Name: long}
	}
	if short != 0 {
		if _, ok := own.shortForm[short]; ok {
			return nil, ErrIDAlreadyInUse{Name: string(short)}
		}
		if _, ok := other.shortForm[short]; ok {
			return nil, ErrIDAlreadyInUse{Name: string(short)}
		}
	}

	e := &Entry{LongForm: long, ShortForm: short}
	own.longForm[long] = e
	if short != 0 {
		own.shortForm[short] = e
	}
	return e, nil
}

// AddFlag registers a flag under the given long form, optionally
// aliased by a short-form byte (pass 0 for none).
func (r *Registry) AddFlag(long string, short byte) error {
	_, err := add(&r.flags, &r.options, long, short)
	return err
}

// AddOption registers an option under the given long form, optionally
// aliased by a short-form byte (pass 0 for none).
func (r *Registry) AddOption(long string, short byte) error {
	_, err := add(&r.options, &r.flags, long, short)
	return err
}

// FlagByLong returns the flag registered under the given long form, if
// any.
func (r *Registry) FlagByLong(long string) (*Entry, bool) {
	e, ok := r.flags.longForm[long]
	return e, ok
}

// FlagByShort returns the flag registered under the given short form,
// if any.
func (r *Registry) FlagByShort(short byte) (*Entry, bool) {
	e, ok := r.flags.shortForm[short]
	return e, ok
}

// OptionByLong returns the option registered under the given long
// form, if any.
func (r *Registry) OptionByLong(long string) (*Entry, bool) {
	e, ok := r.options.longForm[long]
	return e, ok
}

// OptionByShort returns the option registered under the given short
// form, if any.
func (r *Registry) OptionByShort(short byte) (*Entry, bool) {
	e, ok := r.options.shortForm[short]
	return e, ok
}

// FlagCount returns how many times the flag registered under long has
// occurred, or 0 if long is not a registered flag.
func (r *Registry) FlagCount(long string) int {
	if e, ok := r.FlagByLong(long); ok {
		return e.Count()
	}
	return 0
}

// OptionCount returns how many times the option registered under long
// has occurred, or 0 if long is not a registered option.
func (r *Registry) OptionCount(long string) int {
	if e, ok := r.OptionByLong(long); ok {
		return e.Count()
	}
	return 0
}

// FlagInstance returns the index-th occurrence of the flag registered
// under long. It reports [ErrLongFormNotRegistered] if long is not a
// registered flag, and forwards [ErrInstanceIndexNotValid] from the
// underlying entry otherwise.
func (r *Registry) FlagInstance(long string, index int) (ArgInstance, error) {
	e, ok := r.FlagByLong(long)
	if !ok {
		return ArgInstance{}, ErrLongFormNotRegistered{LongForm: long}
	}
	return e.Instance(index)
}

// OptionInstance returns the index-th occurrence of the option
// registered under long. It reports [ErrLongFormNotRegistered] if long
// is not a registered option, and forwards [ErrInstanceIndexNotValid]
// from the underlying entry otherwise.
func (r *Registry) OptionInstance(long string, index int) (ArgInstance, error) {
	e, ok := r.OptionByLong(long)
	if !ok {
		return ArgInstance{}, ErrLongFormNotRegistered{LongForm: long}
	}
	return e.Instance(index)
}

// OptionValues returns every value recorded against the option
// registered under long, in occurrence order. An unregistered long
// form yields a nil slice rather than an error: this mirrors the
// aggregate-read policy used for FlagCount/OptionCount, letting callers
// query a name they are not sure was declared without an error check.
func (r *Registry) OptionValues(long string) []string {
	e, ok := r.OptionByLong(long)
	if !ok {
		return nil
	}
	out := make([]string, len(e.instances))
	for i, inst := range e.instances {
		out[i] = inst.Value
	}
	return out
}
