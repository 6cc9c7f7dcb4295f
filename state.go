package icicle

import (
	"strconv"
	"strings"
	"time"
)

// state carries the outcome of one Parse call from the root to Run: the
// descent path, the bound arguments, and whether help was requested.
type state struct {
	// path holds the commands walked during descent, root first. The last
	// element is the resolved command.
	path []*Command
	args *Arguments
	help bool
}

func (s *state) resolved() *Command {
	return s.path[len(s.path)-1]
}

// Arguments holds the options and positional tokens bound for one invocation
// of the resolved command. Option values are kept as the raw strings from the
// command line; nothing is coerced until a typed getter asks for it, so the
// same Arguments can be queried at more than one type.
//
// An Arguments value is created by [Parse] for exactly one dispatch and
// should not be retained after the action returns.
type Arguments struct {
	opts map[string]string
	pos  []string
}

func newArguments() *Arguments {
	return &Arguments{opts: make(map[string]string)}
}

// Parseable is the set of types a raw option value can be coerced into. The
// conversion is the standard library's string-to-value conversion for each
// type.
type Parseable interface {
	string | bool | int | int64 | uint | uint64 | float64 | time.Duration
}

// GetOr looks up an option by its short or long name and parses the raw value
// into T. It returns [ErrOptionNotSet] when the option was absent and a
// [CoercionError] when the value does not parse. Whether absence is fatal is
// the caller's call; a typical action resolves it with [GetOrDefault] or
// fails its own way:
//
//	x, err := icicle.GetOr[int](args, "x", "x")
func GetOr[T Parseable](a *Arguments, short, long string) (T, error) {
	var zero T
	raw, name, ok := a.lookup(short, long)
	if !ok {
		return zero, ErrOptionNotSet
	}
	v, err := parseValue[T](raw)
	if err != nil {
		return zero, &CoercionError{Name: name, Value: raw, Err: err}
	}
	return v, nil
}

// GetOrDefault is [GetOr] with a fallback: the fallback is returned when the
// option is absent or its value does not parse.
func GetOrDefault[T Parseable](a *Arguments, short, long string, fallback T) T {
	v, err := GetOr[T](a, short, long)
	if err != nil {
		return fallback
	}
	return v
}

// Lookup returns the raw string value for the option, looked up by short then
// long name. Leading dashes on either name are ignored.
func (a *Arguments) Lookup(short, long string) (string, bool) {
	raw, _, ok := a.lookup(short, long)
	return raw, ok
}

// Has reports whether the option was present under either name.
func (a *Arguments) Has(short, long string) bool {
	_, _, ok := a.lookup(short, long)
	return ok
}

func (a *Arguments) lookup(short, long string) (raw, name string, ok bool) {
	for _, name := range []string{trimDashes(short), trimDashes(long)} {
		if name == "" {
			continue
		}
		if raw, ok := a.opts[name]; ok {
			return raw, name, true
		}
	}
	return "", "", false
}

// Len reports the number of positional tokens.
func (a *Arguments) Len() int { return len(a.pos) }

// At returns the positional token at index i, in input order.
func (a *Arguments) At(i int) (string, bool) {
	if i < 0 || i >= len(a.pos) {
		return "", false
	}
	return a.pos[i], true
}

// Positionals returns the positional tokens in input order. The returned
// slice is the Arguments' own backing slice; treat it as read-only.
func (a *Arguments) Positionals() []string { return a.pos }

// Join concatenates the positional tokens with the separator, for echoing
// input back to the user.
func (a *Arguments) Join(sep string) string {
	return strings.Join(a.pos, sep)
}

func (a *Arguments) set(opt Option, value string) {
	if opt.Short != "" {
		a.opts[opt.Short] = value
	}
	if opt.Long != "" {
		a.opts[opt.Long] = value
	}
}

func trimDashes(name string) string {
	return strings.TrimLeft(name, "-")
}

func parseValue[T Parseable](raw string) (T, error) {
	var v T
	var err error
	switch p := any(&v).(type) {
	case *string:
		*p = raw
	case *bool:
		*p, err = strconv.ParseBool(raw)
	case *int:
		*p, err = strconv.Atoi(raw)
	case *int64:
		*p, err = strconv.ParseInt(raw, 10, 64)
	case *uint:
		var u uint64
		u, err = strconv.ParseUint(raw, 10, 0)
		*p = uint(u)
	case *uint64:
		*p, err = strconv.ParseUint(raw, 10, 64)
	case *float64:
		*p, err = strconv.ParseFloat(raw, 64)
	case *time.Duration:
		*p, err = time.ParseDuration(raw)
	}
	return v, err
}
