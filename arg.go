package parg

import (
	"fmt"
	"reflect"
	"strings"
)

// Arg declares a single named flag: its value kind (if any), whether it
// is required, and an optional default. The declaration is immutable
// after construction except for the description. The per-run value and
// seen state belong to the CLI that holds the argument and are fully
// reset at the start of every parse.
type Arg struct {
	name         string
	kind         Kind
	hasValue     bool
	required     bool
	defaultValue any
	description  string

	// run-scoped state, owned by the CLI during Parse
	value any
	seen  bool
}

// WithValue declares a value-taking argument of the given kind with no
// default. A leading "--" in the name is stripped.
func WithValue(name string, kind Kind, required bool) *Arg {
	return &Arg{
		name:     strings.TrimPrefix(name, "--"),
		kind:     kind,
		hasValue: true,
		required: required,
	}
}

// WithDefaultValue declares a value-taking argument with a default used
// when the flag is not provided. The default's runtime type must match
// the kind's native Go type; a mismatch surfaces as ErrDefaultMismatch
// when the default is accepted after a parse.
func WithDefaultValue(name string, kind Kind, def any, required bool) *Arg {
	a := WithValue(name, kind, required)
	a.defaultValue = def
	return a
}

// WithoutValue declares a presence-only flag. It consumes no value
// token; use Exists to test whether it appeared.
func WithoutValue(name string, required bool) *Arg {
	return &Arg{
		name:     strings.TrimPrefix(name, "--"),
		required: required,
	}
}

// SetDescription sets the text shown for this argument in usage output.
func (a *Arg) SetDescription(text string) {
	a.description = text
}

// Name returns the argument name without the leading "--".
func (a *Arg) Name() string {
	return a.name
}

// HasDefault reports whether a default value was supplied at construction.
func (a *Arg) HasDefault() bool {
	return a.defaultValue != nil
}

// FormatValue renders the current value in the kind's native textual
// form. It returns an empty string when no value is set or when the
// argument takes no value.
func (a *Arg) FormatValue() string {
	if !a.hasValue || a.value == nil {
		return ""
	}
	return a.kind.format(a.value)
}

func (a *Arg) formatDefault() string {
	if !a.hasValue || a.defaultValue == nil {
		return ""
	}
	return a.kind.format(a.defaultValue)
}

// String renders the argument for debugging, "--name=value" for
// value-taking arguments and "--name" for presence flags.
func (a *Arg) String() string {
	if a.hasValue {
		return fmt.Sprintf("--%s=%s", a.name, a.FormatValue())
	}
	return "--" + a.name
}

// acceptDefault copies the default into the run value, re-validating its
// type against the declared kind first. The type check is defensive; the
// constructor contract already requires a matching default.
func (a *Arg) acceptDefault() error {
	if !a.hasValue {
		return fmt.Errorf("argument --%s has no value kind: %w", a.name, ErrNotValueTaking)
	}
	if a.defaultValue == nil {
		return fmt.Errorf("argument --%s has no default value", a.name)
	}
	if reflect.TypeOf(a.defaultValue) != a.kind.goType() {
		return fmt.Errorf("argument --%s: default is %T but the declared kind is %s: %w",
			a.name, a.defaultValue, a.kind, ErrDefaultMismatch)
	}
	a.value = a.defaultValue
	return nil
}

func (a *Arg) reset() {
	a.value = nil
	a.seen = false
}
