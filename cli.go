package parg

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"
	"strings"
)

// CLI owns a name-keyed set of argument declarations and implements the
// parse pass over a token stream. Validation errors and usage output
// enumerate arguments in name order. A CLI may be parsed repeatedly;
// each call fully resets the per-run state first.
type CLI struct {
	args  map[string]*Arg
	names []string // keys of args, sorted

	appName        string
	appDescription string
	output         io.Writer
}

// New builds a CLI over a finalized argument list. When two arguments
// share a name the last one wins; use the Builder for strict duplicate
// rejection.
func New(args ...*Arg) *CLI {
	c := &CLI{
		args:   make(map[string]*Arg, len(args)),
		output: os.Stdout,
	}
	for _, a := range args {
		c.args[a.name] = a
	}
	c.names = make([]string, 0, len(c.args))
	for name := range c.args {
		c.names = append(c.names, name)
	}
	sort.Strings(c.names)
	return c
}

// SetInfo sets the application name and description rendered in usage
// output.
func (c *CLI) SetInfo(appName, description string) {
	c.appName = appName
	c.appDescription = description
}

// SetOutput sets the writer usage is printed to when --help is
// encountered. The default is os.Stdout.
func (c *CLI) SetOutput(w io.Writer) {
	c.output = w
}

// Parse walks the process arguments (os.Args without the program name),
// populates the matched arguments, and validates required flags and
// defaults. It returns ErrHelp after printing usage if --help appears
// anywhere in the stream.
func (c *CLI) Parse() error {
	return c.ParseTokens(os.Args[1:])
}

// ParseTokens runs the same parse pass over a caller-supplied token
// slice, e.g. a sub-range after a leading subcommand name.
func (c *CLI) ParseTokens(tokens []string) error {
	c.reset()

	pending := ""
	consuming := false
	for _, token := range tokens {
		if consuming {
			// A token consumed as a value is never also tested as a
			// new flag marker.
			consuming = false
			if err := c.readValue(token, pending); err != nil {
				return err
			}
			continue
		}

		if !strings.HasPrefix(token, "--") || len(token) < 3 {
			continue
		}
		name := token[2:]
		if strings.EqualFold(name, "help") {
			fmt.Fprint(c.output, c.Usage())
			return ErrHelp
		}
		arg, ok := c.args[name]
		if !ok {
			// Unknown flags are tolerated and consume nothing.
			continue
		}
		arg.seen = true
		if arg.hasValue {
			pending = name
			consuming = true
		} else {
			arg.value = true
		}
	}

	return c.checkArgs()
}

// Exists reports whether the named flag appeared in the most recent
// parse. Unknown names return false rather than an error.
func (c *CLI) Exists(name string) bool {
	arg, ok := c.args[name]
	return ok && arg.seen
}

// Get retrieves the value of a named argument as type T. The requested
// type must match the argument's declared kind exactly; the check runs
// before value resolution, so a mismatch is reported even when no value
// was set. Resolution falls back to the default when the flag was not
// provided.
func Get[T any](c *CLI, name string) (T, error) {
	var zero T
	arg, ok := c.args[name]
	if !ok {
		return zero, fmt.Errorf("argument --%s: %w", name, ErrUnknownArgument)
	}
	if !arg.hasValue {
		return zero, fmt.Errorf("argument --%s: %w", name, ErrNotValueTaking)
	}
	if reflect.TypeOf(zero) != arg.kind.goType() {
		return zero, fmt.Errorf("argument --%s: requested %T but the declared kind is %s: %w",
			name, zero, arg.kind, ErrTypeMismatch)
	}
	val := arg.value
	if val == nil {
		if arg.defaultValue == nil {
			return zero, fmt.Errorf("argument --%s: %w", name, ErrNoValue)
		}
		val = arg.defaultValue
	}
	typed, ok := val.(T)
	if !ok {
		// Unreachable once the kind gate passed, kept as a safety net.
		return zero, fmt.Errorf("argument --%s holds %T, cannot return it as %T", name, val, zero)
	}
	return typed, nil
}

// readValue converts the token for the pending flag name per its
// declared kind and stores it. Values for names that are not registered
// are dropped without error.
func (c *CLI) readValue(token, name string) error {
	arg, ok := c.args[name]
	if !ok {
		return nil
	}
	if !arg.hasValue {
		arg.value = true
		return nil
	}
	v, err := arg.kind.parse(token)
	if err != nil {
		return fmt.Errorf("argument value %q for --%s must be %s: %w", token, name, arg.kind, err)
	}
	arg.value = v
	return nil
}

// checkArgs runs the post-parse validation pass in name order: required
// flags must have been seen or carry a default, and a seen value-taking
// flag must have captured a value or fall back to its default.
func (c *CLI) checkArgs() error {
	for _, name := range c.names {
		arg := c.args[name]
		if !arg.seen {
			if !arg.HasDefault() {
				if arg.required {
					return fmt.Errorf("argument --%s: %w", name, ErrRequired)
				}
			} else if err := arg.acceptDefault(); err != nil {
				return err
			}
		}

		if arg.seen && arg.hasValue && arg.value == nil {
			if !arg.HasDefault() {
				return fmt.Errorf("argument --%s: %w", name, ErrMissingValue)
			}
			if err := arg.acceptDefault(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *CLI) reset() {
	for _, arg := range c.args {
		arg.reset()
	}
}
