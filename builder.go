// File: codeOverFlow/parg/builder.go
package parg

import (
	"fmt"
	"reflect"
)

// Builder provides a fluent interface for assembling a CLI. Unlike New,
// Build rejects empty and duplicate argument names and verifies defaults
// against their declared kinds up front.
type Builder struct {
	args           []*Arg
	appName        string
	appDescription string
}

// NewBuilder creates a new CLI builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithInfo sets the application name and description for usage output.
func (b *Builder) WithInfo(appName, description string) *Builder {
	b.appName = appName
	b.appDescription = description
	return b
}

// WithArgs appends pre-built argument declarations.
func (b *Builder) WithArgs(args ...*Arg) *Builder {
	b.args = append(b.args, args...)
	return b
}

// WithValue appends a value-taking argument of the given kind.
func (b *Builder) WithValue(name string, kind Kind, required bool) *Builder {
	b.args = append(b.args, WithValue(name, kind, required))
	return b
}

// WithDefaultValue appends a value-taking argument with a default.
func (b *Builder) WithDefaultValue(name string, kind Kind, def any, required bool) *Builder {
	b.args = append(b.args, WithDefaultValue(name, kind, def, required))
	return b
}

// WithFlag appends a presence-only flag.
func (b *Builder) WithFlag(name string, required bool) *Builder {
	b.args = append(b.args, WithoutValue(name, required))
	return b
}

// Describe sets the usage description of the most recently added
// argument. It is a no-op when no argument has been added yet.
func (b *Builder) Describe(text string) *Builder {
	if len(b.args) > 0 {
		b.args[len(b.args)-1].SetDescription(text)
	}
	return b
}

// Build validates the accumulated declarations and creates the CLI.
func (b *Builder) Build() (*CLI, error) {
	seen := make(map[string]bool, len(b.args))
	for _, a := range b.args {
		if a.name == "" {
			return nil, fmt.Errorf("argument name cannot be empty")
		}
		if seen[a.name] {
			return nil, fmt.Errorf("argument --%s is declared twice", a.name)
		}
		seen[a.name] = true

		if !a.hasValue {
			continue
		}
		if !a.kind.valid() {
			return nil, fmt.Errorf("argument --%s has an invalid kind", a.name)
		}
		if a.defaultValue != nil && reflect.TypeOf(a.defaultValue) != a.kind.goType() {
			return nil, fmt.Errorf("argument --%s: default is %T but the declared kind is %s: %w",
				a.name, a.defaultValue, a.kind, ErrDefaultMismatch)
		}
	}

	cli := New(b.args...)
	cli.SetInfo(b.appName, b.appDescription)
	return cli, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *CLI {
	cli, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("parg build failed: %v", err))
	}
	return cli
}
