// File: codeOverFlow/parg/decode.go
package parg

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Scan decodes the resolved argument values into the target struct or
// map after a parse. The target must be a non-nil pointer. Struct fields
// map to argument names via the "arg" tag, falling back to the field
// name. Value-taking arguments contribute their run value, or their
// default when the flag was not provided; presence-only flags contribute
// whether they were seen. Arguments with neither value nor default are
// omitted, leaving the corresponding target field untouched.
func (c *CLI) Scan(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("target of Scan must be a non-nil pointer, got %T", target)
	}

	values := make(map[string]any, len(c.args))
	for name, arg := range c.args {
		if !arg.hasValue {
			values[name] = arg.seen
			continue
		}
		switch {
		case arg.value != nil:
			values[name] = arg.value
		case arg.defaultValue != nil:
			values[name] = arg.defaultValue
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "arg",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}
	if err := decoder.Decode(values); err != nil {
		return fmt.Errorf("failed to scan arguments into %T: %w", target, err)
	}

	return nil
}
