package parg

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// manifest mirrors a TOML document declaring a CLI:
//
//	name = "my_command"
//	description = "An example command"
//
//	[[argument]]
//	name = "threshold"
//	kind = "uint8"
//	required = true
//	description = "upper bound for the filter"
//
//	[[argument]]
//	name = "thread"
//	kind = "uint8"
//	default = 42
//
//	[[argument]]
//	name = "verbose"    # no kind: presence-only flag
//
// The manifest declares the flag set only; it never supplies flag values.
type manifest struct {
	Name        string        `toml:"name"`
	Description string        `toml:"description"`
	Arguments   []manifestArg `toml:"argument"`
}

type manifestArg struct {
	Name        string `toml:"name"`
	Kind        string `toml:"kind"`
	Required    bool   `toml:"required"`
	Default     any    `toml:"default"`
	Description string `toml:"description"`
}

// LoadManifest builds a CLI from a TOML manifest. Defaults are coerced
// to the declared kind, since TOML decodes every integer as int64.
func LoadManifest(data []byte) (*CLI, error) {
	var m manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse argument manifest: %w", err)
	}

	b := NewBuilder().WithInfo(m.Name, m.Description)
	for _, ma := range m.Arguments {
		if ma.Kind == "" {
			if ma.Default != nil {
				return nil, fmt.Errorf("argument --%s: a flag without a kind cannot carry a default", ma.Name)
			}
			b.WithFlag(ma.Name, ma.Required).Describe(ma.Description)
			continue
		}
		kind, err := ParseKind(ma.Kind)
		if err != nil {
			return nil, fmt.Errorf("argument --%s: %w", ma.Name, err)
		}
		if ma.Default == nil {
			b.WithValue(ma.Name, kind, ma.Required).Describe(ma.Description)
			continue
		}
		def, err := kind.coerce(ma.Default)
		if err != nil {
			return nil, fmt.Errorf("argument --%s: invalid default: %w", ma.Name, err)
		}
		b.WithDefaultValue(ma.Name, kind, def, ma.Required).Describe(ma.Description)
	}

	return b.Build()
}

// LoadManifestFile reads a TOML manifest from disk and builds the CLI.
func LoadManifestFile(path string) (*CLI, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read argument manifest '%s': %w", path, err)
	}
	cli, err := LoadManifest(data)
	if err != nil {
		return nil, fmt.Errorf("manifest '%s': %w", path, err)
	}
	return cli, nil
}
