package propsort

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
)

// FileFormat is the syntax of a config file.
type FileFormat string

// Supported config file formats.
const (
	FileFormatYAML FileFormat = "yaml"
	FileFormatTOML FileFormat = "toml"
)

// File is the config file format.
//
//	groups:
//	  placeholder:
//	    kind: rule
//	    startsWith: "%"
//	order: ["@use", "$variable", placeholder, rule]
//	withRoot: true
type File struct {
	// Groups are added to [DefaultGroups], replacing those with the same
	// name.
	Groups Groups `json:"groups,omitempty" jsonschema:"groups added to or replacing the built-in ones" toml:"groups" yaml:"groups,omitempty"`
	// Order replaces [DefaultOrder] when set.
	Order []string `json:"order,omitempty" jsonschema:"group names in priority order" toml:"order" yaml:"order,omitempty"`
	// WithRoot also sorts top-level statements.
	WithRoot bool `json:"withRoot,omitempty" jsonschema:"also sort top-level statements" toml:"withRoot" yaml:"withRoot,omitempty"`
}

// FileFormatOf picks the format of path by extension. Anything that is
// not ".toml" is read as YAML.
func FileFormatOf(path string) FileFormat {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FileFormatTOML
	}

	return FileFormatYAML
}

// LoadFile reads and validates the config file at path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Config path from CLI flag is expected.
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadConfig, err)
	}

	f, err := ParseFile(data, FileFormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// ParseFile decodes and validates a config file. Unknown fields are
// rejected.
func ParseFile(data []byte, format FileFormat) (*File, error) {
	var f File

	switch format {
	case FileFormatYAML:
		if len(bytes.TrimSpace(data)) == 0 {
			break
		}

		err := yaml.UnmarshalWithOptions(data, &f, yaml.DisallowUnknownField())
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}

	case FileFormatTOML:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}

		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: unknown field %q", ErrInvalidConfig, undecoded[0].String())
		}

	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrInvalidConfig, format)
	}

	err := f.Validate()
	if err != nil {
		return nil, err
	}

	return &f, nil
}

// Validate checks group kinds and order entries.
func (f *File) Validate() error {
	err := f.Groups.Validate()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	for i, name := range f.Order {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: order[%d] is empty", ErrInvalidConfig, i)
		}
	}

	return nil
}

// Options converts f to [Sorter] options.
func (f *File) Options() []Option {
	var opts []Option

	if len(f.Groups) > 0 {
		opts = append(opts, WithGroups(f.Groups))
	}

	if len(f.Order) > 0 {
		opts = append(opts, WithOrder(f.Order...))
	}

	if f.WithRoot {
		opts = append(opts, WithRoot(true))
	}

	return opts
}
