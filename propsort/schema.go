package propsort

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
)

// FileSchema returns the JSON Schema of [File], for editor validation of
// config files.
func FileSchema() (*jsonschema.Schema, error) {
	s, err := jsonschema.For[File](nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	s.Schema = "http://json-schema.org/draft-07/schema#"
	s.Title = "propsort config"

	groups := s.Properties["groups"]
	if groups != nil && groups.AdditionalProperties != nil {
		if kind := groups.AdditionalProperties.Properties["kind"]; kind != nil {
			for _, k := range Kinds() {
				kind.Enum = append(kind.Enum, string(k))
			}
		}
	}

	return s, nil
}
