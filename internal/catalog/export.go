// Copyright AfriWiki contributors, 2026. All rights reserved.

package catalog

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

// WriteYAML writes entities as a YAML sequence.
func WriteYAML(w io.Writer, entities []LinkableEntity) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(entities); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}

// WriteJSON writes entities as an indented JSON array.
func WriteJSON(w io.Writer, entities []LinkableEntity) error {
	if entities == nil {
		entities = []LinkableEntity{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entities); err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return nil
}
