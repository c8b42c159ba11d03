// Copyright AfriWiki contributors, 2026. All rights reserved.

package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

const (
	countryPrefix = "/pays/"
	sectorPrefix  = "/secteurs/"
	termPrefix    = "/glossaire/"
)

//go:embed reference.yaml
var embeddedReference []byte

// Country is a country name, its ISO 3166-1 alpha-2 code and the demonym
// forms that also link to the country page.
type Country struct {
	Name     string   `yaml:"name"`
	Code     string   `yaml:"code"`
	Demonyms []string `yaml:"demonyms"`
}

// Term is a sector or glossary entry.
type Term struct {
	Name string `yaml:"name"`
	Slug string `yaml:"slug"`
}

// Reference holds the static reference lists.
type Reference struct {
	Countries []Country `yaml:"countries"`
	Sectors   []Term    `yaml:"sectors"`
	Terms     []Term    `yaml:"terms"`
}

// LoadReference parses reference data from path, or the embedded data when
// path is empty.
func LoadReference(path string) (*Reference, error) {
	data := embeddedReference
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading reference file: %w", err)
		}
	}
	return ParseReference(data)
}

// ParseReference decodes reference YAML and checks every entry has a name
// and a path segment.
func ParseReference(data []byte) (*Reference, error) {
	var ref Reference
	if err := yaml.Unmarshal(data, &ref); err != nil {
		return nil, fmt.Errorf("parsing reference data: %w", err)
	}
	for i, c := range ref.Countries {
		if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Code) == "" {
			return nil, fmt.Errorf("country %d: name and code are required", i)
		}
	}
	for i, t := range append(append([]Term(nil), ref.Sectors...), ref.Terms...) {
		if strings.TrimSpace(t.Name) == "" || strings.TrimSpace(t.Slug) == "" {
			return nil, fmt.Errorf("term %d: name and slug are required", i)
		}
	}
	return &ref, nil
}

// Entities flattens the reference lists in file order: countries with
// their demonyms, then sectors, then glossary terms.
func (r *Reference) Entities() []LinkableEntity {
	var out []LinkableEntity
	for _, c := range r.Countries {
		path := countryPrefix + strings.ToLower(c.Code)
		out = append(out, LinkableEntity{Name: c.Name, TargetPath: path, Category: CategoryPlace})
		for _, d := range c.Demonyms {
			out = append(out, LinkableEntity{Name: d, TargetPath: path, Category: CategoryPlace})
		}
	}
	for _, s := range r.Sectors {
		out = append(out, LinkableEntity{Name: s.Name, TargetPath: sectorPrefix + s.Slug, Category: CategorySector})
	}
	for _, t := range r.Terms {
		out = append(out, LinkableEntity{Name: t.Name, TargetPath: termPrefix + t.Slug, Category: CategoryTerm})
	}
	return out
}
