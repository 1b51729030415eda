package mapping

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"inventory-converter/internal/match"
)

// DialectFile is the YAML form of a dialect.
type DialectFile struct {
	// Version of the dialect schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Name identifies the dialect.
	Name string `yaml:"name,omitempty"`

	// Extends names a built-in dialect whose settings and synonyms are the
	// starting point.
	Extends string `yaml:"extends,omitempty"`

	// Sheet to read; empty auto-detects.
	Sheet string `yaml:"sheet,omitempty"`

	// HeaderRow is the 1-based header row. Zero keeps the base dialect's
	// header discovery.
	HeaderRow int `yaml:"header_row,omitempty"`

	// Identity is the canonical field every kept row must carry.
	Identity string `yaml:"identity,omitempty"`

	// Options names the option rule set: generic or template.
	Options OptionRules `yaml:"options,omitempty"`

	// Synonyms maps canonical fields to header names, in priority order.
	// A set listed here replaces the base dialect's set for that field.
	Synonyms SynonymTable `yaml:"synonyms,omitempty"`
}

// StringOrArray accepts either a single string or a list of strings.
type StringOrArray []string

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

// SynonymEntry is one canonical field with its header names.
type SynonymEntry struct {
	Canonical string
	Headers   StringOrArray
}

// SynonymTable is an ordered YAML mapping of canonical field -> headers.
type SynonymTable []SynonymEntry

// UnmarshalYAML decodes a mapping node while keeping key order.
func (t *SynonymTable) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("synonyms: expected mapping, got %v", node.Kind)
	}

	out := make(SynonymTable, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		var entry SynonymEntry

		if err := node.Content[i].Decode(&entry.Canonical); err != nil {
			return fmt.Errorf("synonyms: line %d: %w", node.Content[i].Line, err)
		}

		if err := node.Content[i+1].Decode(&entry.Headers); err != nil {
			return fmt.Errorf("synonyms.%s: line %d: %w", entry.Canonical, node.Content[i+1].Line, err)
		}

		out = append(out, entry)
	}

	*t = out

	return nil
}

// MarshalYAML encodes the table as a mapping node in table order.
func (t SynonymTable) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	for _, entry := range t {
		var value yaml.Node
		if err := value.Encode(entry.Headers); err != nil {
			return nil, err
		}

		if value.Kind == yaml.SequenceNode {
			value.Style = yaml.FlowStyle
		}

		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: entry.Canonical},
			&value,
		)
	}

	return node, nil
}

// Synonyms converts the table into a match.Synonyms, slugifying every header.
func (t SynonymTable) Synonyms() match.Synonyms {
	out := make(match.Synonyms, 0, len(t))
	for _, entry := range t {
		out = append(out, match.SynonymSet{
			Canonical: entry.Canonical,
			Slugs:     match.SlugifyAll(entry.Headers),
		})
	}

	return out
}

// tableFromSynonyms is the inverse of SynonymTable.Synonyms.
func tableFromSynonyms(syn match.Synonyms) SynonymTable {
	out := make(SynonymTable, 0, len(syn))
	for _, set := range syn {
		out = append(out, SynonymEntry{Canonical: set.Canonical, Headers: slices.Clone(set.Slugs)})
	}

	return out
}
