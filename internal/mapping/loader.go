package mapping

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads, resolves and validates a YAML dialect file.
func LoadFile(path string) (*Dialect, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dialect file %s: %w", path, err)
	}

	df, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("dialect file %s: %w", path, err)
	}

	d, err := df.Dialect()
	if err != nil {
		return nil, fmt.Errorf("dialect file %s: %w", path, err)
	}

	if diags := Validate(d); diags.HasErrors() {
		return nil, fmt.Errorf("dialect file %s: %w", path, diags.Error())
	}

	return d, nil
}

// Parse parses YAML data into a DialectFile.
func Parse(data []byte) (*DialectFile, error) {
	var df DialectFile

	err := yaml.Unmarshal(data, &df)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dialect YAML: %w", err)
	}

	applyDefaults(&df)

	return &df, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(df *DialectFile) {
	if df.Version == "" {
		df.Version = "1"
	}

	if df.Name == "" {
		df.Name = "custom"
		if df.Extends != "" {
			df.Name = df.Extends + "-custom"
		}
	}
}

// Dialect resolves the file against its base dialect.
func (df *DialectFile) Dialect() (*Dialect, error) {
	d := &Dialect{Header: HeaderAuto, Options: OptionsGeneric}

	if df.Extends != "" {
		base, err := Builtin(df.Extends)
		if err != nil {
			return nil, err
		}

		d = base
	}

	d.Name = df.Name

	if df.Sheet != "" {
		d.Sheet = df.Sheet
	}

	if df.HeaderRow != 0 {
		d.Header = HeaderFixed
		d.HeaderRow = df.HeaderRow - 1
	}

	if df.Identity != "" {
		d.Identity = df.Identity
	}

	if df.Options != "" {
		d.Options = df.Options
	}

	d.Synonyms = d.Synonyms.Merge(df.Synonyms.Synonyms())

	return d, nil
}

// Export converts a dialect into its standalone YAML form.
func Export(d *Dialect) *DialectFile {
	df := &DialectFile{
		Version:  "1",
		Name:     d.Name,
		Sheet:    d.Sheet,
		Identity: d.Identity,
		Options:  d.Options,
		Synonyms: tableFromSynonyms(d.Synonyms),
	}

	if d.Header == HeaderFixed {
		df.HeaderRow = d.HeaderRow + 1
	}

	return df
}

// Marshal serializes a DialectFile to YAML.
func Marshal(df *DialectFile) ([]byte, error) {
	return yaml.Marshal(df)
}

// WriteFile writes a DialectFile to the given path.
func WriteFile(df *DialectFile, path string) error {
	data, err := Marshal(df)
	if err != nil {
		return fmt.Errorf("failed to marshal dialect: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write dialect file %s: %w", path, err)
	}

	return nil
}
