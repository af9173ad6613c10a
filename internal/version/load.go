package version

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a version descriptor file.
// Files ending in .json use the camelCase JSON field names; anything else is
// decoded as YAML.
func Load(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading descriptor %s: %w", path, err)
	}

	var d *Descriptor
	if strings.EqualFold(filepath.Ext(path), ".json") {
		d, err = ParseJSON(data)
	} else {
		d, err = Parse(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing descriptor %s: %w", path, err)
	}
	return d, nil
}

// Parse decodes and validates YAML descriptor content.
func Parse(data []byte) (*Descriptor, error) {
	var d Descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return finish(&d)
}

// ParseJSON decodes and validates JSON descriptor content.
func ParseJSON(data []byte) (*Descriptor, error) {
	var d Descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return finish(&d)
}

func finish(d *Descriptor) (*Descriptor, error) {
	if errs := Validate(d); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	if d.Jar == "" {
		d.Jar = d.ID
	}
	return d, nil
}

// ValidationError holds multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("descriptor validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// Validate checks a Descriptor for semantic correctness.
// Returns a list of validation error messages (empty if valid).
func Validate(d *Descriptor) []string {
	var errs []string

	if d.ID == "" {
		errs = append(errs, "'id' is required")
	}

	for i, lib := range d.Libraries {
		if lib.Name == "" {
			errs = append(errs, fmt.Sprintf("library[%d]: 'name' is required", i))
		}
	}

	return errs
}
