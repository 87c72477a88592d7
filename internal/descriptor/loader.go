package descriptor

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"chartref/internal/chart"
)

// LoadFile loads and parses a descriptor file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML (or JSON) data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse descriptor: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// Load reads, validates and builds the binding described by the file at path.
func Load(path string) (chart.Binding, error) {
	f, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	return Build(f)
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	if f.Style == "" {
		f.Style = chart.StyleDefault.String()
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal descriptor: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write descriptor %s: %w", path, err)
	}

	return nil
}
