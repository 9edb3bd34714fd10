package component

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is a named set of condition specs as persisted on disk.
type File struct {
	Name       string `json:"name"`
	Conditions []Spec `json:"conditions"`
}

// Loader reads condition spec files.
type Loader struct {
	// Validate enables shape validation of loaded specs.
	Validate bool
}

// NewLoader creates a loader with validation enabled.
func NewLoader() *Loader {
	return &Loader{Validate: true}
}

// LoaderOption configures the loader.
type LoaderOption func(*Loader)

// WithValidation enables or disables spec validation.
func WithValidation(enabled bool) LoaderOption {
	return func(l *Loader) {
		l.Validate = enabled
	}
}

// NewLoaderWithOptions creates a loader with the specified options.
func NewLoaderWithOptions(opts ...LoaderOption) *Loader {
	l := NewLoader()
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadFile loads a condition spec file. The format is determined by the
// file extension: .yaml/.yml or .json.
func (l *Loader) LoadFile(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSpecNotFound, path)
		}
		return nil, fmt.Errorf("failed to access spec file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrInvalidFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec file: %w", err)
	}

	var file *File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		file, err = parseYAML(data)
	case ".json":
		file, err = parseJSON(data)
	default:
		return nil, fmt.Errorf("%w: unsupported extension %q", ErrInvalidFormat, ext)
	}
	if err != nil {
		return nil, err
	}

	if l.Validate {
		if err := validateFile(file); err != nil {
			return nil, err
		}
	}
	return file, nil
}

func parseJSON(data []byte) (*File, error) {
	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return &file, nil
}

// yamlFile mirrors File for YAML decoding: yaml cannot decode into
// json.RawMessage, so configs pass through a generic map first.
type yamlFile struct {
	Name       string `yaml:"name"`
	Conditions []struct {
		Provider string         `yaml:"provider"`
		Config   map[string]any `yaml:"config"`
	} `yaml:"conditions"`
}

func parseYAML(data []byte) (*File, error) {
	var raw yamlFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	file := &File{Name: raw.Name, Conditions: make([]Spec, 0, len(raw.Conditions))}
	for _, c := range raw.Conditions {
		spec := Spec{Provider: c.Provider}
		if c.Config != nil {
			config, err := json.Marshal(c.Config)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
			}
			spec.Config = config
		}
		file.Conditions = append(file.Conditions, spec)
	}
	return file, nil
}

func validateFile(file *File) error {
	if len(file.Conditions) == 0 {
		return fmt.Errorf("%w: no conditions defined", ErrInvalidSpec)
	}
	for i, spec := range file.Conditions {
		if spec.Provider == "" {
			return fmt.Errorf("%w: condition %d has no provider", ErrInvalidSpec, i)
		}
	}
	return nil
}
