package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads path, overlays it on Defaults and validates the result. An
// empty path returns the validated defaults.
func Load(path string) (Inputs, error) {
	if path == "" {
		in := Defaults()
		return in, in.Validate()
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Inputs{}, fmt.Errorf("%w: config file %s", ErrNotFound, path)
		}
		return Inputs{}, fmt.Errorf("read config %s: %w", path, err)
	}

	in, err := Parse(bytes.NewReader(b))
	if err != nil {
		return Inputs{}, fmt.Errorf("config %s: %w", path, err)
	}
	return in, nil
}

// Parse decodes YAML from r, overlays it on Defaults and validates it.
// Unknown keys are rejected.
func Parse(r io.Reader) (Inputs, error) {
	var dto inputsDTO

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
		return Inputs{}, fmt.Errorf("%w: decode yaml: %v", ErrInvalidConfig, err)
	}

	in := dto.apply(Defaults())
	if err := in.Validate(); err != nil {
		return Inputs{}, err
	}
	return in, nil
}
