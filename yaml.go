package gltut

import (
	"bytes"
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadYAML decodes the YAML file at path over v, which should already hold
// defaults. Unknown fields are rejected. An empty path leaves v untouched.
func LoadYAML(path string, v any) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return &LoadError{Kind: "config", Path: path, Err: err}
	}
	if err := DecodeYAML(data, v); err != nil {
		return &LoadError{Kind: "config", Path: path, Err: err}
	}
	Logger.Debug("config loaded", "path", path)
	return nil
}

// DecodeYAML decodes data over v with unknown fields rejected.
// Empty input is not an error.
func DecodeYAML(data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
