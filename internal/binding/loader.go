package binding

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefaultLibrary is used for manifests that do not name their library.
const DefaultLibrary = "main"

// LoadFile loads and parses a manifest, TOML for ".toml" files and YAML otherwise.
func LoadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ParseTOML(data)
	}

	return Parse(data)
}

// Parse parses YAML data into a Manifest.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	applyDefaults(&m)

	return &m, nil
}

// ParseTOML parses TOML data into a Manifest.
func ParseTOML(data []byte) (*Manifest, error) {
	var m Manifest

	md, err := toml.Decode(string(data), &m)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest TOML: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("failed to parse manifest TOML: unknown key %q", undecoded[0].String())
	}

	applyDefaults(&m)

	return &m, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(m *Manifest) {
	if m.Version == "" {
		m.Version = "1"
	}

	if m.Library == "" {
		m.Library = DefaultLibrary
	}

	for i := range m.Variables {
		v := &m.Variables[i]
		v.Name = strings.TrimSpace(v.Name)
		v.Type = strings.TrimSpace(v.Type)
	}
}

// Marshal serializes a Manifest to YAML.
func Marshal(m *Manifest) ([]byte, error) {
	return yaml.Marshal(m)
}

// MarshalTOML serializes a Manifest to TOML.
func MarshalTOML(m *Manifest) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(m); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// WriteFile writes a Manifest to the given path, TOML for ".toml" files and YAML otherwise.
func WriteFile(m *Manifest, path string) error {
	marshal := Marshal
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		marshal = MarshalTOML
	}

	data, err := marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}

	return nil
}
