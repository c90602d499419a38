package exemption

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk layout of an exemption registry.
//
//	exemptions:
//	  - kind: type
//	    identifier: "*time.Location"
//	    reason: zone data is never mutated after load
//	  - kind: package
//	    identifier: "golang.org/x/**"
type File struct {
	Exemptions []Entry `yaml:"exemptions"`
}

// Entry is a single registry entry.
type Entry struct {
	Kind       string `yaml:"kind"`
	Identifier string `yaml:"identifier"`
	// Reason documents why the entry is trusted. It is not interpreted.
	Reason string `yaml:"reason,omitempty"`
}

// LoadFile reads a YAML exemption registry from path.
func LoadFile(path string) ([]Exemption, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open exemption file: %w", err)
	}
	defer func() { _ = f.Close() }()

	exemptions, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return exemptions, nil
}

// Decode reads a YAML exemption registry. Unknown fields are rejected.
// An empty document yields no exemptions.
func Decode(r io.Reader) ([]Exemption, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode exemptions: %w", err)
	}

	exemptions := make([]Exemption, 0, len(file.Exemptions))
	for i, entry := range file.Exemptions {
		kind, err := ParseKind(entry.Kind)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}

		e := New(kind, entry.Identifier)
		if err := e.validate(); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}

		exemptions = append(exemptions, e)
	}

	return exemptions, nil
}
