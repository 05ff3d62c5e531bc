package deck

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// EncodeYAML writes the deck descriptor table to w.
func (d *Deck) EncodeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("failed to encode deck: %w", err)
	}
	return enc.Close()
}

// YAML returns the encoded descriptor table.
func (d *Deck) YAML() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.EncodeYAML(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// LoadYAML decodes and validates a deck descriptor. Unknown keys are rejected.
func LoadYAML(r io.Reader) (*Deck, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var d Deck
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("failed to decode deck: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid deck: %w", err)
	}
	return &d, nil
}

// LoadFile reads a deck descriptor from path.
func LoadFile(path string) (*Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open deck file: %w", err)
	}
	defer f.Close()
	return LoadYAML(f)
}
