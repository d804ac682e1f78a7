package listing

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed sample.yaml
var sampleCatalog []byte

type catalogFile struct {
	Listings []Listing `yaml:"listings"`
}

// Parse decodes a YAML catalog and normalizes its listings.
func Parse(data []byte) ([]Listing, error) {
	var raw catalogFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return Normalize(raw.Listings), nil
}

// LoadFile reads and parses the catalog at path.
func LoadFile(path string) ([]Listing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("catalog %s: %w", path, err)
		}
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Sample returns the built-in demo catalog.
func Sample() []Listing {
	out, err := Parse(sampleCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded sample catalog: %v", err))
	}
	return out
}
