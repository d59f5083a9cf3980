package service

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

type catalogFile struct {
	Pairs []string `yaml:"pairs"`
}

// LoadCatalog returns the supported currency pairs in display order.
func LoadCatalog() ([]string, error) {
	return parseCatalog(catalogYAML)
}

func parseCatalog(data []byte) ([]string, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("invalid currency catalog: %w", err)
	}
	if len(f.Pairs) == 0 {
		return nil, errors.New("currency catalog is empty")
	}
	for _, p := range f.Pairs {
		if _, _, err := ParsePair(p); err != nil {
			return nil, fmt.Errorf("currency catalog: %q: %w", p, err)
		}
	}
	return f.Pairs, nil
}
