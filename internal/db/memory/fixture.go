package memory

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/beautydex/internal/domain/product"
)

// Fixture is the on-disk catalog seed format.
type Fixture struct {
	Products []map[string]string `yaml:"products"`
}

// LoadFile reads a YAML fixture and returns normalized product rows.
// A rating_score that is absent, unparseable, negative or not finite becomes null.
func LoadFile(path string) ([]map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML fixture.
func Parse(data []byte) ([]map[string]string, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	seen := make(map[string]bool, len(f.Products))
	rows := make([]map[string]string, 0, len(f.Products))
	for i, raw := range f.Products {
		p, err := product.FromFields(raw)
		if err != nil {
			return nil, fmt.Errorf("product %d: %w", i, err)
		}
		if seen[p.ID()] {
			return nil, fmt.Errorf("product %d: duplicate %s %q", i, product.FieldID, p.ID())
		}
		seen[p.ID()] = true
		rows = append(rows, p.ToFields())
	}
	return rows, nil
}
