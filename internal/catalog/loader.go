// Package catalog loads restaurant fixtures from files.
package catalog

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tasteplaces/tasteplaces/internal/models"
	"gopkg.in/yaml.v3"
)

var ErrEmptyCatalog = errors.New("catalog contains no restaurants")

// document is the on-disk layout: either a bare list of restaurants or
// a mapping with a "restaurants" key.
type document struct {
	Restaurants []models.Restaurant `yaml:"restaurants"`
}

// LoadFile reads and validates a catalog file. Files ending in .gz are decompressed.
// YAML and JSON are both accepted.
func LoadFile(path string) ([]models.Restaurant, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gzReader, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader for %s: %w", path, err)
		}
		defer gzReader.Close()
		r = gzReader
	}

	restaurants, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return restaurants, nil
}

// Parse decodes a catalog document and validates it. Record order is preserved.
func Parse(r io.Reader) ([]models.Restaurant, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading catalog: %w", err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(root.Content) == 0 {
		return nil, ErrEmptyCatalog
	}

	var restaurants []models.Restaurant
	switch root.Content[0].Kind {
	case yaml.SequenceNode:
		if err := root.Content[0].Decode(&restaurants); err != nil {
			return nil, fmt.Errorf("failed to decode restaurants: %w", err)
		}
	case yaml.MappingNode:
		var doc document
		if err := root.Content[0].Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode restaurants: %w", err)
		}
		restaurants = doc.Restaurants
	default:
		return nil, fmt.Errorf("failed to parse catalog: unexpected top-level %s", describeKind(root.Content[0].Kind))
	}

	if len(restaurants) == 0 {
		return nil, ErrEmptyCatalog
	}
	if err := models.ValidateCatalog(restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

func describeKind(k yaml.Kind) string {
	switch k {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "node"
	}
}
