// Package catalog loads the catalog snapshot from the storefront JSON dump.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	domcat "github.com/justthetip/yoto-discovery/internal/domain/catalog"
)

// Load reads and parses a catalog dump file.
func Load(path string) ([]domcat.Item, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	items, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return items, nil
}

// Parse converts raw feed JSON into domain items. Individual malformed
// records are mapped defensively (absent fields become zero values) rather
// than failing the load; only an unreadable envelope is an error.
func Parse(data []byte) ([]domcat.Item, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode feed envelope: %w", err)
	}

	items := make([]domcat.Item, 0, len(env.Data.Products))
	for i := range env.Data.Products {
		p := &env.Data.Products[i]
		if p.ID == "" && p.Title == "" {
			continue
		}
		items = append(items, toDomain(p))
	}
	return items, nil
}

func toDomain(p *productDTO) domcat.Item {
	item := domcat.Item{
		ID:          string(p.ID),
		Title:       p.Title,
		Author:      p.Author,
		Description: p.description(),
		Price:       p.price(),
		Duration:    p.Runtime,
		Categories:  p.ContentType,
		Available:   p.AvailableForSale,
		New:         p.Flag == newToCatalogFlag,
	}
	if min, max, ok := p.ageRange(); ok {
		item.Ages = &domcat.AgeRange{Min: min, Max: max}
	}
	return item
}
