// Package seed loads the sample catalog shipped with the binary into the
// products collection.
package seed

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/jananikuppan04-sys/Campus-Cart/internal/marketplace"
)

//go:embed catalog.yaml
var catalogYAML []byte

type catalogEntry struct {
	Name              string  `yaml:"name"`
	Description       string  `yaml:"description"`
	Price             float64 `yaml:"price"`
	Category          string  `yaml:"category"`
	Subcategory       string  `yaml:"subcategory"`
	Stock             int     `yaml:"stock"`
	Featured          bool    `yaml:"featured"`
	IsRental          bool    `yaml:"isRental"`
	RentalPricePerDay float64 `yaml:"rentalPricePerDay"`
	Image             string  `yaml:"image"`
}

// Load inserts the embedded catalog as approved admin listings and returns
// how many were inserted.
func Load(ctx context.Context, products *marketplace.ProductService) (int, error) {
	var entries []catalogEntry
	if err := yaml.Unmarshal(catalogYAML, &entries); err != nil {
		return 0, fmt.Errorf("failed to parse seed catalog: %w", err)
	}

	items := make([]map[string]any, len(entries))
	for i, e := range entries {
		items[i] = map[string]any{
			"name":              e.Name,
			"description":       e.Description,
			"price":             e.Price,
			"category":          e.Category,
			"subcategory":       e.Subcategory,
			"stock":             e.Stock,
			"featured":          e.Featured,
			"isRental":          e.IsRental,
			"rentalPricePerDay": e.RentalPricePerDay,
			"image":             e.Image,
			"status":            "approved",
			"seller":            "admin",
		}
	}

	return products.Insert(ctx, items)
}
