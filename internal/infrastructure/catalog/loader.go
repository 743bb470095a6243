// internal/infrastructure/catalog/loader.go
package catalog

import (
	"fmt"
	"os"

	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/catalog"
)

// categoryTable maps product ids to categories for markup sources that
// carry no category attribute. Unknown ids fall back to accessories.
var categoryTable = map[int]catalog.Category{
	1:  catalog.CategoryEquipment,   // Adjustable Dumbbells
	2:  catalog.CategorySupplements, // Whey Protein
	3:  catalog.CategoryAccessories, // Yoga Mat
	4:  catalog.CategoryAccessories, // Leather Gym Gloves
	5:  catalog.CategoryEquipment,   // Electric Treadmill
	6:  catalog.CategorySupplements, // Muscle Gain Combo
	7:  catalog.CategoryAccessories, // Resistance Bands
	8:  catalog.CategoryAccessories, // Shaker Bottle
	9:  catalog.CategoryEquipment,   // Bench Press Machine
	10: catalog.CategoryEquipment,   // Kettlebell
	11: catalog.CategoryAccessories, // Skipping Rope
	12: catalog.CategoryAccessories, // Gym Towel
}

func categoryFor(id int) catalog.Category {
	if c, ok := categoryTable[id]; ok {
		return c
	}
	return catalog.CategoryAccessories
}

// Load reads the product list from the configured source and builds the
// immutable catalog. This is the data-loading boundary: the core only
// ever sees an already-parsed product list.
func Load(cfg *config.Config) (*catalog.Service, error) {
	data, err := os.ReadFile(cfg.Catalog.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog source: %w", err)
	}

	var products []catalog.Product
	switch cfg.Catalog.Format {
	case config.CatalogFormatJSON:
		products, err = ParseJSON(data)
	case config.CatalogFormatMarkup:
		products, err = ParseMarkup(data)
	default:
		return nil, fmt.Errorf("unknown catalog format %q", cfg.Catalog.Format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog source: %w", err)
	}

	return catalog.NewService(products)
}
