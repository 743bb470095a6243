// internal/domain/catalog/entity.go
package catalog

// Category groups products for the filter control
type Category string

// Valid product categories
const (
	CategoryEquipment   Category = "equipment"
	CategorySupplements Category = "supplements"
	CategoryAccessories Category = "accessories"
)

// FilterAll shows every product regardless of category
const FilterAll = "all"

// Product is one immutable catalog record. The catalog is built once at
// startup and never mutated during a session.
type Product struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Price        int64    `json:"price"` // integer units, no minor units
	ImageRef     string   `json:"image_ref"`
	DisplayOrder int      `json:"display_order"`
	Category     Category `json:"category"`
}

// IsValid reports whether c is a known category
func (c Category) IsValid() bool {
	switch c {
	case CategoryEquipment, CategorySupplements, CategoryAccessories:
		return true
	}
	return false
}

// SortMode is a total order over the product list
type SortMode string

// Sort modes for the product grid
const (
	SortDisplayOrder SortMode = "display_order" // default; original scan order
	SortPriceAsc     SortMode = "price_asc"
	SortPriceDesc    SortMode = "price_desc"
)

// IsValid reports whether m is a known sort mode
func (m SortMode) IsValid() bool {
	switch m {
	case SortDisplayOrder, SortPriceAsc, SortPriceDesc:
		return true
	}
	return false
}

// Entry is a product plus its visibility under the active filter
type Entry struct {
	Product Product `json:"product"`
	Visible bool    `json:"visible"`
}
