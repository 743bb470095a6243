// internal/domain/catalog/service.go
package catalog

import (
	"fmt"
	"sort"
)

// Service holds the immutable product table and answers ordering and
// visibility queries over it. It never mutates the products it was
// built with; sorting and filtering only affect the returned view.
type Service struct {
	products []Product
	byID     map[int]Product
}

// NewService builds the catalog from an already-parsed product list.
// Display order is assigned from slice position, mirroring the order
// the loader scanned the records in.
func NewService(products []Product) (*Service, error) {
	byID := make(map[int]Product, len(products))
	table := make([]Product, len(products))

	for i, p := range products {
		if p.ID <= 0 {
			return nil, fmt.Errorf("product %q has invalid id %d", p.Name, p.ID)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("product %d has negative price %d", p.ID, p.Price)
		}
		if _, exists := byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}
		if !p.Category.IsValid() {
			return nil, fmt.Errorf("product %d has unknown category %q", p.ID, p.Category)
		}

		p.DisplayOrder = i
		table[i] = p
		byID[p.ID] = p
	}

	return &Service{
		products: table,
		byID:     byID,
	}, nil
}

// Get returns the product with the given id
func (s *Service) Get(id int) (Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// Products returns all products in display order
func (s *Service) Products() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// Len returns the catalog size
func (s *Service) Len() int {
	return len(s.products)
}

// Sorted returns the products under the given sort mode. Price modes
// break ties by original display order, which requires a stable sort.
func (s *Service) Sorted(mode SortMode) ([]Product, error) {
	if !mode.IsValid() {
		return nil, fmt.Errorf("unknown sort mode %q", mode)
	}

	sorted := s.Products()
	switch mode {
	case SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price > sorted[j].Price
		})
	default:
		// Products() is already in display order.
	}

	return sorted, nil
}

// View composes sort and filter into one grid view: a linear order with
// non-matching entries hidden. The identity set never changes.
func (s *Service) View(mode SortMode, filter string) ([]Entry, error) {
	if filter != FilterAll && !Category(filter).IsValid() {
		return nil, fmt.Errorf("unknown category filter %q", filter)
	}

	sorted, err := s.Sorted(mode)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, len(sorted))
	for i, p := range sorted {
		entries[i] = Entry{
			Product: p,
			Visible: filter == FilterAll || Category(filter) == p.Category,
		}
	}

	return entries, nil
}
