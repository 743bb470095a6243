// internal/domain/catalog/service_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService([]Product{
		{ID: 1, Name: "Treadmill", Price: 85000, Category: CategoryEquipment},
		{ID: 2, Name: "Whey Protein", Price: 6500, Category: CategorySupplements},
		{ID: 3, Name: "Yoga Mat", Price: 2500, Category: CategoryAccessories},
		{ID: 4, Name: "Resistance Bands", Price: 2500, Category: CategoryAccessories},
		{ID: 5, Name: "Dumbbells", Price: 27000, Category: CategoryEquipment},
	})
	require.NoError(t, err)
	return svc
}

func ids(products []Product) []int {
	out := make([]int, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestNewServiceValidation(t *testing.T) {
	tests := []struct {
		name     string
		products []Product
	}{
		{"invalid id", []Product{{ID: 0, Name: "x", Category: CategoryEquipment}}},
		{"negative price", []Product{{ID: 1, Name: "x", Price: -1, Category: CategoryEquipment}}},
		{"duplicate id", []Product{
			{ID: 1, Name: "x", Category: CategoryEquipment},
			{ID: 1, Name: "y", Category: CategoryEquipment},
		}},
		{"unknown category", []Product{{ID: 1, Name: "x", Category: "gadgets"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewService(tt.products)
			assert.Error(t, err)
		})
	}
}

func TestDisplayOrderAssignedFromPosition(t *testing.T) {
	svc := newTestService(t)

	for i, p := range svc.Products() {
		assert.Equal(t, i, p.DisplayOrder)
	}
}

func TestSortedModes(t *testing.T) {
	svc := newTestService(t)

	sorted, err := svc.Sorted(SortDisplayOrder)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(sorted))

	sorted, err = svc.Sorted(SortPriceAsc)
	require.NoError(t, err)
	// Products 3 and 4 share a price; display order breaks the tie.
	assert.Equal(t, []int{3, 4, 2, 5, 1}, ids(sorted))

	sorted, err = svc.Sorted(SortPriceDesc)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 5, 2, 3, 4}, ids(sorted))

	_, err = svc.Sorted("alphabetical")
	assert.Error(t, err)
}

func TestSortingDoesNotMutateCatalog(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Sorted(SortPriceDesc)
	require.NoError(t, err)

	// Switching back to the default mode restores the original order.
	sorted, err := svc.Sorted(SortDisplayOrder)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(sorted))
}

func TestViewComposesSortAndFilter(t *testing.T) {
	svc := newTestService(t)

	view, err := svc.View(SortPriceAsc, string(CategoryEquipment))
	require.NoError(t, err)

	// The filter hides entries but never removes them.
	require.Len(t, view, svc.Len())

	visible := []int{}
	for _, e := range view {
		if e.Visible {
			visible = append(visible, e.Product.ID)
		}
	}
	assert.Equal(t, []int{5, 1}, visible)
}

func TestViewAllFilter(t *testing.T) {
	svc := newTestService(t)

	view, err := svc.View(SortDisplayOrder, FilterAll)
	require.NoError(t, err)
	for _, e := range view {
		assert.True(t, e.Visible)
	}

	_, err = svc.View(SortDisplayOrder, "gadgets")
	assert.Error(t, err)
}

func TestGet(t *testing.T) {
	svc := newTestService(t)

	p, ok := svc.Get(2)
	require.True(t, ok)
	assert.Equal(t, "Whey Protein", p.Name)

	_, ok = svc.Get(99)
	assert.False(t, ok)
}
