// internal/infrastructure/catalog/markup_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/domain/catalog"
)

const sampleMarkup = `<!DOCTYPE html>
<html>
<body>
  <div class="products-grid">
    <div class="product" data-id="1" data-name="Adjustable Dumbbells" data-price="27000">
      <img src="https://example.com/dumbbells.jpg" alt="Adjustable Dumbbells">
      <h3>Adjustable Dumbbells</h3>
      <p class="price">Rs. 27,000</p>
    </div>
    <div class="product" data-id="2">
      <img src="https://example.com/whey.jpg" alt="Whey Protein">
      <h3>Whey Protein</h3>
      <p class="price">Rs. 6,500</p>
    </div>
    <div class="product card">
      <h3>Yoga Mat</h3>
      <p class="price">Rs. 2,500</p>
    </div>
  </div>
</body>
</html>`

func TestParseMarkup(t *testing.T) {
	products, err := ParseMarkup([]byte(sampleMarkup))
	require.NoError(t, err)
	require.Len(t, products, 3)

	// Full data attributes.
	assert.Equal(t, 1, products[0].ID)
	assert.Equal(t, "Adjustable Dumbbells", products[0].Name)
	assert.Equal(t, int64(27000), products[0].Price)
	assert.Equal(t, "https://example.com/dumbbells.jpg", products[0].ImageRef)
	assert.Equal(t, catalog.CategoryEquipment, products[0].Category)

	// Name and price fall back to the nested nodes.
	assert.Equal(t, 2, products[1].ID)
	assert.Equal(t, "Whey Protein", products[1].Name)
	assert.Equal(t, int64(6500), products[1].Price)
	assert.Equal(t, catalog.CategorySupplements, products[1].Category)

	// Id falls back to document position.
	assert.Equal(t, 3, products[2].ID)
	assert.Equal(t, "Yoga Mat", products[2].Name)
	assert.Equal(t, int64(2500), products[2].Price)
	assert.Empty(t, products[2].ImageRef)
	assert.Equal(t, catalog.CategoryAccessories, products[2].Category)

	for i, p := range products {
		assert.Equal(t, i, p.DisplayOrder)
	}
}

func TestParseMarkupNoProducts(t *testing.T) {
	products, err := ParseMarkup([]byte("<html><body><p>nothing here</p></body></html>"))
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestParseJSON(t *testing.T) {
	data := []byte(`[
		{"id": 1, "name": "Adjustable Dumbbells", "price": 27000, "image_ref": "https://example.com/d.jpg"},
		{"id": 3, "name": "Yoga Mat", "price": 2500, "category": "accessories"},
		{"id": 5, "name": "Electric Treadmill", "price": 85000}
	]`)

	products, err := ParseJSON(data)
	require.NoError(t, err)
	require.Len(t, products, 3)

	// Missing categories are filled from the id table.
	assert.Equal(t, catalog.CategoryEquipment, products[0].Category)
	assert.Equal(t, catalog.CategoryAccessories, products[1].Category)
	assert.Equal(t, catalog.CategoryEquipment, products[2].Category)

	_, err = ParseJSON([]byte(`{"not": "a list"}`))
	assert.Error(t, err)
}

func TestCategoryFor(t *testing.T) {
	assert.Equal(t, catalog.CategoryEquipment, categoryFor(1))
	assert.Equal(t, catalog.CategorySupplements, categoryFor(6))
	assert.Equal(t, catalog.CategoryEquipment, categoryFor(10))
	assert.Equal(t, catalog.CategoryAccessories, categoryFor(12))
	assert.Equal(t, catalog.CategoryAccessories, categoryFor(999))
}
