// internal/domain/notify/overlay_test.go
package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/domain/catalog"
)

var overlayProduct = catalog.Product{
	ID:       1,
	Name:     "Treadmill",
	Price:    85000,
	ImageRef: "https://example.com/treadmill.jpg",
	Category: catalog.CategoryEquipment,
}

func TestOpenOverlayPopulatesFromProduct(t *testing.T) {
	m := NewUIManager()

	overlay := m.OpenOverlay("s1", overlayProduct)
	assert.True(t, overlay.Open)
	assert.Equal(t, 1, overlay.ProductID)
	assert.Equal(t, "Treadmill", overlay.Name)
	assert.Equal(t, "Rs. 85,000", overlay.PriceLabel)
	assert.Equal(t, "https://example.com/treadmill.jpg", overlay.ImageRef)
	assert.Equal(t, "High quality Treadmill. Price shown is retail. Contact us for bulk discounts.", overlay.Description)
}

func TestOverlayIsReusedAcrossOpens(t *testing.T) {
	m := NewUIManager()

	m.OpenOverlay("s1", overlayProduct)
	m.CloseOverlay("s1")

	overlay, ok := m.Overlay("s1")
	require.True(t, ok)
	assert.False(t, overlay.Open)

	second := catalog.Product{ID: 2, Name: "Yoga Mat", Price: 2500, Category: catalog.CategoryAccessories}
	reopened := m.OpenOverlay("s1", second)
	assert.True(t, reopened.Open)
	assert.Equal(t, 2, reopened.ProductID)
	assert.Equal(t, "Yoga Mat", reopened.Name)
}

func TestOverlayBeforeFirstOpen(t *testing.T) {
	m := NewUIManager()

	_, ok := m.Overlay("s1")
	assert.False(t, ok)

	// Closing an overlay that never opened is a no-op.
	m.CloseOverlay("s1")
}

func TestCartPanelToggle(t *testing.T) {
	m := NewUIManager()

	assert.False(t, m.CartOpen("s1"))
	m.OpenCart("s1")
	assert.True(t, m.CartOpen("s1"))
	m.CloseCart("s1")
	assert.False(t, m.CartOpen("s1"))
}

func TestEscapePriority(t *testing.T) {
	m := NewUIManager()

	// Nothing open.
	assert.Equal(t, ClosedNothing, m.Escape("s1"))

	// Overlay wins when both are open.
	m.OpenCart("s1")
	m.OpenOverlay("s1", overlayProduct)
	assert.Equal(t, ClosedOverlay, m.Escape("s1"))
	assert.True(t, m.CartOpen("s1"))

	// Next press closes the cart panel.
	assert.Equal(t, ClosedCart, m.Escape("s1"))
	assert.False(t, m.CartOpen("s1"))

	assert.Equal(t, ClosedNothing, m.Escape("s1"))
}

func TestUIStateIsPerSession(t *testing.T) {
	m := NewUIManager()

	m.OpenCart("s1")
	m.OpenOverlay("s1", overlayProduct)

	assert.False(t, m.CartOpen("s2"))
	_, ok := m.Overlay("s2")
	assert.False(t, ok)
}
