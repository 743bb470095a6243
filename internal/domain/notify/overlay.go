// internal/domain/notify/overlay.go
package notify

import (
	"fmt"
	"sync"

	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/pkg/currency"
)

// Overlay is the product-detail dialog state. At most one exists per
// session; it is constructed lazily on the first open and repopulated
// on later opens.
type Overlay struct {
	Open        bool   `json:"open"`
	ProductID   int    `json:"product_id"`
	Name        string `json:"name"`
	PriceLabel  string `json:"price_label"`
	ImageRef    string `json:"image_ref"`
	Description string `json:"description"`
}

// Closed is what Escape reports it acted on
type Closed string

// Escape outcomes
const (
	ClosedNothing Closed = ""
	ClosedOverlay Closed = "overlay"
	ClosedCart    Closed = "cart"
)

type sessionUI struct {
	overlay  *Overlay
	cartOpen bool
}

// UIManager tracks the per-session transient UI state: the detail
// overlay and the cart panel open/closed boolean. Panel state is
// independent of cart emptiness and none of it is persisted.
type UIManager struct {
	mu       sync.Mutex
	sessions map[string]*sessionUI
}

// NewUIManager creates an empty UI state manager
func NewUIManager() *UIManager {
	return &UIManager{
		sessions: make(map[string]*sessionUI),
	}
}

func (m *UIManager) session(sessionID string) *sessionUI {
	ui, ok := m.sessions[sessionID]
	if !ok {
		ui = &sessionUI{}
		m.sessions[sessionID] = ui
	}
	return ui
}

// OpenOverlay populates the overlay from a product and shows it
func (m *UIManager) OpenOverlay(sessionID string, p catalog.Product) *Overlay {
	m.mu.Lock()
	defer m.mu.Unlock()

	ui := m.session(sessionID)
	if ui.overlay == nil {
		ui.overlay = &Overlay{}
	}

	ui.overlay.Open = true
	ui.overlay.ProductID = p.ID
	ui.overlay.Name = p.Name
	ui.overlay.PriceLabel = currency.Format(p.Price)
	ui.overlay.ImageRef = p.ImageRef
	ui.overlay.Description = fmt.Sprintf("High quality %s. Price shown is retail. Contact us for bulk discounts.", p.Name)

	view := *ui.overlay
	return &view
}

// CloseOverlay hides the overlay
func (m *UIManager) CloseOverlay(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ui := m.session(sessionID)
	if ui.overlay != nil {
		ui.overlay.Open = false
	}
}

// Overlay returns the current overlay state, if one was ever opened
func (m *UIManager) Overlay(sessionID string) (*Overlay, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ui := m.session(sessionID)
	if ui.overlay == nil {
		return nil, false
	}
	view := *ui.overlay
	return &view, true
}

// OpenCart marks the cart panel open
func (m *UIManager) OpenCart(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session(sessionID).cartOpen = true
}

// CloseCart marks the cart panel closed
func (m *UIManager) CloseCart(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session(sessionID).cartOpen = false
}

// CartOpen reports whether the cart panel is open
func (m *UIManager) CartOpen(sessionID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session(sessionID).cartOpen
}

// Escape closes the overlay when it is open, otherwise the open cart
// panel. The overlay takes priority when both are open.
func (m *UIManager) Escape(sessionID string) Closed {
	m.mu.Lock()
	defer m.mu.Unlock()

	ui := m.session(sessionID)
	if ui.overlay != nil && ui.overlay.Open {
		ui.overlay.Open = false
		return ClosedOverlay
	}
	if ui.cartOpen {
		ui.cartOpen = false
		return ClosedCart
	}
	return ClosedNothing
}
