// internal/interfaces/http/handlers/ui.go
package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/notify"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
)

// UIHandler handles the transient UI affordances: the product detail
// overlay, the toast and the rotating section backgrounds.
type UIHandler struct {
	catalogService *catalog.Service
	cartService    *cart.Service
	ui             *notify.UIManager
	toaster        *notify.Toaster
	rotator        *notify.Rotator
}

// NewUIHandler creates a new UI handler
func NewUIHandler(catalogService *catalog.Service, cartService *cart.Service, ui *notify.UIManager, toaster *notify.Toaster, rotator *notify.Rotator) *UIHandler {
	return &UIHandler{
		catalogService: catalogService,
		cartService:    cartService,
		ui:             ui,
		toaster:        toaster,
		rotator:        rotator,
	}
}

// OpenDetail handles GET /products/:id/detail - opens the overlay for a
// product. Also serves the keyboard activation path on a focused entry.
func (h *UIHandler) OpenDetail(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	product, ok := h.catalogService.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	overlay := h.ui.OpenOverlay(sessionID, product)

	c.JSON(http.StatusOK, gin.H{
		"message": "Product details opened",
		"data":    overlay,
	})
}

// OverlayAdd handles POST /ui/overlay/add - the overlay's add-to-cart
// action: increment, toast, close the overlay, open the cart panel.
func (h *UIHandler) OverlayAdd(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	overlay, ok := h.ui.Overlay(sessionID)
	if !ok || !overlay.Open {
		c.JSON(http.StatusConflict, gin.H{
			"error": "No product details are open",
		})
		return
	}

	if _, err := h.cartService.Increment(c.Request.Context(), sessionID, overlay.ProductID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to add item to cart",
		})
		return
	}

	h.toaster.Show(fmt.Sprintf("%s added to cart", overlay.Name))
	h.ui.CloseOverlay(sessionID)
	h.ui.OpenCart(sessionID)

	view, err := h.cartService.Render(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to render cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data": gin.H{
			"cart": view,
			"open": true,
		},
	})
}

// CloseOverlay handles DELETE /ui/overlay
func (h *UIHandler) CloseOverlay(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)
	h.ui.CloseOverlay(sessionID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Product details closed",
	})
}

// Escape handles POST /ui/escape - closes the overlay when open,
// otherwise the open cart panel.
func (h *UIHandler) Escape(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)
	closed := h.ui.Escape(sessionID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Escape handled",
		"data": gin.H{
			"closed": closed,
		},
	})
}

// GetToast handles GET /ui/toast
func (h *UIHandler) GetToast(c *gin.Context) {
	message, visible := h.toaster.Current()

	c.JSON(http.StatusOK, gin.H{
		"message": "Toast retrieved successfully",
		"data": gin.H{
			"toast":   message,
			"visible": visible,
		},
	})
}

// GetBackgrounds handles GET /ui/backgrounds
func (h *UIHandler) GetBackgrounds(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Backgrounds retrieved successfully",
		"data":    h.rotator.Snapshot(),
	})
}
