// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/notify"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	cartService    *cart.Service
	catalogService *catalog.Service
	ui             *notify.UIManager
	toaster        *notify.Toaster
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *cart.Service, catalogService *catalog.Service, ui *notify.UIManager, toaster *notify.Toaster) *CartHandler {
	return &CartHandler{
		cartService:    cartService,
		catalogService: catalogService,
		ui:             ui,
		toaster:        toaster,
	}
}

// AddToCartRequest represents add to cart request
type AddToCartRequest struct {
	ProductID int `json:"product_id" binding:"required"`
}

// UpdateCartItemRequest selects the quantity operation on a cart line
type UpdateCartItemRequest struct {
	Op string `json:"op" binding:"required,oneof=increment decrement"`
}

// CheckoutRequest represents the simulated checkout confirmation
type CheckoutRequest struct {
	Confirm bool `json:"confirm"`
}

func (h *CartHandler) respondWithCart(c *gin.Context, sessionID, message string) {
	view, err := h.cartService.Render(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to render cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"data": gin.H{
			"cart": view,
			"open": h.ui.CartOpen(sessionID),
		},
	})
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)
	h.respondWithCart(c, sessionID, "Cart retrieved successfully")
}

// AddItem handles POST /cart/items - the product grid add-to-cart
// control. Adding opens the cart panel and shows a toast.
func (h *CartHandler) AddItem(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, ok := h.catalogService.Get(req.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	if _, err := h.cartService.Increment(c.Request.Context(), sessionID, req.ProductID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to add item to cart",
		})
		return
	}

	h.ui.OpenCart(sessionID)
	h.toaster.Show(fmt.Sprintf("%s added to cart", product.Name))

	h.respondWithCart(c, sessionID, "Item added to cart successfully")
}

// UpdateItem handles PUT /cart/items/:id - the per-line +/- controls
func (h *CartHandler) UpdateItem(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	switch req.Op {
	case "increment":
		_, err = h.cartService.Increment(c.Request.Context(), sessionID, productID)
	case "decrement":
		_, err = h.cartService.Decrement(c.Request.Context(), sessionID, productID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update cart item",
		})
		return
	}

	h.respondWithCart(c, sessionID, "Cart item updated successfully")
}

// RemoveItem handles DELETE /cart/items/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	if _, err := h.cartService.Remove(c.Request.Context(), sessionID, productID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to remove item from cart",
		})
		return
	}

	h.respondWithCart(c, sessionID, "Item removed from cart successfully")
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	err := h.cartService.Clear(c.Request.Context(), sessionID)
	if errors.Is(err, cart.ErrEmptyCart) {
		h.toaster.Show("Cart is already empty")
		c.JSON(http.StatusConflict, gin.H{
			"error": "Cart is already empty",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to clear cart",
		})
		return
	}

	h.respondWithCart(c, sessionID, "Cart cleared successfully")
}

// GetCount handles GET /cart/count
func (h *CartHandler) GetCount(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	count, err := h.cartService.Count(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get cart count",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart count retrieved successfully",
		"data": gin.H{
			"count": count,
		},
	})
}

// Checkout handles POST /cart/checkout. Checkout is simulated: a
// confirmed request clears the cart and reports success, nothing
// external is contacted.
func (h *CartHandler) Checkout(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	result, err := h.cartService.Checkout(c.Request.Context(), sessionID, req.Confirm)
	if errors.Is(err, cart.ErrEmptyCart) {
		c.JSON(http.StatusConflict, gin.H{
			"error": "Your cart is empty.",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to check out",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": result.Message,
		"data":    result,
	})
}

// OpenCart handles POST /cart/open
func (h *CartHandler) OpenCart(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)
	h.ui.OpenCart(sessionID)
	h.respondWithCart(c, sessionID, "Cart opened")
}

// CloseCart handles POST /cart/close
func (h *CartHandler) CloseCart(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)
	h.ui.CloseCart(sessionID)
	h.respondWithCart(c, sessionID, "Cart closed")
}
