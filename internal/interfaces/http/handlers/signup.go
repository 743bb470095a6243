// internal/interfaces/http/handlers/signup.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/domain/signup"
)

// SignupHandler handles the signup form endpoint
type SignupHandler struct {
	signupService *signup.Service
}

// NewSignupHandler creates a new signup handler
func NewSignupHandler(signupService *signup.Service) *SignupHandler {
	return &SignupHandler{
		signupService: signupService,
	}
}

// Register handles POST /signup. Validation failures come back as an
// inline message; the form stays editable and the client clears the
// inputs on success.
func (h *SignupHandler) Register(c *gin.Context) {
	var req signup.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	resp, err := h.signupService.Register(c.Request.Context(), &req)
	var validationErr *signup.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": validationErr.Reason,
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to register signup",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": resp.Message,
		"data":    resp,
	})
}
