// internal/interfaces/http/handlers/site.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/config"
)

// SiteHandler serves the header-shortcut surface: section anchors and
// the phone/email contact actions.
type SiteHandler struct {
	config *config.Config
}

// NewSiteHandler creates a new site handler
func NewSiteHandler(cfg *config.Config) *SiteHandler {
	return &SiteHandler{
		config: cfg,
	}
}

// GetSite handles GET /site
func (h *SiteHandler) GetSite(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Site info retrieved successfully",
		"data": gin.H{
			"sections": []string{"hero", "offers", "products", "signup"},
			"shortcuts": gin.H{
				"signup":   "#signup",
				"join_now": "#signup",
			},
			"contact": gin.H{
				"phone":        h.config.Contact.Phone,
				"phone_notice": fmt.Sprintf("Call us at %s", h.config.Contact.Phone),
				"email":        h.config.Contact.Email,
				"mailto":       fmt.Sprintf("mailto:%s", h.config.Contact.Email),
			},
		},
	})
}
