// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/notify"
	"github.com/your-org/storefront/internal/domain/signup"
	"github.com/your-org/storefront/internal/interfaces/http/handlers"
)

// Services bundles the core services the routes expose
type Services struct {
	Catalog *catalog.Service
	Cart    *cart.Service
	Signup  *signup.Service
	UI      *notify.UIManager
	Toaster *notify.Toaster
	Rotator *notify.Rotator
}

// SetupRoutes wires every endpoint onto the API group
func SetupRoutes(rg *gin.RouterGroup, svcs *Services, cfg *config.Config) {
	catalogHandler := handlers.NewCatalogHandler(svcs.Catalog)
	cartHandler := handlers.NewCartHandler(svcs.Cart, svcs.Catalog, svcs.UI, svcs.Toaster)
	signupHandler := handlers.NewSignupHandler(svcs.Signup)
	uiHandler := handlers.NewUIHandler(svcs.Catalog, svcs.Cart, svcs.UI, svcs.Toaster, svcs.Rotator)
	siteHandler := handlers.NewSiteHandler(cfg)

	// Product grid
	products := rg.Group("/products")
	{
		products.GET("", catalogHandler.GetProducts)
		products.GET("/:id", catalogHandler.GetProduct)
		products.GET("/:id/detail", uiHandler.OpenDetail)
	}

	// Cart panel
	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.GET("/count", cartHandler.GetCount)
		cartGroup.POST("/items", cartHandler.AddItem)
		cartGroup.PUT("/items/:id", cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveItem)
		cartGroup.DELETE("", cartHandler.ClearCart)
		cartGroup.POST("/checkout", cartHandler.Checkout)
		cartGroup.POST("/open", cartHandler.OpenCart)
		cartGroup.POST("/close", cartHandler.CloseCart)
	}

	// Signup form
	rg.POST("/signup", signupHandler.Register)

	// Transient UI
	ui := rg.Group("/ui")
	{
		ui.POST("/overlay/add", uiHandler.OverlayAdd)
		ui.DELETE("/overlay", uiHandler.CloseOverlay)
		ui.POST("/escape", uiHandler.Escape)
		ui.GET("/toast", uiHandler.GetToast)
		ui.GET("/backgrounds", uiHandler.GetBackgrounds)
	}

	// Header shortcuts and contact actions
	rg.GET("/site", siteHandler.GetSite)
}
