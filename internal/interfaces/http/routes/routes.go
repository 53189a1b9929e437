// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/Zevk4/levelup-store/internal/config"
	"github.com/Zevk4/levelup-store/internal/domain/auth"
	"github.com/Zevk4/levelup-store/internal/domain/cart"
	"github.com/Zevk4/levelup-store/internal/domain/catalog"
	"github.com/Zevk4/levelup-store/internal/domain/ui"
	"github.com/Zevk4/levelup-store/internal/interfaces/http/handlers"
	"github.com/Zevk4/levelup-store/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// Deps carries the stores the handlers are wired to. Everything is
// constructed once in main and passed down explicitly.
type Deps struct {
	Config     *config.Config
	Auth       *auth.Store
	Cart       *cart.Store
	Catalog    *catalog.Store
	Modals     *ui.ModalStore
	Categories []catalog.Category
}

// SetupRoutes registers every API route group
func SetupRoutes(rg *gin.RouterGroup, deps *Deps) {
	setupAuthRoutes(rg, deps)
	setupCatalogRoutes(rg, deps)
	setupCartRoutes(rg, deps)
	setupUIRoutes(rg, deps)
	setupAdminRoutes(rg, deps)
}

func setupAuthRoutes(rg *gin.RouterGroup, deps *Deps) {
	authHandler := handlers.NewAuthHandler(deps.Auth, deps.Modals, deps.Config)

	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)

		protected := authGroup.Group("")
		protected.Use(middleware.AuthMiddleware(deps.Config))
		{
			protected.POST("/logout", authHandler.Logout)
			protected.GET("/profile", authHandler.GetProfile)
		}
	}
}

func setupCatalogRoutes(rg *gin.RouterGroup, deps *Deps) {
	catalogHandler := handlers.NewCatalogHandler(deps.Catalog, deps.Categories)

	products := rg.Group("/products")
	{
		products.GET("", catalogHandler.GetProducts)
		products.GET("/search", catalogHandler.SearchProducts)
		products.GET("/:code", catalogHandler.GetProduct)
	}

	rg.GET("/categories", catalogHandler.GetCategories)
}

func setupCartRoutes(rg *gin.RouterGroup, deps *Deps) {
	cartHandler := handlers.NewCartHandler(deps.Cart, deps.Catalog)

	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.POST("/items", cartHandler.AddItem)
		cartGroup.DELETE("/items/:code", cartHandler.RemoveItem)
		cartGroup.DELETE("", cartHandler.ClearCart)
		cartGroup.POST("/open", cartHandler.OpenDrawer)
		cartGroup.POST("/close", cartHandler.CloseDrawer)
	}
}

func setupUIRoutes(rg *gin.RouterGroup, deps *Deps) {
	uiHandler := handlers.NewUIHandler(deps.Modals, deps.Cart)

	uiGroup := rg.Group("/ui")
	{
		uiGroup.GET("/state", uiHandler.GetState)
		uiGroup.POST("/login-modal/open", uiHandler.OpenLoginModal)
		uiGroup.POST("/login-modal/close", uiHandler.CloseLoginModal)
	}
}

func setupAdminRoutes(rg *gin.RouterGroup, deps *Deps) {
	adminHandler := handlers.NewAdminHandler(deps.Catalog)

	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(deps.Config))
	admin.Use(middleware.AdminMiddleware())
	{
		admin.POST("/products", adminHandler.CreateProduct)
	}
}
