package router

import (
	"github.com/labstack/echo/v4"

	"github.com/octobees/cladding-site/internal/config"
	"github.com/octobees/cladding-site/internal/handler"
	middlewarepkg "github.com/octobees/cladding-site/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Pages    *handler.PagesHandler
	Products *handler.ProductsHandler
	Contact  *handler.ContactHandler
}

// Register wires all HTTP routes for the site. The /products API routes must
// win over /products/:id. Unmatched paths reach the central error handler as 404.
func Register(e *echo.Echo, cfg *config.Config, handlers Handlers) {
	e.GET("/healthz", handlers.Pages.Health)

	if cfg.StaticDir != "" {
		e.Static("/static", cfg.StaticDir)
	}

	e.GET("/", handlers.Pages.Home)
	e.GET("/about", handlers.Pages.About)
	e.GET("/404", handlers.Pages.NotFound)
	e.GET("/500", handlers.Pages.ServerError)

	products := e.Group("/products")
	products.GET("", handlers.Products.List)
	products.GET("/api/search", handlers.Products.Search)
	products.GET("/api/category/:category", handlers.Products.ByCategory)
	products.GET("/:id", handlers.Products.Detail)

	limiter := middlewarepkg.SubmissionRateLimiter(cfg.RateLimitContact)
	contact := e.Group("/contact")
	contact.GET("", handlers.Contact.Page)
	contact.POST("", handlers.Contact.Submit, limiter)
	contact.POST("/api/quick-quote", handlers.Contact.QuickQuote, limiter)
}
