package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/cladding-site/internal/service"
	"github.com/octobees/cladding-site/internal/view"
)

// PagesHandler serves the home, about and explicit error pages.
type PagesHandler struct {
	site   *service.SiteService
	errors *ErrorReporter
}

// NewPagesHandler creates a new handler instance.
func NewPagesHandler(site *service.SiteService, reporter *ErrorReporter) *PagesHandler {
	return &PagesHandler{site: site, errors: reporter}
}

// Home handles GET /.
func (h *PagesHandler) Home(c echo.Context) error {
	content, err := h.site.Home(c.Request().Context())
	if err != nil {
		return h.errors.Page(c, http.StatusInternalServerError, serverTitle, "Something went wrong. Please try again later.", err)
	}

	return c.Render(http.StatusOK, view.PageHome, view.HomePage{
		Page:         view.Page{Title: "Professional 3D Cladding Services", PageURL: c.Request().URL.RequestURI()},
		Featured:     content.Featured,
		Upcoming:     content.Upcoming,
		Testimonials: content.Testimonials,
	})
}

// About handles GET /about.
func (h *PagesHandler) About(c echo.Context) error {
	products, err := h.site.About(c.Request().Context())
	if err != nil {
		return h.errors.Page(c, http.StatusInternalServerError, serverTitle, "Unable to load page content.", err)
	}

	return c.Render(http.StatusOK, view.PageAbout, view.AboutPage{
		Page:     view.Page{Title: "About Us - Expert 3D Cladding Solutions", PageURL: c.Request().URL.RequestURI()},
		Products: products,
	})
}

// NotFound handles GET /404.
func (h *PagesHandler) NotFound(c echo.Context) error {
	return renderErrorPage(c, http.StatusNotFound, notFoundTitle, notFoundMessage)
}

// ServerError handles GET /500.
func (h *PagesHandler) ServerError(c echo.Context) error {
	return renderErrorPage(c, http.StatusInternalServerError, serverTitle, serverMessage)
}

// Health handles GET /healthz.
func (h *PagesHandler) Health(c echo.Context) error {
	return Success(c, http.StatusOK, "service healthy")
}
