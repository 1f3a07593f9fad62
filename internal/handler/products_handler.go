package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/octobees/cladding-site/internal/dto"
	"github.com/octobees/cladding-site/internal/entity"
	"github.com/octobees/cladding-site/internal/service"
	"github.com/octobees/cladding-site/internal/view"
)

// ProductsHandler exposes the catalogue pages and JSON endpoints.
type ProductsHandler struct {
	catalog *service.CatalogService
	errors  *ErrorReporter
}

// NewProductsHandler creates a new handler instance.
func NewProductsHandler(catalog *service.CatalogService, reporter *ErrorReporter) *ProductsHandler {
	return &ProductsHandler{catalog: catalog, errors: reporter}
}

// List handles GET /products.
func (h *ProductsHandler) List(c echo.Context) error {
	category := strings.TrimSpace(c.QueryParam("category"))
	search := strings.TrimSpace(c.QueryParam("search"))

	listing, err := h.catalog.ListProducts(c.Request().Context(), dto.NewProductQuery(category, search))
	if err != nil {
		return h.errors.Page(c, http.StatusInternalServerError, serverTitle, "Unable to load products.", err)
	}

	if category == "" {
		category = dto.AllCategories
	}
	return c.Render(http.StatusOK, view.PageProducts, view.ProductsPage{
		Page:            view.Page{Title: "Our 3D Cladding Services", PageURL: c.Request().URL.RequestURI()},
		Products:        listing.Products,
		Categories:      listing.Categories,
		CurrentCategory: category,
		SearchQuery:     search,
	})
}

// Detail handles GET /products/:id.
func (h *ProductsHandler) Detail(c echo.Context) error {
	detail, err := h.catalog.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return renderErrorPage(c, http.StatusNotFound, "Product Not Found", "The requested service could not be found.")
		}
		return h.errors.Page(c, http.StatusInternalServerError, serverTitle, "Unable to load product details.", err)
	}

	return c.Render(http.StatusOK, view.PageProductDetail, view.ProductDetailPage{
		Page:    view.Page{Title: detail.Product.Title, PageURL: c.Request().URL.RequestURI()},
		Product: detail.Product,
		Related: detail.Related,
	})
}

// Search handles GET /products/api/search.
func (h *ProductsHandler) Search(c echo.Context) error {
	query := dto.NewProductQuery(c.QueryParam("category"), c.QueryParam("q"))
	query.Limit = parseIntDefault(c.QueryParam("limit"), service.DefaultSearchLimit)

	products, err := h.catalog.SearchProducts(c.Request().Context(), query)
	if err != nil {
		return h.errors.JSON(c, http.StatusInternalServerError, "Error searching products", err)
	}
	if products == nil {
		products = []entity.ProductSummary{}
	}

	return c.JSON(http.StatusOK, dto.ProductSearchResponse{
		Success:  true,
		Products: products,
		Total:    len(products),
	})
}

// ByCategory handles GET /products/api/category/:category.
func (h *ProductsHandler) ByCategory(c echo.Context) error {
	category := c.Param("category")

	products, err := h.catalog.ListProductsByCategory(c.Request().Context(), category)
	if err != nil {
		return h.errors.JSON(c, http.StatusInternalServerError, "Error fetching products by category", err)
	}
	if products == nil {
		products = []entity.Product{}
	}

	return c.JSON(http.StatusOK, dto.CategoryProductsResponse{
		Success:  true,
		Products: products,
		Category: category,
		Total:    len(products),
	})
}

func parseIntDefault(value string, fallback int) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
