package dto

import (
	"strings"

	"github.com/google/uuid"

	"github.com/octobees/cladding-site/internal/entity"
)

// AllCategories is the sentinel category value meaning "no category filter".
const AllCategories = "all"

// ProductQuery describes a catalogue lookup. A nil pointer field means the
// dimension is not filtered; a zero Limit means unbounded.
type ProductQuery struct {
	Category  *string
	Search    *string
	Upcoming  *bool
	ExcludeID *uuid.UUID
	Limit     int
}

// NewProductQuery builds a query over released products from raw request
// parameters. Blank values and the "all" category are treated as absent.
func NewProductQuery(category, search string) ProductQuery {
	upcoming := false
	q := ProductQuery{Upcoming: &upcoming}

	category = strings.TrimSpace(category)
	if category != "" && category != AllCategories {
		q.Category = &category
	}
	search = strings.TrimSpace(search)
	if search != "" {
		q.Search = &search
	}
	return q
}

// ProductSearchResponse is returned by GET /products/api/search.
type ProductSearchResponse struct {
	Success  bool                    `json:"success"`
	Products []entity.ProductSummary `json:"products"`
	Total    int                     `json:"total"`
}

// CategoryProductsResponse is returned by GET /products/api/category/:category.
type CategoryProductsResponse struct {
	Success  bool             `json:"success"`
	Products []entity.Product `json:"products"`
	Category string           `json:"category"`
	Total    int              `json:"total"`
}
