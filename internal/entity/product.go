package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product categories accepted by the catalogue.
const (
	CategoryExteriorCladding = "exterior-cladding"
	CategoryInteriorCladding = "interior-cladding"
	CategoryCommercial       = "commercial"
	CategoryResidential      = "residential"
	CategoryIndustrial       = "industrial"
)

// ProductCategories lists every valid product category in display order.
var ProductCategories = []string{
	CategoryExteriorCladding,
	CategoryInteriorCladding,
	CategoryCommercial,
	CategoryResidential,
	CategoryIndustrial,
}

// Specification is a single named attribute shown on the product detail page.
type Specification struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Product represents a cladding service or product offered on the site.
type Product struct {
	ID               uuid.UUID       `json:"id"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	ShortDescription string          `json:"shortDescription"`
	Image            string          `json:"image"`
	Gallery          []string        `json:"gallery"`
	Category         string          `json:"category"`
	Features         []string        `json:"features"`
	Specifications   []Specification `json:"specifications"`
	IsUpcoming       bool            `json:"isUpcoming"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// ProductSummary is the projection returned by the search API.
type ProductSummary struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	ShortDescription string    `json:"shortDescription"`
	Image            string    `json:"image"`
	Category         string    `json:"category"`
}

// Summary projects the product onto the fields exposed by the search API.
func (p Product) Summary() ProductSummary {
	return ProductSummary{
		ID:               p.ID,
		Title:            p.Title,
		ShortDescription: p.ShortDescription,
		Image:            p.Image,
		Category:         p.Category,
	}
}

// IsProductCategory reports whether value is one of the known product categories.
func IsProductCategory(value string) bool {
	for _, c := range ProductCategories {
		if c == value {
			return true
		}
	}
	return false
}
