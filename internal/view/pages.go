package view

import (
	"github.com/octobees/cladding-site/internal/dto"
	"github.com/octobees/cladding-site/internal/entity"
)

// Page carries the fields every layout render needs.
type Page struct {
	Title   string
	PageURL string
}

// HomePage is rendered by GET /.
type HomePage struct {
	Page
	Featured     []entity.Product
	Upcoming     []entity.Product
	Testimonials []entity.Testimonial
}

// AboutPage is rendered by GET /about.
type AboutPage struct {
	Page
	Products []entity.Product
}

// ProductsPage is rendered by GET /products.
type ProductsPage struct {
	Page
	Products        []entity.Product
	Categories      []string
	CurrentCategory string
	SearchQuery     string
}

// ProductDetailPage is rendered by GET /products/:id.
type ProductDetailPage struct {
	Page
	Product *entity.Product
	Related []entity.Product
}

// ContactPage is rendered by GET and POST /contact.
type ContactPage struct {
	Page
	Form         dto.ContactForm
	Errors       []dto.FieldError
	Submitted    bool
	ProjectTypes []string
	BudgetRanges []string
	Timelines    []string
}

// NewContactPage fills the select options from the accepted enumerations.
func NewContactPage(pageURL string, form dto.ContactForm, errs []dto.FieldError, submitted bool) ContactPage {
	return ContactPage{
		Page:         Page{Title: "Contact Us - Get Your Quote Today", PageURL: pageURL},
		Form:         form,
		Errors:       errs,
		Submitted:    submitted,
		ProjectTypes: entity.ProjectTypes,
		BudgetRanges: entity.BudgetRanges,
		Timelines:    entity.Timelines,
	}
}

// ErrorPage is rendered for 404 and 500 responses.
type ErrorPage struct {
	Page
	StatusCode int
	Message    string
}
