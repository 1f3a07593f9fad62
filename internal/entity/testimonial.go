package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultTestimonialImage is used when a testimonial carries no client photo.
const DefaultTestimonialImage = "/static/images/testimonials/default-avatar.png"

// Testimonial is a client quote shown on the home page.
type Testimonial struct {
	ID          uuid.UUID `json:"id"`
	ClientName  string    `json:"clientName"`
	Company     string    `json:"company"`
	Position    string    `json:"position"`
	Testimonial string    `json:"testimonial"`
	Rating      int       `json:"rating"`
	Image       string    `json:"image"`
	CompanyLogo *string   `json:"companyLogo,omitempty"`
	ProjectType string    `json:"projectType"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Stars returns a slice sized to the rating, clamped to 1..5, for template loops.
func (t Testimonial) Stars() []struct{} {
	n := t.Rating
	if n < 1 {
		n = 1
	}
	if n > 5 {
		n = 5
	}
	return make([]struct{}, n)
}
