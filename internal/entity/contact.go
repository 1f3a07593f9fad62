package entity

import (
	"time"

	"github.com/google/uuid"
)

// Inquiry statuses. Only StatusNew is assigned by this service; the rest are set by staff.
const (
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusQuoted    = "quoted"
	StatusConverted = "converted"
	StatusClosed    = "closed"
)

// Default values applied to quick-quote submissions.
const (
	BudgetNotSpecified = "not-specified"
	TimelineFlexible   = "flexible"
)

// ProjectTypes enumerates accepted inquiry project types.
var ProjectTypes = []string{"exterior-cladding", "interior-cladding", "commercial", "residential", "consultation", "other"}

// BudgetRanges enumerates accepted budget values.
var BudgetRanges = []string{"under-50k", "50k-100k", "100k-500k", "500k+", BudgetNotSpecified}

// Timelines enumerates accepted project timelines.
var Timelines = []string{"immediate", "1-3-months", "3-6-months", "6-12-months", TimelineFlexible}

// Contact is a persisted inquiry submitted through the contact or quick-quote forms.
type Contact struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone,omitempty"`
	Company     *string   `json:"company,omitempty"`
	ProjectType string    `json:"projectType"`
	Message     string    `json:"message"`
	Budget      *string   `json:"budget,omitempty"`
	Timeline    *string   `json:"timeline,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}
