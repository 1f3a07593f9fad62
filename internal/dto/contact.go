package dto

// ContactForm carries the raw fields of a contact or quick-quote submission.
type ContactForm struct {
	Name        string `json:"name" form:"name"`
	Email       string `json:"email" form:"email"`
	Phone       string `json:"phone" form:"phone"`
	Company     string `json:"company" form:"company"`
	ProjectType string `json:"projectType" form:"projectType"`
	Message     string `json:"message" form:"message"`
	Budget      string `json:"budget" form:"budget"`
	Timeline    string `json:"timeline" form:"timeline"`
}

// FieldError describes a single violated validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   string `json:"value"`
}

// QuickQuoteResponse is returned by POST /contact/api/quick-quote.
type QuickQuoteResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}
