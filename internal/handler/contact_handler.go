package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/cladding-site/internal/dto"
	"github.com/octobees/cladding-site/internal/service"
	"github.com/octobees/cladding-site/internal/view"
)

const quickQuoteSuccessMessage = "Thank you! Your quote request has been submitted successfully."

// ContactHandler serves the contact form and the quick-quote endpoint.
type ContactHandler struct {
	contacts *service.ContactService
	errors   *ErrorReporter
}

// NewContactHandler creates a new handler instance.
func NewContactHandler(contacts *service.ContactService, reporter *ErrorReporter) *ContactHandler {
	return &ContactHandler{contacts: contacts, errors: reporter}
}

// Page handles GET /contact. A projectType query parameter preselects the select box.
func (h *ContactHandler) Page(c echo.Context) error {
	form := dto.ContactForm{ProjectType: c.QueryParam("projectType")}
	return c.Render(http.StatusOK, view.PageContact, view.NewContactPage(c.Request().URL.RequestURI(), form, nil, false))
}

// Submit handles POST /contact.
func (h *ContactHandler) Submit(c echo.Context) error {
	var form dto.ContactForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}

	pageURL := c.Request().URL.RequestURI()
	if _, err := h.contacts.Submit(c.Request().Context(), form); err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			return c.Render(http.StatusUnprocessableEntity, view.PageContact, view.NewContactPage(pageURL, form, vErr.Violations, false))
		}
		return h.errors.Page(c, http.StatusInternalServerError, serverTitle, "Unable to submit your inquiry. Please try again.", err)
	}

	return c.Render(http.StatusOK, view.PageContact, view.NewContactPage(pageURL, form, nil, true))
}

// QuickQuote handles POST /contact/api/quick-quote.
func (h *ContactHandler) QuickQuote(c echo.Context) error {
	var form dto.ContactForm
	if err := c.Bind(&form); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request payload", "")
	}

	if _, err := h.contacts.SubmitQuickQuote(c.Request().Context(), form); err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			return c.JSON(http.StatusBadRequest, dto.QuickQuoteResponse{Success: false, Errors: vErr.Violations})
		}
		return h.errors.JSON(c, http.StatusInternalServerError, "Error submitting quote request", err)
	}

	return c.JSON(http.StatusOK, dto.QuickQuoteResponse{Success: true, Message: quickQuoteSuccessMessage})
}
