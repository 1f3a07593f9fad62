package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// APIResponse is the envelope returned by JSON endpoints that carry no payload
// of their own.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Success sends a successful response using the shared envelope format.
func Success(c echo.Context, status int, message string) error {
	if status == 0 {
		status = http.StatusOK
	}
	return c.JSON(status, APIResponse{Success: true, Message: message})
}

// Error sends a failed response using the shared envelope format. detail is
// omitted from the body when empty.
func Error(c echo.Context, status int, message, detail string) error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return c.JSON(status, APIResponse{Success: false, Message: message, Error: detail})
}
