package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/octobees/cladding-site/internal/middleware"
	"github.com/octobees/cladding-site/internal/view"
)

const (
	notFoundTitle   = "Page Not Found"
	notFoundMessage = "The page you are looking for could not be found."
	serverTitle     = "Server Error"
	serverMessage   = "Internal server error. Please try again later."
)

// ErrorReporter logs failures and turns them into HTML error pages or JSON
// envelopes. Raw error text reaches JSON clients only when exposeDetails is set.
type ErrorReporter struct {
	logger        *zap.Logger
	exposeDetails bool
}

// NewErrorReporter builds an ErrorReporter.
func NewErrorReporter(logger *zap.Logger, exposeDetails bool) *ErrorReporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ErrorReporter{logger: logger, exposeDetails: exposeDetails}
}

// JSON logs err and writes {success:false, message, error}.
func (r *ErrorReporter) JSON(c echo.Context, status int, message string, err error) error {
	r.log(c, status, message, err)
	detail := ""
	if r.exposeDetails && err != nil {
		detail = err.Error()
	}
	return Error(c, status, message, detail)
}

// Page logs err and renders the error page with the given status.
func (r *ErrorReporter) Page(c echo.Context, status int, title, message string, err error) error {
	r.log(c, status, message, err)
	return renderErrorPage(c, status, title, message)
}

// HTTPErrorHandler is installed as echo's central error handler. API paths get
// the JSON envelope, everything else the HTML error page.
func (r *ErrorReporter) HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := serverMessage
	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		if status < http.StatusInternalServerError {
			message = fmt.Sprint(he.Message)
		}
	}
	if status == http.StatusNotFound {
		message = notFoundMessage
	}
	if status >= http.StatusInternalServerError {
		r.logger.Error("unhandled request error",
			zap.String("request_id", middleware.RequestIDFromContext(c)),
			zap.String("path", c.Request().URL.Path),
			zap.Error(err),
		)
	}

	var writeErr error
	switch {
	case c.Request().Method == http.MethodHead:
		writeErr = c.NoContent(status)
	case isAPIPath(c.Request().URL.Path):
		detail := ""
		if r.exposeDetails && status >= http.StatusInternalServerError {
			detail = err.Error()
		}
		writeErr = Error(c, status, message, detail)
	default:
		writeErr = renderErrorPage(c, status, pageTitle(status), message)
	}
	if writeErr != nil {
		r.logger.Error("write error response", zap.Error(writeErr))
	}
}

func (r *ErrorReporter) log(c echo.Context, status int, message string, err error) {
	if err == nil {
		return
	}
	fields := []zap.Field{
		zap.String("request_id", middleware.RequestIDFromContext(c)),
		zap.String("path", c.Request().URL.Path),
		zap.Int("status", status),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		r.logger.Error(message, fields...)
		return
	}
	r.logger.Warn(message, fields...)
}

func renderErrorPage(c echo.Context, status int, title, message string) error {
	page := view.ErrorPage{
		Page:       view.Page{Title: title, PageURL: c.Request().URL.Path},
		StatusCode: status,
		Message:    message,
	}
	if err := c.Render(status, view.PageError, page); err != nil {
		// The renderer itself failed; fall back to plain text.
		return c.String(status, message)
	}
	return nil
}

func pageTitle(status int) string {
	switch {
	case status == http.StatusNotFound:
		return notFoundTitle
	case status >= http.StatusInternalServerError:
		return serverTitle
	default:
		return http.StatusText(status)
	}
}

func isAPIPath(path string) bool {
	return strings.Contains(path, "/api/")
}
