package middleware

// Context keys stored on echo.Context by the middleware in this package.
const (
	ContextKeyRequestID = "request_id"
)
