// Package dto provides Data Transfer Objects for HTTP request/response handling.
package dto

import (
	"errors"
	"log/slog"
	"net/http"
	"unicode"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotable/internal/domain"
	"github.com/jsamuelsen/quotable/internal/platform/logging"
)

// ErrorResponse is the uniform envelope for all non-2xx responses:
// {"status": "error", "message": "...", "fields": {...}}.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`

	// Fields carries per-field reasons for validation failures.
	Fields map[string]string `json:"fields,omitempty"`
}

// Default envelope messages per error kind.
const (
	MessageInvalidPayload = "Invalid payload."
	MessageBusinessRule   = "Business rule constraint not satisfied."
	MessageNotFound       = "Not Found."
	MessageServerError    = "Something went wrong."
)

// NewErrorResponse creates an error envelope with the given message.
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{
		Status:  "error",
		Message: message,
	}
}

// WithFields attaches field-level reasons to the envelope.
func (e *ErrorResponse) WithFields(fields map[string]string) *ErrorResponse {
	e.Fields = fields
	return e
}

// MapDomainError maps a domain error to an HTTP status and envelope.
// The mapping is exhaustive over the closed error taxonomy; anything
// unclassified becomes the generic server-error envelope so internals
// never leak to the caller.
func MapDomainError(err error) (int, *ErrorResponse) {
	if err == nil {
		return http.StatusOK, nil
	}

	switch {
	case domain.IsInvalidPayload(err):
		resp := NewErrorResponse(MessageInvalidPayload)

		var invalid *domain.InvalidPayloadError
		if errors.As(err, &invalid) && len(invalid.Fields) > 0 {
			resp.Fields = invalid.Fields
		}

		return http.StatusBadRequest, resp

	case domain.IsBusinessRule(err):
		return http.StatusBadRequest, NewErrorResponse(MessageBusinessRule)

	case domain.IsNotFound(err):
		message := MessageNotFound

		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) && notFound.Entity != "" {
			message = titleCase(notFound.Entity) + " Not Found"
		}

		return http.StatusNotFound, NewErrorResponse(message)

	default:
		return http.StatusInternalServerError, NewErrorResponse(MessageServerError)
	}
}

// HandleError writes the envelope for err to the response. Unclassified
// errors are logged with full detail before the caller sees the generic
// message; this is the only place internal failures are presented.
func HandleError(c *gin.Context, err error) {
	status, resp := MapDomainError(err)

	if status == http.StatusInternalServerError {
		logger := logging.FromContext(c.Request.Context())
		logger.Error("unclassified error",
			slog.String("path", c.Request.URL.Path),
			slog.String("method", c.Request.Method),
			slog.Any("error", err),
		)
	}

	c.JSON(status, resp)
}

// titleCase upper-cases the first rune: "author" -> "Author".
func titleCase(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}

	r[0] = unicode.ToUpper(r[0])

	return string(r)
}
