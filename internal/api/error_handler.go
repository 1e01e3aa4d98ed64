package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/crmapp/crm-backend/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	StatusCode int                 `json:"statusCode"`
	Error      string              `json:"error"`
	Message    string              `json:"message"`
	Errors     []domain.FieldError `json:"errors,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that maps error kinds
// to HTTP statuses and renders the {statusCode, error, message} envelope.
// Unexpected errors are logged server-side; their message reaches the client
// only in development mode.
func NewHTTPErrorHandler(log zerolog.Logger, development bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		resp := resolveError(err, log, c, development)
		_ = c.JSON(resp.StatusCode, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context, development bool) errorResponse {
	// Echo's own errors: unknown routes, method mismatches, bind failures.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return errorResponse{
			StatusCode: he.Code,
			Error:      http.StatusText(he.Code),
			Message:    fmt.Sprintf("%v", he.Message),
		}
	}

	var de *domain.Error
	if errors.As(err, &de) && de.Kind != domain.KindInternal {
		code := statusForKind(de.Kind)
		return errorResponse{
			StatusCode: code,
			Error:      http.StatusText(code),
			Message:    de.Message,
			Errors:     de.Fields,
		}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	message := "An unexpected error occurred"
	if development {
		message = err.Error()
	}
	return errorResponse{
		StatusCode: http.StatusInternalServerError,
		Error:      http.StatusText(http.StatusInternalServerError),
		Message:    message,
	}
}

func statusForKind(kind domain.Kind) int {
	switch kind {
	case domain.KindValidation, domain.KindBadRequest:
		return http.StatusBadRequest
	case domain.KindUnauthenticated:
		return http.StatusUnauthorized
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
