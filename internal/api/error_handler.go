package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/promobeats/backoffice/internal/api/metrics"
	"github.com/promobeats/backoffice/internal/core/specification"
	"github.com/promobeats/backoffice/internal/core/usecase"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps tagged business failures to their HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>", "code": "<code>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		_ = c.JSON(code, body)
	}
}

// failureStatus maps business failure codes to transport status.
var failureStatus = map[string]int{
	usecase.CodeNotFound:                http.StatusNotFound,
	usecase.CodeAlreadyExists:           http.StatusConflict,
	usecase.CodeInvalidCredentials:      http.StatusUnauthorized,
	usecase.CodeInsufficientPermissions: http.StatusForbidden,
	usecase.CodeHasDependents:           http.StatusConflict,
	usecase.CodeRoleNotFound:            http.StatusUnprocessableEntity,
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	// Tagged business failures carry their own code.
	var f *usecase.Failure
	if errors.As(err, &f) {
		status, ok := failureStatus[f.Code]
		if !ok {
			status = http.StatusInternalServerError
		}
		metrics.BusinessFailuresTotal.WithLabelValues(f.Code).Inc()
		return status, errorResponse{Error: f.Message, Code: f.Code}
	}

	if errors.Is(err, specification.ErrInvalidPagination) {
		return http.StatusBadRequest, errorResponse{Error: "invalid pagination window"}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
}
