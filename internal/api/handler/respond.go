package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/promobeats/backoffice/internal/core/usecase"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses. The central error handler renders the same shape.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// respond renders a use case result: the value with the given status on
// success, or the tagged failure routed through the central error handler.
func respond[T any](c echo.Context, status int, res usecase.Result[T]) error {
	if !res.OK() {
		return res.Failure()
	}
	return c.JSON(status, res.Value())
}
