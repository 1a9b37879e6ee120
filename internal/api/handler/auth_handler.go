package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/promobeats/backoffice/internal/api/metrics"
	"github.com/promobeats/backoffice/internal/core/usecase"
)

type AuthHandler struct {
	auth *usecase.AuthService
}

func NewAuthHandler(auth *usecase.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	res, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	if !res.OK() {
		switch res.Failure().Code {
		case usecase.CodeNotFound:
			metrics.LoginsTotal.WithLabelValues("not_found").Inc()
		default:
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		}
		return res.Failure()
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, res.Value())
}
