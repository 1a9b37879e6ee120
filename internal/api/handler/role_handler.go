package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/promobeats/backoffice/internal/core/usecase"
)

// RoleHandler exposes the role catalog.
type RoleHandler struct {
	roles *usecase.RoleService
}

func NewRoleHandler(roles *usecase.RoleService) *RoleHandler {
	return &RoleHandler{roles: roles}
}

// List handles GET /v1/roles.
func (h *RoleHandler) List(c echo.Context) error {
	res, err := h.roles.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, res)
}
