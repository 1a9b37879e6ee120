package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/promobeats/backoffice/internal/api/metrics"
	"github.com/promobeats/backoffice/internal/core/usecase"
)

// AccountHandler handles HTTP requests for account holder management.
type AccountHandler struct {
	accounts *usecase.AccountService
}

func NewAccountHandler(accounts *usecase.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

type createAccountRequest struct {
	Name     string   `json:"name"      validate:"required"`
	Email    string   `json:"email"     validate:"required,email"`
	Password string   `json:"password"  validate:"required,min=8"`
	Phone    string   `json:"phone"     validate:"omitempty"`
	RoleKeys []string `json:"role_keys" validate:"omitempty,dive,required"`
}

type updateAccountRequest struct {
	Name     *string `json:"name"     validate:"omitempty,min=1"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Phone    *string `json:"phone"    validate:"omitempty"`
	Password *string `json:"password" validate:"omitempty,min=8"`
}

type assignRolesRequest struct {
	RoleKeys []string `json:"role_keys" validate:"required,min=1,dive,required"`
}

// Create handles POST /v1/accounts.
func (h *AccountHandler) Create(c echo.Context) error {
	var req createAccountRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	_, caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	res, err := h.accounts.Create(c.Request().Context(), caller, usecase.CreateAccountInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		RoleKeys: req.RoleKeys,
	})
	if err != nil {
		return err
	}
	if res.OK() {
		metrics.EntityWritesTotal.WithLabelValues("account", "create").Inc()
	}
	return respond(c, http.StatusCreated, res)
}

// List handles GET /v1/accounts.
func (h *AccountHandler) List(c echo.Context) error {
	res, err := h.accounts.List(c.Request().Context(), listInput(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, res)
}

// Get handles GET /v1/accounts/:id.
func (h *AccountHandler) Get(c echo.Context) error {
	res, err := h.accounts.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, res)
}

// Update handles PUT /v1/accounts/:id.
func (h *AccountHandler) Update(c echo.Context) error {
	var req updateAccountRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	res, err := h.accounts.Update(c.Request().Context(), c.Param("id"), usecase.UpdateAccountInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	if res.OK() {
		metrics.EntityWritesTotal.WithLabelValues("account", "update").Inc()
	}
	return respond(c, http.StatusOK, res)
}

// Delete handles DELETE /v1/accounts/:id.
func (h *AccountHandler) Delete(c echo.Context) error {
	res, err := h.accounts.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if !res.OK() {
		return res.Failure()
	}
	metrics.EntityWritesTotal.WithLabelValues("account", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// AssignRoles handles PUT /v1/accounts/:id/roles. The service enforces that
// only super admins may assign roles.
func (h *AccountHandler) AssignRoles(c echo.Context) error {
	var req assignRolesRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	_, caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	res, err := h.accounts.AssignRoles(c.Request().Context(), caller, c.Param("id"), req.RoleKeys)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, res)
}
