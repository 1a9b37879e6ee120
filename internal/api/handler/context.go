package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/promobeats/backoffice/internal/api/middleware"
	"github.com/promobeats/backoffice/internal/core/usecase"
)

// ctxCaller extracts the identity injected by the Auth middleware. An empty
// account id means the middleware did not run; reject before any service
// call. An empty role set is legal: a holder may have no roles yet.
func ctxCaller(c echo.Context) (accountID string, roles usecase.RoleSet, err error) {
	accountID, _ = c.Get(middleware.KeyAccountID).(string)
	if accountID == "" {
		return "", nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	rs, _ := c.Get(middleware.KeyRoles).([]string)
	return accountID, usecase.RoleSet(rs), nil
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// listInput reads the shared paging and search query parameters. Values the
// use case considers out of range are normalized there, not here.
func listInput(c echo.Context) usecase.ListInput {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return usecase.ListInput{
		Page:   page,
		Limit:  limit,
		Search: c.QueryParam("search"),
	}
}
