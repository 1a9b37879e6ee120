package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/promobeats/backoffice/internal/api/metrics"
	"github.com/promobeats/backoffice/internal/core/usecase"
)

// BrandHandler handles HTTP requests for brand management.
type BrandHandler struct {
	brands *usecase.BrandService
}

func NewBrandHandler(brands *usecase.BrandService) *BrandHandler {
	return &BrandHandler{brands: brands}
}

type createBrandRequest struct {
	NameEn     string `json:"name_en"     validate:"required"`
	NameAr     string `json:"name_ar"     validate:"required"`
	LogoURL    string `json:"logo_url"    validate:"omitempty,url"`
	WebsiteURL string `json:"website_url" validate:"omitempty,url"`
}

type updateBrandRequest struct {
	NameEn     *string `json:"name_en"     validate:"omitempty,min=1"`
	NameAr     *string `json:"name_ar"     validate:"omitempty,min=1"`
	LogoURL    *string `json:"logo_url"    validate:"omitempty,url"`
	WebsiteURL *string `json:"website_url" validate:"omitempty,url"`
}

// Create handles POST /v1/brands.
func (h *BrandHandler) Create(c echo.Context) error {
	var req createBrandRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	res, err := h.brands.Create(c.Request().Context(), usecase.CreateBrandInput{
		NameEn:     req.NameEn,
		NameAr:     req.NameAr,
		LogoURL:    req.LogoURL,
		WebsiteURL: req.WebsiteURL,
	})
	if err != nil {
		return err
	}
	if res.OK() {
		metrics.EntityWritesTotal.WithLabelValues("brand", "create").Inc()
	}
	return respond(c, http.StatusCreated, res)
}

// List handles GET /v1/brands.
func (h *BrandHandler) List(c echo.Context) error {
	res, err := h.brands.List(c.Request().Context(), listInput(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, res)
}

// Get handles GET /v1/brands/:id.
func (h *BrandHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	res, err := h.brands.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, res)
}

// Update handles PUT /v1/brands/:id.
func (h *BrandHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateBrandRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	res, err := h.brands.Update(c.Request().Context(), id, usecase.UpdateBrandInput{
		NameEn:     req.NameEn,
		NameAr:     req.NameAr,
		LogoURL:    req.LogoURL,
		WebsiteURL: req.WebsiteURL,
	})
	if err != nil {
		return err
	}
	if res.OK() {
		metrics.EntityWritesTotal.WithLabelValues("brand", "update").Inc()
	}
	return respond(c, http.StatusOK, res)
}

// Delete handles DELETE /v1/brands/:id.
func (h *BrandHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	res, err := h.brands.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !res.OK() {
		return res.Failure()
	}
	metrics.EntityWritesTotal.WithLabelValues("brand", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
