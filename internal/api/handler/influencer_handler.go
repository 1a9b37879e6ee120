package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/promobeats/backoffice/internal/api/metrics"
	"github.com/promobeats/backoffice/internal/core/usecase"
)

// InfluencerHandler handles HTTP requests for influencers and their social
// profiles.
type InfluencerHandler struct {
	influencers *usecase.InfluencerService
}

func NewInfluencerHandler(influencers *usecase.InfluencerService) *InfluencerHandler {
	return &InfluencerHandler{influencers: influencers}
}

type createInfluencerRequest struct {
	Username        string `json:"username"          validate:"required,min=2"`
	Email           string `json:"email"             validate:"required,email"`
	NameEn          string `json:"name_en"           validate:"required"`
	NameAr          string `json:"name_ar"           validate:"required"`
	ProfileImageURL string `json:"profile_image_url" validate:"omitempty,url"`
}

type updateInfluencerRequest struct {
	Username        *string `json:"username"          validate:"omitempty,min=2"`
	Email           *string `json:"email"             validate:"omitempty,email"`
	NameEn          *string `json:"name_en"           validate:"omitempty,min=1"`
	NameAr          *string `json:"name_ar"           validate:"omitempty,min=1"`
	ProfileImageURL *string `json:"profile_image_url" validate:"omitempty,url"`
}

type profileRequest struct {
	Platform  string `json:"platform"  validate:"required,platform"`
	URL       string `json:"url"       validate:"required,url"`
	Followers int64  `json:"followers" validate:"gte=0"`
}

type updateProfileRequest struct {
	Platform  *string `json:"platform"  validate:"omitempty,platform"`
	URL       *string `json:"url"       validate:"omitempty,url"`
	Followers *int64  `json:"followers" validate:"omitempty,gte=0"`
}

// Create handles POST /v1/influencers.
func (h *InfluencerHandler) Create(c echo.Context) error {
	var req createInfluencerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	res, err := h.influencers.Create(c.Request().Context(), usecase.CreateInfluencerInput{
		Username:        req.Username,
		Email:           req.Email,
		NameEn:          req.NameEn,
		NameAr:          req.NameAr,
		ProfileImageURL: req.ProfileImageURL,
	})
	if err != nil {
		return err
	}
	if res.OK() {
		metrics.EntityWritesTotal.WithLabelValues("influencer", "create").Inc()
	}
	return respond(c, http.StatusCreated, res)
}

// List handles GET /v1/influencers.
func (h *InfluencerHandler) List(c echo.Context) error {
	res, err := h.influencers.List(c.Request().Context(), listInput(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, res)
}

// Get handles GET /v1/influencers/:id.
func (h *InfluencerHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	res, err := h.influencers.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, res)
}

// Update handles PUT /v1/influencers/:id.
func (h *InfluencerHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateInfluencerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	res, err := h.influencers.Update(c.Request().Context(), id, usecase.UpdateInfluencerInput{
		Username:        req.Username,
		Email:           req.Email,
		NameEn:          req.NameEn,
		NameAr:          req.NameAr,
		ProfileImageURL: req.ProfileImageURL,
	})
	if err != nil {
		return err
	}
	if res.OK() {
		metrics.EntityWritesTotal.WithLabelValues("influencer", "update").Inc()
	}
	return respond(c, http.StatusOK, res)
}

// Delete handles DELETE /v1/influencers/:id.
func (h *InfluencerHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	res, err := h.influencers.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !res.OK() {
		return res.Failure()
	}
	metrics.EntityWritesTotal.WithLabelValues("influencer", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// AddProfile handles POST /v1/influencers/:id/profiles.
func (h *InfluencerHandler) AddProfile(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	res, err := h.influencers.AddProfile(c.Request().Context(), id, usecase.ProfileInput{
		Platform:  req.Platform,
		URL:       req.URL,
		Followers: req.Followers,
	})
	if err != nil {
		return err
	}
	if res.OK() {
		metrics.EntityWritesTotal.WithLabelValues("social_profile", "create").Inc()
	}
	return respond(c, http.StatusCreated, res)
}

// UpdateProfile handles PUT /v1/profiles/:id.
func (h *InfluencerHandler) UpdateProfile(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	res, err := h.influencers.UpdateProfile(c.Request().Context(), id, usecase.UpdateProfileInput{
		Platform:  req.Platform,
		URL:       req.URL,
		Followers: req.Followers,
	})
	if err != nil {
		return err
	}
	if res.OK() {
		metrics.EntityWritesTotal.WithLabelValues("social_profile", "update").Inc()
	}
	return respond(c, http.StatusOK, res)
}

// RemoveProfile handles DELETE /v1/profiles/:id.
func (h *InfluencerHandler) RemoveProfile(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	res, err := h.influencers.RemoveProfile(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !res.OK() {
		return res.Failure()
	}
	metrics.EntityWritesTotal.WithLabelValues("social_profile", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
