package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/promobeats/backoffice/internal/api/metrics"
	"github.com/promobeats/backoffice/internal/core/domain"
	"github.com/promobeats/backoffice/internal/core/usecase"
)

// BeatHandler handles HTTP requests for beat management.
type BeatHandler struct {
	beats *usecase.BeatService
}

func NewBeatHandler(beats *usecase.BeatService) *BeatHandler {
	return &BeatHandler{beats: beats}
}

type createBeatRequest struct {
	Caption      string `json:"caption"`
	MediaURL     string `json:"media_url"     validate:"required,url"`
	ThumbnailURL string `json:"thumbnail_url" validate:"required,url"`
	Status       string `json:"status"        validate:"omitempty,beat_status"`
	InfluencerID int64  `json:"influencer_id" validate:"required,gt=0"`
	BrandID      int64  `json:"brand_id"      validate:"required,gt=0"`
}

type updateBeatRequest struct {
	Caption      *string `json:"caption"`
	MediaURL     *string `json:"media_url"     validate:"omitempty,url"`
	ThumbnailURL *string `json:"thumbnail_url" validate:"omitempty,url"`
	Status       *string `json:"status"        validate:"omitempty,beat_status"`
	InfluencerID *int64  `json:"influencer_id" validate:"omitempty,gt=0"`
	BrandID      *int64  `json:"brand_id"      validate:"omitempty,gt=0"`
}

// Create handles POST /v1/beats.
func (h *BeatHandler) Create(c echo.Context) error {
	var req createBeatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	res, err := h.beats.Create(c.Request().Context(), usecase.CreateBeatInput{
		Caption:      req.Caption,
		MediaURL:     req.MediaURL,
		ThumbnailURL: req.ThumbnailURL,
		Status:       domain.BeatStatus(req.Status),
		InfluencerID: req.InfluencerID,
		BrandID:      req.BrandID,
	})
	if err != nil {
		return err
	}
	if res.OK() {
		metrics.EntityWritesTotal.WithLabelValues("beat", "create").Inc()
	}
	return respond(c, http.StatusCreated, res)
}

// List handles GET /v1/beats, with optional status, influencer_id and
// brand_id filters on top of the shared paging parameters.
func (h *BeatHandler) List(c echo.Context) error {
	in := usecase.ListBeatsInput{ListInput: listInput(c)}
	in.Status = domain.BeatStatus(c.QueryParam("status"))
	if v := c.QueryParam("influencer_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid influencer_id")
		}
		in.InfluencerID = id
	}
	if v := c.QueryParam("brand_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid brand_id")
		}
		in.BrandID = id
	}

	res, err := h.beats.List(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, res)
}

// Get handles GET /v1/beats/:id.
func (h *BeatHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	res, err := h.beats.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, res)
}

// Update handles PUT /v1/beats/:id.
func (h *BeatHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateBeatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	var status *domain.BeatStatus
	if req.Status != nil {
		s := domain.BeatStatus(*req.Status)
		status = &s
	}

	res, err := h.beats.Update(c.Request().Context(), id, usecase.UpdateBeatInput{
		Caption:      req.Caption,
		MediaURL:     req.MediaURL,
		ThumbnailURL: req.ThumbnailURL,
		Status:       status,
		InfluencerID: req.InfluencerID,
		BrandID:      req.BrandID,
	})
	if err != nil {
		return err
	}
	if res.OK() {
		metrics.EntityWritesTotal.WithLabelValues("beat", "update").Inc()
	}
	return respond(c, http.StatusOK, res)
}

// Delete handles DELETE /v1/beats/:id.
func (h *BeatHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	res, err := h.beats.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !res.OK() {
		return res.Failure()
	}
	metrics.EntityWritesTotal.WithLabelValues("beat", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
