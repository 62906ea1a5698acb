package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"cropRecommendation/business/preset"
	"cropRecommendation/business/recommendation"
	"cropRecommendation/domain"
	"cropRecommendation/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type RecommendationService interface {
	Recommend(ctx context.Context, req recommendation.Request) (recommendation.Result, error)
	Explain(ctx context.Context, crop string, req recommendation.Request) (domain.CompatibilityBreakdown, error)
}

type RecommendationHandler struct {
	service   RecommendationService
	validator *validator.Validate
	timeout   time.Duration
}

func NewRecommendationHandler(service RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		service:   service,
		validator: validator.New(),
		timeout:   10 * time.Second,
	}
}

// RecommendRequest holds the measurements of one field. Every field is optional.
type RecommendRequest struct {
	NPKPreset         string   `json:"npk_preset" validate:"omitempty,max=64"`
	Nitrogen          *float64 `json:"nitrogen"`
	Phosphorus        *float64 `json:"phosphorus"`
	Potassium         *float64 `json:"potassium"`
	Climate           *string  `json:"climate" validate:"omitempty,max=64"`
	Humidity          *float64 `json:"humidity"`
	PH                *float64 `json:"ph"`
	Rainfall          *float64 `json:"rainfall"`
	SoilType          *string  `json:"soil_type" validate:"omitempty,max=64"`
	Topography        *string  `json:"topography" validate:"omitempty,max=64"`
	WaterAvailability *string  `json:"water_availability" validate:"omitempty,max=64"`
}

func (r RecommendRequest) toServiceRequest() recommendation.Request {
	return recommendation.Request{
		Preset: r.NPKPreset,
		Features: domain.FeatureInput{
			Nitrogen:          r.Nitrogen,
			Phosphorus:        r.Phosphorus,
			Potassium:         r.Potassium,
			Climate:           r.Climate,
			Humidity:          r.Humidity,
			PH:                r.PH,
			Rainfall:          r.Rainfall,
			SoilType:          r.SoilType,
			Topography:        r.Topography,
			WaterAvailability: r.WaterAvailability,
		},
	}
}

func (h *RecommendationHandler) bind(c echo.Context) (RecommendRequest, error) {
	var req RecommendRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return req, err
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate recommendation request", err)
		return req, err
	}

	return req, nil
}

func (h *RecommendationHandler) Recommend(c echo.Context) error {
	req, err := h.bind(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	res, err := h.service.Recommend(ctx, req.toServiceRequest())
	if err != nil {
		logger.Error("Failed to rank crops", err)
		if errors.Is(err, preset.ErrUnknownPreset) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, res)
}

func (h *RecommendationHandler) Explain(c echo.Context) error {
	crop := c.QueryParam("crop")
	if err := h.validator.Var(crop, "required"); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "crop query parameter is required"})
	}

	req, err := h.bind(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	breakdown, err := h.service.Explain(ctx, crop, req.toServiceRequest())
	if err != nil {
		logger.Error("Failed to explain crop score", err)
		switch {
		case errors.Is(err, recommendation.ErrUnknownCrop):
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		case errors.Is(err, preset.ErrUnknownPreset):
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, breakdown)
}
