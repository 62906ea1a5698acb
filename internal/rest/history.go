package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"cropRecommendation/domain"
	"cropRecommendation/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type HistoryService interface {
	List(ctx context.Context, limit int) ([]domain.Prediction, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Prediction, error)
	Summary(ctx context.Context) (domain.HistorySummary, error)
}

type HistoryHandler struct {
	service   HistoryService
	validator *validator.Validate
	timeout   time.Duration
}

func NewHistoryHandler(service HistoryService) *HistoryHandler {
	return &HistoryHandler{
		service:   service,
		validator: validator.New(),
		timeout:   10 * time.Second,
	}
}

type HistoryQuery struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=500"`
}

func (h *HistoryHandler) List(c echo.Context) error {
	var q HistoryQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	predictions, err := h.service.List(ctx, q.Limit)
	if err != nil {
		return historyError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(predictions))
}

func (h *HistoryHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid prediction id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	prediction, err := h.service.Get(ctx, id)
	if err != nil {
		return historyError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(prediction))
}

func (h *HistoryHandler) Summary(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	summary, err := h.service.Summary(ctx)
	if err != nil {
		return historyError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(summary))
}

func historyError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrPredictionNotFound):
		return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
	case errors.Is(err, domain.ErrHistoryDisabled):
		return c.JSON(http.StatusServiceUnavailable, ResponseError{Message: err.Error()})
	}

	logger.Error("Failed to read prediction history", err)
	return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
}
