package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"cropRecommendation/business/admin"
	"cropRecommendation/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type AdminService interface {
	Login(ctx context.Context, username, password string) (admin.Token, error)
}

type AdminHandler struct {
	service   AdminService
	validator *validator.Validate
	timeout   time.Duration
}

func NewAdminHandler(service AdminService) *AdminHandler {
	return &AdminHandler{
		service:   service,
		validator: validator.New(),
		timeout:   10 * time.Second,
	}
}

type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *AdminHandler) Login(c echo.Context) error {
	var req AdminLoginRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	token, err := h.service.Login(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, admin.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, ResponseError{Message: err.Error()})
		case errors.Is(err, admin.ErrLoginDisabled):
			return c.JSON(http.StatusServiceUnavailable, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "login success",
		"token":   token,
	})
}
