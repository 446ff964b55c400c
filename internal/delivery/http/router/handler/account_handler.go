// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"scout/internal/delivery/http/response"
	domainerrors "scout/internal/domain/errors"
	"scout/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler holds dependencies for registration and login handlers.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler.
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// RegisterRequest represents the request body for registration.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Age      int    `json:"age" validate:"required"`
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued session token.
type LoginResponse struct {
	Token string `json:"token"`
}

// Register handles the account registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.AppError(c, domainerrors.ErrMissingFields)
	}
	if err := c.Validate(&req); err != nil {
		return response.AppError(c, domainerrors.ErrMissingFields)
	}

	input := &usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Age:      req.Age,
	}

	if err := h.accountUC.Register(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, http.StatusOK)
}

// Login handles the login request and returns a session token.
func (h *AccountHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.AppError(c, domainerrors.ErrNoUser)
	}

	input := &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	}

	output, err := h.accountUC.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, LoginResponse{Token: output.Token})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.JSON(c, http.StatusOK, map[string]string{"status": "ok"})
}
