// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"travelapp/internal/delivery/http/session"
	domainerrors "travelapp/internal/domain/errors"
	"travelapp/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"min=6"`
	PasswordConfirm string `json:"passwordConfirm" validate:"min=6"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password"`
}

// Register handles the user registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.NewValidation("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	session.Write(c, output.Token)

	return c.JSON(http.StatusCreated, output.User)
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.NewValidation("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	session.Write(c, output.Token)

	return c.JSON(http.StatusOK, output.User)
}

// Logout clears the session cookie. No server-side state is touched.
func (h *AuthHandler) Logout(c echo.Context) error {
	session.Clear(c)

	return c.JSON(http.StatusOK, map[string]any{})
}

// CurrentUser reports whether a session envelope is present. The token is
// not verified here; the session middleware does full verification on every
// protected route.
func (h *AuthHandler) CurrentUser(c echo.Context) error {
	if session.Present(c) {
		return c.JSON(http.StatusOK, "currentUser")
	}

	return c.JSON(http.StatusOK, map[string]any{})
}
