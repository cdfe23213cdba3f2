package handler

import (
	"log/slog"
	"net/http"

	"travelapp/internal/delivery/http/middleware"
	"travelapp/internal/domain/entity"
	domainerrors "travelapp/internal/domain/errors"
	"travelapp/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccommodationHandler holds dependencies for listing handlers.
type AccommodationHandler struct {
	uc     usecase.AccommodationUsecase
	logger *slog.Logger
}

// NewAccommodationHandler is the constructor for AccommodationHandler, injected by Fx.
func NewAccommodationHandler(uc usecase.AccommodationUsecase, logger *slog.Logger) *AccommodationHandler {
	return &AccommodationHandler{
		uc:     uc,
		logger: logger,
	}
}

// createAccommodationRequest deliberately has no owner field: the owner is
// always the session identity, whatever the client sends.
type createAccommodationRequest struct {
	Name        string           `json:"name" validate:"min=3"`
	Description string           `json:"description"`
	Price       *float64         `json:"price" validate:"required"`
	Location    *entity.GeoPoint `json:"location" validate:"required"`
	Images      []string         `json:"images"`
}

// updateAccommodationRequest is a partial overwrite; nil means the key was
// absent from the request body.
type updateAccommodationRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *float64         `json:"price"`
	Location    *entity.GeoPoint `json:"location"`
	Images      *[]string        `json:"images"`
}

// List returns all accommodations.
func (h *AccommodationHandler) List(c echo.Context) error {
	accommodations, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, accommodations)
}

// Get returns a single accommodation by ID.
func (h *AccommodationHandler) Get(c echo.Context) error {
	accommodation, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, accommodation)
}

// Create persists a new accommodation owned by the caller.
func (h *AccommodationHandler) Create(c echo.Context) error {
	identity := middleware.Identity(c)
	if identity == nil {
		return domainerrors.NewAuthentication("Not authorized")
	}

	var req createAccommodationRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.NewValidation("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	accommodation, err := h.uc.Create(c.Request().Context(), &usecase.CreateAccommodationInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Location:    *req.Location,
		Images:      req.Images,
		Owner:       identity.UserID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, accommodation)
}

// Update applies a partial overwrite to an accommodation owned by the caller.
func (h *AccommodationHandler) Update(c echo.Context) error {
	identity := middleware.Identity(c)
	if identity == nil {
		return domainerrors.NewAuthentication("Not authorized")
	}

	var req updateAccommodationRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.NewValidation("Invalid request body")
	}

	accommodation, err := h.uc.Update(c.Request().Context(), c.Param("id"), &usecase.UpdateAccommodationInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Location:    req.Location,
		Images:      req.Images,
	}, identity.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, accommodation)
}

// Delete removes an accommodation owned by the caller.
func (h *AccommodationHandler) Delete(c echo.Context) error {
	identity := middleware.Identity(c)
	if identity == nil {
		return domainerrors.NewAuthentication("Not authorized")
	}

	if err := h.uc.Delete(c.Request().Context(), c.Param("id"), identity.UserID); err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]any{})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
