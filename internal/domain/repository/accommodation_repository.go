package repository

import (
	"context"
	"errors"

	"travelapp/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrAccommodationNotFound is returned when no accommodation matches the given ID.
var ErrAccommodationNotFound = errors.New("accommodation not found")

// AccommodationRepository defines the standard operations for listing persistence.
type AccommodationRepository interface {
	// FindAll retrieves every accommodation, in insertion order.
	FindAll(ctx context.Context) ([]entity.Accommodation, error)

	// FindByID retrieves a single accommodation by its unique ID.
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Accommodation, error)

	// Create persists a new accommodation and fills in its ID.
	Create(ctx context.Context, accommodation *entity.Accommodation) error

	// Update replaces the stored accommodation with the given one.
	Update(ctx context.Context, accommodation *entity.Accommodation) error

	// Delete removes the accommodation with the given ID.
	Delete(ctx context.Context, id primitive.ObjectID) error
}
