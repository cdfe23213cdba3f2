package usecase

import (
	"context"

	"travelapp/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateAccommodationInput defines the data required to create a listing.
// Owner is always the authenticated caller's identity, never client input.
type CreateAccommodationInput struct {
	Name        string
	Description string
	Price       float64
	Location    entity.GeoPoint
	Images      []string
	Owner       primitive.ObjectID
}

// UpdateAccommodationInput carries a partial overwrite. Nil fields were absent
// from the request; Description distinguishes "absent" from "explicitly empty",
// while the other fields also fall back to the prior value on a zero input.
type UpdateAccommodationInput struct {
	Name        *string
	Description *string
	Price       *float64
	Location    *entity.GeoPoint
	Images      *[]string
}

// AccommodationUsecase defines the interface for listing business operations.
type AccommodationUsecase interface {
	// List returns every accommodation.
	List(ctx context.Context) ([]entity.Accommodation, error)

	// Get returns the accommodation with the given hex ID.
	Get(ctx context.Context, id string) (*entity.Accommodation, error)

	// Create persists a new accommodation owned by input.Owner.
	Create(ctx context.Context, input *CreateAccommodationInput) (*entity.Accommodation, error)

	// Update applies a partial overwrite; only the owner may update.
	Update(ctx context.Context, id string, input *UpdateAccommodationInput, caller primitive.ObjectID) (*entity.Accommodation, error)

	// Delete removes the accommodation; only the owner may delete.
	Delete(ctx context.Context, id string, caller primitive.ObjectID) error
}
