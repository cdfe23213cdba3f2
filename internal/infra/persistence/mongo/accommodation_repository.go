package mongo

import (
	"context"

	"travelapp/internal/domain/entity"
	"travelapp/internal/domain/repository"
	"travelapp/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const accommodationCollection = "accommodations"

// accommodationRepository implements repository.AccommodationRepository on a Mongo collection.
type accommodationRepository struct {
	coll *mongo.Collection
}

// NewAccommodationRepository is the constructor for accommodationRepository.
func NewAccommodationRepository(db *mongo.Database) repository.AccommodationRepository {
	return &accommodationRepository{coll: db.Collection(accommodationCollection)}
}

// FindAll retrieves every accommodation in insertion order.
func (repo *accommodationRepository) FindAll(ctx context.Context) ([]entity.Accommodation, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accommodations")
	}

	// Decode into a non-nil slice so an empty collection serializes as [].
	accommodations := make([]entity.Accommodation, 0)
	if err := cursor.All(ctx, &accommodations); err != nil {
		return nil, errors.Wrap(err, "failed to decode accommodations")
	}

	return accommodations, nil
}

// FindByID retrieves a single accommodation by its unique ID.
func (repo *accommodationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Accommodation, error) {
	var accommodation entity.Accommodation
	if err := repo.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&accommodation); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrAccommodationNotFound
		}

		return nil, errors.Wrap(err, "failed to find accommodation by id")
	}

	return &accommodation, nil
}

// Create persists a new accommodation and fills in the generated ID.
func (repo *accommodationRepository) Create(ctx context.Context, accommodation *entity.Accommodation) error {
	if accommodation.ID.IsZero() {
		accommodation.ID = primitive.NewObjectID()
	}

	if _, err := repo.coll.InsertOne(ctx, accommodation); err != nil {
		return errors.Wrap(err, "failed to create accommodation")
	}

	return nil
}

// Update replaces the stored accommodation with the given one.
func (repo *accommodationRepository) Update(ctx context.Context, accommodation *entity.Accommodation) error {
	result, err := repo.coll.ReplaceOne(ctx, bson.M{"_id": accommodation.ID}, accommodation)
	if err != nil {
		return errors.Wrap(err, "failed to update accommodation")
	}
	if result.MatchedCount == 0 {
		return repository.ErrAccommodationNotFound
	}

	return nil
}

// Delete removes the accommodation with the given ID.
func (repo *accommodationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := repo.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "failed to delete accommodation")
	}
	if result.DeletedCount == 0 {
		return repository.ErrAccommodationNotFound
	}

	return nil
}
