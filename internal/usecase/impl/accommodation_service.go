package impl

import (
	"context"
	"log/slog"

	deliverycontext "travelapp/internal/delivery/context"
	"travelapp/internal/domain/entity"
	domainerrors "travelapp/internal/domain/errors"
	"travelapp/internal/domain/repository"
	"travelapp/internal/usecase"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"
)

// accommodationService implements the AccommodationUsecase interface.
type accommodationService struct {
	accommodationRepo repository.AccommodationRepository
	logger            *slog.Logger
}

// AccommodationServiceParams holds dependencies for accommodationService, injected by Fx.
type AccommodationServiceParams struct {
	fx.In

	AccommodationRepo repository.AccommodationRepository
	Logger            *slog.Logger
}

// NewAccommodationService is the constructor for accommodationService.
func NewAccommodationService(params AccommodationServiceParams) usecase.AccommodationUsecase {
	return &accommodationService{
		accommodationRepo: params.AccommodationRepo,
		logger:            params.Logger,
	}
}

func (srv *accommodationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// parseID turns a hex path parameter into an ObjectID, reporting malformed
// input as a validation failure.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domainerrors.NewValidation("Invalid ID")
	}

	return oid, nil
}

// List returns every accommodation.
func (srv *accommodationService) List(ctx context.Context) ([]entity.Accommodation, error) {
	accommodations, err := srv.accommodationRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accommodations")
	}

	return accommodations, nil
}

// Get returns the accommodation with the given hex ID.
func (srv *accommodationService) Get(ctx context.Context, id string) (*entity.Accommodation, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	accommodation, err := srv.accommodationRepo.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrAccommodationNotFound) {
			return nil, domainerrors.NewNotFound("Accommodation not found")
		}

		return nil, errors.Wrap(err, "failed to load accommodation")
	}

	return accommodation, nil
}

// Create persists a new accommodation. The owner always comes from the
// authenticated identity carried in input.Owner; any client-supplied owner
// never reaches this layer.
func (srv *accommodationService) Create(ctx context.Context, input *usecase.CreateAccommodationInput) (*entity.Accommodation, error) {
	if input.Owner.IsZero() {
		return nil, domainerrors.NewAuthentication("Not authorized")
	}

	accommodation := &entity.Accommodation{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Location:    input.Location,
		Images:      input.Images,
		Owner:       input.Owner,
	}
	if accommodation.Description == "" {
		accommodation.Description = entity.DefaultDescription
	}
	if accommodation.Images == nil {
		accommodation.Images = []string{}
	}

	if err := srv.accommodationRepo.Create(ctx, accommodation); err != nil {
		return nil, errors.Wrap(err, "failed to create accommodation")
	}

	srv.log(ctx).Info("Accommodation created",
		slog.String("accommodationID", accommodation.ID.Hex()),
		slog.String("ownerID", accommodation.Owner.Hex()),
	)

	return accommodation, nil
}

// Update applies a partial overwrite to an accommodation owned by the caller.
// Zero-valued name/price and absent location/images fall back to the stored
// value; description overwrites whenever the key was present, even when empty.
func (srv *accommodationService) Update(ctx context.Context, id string, input *usecase.UpdateAccommodationInput, caller primitive.ObjectID) (*entity.Accommodation, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	accommodation, err := srv.accommodationRepo.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrAccommodationNotFound) {
			return nil, domainerrors.NewNotFound("Accommodation not found")
		}

		return nil, errors.Wrap(err, "failed to load accommodation for update")
	}

	if accommodation.Owner != caller {
		srv.log(ctx).Warn("Rejected update by non-owner",
			slog.String("accommodationID", oid.Hex()),
			slog.String("callerID", caller.Hex()),
		)

		return nil, domainerrors.NewAuthentication("You are not authorized to update this accommodation")
	}

	if input.Name != nil && *input.Name != "" {
		accommodation.Name = *input.Name
	}
	if input.Description != nil {
		accommodation.Description = *input.Description
	}
	if input.Price != nil && *input.Price != 0 {
		accommodation.Price = *input.Price
	}
	if input.Location != nil {
		accommodation.Location = *input.Location
	}
	if input.Images != nil {
		accommodation.Images = *input.Images
	}

	if err := srv.accommodationRepo.Update(ctx, accommodation); err != nil {
		return nil, errors.Wrap(err, "failed to update accommodation")
	}

	return accommodation, nil
}

// Delete removes an accommodation owned by the caller. Ownership is verified
// before the document is touched, so an unauthorized attempt is a pure no-op.
func (srv *accommodationService) Delete(ctx context.Context, id string, caller primitive.ObjectID) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	accommodation, err := srv.accommodationRepo.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrAccommodationNotFound) {
			return domainerrors.NewNotFound("Accommodation not found")
		}

		return errors.Wrap(err, "failed to load accommodation for delete")
	}

	if accommodation.Owner != caller {
		srv.log(ctx).Warn("Rejected delete by non-owner",
			slog.String("accommodationID", oid.Hex()),
			slog.String("callerID", caller.Hex()),
		)

		return domainerrors.NewAuthentication("You are not authorized to delete this accommodation")
	}

	if err := srv.accommodationRepo.Delete(ctx, oid); err != nil {
		if errors.Is(err, repository.ErrAccommodationNotFound) {
			return domainerrors.NewNotFound("Accommodation not found")
		}

		return errors.Wrap(err, "failed to delete accommodation")
	}

	srv.log(ctx).Info("Accommodation deleted", slog.String("accommodationID", oid.Hex()))

	return nil
}
