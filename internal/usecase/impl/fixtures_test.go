package impl

import (
	"context"
	stderrors "errors"
	"log/slog"
	"sync"
	"testing"

	"travelapp/config"
	"travelapp/internal/domain/entity"
	"travelapp/internal/domain/repository"
	"travelapp/internal/infra/auth"
	"travelapp/internal/usecase"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeUserRepo is an in-memory UserRepository for usecase tests.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]entity.User)}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &user, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			return &user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repository.ErrEmailTaken
		}
	}

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users[user.ID] = *user

	return nil
}

// fakeAccommodationRepo is an in-memory AccommodationRepository preserving
// insertion order.
type fakeAccommodationRepo struct {
	mu    sync.Mutex
	order []primitive.ObjectID
	docs  map[primitive.ObjectID]entity.Accommodation
}

func newFakeAccommodationRepo() *fakeAccommodationRepo {
	return &fakeAccommodationRepo{docs: make(map[primitive.ObjectID]entity.Accommodation)}
}

func (r *fakeAccommodationRepo) FindAll(_ context.Context) ([]entity.Accommodation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]entity.Accommodation, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, r.docs[id])
	}

	return all, nil
}

func (r *fakeAccommodationRepo) FindByID(_ context.Context, id primitive.ObjectID) (*entity.Accommodation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.docs[id]
	if !ok {
		return nil, repository.ErrAccommodationNotFound
	}

	return &doc, nil
}

func (r *fakeAccommodationRepo) Create(_ context.Context, accommodation *entity.Accommodation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if accommodation.ID.IsZero() {
		accommodation.ID = primitive.NewObjectID()
	}
	r.docs[accommodation.ID] = *accommodation
	r.order = append(r.order, accommodation.ID)

	return nil
}

func (r *fakeAccommodationRepo) Update(_ context.Context, accommodation *entity.Accommodation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[accommodation.ID]; !ok {
		return repository.ErrAccommodationNotFound
	}
	r.docs[accommodation.ID] = *accommodation

	return nil
}

func (r *fakeAccommodationRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[id]; !ok {
		return repository.ErrAccommodationNotFound
	}
	delete(r.docs, id)
	for i, stored := range r.order {
		if stored == id {
			r.order = append(r.order[:i], r.order[i+1:]...)

			break
		}
	}

	return nil
}

// failingUserRepo simulates an unreachable store.
type failingUserRepo struct{}

var errStoreDown = stderrors.New("store down")

func (failingUserRepo) FindByID(context.Context, primitive.ObjectID) (*entity.User, error) {
	return nil, errStoreDown
}

func (failingUserRepo) FindByEmail(context.Context, string) (*entity.User, error) {
	return nil, errStoreDown
}

func (failingUserRepo) Create(context.Context, *entity.User) error {
	return errStoreDown
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Session = "test-secret"
	cfg.Auth = &config.AuthConfig{BcryptCost: 4}

	return cfg
}

func newTestAuthService(t *testing.T, userRepo repository.UserRepository) usecase.AuthUsecase {
	t.Helper()

	cfg := testConfig()
	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokenService,
		Logger:       slog.Default(),
	})
}

func newTestAccommodationService(repo repository.AccommodationRepository) usecase.AccommodationUsecase {
	return NewAccommodationService(AccommodationServiceParams{
		AccommodationRepo: repo,
		Logger:            slog.Default(),
	})
}
