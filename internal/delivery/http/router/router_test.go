package router_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"travelapp/config"
	"travelapp/internal/delivery/http/middleware"
	"travelapp/internal/delivery/http/router"
	"travelapp/internal/delivery/http/router/handler"
	"travelapp/internal/delivery/http/session"
	"travelapp/internal/delivery/http/validator"
	"travelapp/internal/domain/entity"
	"travelapp/internal/domain/repository"
	"travelapp/internal/infra/auth"
	"travelapp/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memoryUserRepo backs the auth flow in request-level tests.
type memoryUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]entity.User
}

func (r *memoryUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &user, nil
}

func (r *memoryUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			return &user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memoryUserRepo) Create(_ context.Context, user *entity.User) error {
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

// memoryAccommodationRepo backs the listing flow in request-level tests.
type memoryAccommodationRepo struct {
	mu    sync.Mutex
	order []primitive.ObjectID
	docs  map[primitive.ObjectID]entity.Accommodation
}

func (r *memoryAccommodationRepo) FindAll(_ context.Context) ([]entity.Accommodation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]entity.Accommodation, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, r.docs[id])
	}

	return all, nil
}

func (r *memoryAccommodationRepo) FindByID(_ context.Context, id primitive.ObjectID) (*entity.Accommodation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.docs[id]
	if !ok {
		return nil, repository.ErrAccommodationNotFound
	}

	return &doc, nil
}

func (r *memoryAccommodationRepo) Create(_ context.Context, accommodation *entity.Accommodation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if accommodation.ID.IsZero() {
		accommodation.ID = primitive.NewObjectID()
	}
	r.docs[accommodation.ID] = *accommodation
	r.order = append(r.order, accommodation.ID)

	return nil
}

func (r *memoryAccommodationRepo) Update(_ context.Context, accommodation *entity.Accommodation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[accommodation.ID]; !ok {
		return repository.ErrAccommodationNotFound
	}
	r.docs[accommodation.ID] = *accommodation

	return nil
}

func (r *memoryAccommodationRepo) Delete(_ context.Context, id primitive.ObjectID) error {
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

// newTestApp wires the full request pipeline against in-memory stores.
func newTestApp(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Session = "request-test-secret"
	cfg.Auth = &config.AuthConfig{BcryptCost: 4}

	logger := slog.Default()

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	authUC := impl.NewAuthService(impl.AuthServiceParams{
		UserRepo:     &memoryUserRepo{users: make(map[primitive.ObjectID]entity.User)},
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokenService,
		Logger:       logger,
	})
	accommodationUC := impl.NewAccommodationService(impl.AccommodationServiceParams{
		AccommodationRepo: &memoryAccommodationRepo{docs: make(map[primitive.ObjectID]entity.Accommodation)},
		Logger:            logger,
	})

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	router.NewRouter(router.RouterParams{
		AuthHandler:          handler.NewAuthHandler(authUC, logger),
		AccommodationHandler: handler.NewAccommodationHandler(accommodationUC, logger),
		SessionMiddleware:    middleware.NewSessionMiddleware(tokenService),
	}).RegisterRoutes(e)

	return e
}

func do(e *echo.Echo, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	res := rec.Result()
	defer res.Body.Close()

	for _, cookie := range res.Cookies() {
		if cookie.Name == session.CookieName {
			return cookie
		}
	}
	t.Fatal("expected a session cookie in the response")

	return nil
}

func errorMessages(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()

	var envelope struct {
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	messages := make([]string, 0, len(envelope.Errors))
	for _, e := range envelope.Errors {
		messages = append(messages, e.Message)
	}

	return messages
}

func register(t *testing.T, e *echo.Echo, name, email string) *http.Cookie {
	t.Helper()

	rec := do(e, http.MethodPost, "/api/v1/auth/register",
		`{"name":"`+name+`","email":"`+email+`","password":"password","passwordConfirm":"password"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	return sessionCookie(t, rec)
}

func TestRegisterEndpoint(t *testing.T) {
	e := newTestApp(t)

	t.Run("creates the user and sets the session cookie", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/api/v1/auth/register",
			`{"name":"Alice","email":"alice@example.com","password":"password","passwordConfirm":"password"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		var user map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
		assert.Equal(t, "alice@example.com", user["email"])
		assert.NotContains(t, user, "password")

		cookie := sessionCookie(t, rec)
		assert.NotEmpty(t, cookie.Value)
		assert.True(t, cookie.HttpOnly)
	})

	t.Run("aggregates every failed rule", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/api/v1/auth/register",
			`{"email":"not-an-email","password":"short","passwordConfirm":"short"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		assert.Equal(t, []string{
			"You must provide your name",
			"You must provide a valid email",
			"Password must be at least 6 characters",
			"Passwords must match",
		}, errorMessages(t, rec))
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/api/v1/auth/register",
			`{"name":"Alice","email":"alice@example.com","password":"password","passwordConfirm":"password"}`)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, []string{"Email in use"}, errorMessages(t, rec))
	})
}

func TestLoginEndpoint(t *testing.T) {
	e := newTestApp(t)
	register(t, e, "Alice", "alice@example.com")

	t.Run("returns the user and a fresh cookie", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/api/v1/auth/login",
			`{"email":"alice@example.com","password":"password"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, sessionCookie(t, rec).Value)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/api/v1/auth/login",
			`{"email":"alice@example.com","password":"wrong"}`)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, []string{"Invalid credentials"}, errorMessages(t, rec))
	})
}

func TestCurrentUserEndpoint(t *testing.T) {
	e := newTestApp(t)

	t.Run("reports no session as an empty object", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/v1/auth/currentuser", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{}`, rec.Body.String())
	})

	t.Run("reports a present session", func(t *testing.T) {
		cookie := register(t, e, "Alice", "alice@example.com")

		rec := do(e, http.MethodGet, "/api/v1/auth/currentuser", "", cookie)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `"currentUser"`, rec.Body.String())
	})
}

func TestLogoutEndpoint(t *testing.T) {
	e := newTestApp(t)
	register(t, e, "Alice", "alice@example.com")

	rec := do(e, http.MethodPost, "/api/v1/auth/logout", "")
	require.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookie(t, rec)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestAccommodationEndpoints(t *testing.T) {
	e := newTestApp(t)
	owner := register(t, e, "Alice", "alice@example.com")

	createBody := `{"name":"Harbour Loft","price":120,"location":{"type":"Point","coordinates":[13.4,52.52]}}`

	t.Run("create requires a session", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/api/v1/accommodations", createBody)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, []string{"Not authorized"}, errorMessages(t, rec))
	})

	t.Run("create validates the payload", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/api/v1/accommodations",
			`{"name":"ab","location":{"type":"Polygon","coordinates":[1,2]}}`, owner)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		assert.Equal(t, []string{
			"Name is required",
			"Price is required",
			"Location must be a GeoJSON Point",
		}, errorMessages(t, rec))
	})

	t.Run("create defaults the description", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/api/v1/accommodations", createBody, owner)
		require.Equal(t, http.StatusCreated, rec.Code)

		var created map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.Equal(t, entity.DefaultDescription, created["description"])
		assert.NotEmpty(t, created["user"])
	})

	t.Run("list and get are public", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/v1/accommodations", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var all []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
		require.NotEmpty(t, all)

		id, ok := all[0]["id"].(string)
		require.True(t, ok)

		rec = do(e, http.MethodGet, "/api/v1/accommodations/"+id, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("get rejects a malformed id", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/v1/accommodations/123", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, []string{"Invalid ID"}, errorMessages(t, rec))
	})

	t.Run("get reports an unknown id as missing", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/v1/accommodations/"+primitive.NewObjectID().Hex(), "")
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, []string{"Accommodation not found"}, errorMessages(t, rec))
	})
}

func TestOwnershipAcrossUsers(t *testing.T) {
	e := newTestApp(t)
	alice := register(t, e, "Alice", "alice@example.com")

	rec := do(e, http.MethodPost, "/api/v1/accommodations",
		`{"name":"Harbour Loft","price":120,"location":{"type":"Point","coordinates":[13.4,52.52]}}`, alice)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	id, ok := created["id"].(string)
	require.True(t, ok)

	bob := register(t, e, "Bob", "bob@example.com")

	t.Run("a non-owner cannot update", func(t *testing.T) {
		rec := do(e, http.MethodPut, "/api/v1/accommodations/"+id, `{"name":"Hijacked"}`, bob)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, []string{"You are not authorized to update this accommodation"}, errorMessages(t, rec))
	})

	t.Run("a non-owner cannot delete and the listing survives", func(t *testing.T) {
		rec := do(e, http.MethodDelete, "/api/v1/accommodations/"+id, "", bob)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, []string{"You are not authorized to delete this accommodation"}, errorMessages(t, rec))

		rec = do(e, http.MethodGet, "/api/v1/accommodations/"+id, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var fetched map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
		assert.Equal(t, "Harbour Loft", fetched["name"])
	})

	t.Run("the owner can update and delete", func(t *testing.T) {
		rec := do(e, http.MethodPut, "/api/v1/accommodations/"+id, `{"name":"Harbour Penthouse"}`, alice)
		require.Equal(t, http.StatusOK, rec.Code)

		var updated map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
		assert.Equal(t, "Harbour Penthouse", updated["name"])

		rec = do(e, http.MethodDelete, "/api/v1/accommodations/"+id, "", alice)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = do(e, http.MethodGet, "/api/v1/accommodations/"+id, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUnknownRouteUsesErrorEnvelope(t *testing.T) {
	e := newTestApp(t)

	rec := do(e, http.MethodGet, "/api/v1/nope", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, errorMessages(t, rec))
}
