package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/marketplace/internal/api/http"
	"github.com/spec-kit/marketplace/internal/api/http/handlers"
	"github.com/spec-kit/marketplace/internal/auth"
	"github.com/spec-kit/marketplace/internal/config"
	"github.com/spec-kit/marketplace/internal/domain"
	"github.com/spec-kit/marketplace/internal/observability"
	"github.com/spec-kit/marketplace/internal/service"
)

// --- in-memory repositories ---

type fakeUserRepo struct {
	byEmail map[string]*domain.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, pgx.ErrNoRows
}

type fakeVendorRepo struct {
	byUserID map[string]*domain.Vendor
}

func (f *fakeVendorRepo) Create(_ context.Context, vendor *domain.Vendor) error {
	vendor.CreatedAt = time.Now()
	vendor.UpdatedAt = vendor.CreatedAt
	f.byUserID[vendor.UserID] = vendor
	return nil
}

func (f *fakeVendorRepo) GetByID(_ context.Context, id string) (*domain.Vendor, error) {
	for _, v := range f.byUserID {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeVendorRepo) GetByUserID(_ context.Context, userID string) (*domain.Vendor, error) {
	if v, ok := f.byUserID[userID]; ok {
		return v, nil
	}
	return nil, pgx.ErrNoRows
}

type fakeStoreRepo struct {
	bySlug map[string]*domain.Store
	order  []string
}

func (f *fakeStoreRepo) Create(_ context.Context, store *domain.Store) error {
	store.CreatedAt = time.Now()
	store.UpdatedAt = store.CreatedAt
	f.bySlug[store.Slug] = store
	f.order = append(f.order, store.Slug)
	return nil
}

func (f *fakeStoreRepo) GetBySlug(_ context.Context, slug string) (*domain.Store, error) {
	if s, ok := f.bySlug[slug]; ok {
		return s, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeStoreRepo) ListByVendor(_ context.Context, vendorID string) ([]domain.Store, error) {
	stores := make([]domain.Store, 0)
	for _, slug := range f.order {
		if f.bySlug[slug].VendorID == vendorID {
			stores = append(stores, *f.bySlug[slug])
		}
	}
	return stores, nil
}

// --- app wiring ---

func testConfig() config.Config {
	return config.Config{
		App: config.AppConfig{CORSOrigins: "http://localhost:3000"},
		Auth: config.AuthConfig{
			JWTSecret:     "test-secret",
			TokenTTLHours: 24,
			BcryptCost:    4,
		},
	}
}

func newApp(t *testing.T, cfg config.Config) *fiber.App {
	t.Helper()
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, cfg.App, zap.NewNop(), observability.NewMetrics())
	return app
}

func newAuthApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := testConfig()

	authService := service.NewAuthService(cfg, service.AuthDependencies{
		UserRepo: &fakeUserRepo{byEmail: make(map[string]*domain.User)},
	})

	app := newApp(t, cfg)
	httptransport.RegisterAuthRoutes(app, httptransport.AuthRouteConfig{
		Health: handlers.NewHealthHandler("auth-service", "test", nil, nil),
		Auth:   handlers.NewAuthHandler(authService),
	})
	return app
}

func newVendorApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := testConfig()

	vendorService := service.NewVendorService(service.VendorDependencies{
		VendorRepo: &fakeVendorRepo{byUserID: make(map[string]*domain.Vendor)},
		StoreRepo:  &fakeStoreRepo{bySlug: make(map[string]*domain.Store)},
	})
	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLHours)

	app := newApp(t, cfg)
	httptransport.RegisterVendorRoutes(app, httptransport.VendorRouteConfig{
		Health:         handlers.NewHealthHandler("vendor-service", "test", nil, nil),
		Vendor:         handlers.NewVendorHandler(vendorService),
		AuthMiddleware: auth.NewMiddleware(tokenManager),
	})
	return app
}

// --- request helpers ---

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

func doJSONList(t *testing.T, app *fiber.App, path, token string) (int, []map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded []map[string]any
	if len(raw) > 0 && raw[0] == '[' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

func register(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()
	status, body := doJSON(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusCreated, status)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func vendorBody(name string) fiber.Map {
	return fiber.Map{
		"businessName": name,
		"businessType": "retail",
		"address":      "1 Main St",
		"city":         "Springfield",
		"state":        "IL",
		"zipCode":      "62701",
		"country":      "US",
	}
}

// --- auth service ---

func TestRegister_ThenDuplicateConflicts(t *testing.T) {
	app := newAuthApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"email": "a@x.com", "password": "pw1pw1",
	})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "User registered successfully", body["message"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "a@x.com", user["email"])
	assert.Equal(t, false, user["verified"])
	assert.NotContains(t, user, "password")

	status, _ = doJSON(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"email": "a@x.com", "password": "pw2pw2",
	})
	assert.Equal(t, http.StatusConflict, status)
}

func TestRegister_ValidationFailures(t *testing.T) {
	app := newAuthApp(t)

	status, _ := doJSON(t, app, http.MethodPost, "/auth/register", "", fiber.Map{"email": "a@x.com"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doJSON(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"email": "not-an-email", "password": "pw1pw1",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doJSON(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"email": "a@x.com", "password": "pw",
	})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestLogin_WrongPasswordGenericMessage(t *testing.T) {
	app := newAuthApp(t)
	register(t, app, "a@x.com", "pw1pw1")

	status, wrongPw := doJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"email": "a@x.com", "password": "nope",
	})
	require.Equal(t, http.StatusUnauthorized, status)

	status, unknown := doJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"email": "nobody@x.com", "password": "pw1pw1",
	})
	require.Equal(t, http.StatusUnauthorized, status)

	wrongMsg := wrongPw["error"].(map[string]any)["message"]
	unknownMsg := unknown["error"].(map[string]any)["message"]
	assert.Equal(t, wrongMsg, unknownMsg)
}

func TestLogin_Success(t *testing.T) {
	app := newAuthApp(t)
	register(t, app, "a@x.com", "pw1pw1")

	status, body := doJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"email": "a@x.com", "password": "pw1pw1",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Login successful", body["message"])
	assert.NotEmpty(t, body["token"])
}

// --- vendor service ---

func TestVendorRoutes_RequireToken(t *testing.T) {
	app := newVendorApp(t)

	status, _ := doJSON(t, app, http.MethodGet, "/vendor/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = doJSON(t, app, http.MethodGet, "/vendor/profile", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestVendorFlow_RegistrationHandshake(t *testing.T) {
	authApp := newAuthApp(t)
	vendorApp := newVendorApp(t)

	// register at the auth service, spend the token at the vendor service
	t1 := register(t, authApp, "a@x.com", "pw1pw1")

	status, _ := doJSON(t, vendorApp, http.MethodGet, "/vendor/profile", t1, nil)
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = doJSON(t, vendorApp, http.MethodGet, "/vendor/stores", t1, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, body := doJSON(t, vendorApp, http.MethodPost, "/vendor/profile", t1, vendorBody("Acme"))
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Vendor profile created successfully", body["message"])
	vendorID := body["vendor"].(map[string]any)["id"].(string)
	require.NotEmpty(t, vendorID)

	status, _ = doJSON(t, vendorApp, http.MethodPost, "/vendor/profile", t1, vendorBody("Acme again"))
	assert.Equal(t, http.StatusConflict, status)

	status, body = doJSON(t, vendorApp, http.MethodPost, "/vendor/stores", t1, fiber.Map{
		"name": "Shop", "slug": "shop",
	})
	require.Equal(t, http.StatusCreated, status)
	store := body["store"].(map[string]any)
	assert.Equal(t, "shop", store["slug"])
	assert.Equal(t, vendorID, store["vendorId"])

	// a different user's token cannot reuse the slug
	t2 := register(t, authApp, "b@x.com", "pw2pw2")
	status, _ = doJSON(t, vendorApp, http.MethodPost, "/vendor/profile", t2, vendorBody("Globex"))
	require.Equal(t, http.StatusCreated, status)
	status, _ = doJSON(t, vendorApp, http.MethodPost, "/vendor/stores", t2, fiber.Map{
		"name": "Shop", "slug": "shop",
	})
	assert.Equal(t, http.StatusConflict, status)

	// profile view includes exactly the caller's stores
	status, body = doJSON(t, vendorApp, http.MethodGet, "/vendor/profile", t1, nil)
	require.Equal(t, http.StatusOK, status)
	stores := body["stores"].([]any)
	require.Len(t, stores, 1)

	status, items := doJSONList(t, vendorApp, "/vendor/stores", t2)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, items, 0)
}

func TestAdminProfileCheck_PathMismatchUnauthorized(t *testing.T) {
	authApp := newAuthApp(t)
	vendorApp := newVendorApp(t)

	t1 := register(t, authApp, "a@x.com", "pw1pw1")
	status, body := doJSON(t, vendorApp, http.MethodPost, "/vendor/profile", t1, vendorBody("Acme"))
	require.Equal(t, http.StatusCreated, status)
	vendorID := body["vendor"].(map[string]any)["id"].(string)

	status, _ = doJSON(t, vendorApp, http.MethodGet, "/vendor/profile/"+vendorID, t1, nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, vendorApp, http.MethodGet, "/vendor/profile/some-other-vendor", t1, nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	// no profile at all still yields NotFound, not Unauthorized
	t2 := register(t, authApp, "b@x.com", "pw2pw2")
	status, _ = doJSON(t, vendorApp, http.MethodGet, "/vendor/profile/"+vendorID, t2, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCreateStore_MissingNameRejected(t *testing.T) {
	authApp := newAuthApp(t)
	vendorApp := newVendorApp(t)

	t1 := register(t, authApp, "a@x.com", "pw1pw1")
	status, _ := doJSON(t, vendorApp, http.MethodPost, "/vendor/profile", t1, vendorBody("Acme"))
	require.Equal(t, http.StatusCreated, status)

	status, _ = doJSON(t, vendorApp, http.MethodPost, "/vendor/stores", t1, fiber.Map{"slug": "shop"})
	assert.Equal(t, http.StatusBadRequest, status)
}
