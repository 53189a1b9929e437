// internal/interfaces/http/routes/routes_test.go
package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Zevk4/levelup-store/internal/config"
	"github.com/Zevk4/levelup-store/internal/domain/auth"
	"github.com/Zevk4/levelup-store/internal/domain/cart"
	"github.com/Zevk4/levelup-store/internal/domain/catalog"
	"github.com/Zevk4/levelup-store/internal/domain/ui"
	pkgauth "github.com/Zevk4/levelup-store/internal/pkg/auth"
	"github.com/Zevk4/levelup-store/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "Level-UP Store"
	cfg.App.Environment = "test"
	cfg.JWT.Secret = "test-secret-key-with-at-least-32-characters"
	cfg.JWT.AccessTokenExpiry = time.Hour
	cfg.Security.BcryptCost = 4
	return cfg
}

func testRouter() (*gin.Engine, *Deps) {
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := testConfig()
	passwords := pkgauth.NewPasswordManager(cfg)

	preloaded := []auth.User{
		{ID: 1, Name: "Carlos Soto", Email: "admin@levelup.cl", Password: "admin123", Role: auth.RoleAdmin},
		{ID: 2, Name: "Juan Pérez", Email: "cliente@levelup.cl", Password: "cliente123", Role: auth.RoleCustomer},
	}

	seedProducts := []catalog.Product{
		{Code: "JM001", Category: "Juegos", Subcategory: "Juegos de Mesa", Name: "Catan", Price: 29990, Description: "Juego de estrategia"},
		{Code: "JM002", Category: "Juegos", Subcategory: "Juegos de Mesa", Name: "Carcassonne", Price: 24990, Description: "Losetas medievales"},
	}

	deps := &Deps{
		Config:  cfg,
		Auth:    auth.NewStore(storage.NewMemory(), storage.NewMemory(), preloaded, passwords, logger),
		Cart:    cart.NewStore(storage.NewMemory(), logger),
		Catalog: catalog.NewStore(storage.NewMemory(), seedProducts, logger),
		Modals:  ui.NewModalStore(),
		Categories: []catalog.Category{
			{Title: "Juegos", Link: "/categoria/Juegos"},
		},
	}

	engine := gin.New()
	SetupRoutes(engine.Group("/api/v1"), deps)
	return engine, deps
}

func doJSON(engine *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func loginToken(t *testing.T, engine *gin.Engine, email, password string) string {
	t.Helper()

	w := doJSON(engine, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.AccessToken)
	return resp.Data.AccessToken
}

func TestLoginAndProfile(t *testing.T) {
	engine, _ := testRouter()

	token := loginToken(t, engine, "admin@levelup.cl", "admin123")

	w := doJSON(engine, http.MethodGet, "/api/v1/auth/profile", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin@levelup.cl")
	assert.NotContains(t, w.Body.String(), "admin123")
}

func TestLoginInvalidCredentials(t *testing.T) {
	engine, _ := testRouter()

	w := doJSON(engine, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    "admin@levelup.cl",
		"password": "wrongpass",
	}, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid email or password")
}

func TestRegisterValidationFailure(t *testing.T) {
	engine, _ := testRouter()

	w := doJSON(engine, http.MethodPost, "/api/v1/auth/register", gin.H{
		"name":     "Ana",
		"email":    "ana@x.com",
		"password": "12345", // too short
	}, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "password must be at least 6 characters")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	engine, _ := testRouter()

	w := doJSON(engine, http.MethodPost, "/api/v1/auth/register", gin.H{
		"name":     "Impostor",
		"email":    "admin@levelup.cl",
		"password": "whatever1",
	}, "")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "email is already registered")
}

func TestAdminRouteGating(t *testing.T) {
	engine, _ := testRouter()

	submission := gin.H{
		"name":        "Exploding Kittens",
		"description": "Juego de cartas",
		"price":       15990,
		"category":    "Juegos",
		"subcategory": "Juegos de Mesa",
	}

	// No token.
	w := doJSON(engine, http.MethodPost, "/api/v1/admin/products", submission, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Customer token.
	customerToken := loginToken(t, engine, "cliente@levelup.cl", "cliente123")
	w = doJSON(engine, http.MethodPost, "/api/v1/admin/products", submission, customerToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminCreateProductGeneratesCode(t *testing.T) {
	engine, deps := testRouter()

	adminToken := loginToken(t, engine, "admin@levelup.cl", "admin123")

	w := doJSON(engine, http.MethodPost, "/api/v1/admin/products", gin.H{
		"name":        "Exploding Kittens",
		"description": "Juego de cartas",
		"price":       15990,
		"category":    "Juegos",
		"subcategory": "Juegos de Mesa",
	}, adminToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Seed holds JM001/JM002, so the generated code continues the run.
	assert.Contains(t, w.Body.String(), `"JM003"`)

	product, ok := deps.Catalog.ByCode("JM003")
	require.True(t, ok)
	assert.Equal(t, "Exploding Kittens", product.Name)
}

func TestCartFlow(t *testing.T) {
	engine, deps := testRouter()

	// Add the same product twice: one line, quantity 2.
	w := doJSON(engine, http.MethodPost, "/api/v1/cart/items", gin.H{"code": "JM001"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(engine, http.MethodPost, "/api/v1/cart/items", gin.H{"code": "JM001"}, "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 2, deps.Cart.ItemCount())
	assert.Equal(t, int64(2*29990), deps.Cart.Total())
	assert.Len(t, deps.Cart.Lines(), 1)

	// Unknown product is a 404, cart untouched.
	w = doJSON(engine, http.MethodPost, "/api/v1/cart/items", gin.H{"code": "XX999"}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 2, deps.Cart.ItemCount())

	// Removing deletes the whole line.
	w = doJSON(engine, http.MethodDelete, "/api/v1/cart/items/JM001", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, deps.Cart.ItemCount())

	// Drawer endpoints only touch the flag.
	w = doJSON(engine, http.MethodPost, "/api/v1/cart/open", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, deps.Cart.IsOpen())

	w = doJSON(engine, http.MethodDelete, "/api/v1/cart", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, deps.Cart.IsOpen())
}

func TestProductBrowsing(t *testing.T) {
	engine, _ := testRouter()

	w := doJSON(engine, http.MethodGet, "/api/v1/products", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":2`)

	w = doJSON(engine, http.MethodGet, "/api/v1/products?category=Juegos&subcategory=Juegos+de+Mesa", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":2`)

	w = doJSON(engine, http.MethodGet, "/api/v1/products/search?q=catan", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)

	w = doJSON(engine, http.MethodGet, "/api/v1/products/search", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(engine, http.MethodGet, "/api/v1/products/JM002", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Carcassonne")

	w = doJSON(engine, http.MethodGet, "/api/v1/products/XX999", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(engine, http.MethodGet, "/api/v1/categories", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Juegos")
}

func TestUIStateEndpoints(t *testing.T) {
	engine, deps := testRouter()

	w := doJSON(engine, http.MethodGet, "/api/v1/ui/state", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"login_modal_open":false`)

	w = doJSON(engine, http.MethodPost, "/api/v1/ui/login-modal/open", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, deps.Modals.LoginOpen())

	// A successful login closes the overlay.
	loginToken(t, engine, "cliente@levelup.cl", "cliente123")
	assert.False(t, deps.Modals.LoginOpen())
}
