package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"friender/internal/cache"
	"friender/internal/config"
	"friender/internal/database"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testPassword = "TestPass123!@#"

// newTestApp spins up the full route surface over an in-memory database.
// Middleware is not installed: prometheus collectors register globally and
// would collide across tests.
func newTestApp(t *testing.T) (*fiber.App, *Server) {
	t.Helper()
	t.Setenv("APP_ENV", "test")

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWTSecret: "test-secret-not-for-production",
		Port:      "0",
		Env:       "test",
	}

	srv := NewServerWithDeps(cfg, db, nil)

	app := fiber.New()
	srv.SetupRoutes(app)
	return app, srv
}

// request performs an HTTP round trip against the test app and decodes the
// JSON response body into a generic map.
func request(t *testing.T, app *fiber.App, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
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

// requestList is request for endpoints returning a JSON array.
func requestList(t *testing.T, app *fiber.App, method, path, token string) (int, []map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

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

// signup registers a user through the API and returns their token.
func signup(t *testing.T, app *fiber.App, username string) string {
	t.Helper()

	status, body := request(t, app, http.MethodPost, "/api/auth/signup", "", map[string]any{
		"username":      username,
		"email":         username + "@example.com",
		"password":      testPassword,
		"location":      48197,
		"friend_radius": 25,
	})
	require.Equal(t, http.StatusCreated, status)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// signupAdmin registers an admin user and returns their token.
func signupAdmin(t *testing.T, app *fiber.App, username string) string {
	t.Helper()

	status, body := request(t, app, http.MethodPost, "/api/auth/signup", "", map[string]any{
		"username": username,
		"email":    username + "@example.com",
		"password": testPassword,
		"is_admin": true,
	})
	require.Equal(t, http.StatusCreated, status)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func resetCache() { cache.SetClient(nil) }
