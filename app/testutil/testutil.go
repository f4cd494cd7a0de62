// Package testutil builds a fully wired application over an in-memory
// database for handler tests.
package testutil

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kinfelix50-dotcom/veli-portali/app/config"
	"github.com/kinfelix50-dotcom/veli-portali/app/database"
	"github.com/kinfelix50-dotcom/veli-portali/app/routes/admin"
	"github.com/kinfelix50-dotcom/veli-portali/app/routes/auth"
	"github.com/kinfelix50-dotcom/veli-portali/app/routes/pages"
	"github.com/kinfelix50-dotcom/veli-portali/app/routes/veli"
)

var dbCounter atomic.Int64

// NewDB opens a fresh in-memory database, migrated and seeded.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.SeedAdmin(db))
	return db
}

// NewApp wires the full route surface against a fresh database and
// installs it as the active config.
func NewApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db := NewDB(t)
	config.AppConfig = &config.Config{
		DB:        db,
		SecretKey: "test-secret-key",
		Port:      "0",
		Upload: config.UploadConfig{
			Folder:            "static/uploads",
			MaxContentLength:  16 * 1024 * 1024,
			AllowedExtensions: []string{"png", "jpg", "jpeg", "gif", "pdf"},
		},
	}

	engine := html.New(templatesDir(), ".html")
	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layouts/main",
	})

	pages.SetupPageRoutes(app)
	auth.SetupAuthRoutes(app)
	admin.SetupAdminRoutes(app)
	veli.SetupVeliRoutes(app)

	return app, db
}

func templatesDir() string {
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(thisFile), "..", "templates")
}

// Get performs a GET request, optionally with a session cookie.
func Get(t *testing.T, app *fiber.App, path, session string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if session != "" {
		req.AddCookie(&http.Cookie{Name: "jwt_token", Value: session})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// PostForm performs a form POST, optionally with a session cookie.
func PostForm(t *testing.T, app *fiber.App, path, session string, form url.Values) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if session != "" {
		req.AddCookie(&http.Cookie{Name: "jwt_token", Value: session})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// PostJSON performs a JSON POST, optionally with a session cookie.
func PostJSON(t *testing.T, app *fiber.App, path, session, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.AddCookie(&http.Cookie{Name: "jwt_token", Value: session})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// RegisterVeli registers a guardian account through the public form.
func RegisterVeli(t *testing.T, app *fiber.App, email, password, ad, soyad string) {
	t.Helper()

	resp := PostForm(t, app, "/kayit", "", url.Values{
		"email":    {email},
		"password": {password},
		"ad":       {ad},
		"soyad":    {soyad},
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/giris", resp.Header.Get("Location"))
}

// Login authenticates and returns the session cookie value. Fails the
// test when login does not succeed.
func Login(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()

	resp := PostForm(t, app, "/giris", "", url.Values{
		"email":    {email},
		"password": {password},
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	session := SessionCookie(resp)
	require.NotEmpty(t, session, "expected a session cookie after login")
	return session
}

// SessionCookie extracts the session token from a response, or "".
func SessionCookie(resp *http.Response) string {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "jwt_token" && cookie.Value != "" {
			return cookie.Value
		}
	}
	return ""
}

// ReadBody drains and returns the response body.
func ReadBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return string(body)
}
