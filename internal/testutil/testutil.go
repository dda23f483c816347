package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pollbooth-dev/pollbooth/db"
	"github.com/pollbooth-dev/pollbooth/internal/auth"
	"github.com/pollbooth-dev/pollbooth/internal/config"
	"github.com/pollbooth-dev/pollbooth/internal/models"
	"github.com/pollbooth-dev/pollbooth/internal/router"
	"github.com/pollbooth-dev/pollbooth/internal/store"
	"gorm.io/gorm"
)

// TestSecret signs session tokens in tests.
const TestSecret = "test-session-secret"

// SetupTestDB opens a fresh in-memory sqlite database with the full
// schema. Connections are capped at one so every query sees the same
// in-memory database.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gin.SetMode(gin.TestMode)

	conn, err := db.ConnectDatabase(config.Config{
		DatabaseType: "sqlite",
		DatabaseURL:  ":memory:",
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("Failed to access sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.MigrateDatabase(conn); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return conn
}

// NewTestApp builds the full router over a fresh in-memory database.
func NewTestApp(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()

	st := store.New(SetupTestDB(t))
	origins := []string{"http://localhost:5173"}
	return router.NewRouter(st, auth.NewSessions(TestSecret), origins), st
}

// CreateTestUser registers a user directly through the auth service.
func CreateTestUser(t *testing.T, st *store.Store, username, password string) *models.User {
	t.Helper()

	user, err := auth.NewService(st).Register(username, password)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return user
}

// CreateTestPoll creates a poll with the given option texts.
func CreateTestPoll(t *testing.T, st *store.Store, question string, options ...string) *models.Poll {
	t.Helper()

	poll, err := st.CreatePoll(question, options)
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	return poll
}

// SessionCookie mints a session cookie for the given user.
func SessionCookie(t *testing.T, user *models.User) *http.Cookie {
	t.Helper()

	token, err := auth.NewSessions(TestSecret).Issue(user.ID, user.Username)
	if err != nil {
		t.Fatalf("Failed to issue session token: %v", err)
	}

	return &http.Cookie{Name: auth.SessionCookie, Value: token}
}

// MakeFormRequest builds a form-encoded HTTP test request.
func MakeFormRequest(method, path string, form url.Values, cookies ...*http.Cookie) *http.Request {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for _, c := range cookies {
		req.AddCookie(c)
	}

	return req
}

// AssertStatus checks that the response has the expected status code.
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertRedirect checks status and Location of a redirect response.
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, status int, location string) {
	t.Helper()
	AssertStatus(t, w, status)
	if got := w.Header().Get("Location"); got != location {
		t.Errorf("Expected redirect to %q, got %q", location, got)
	}
}

// AssertJSON decodes the response body into the provided struct.
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
