package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/dveras/focado/internal/auth"
	"github.com/dveras/focado/internal/database"
	"github.com/dveras/focado/internal/store"
)

func setupAuthTest(t *testing.T) *store.UserStore {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return store.NewUserStore(db)
}

func TestRequireUserPopulatesContext(t *testing.T) {
	users := setupAuthTest(t)

	u, err := users.Create("alice", "alice@example.com", "x")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	var gotID int64
	handler := RequireUser(users)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = auth.UserID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("X-User-ID", strconv.FormatInt(u.ID, 10))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotID != u.ID {
		t.Errorf("context user id = %d, want %d", gotID, u.ID)
	}
}

func TestRequireUserRejectsMissingHeader(t *testing.T) {
	users := setupAuthTest(t)

	handler := RequireUser(users)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestRequireUserRejectsUnknownUser(t *testing.T) {
	users := setupAuthTest(t)

	handler := RequireUser(users)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("X-User-ID", "9999")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
