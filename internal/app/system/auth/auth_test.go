package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func newTestManager(t *testing.T) *SessionManager {
	t.Helper()
	sm, err := NewSessionManager(strings.Repeat("k", 32), "storemap-test", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}
	return sm
}

func TestNewSessionManager_EmptyKey(t *testing.T) {
	if _, err := NewSessionManager("", "s", "", false, zap.NewNop()); err == nil {
		t.Error("expected an error for an empty session key")
	}
}

func TestCurrentUser_NotSignedIn(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	if _, ok := CurrentUser(r); ok {
		t.Error("expected no current user on a bare request")
	}
}

func TestWithTestUser(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r = WithTestUser(r, &SessionUser{ID: "507f1f77bcf86cd799439011", Name: "Ada", Email: "ada@example.com"})

	u, ok := CurrentUser(r)
	if !ok {
		t.Fatal("expected a current user")
	}
	if u.Name != "Ada" {
		t.Errorf("Name = %q, want Ada", u.Name)
	}
	if _, err := u.ObjectID(); err != nil {
		t.Errorf("ObjectID() failed: %v", err)
	}
}

func TestRequireSignedIn_RedirectsHTML(t *testing.T) {
	sm := newTestManager(t)

	called := false
	h := sm.RequireSignedIn(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	r := httptest.NewRequest("GET", "/stores/new", nil)
	r.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)

	if called {
		t.Error("handler must not run for an anonymous request")
	}
	if rec.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	loc := rec.Header().Get("Location")
	if !strings.HasPrefix(loc, "/login?return=") {
		t.Errorf("Location = %q, want /login?return=…", loc)
	}
}

func TestRequireSignedIn_API401(t *testing.T) {
	sm := newTestManager(t)

	h := sm.RequireSignedIn(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	r := httptest.NewRequest("POST", "/api/stores/507f1f77bcf86cd799439011/heart", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireSignedIn_PassesThrough(t *testing.T) {
	sm := newTestManager(t)

	called := false
	h := sm.RequireSignedIn(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	r := httptest.NewRequest("GET", "/stores/new", nil)
	r = WithTestUser(r, &SessionUser{ID: "507f1f77bcf86cd799439011", Name: "Ada"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)

	if !called {
		t.Error("handler should run for a signed-in request")
	}
}

func TestFlashRoundTrip(t *testing.T) {
	sm := newTestManager(t)

	// Queue a flash and capture the cookie.
	r1 := httptest.NewRequest("GET", "/", nil)
	rec1 := httptest.NewRecorder()
	sm.Flash(rec1, r1, FlashInfo, "heads up")

	cookies := rec1.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie to be set")
	}

	// Replay the cookie; the flash should come back exactly once.
	r2 := httptest.NewRequest("GET", "/", nil)
	for _, c := range cookies {
		r2.AddCookie(c)
	}
	rec2 := httptest.NewRecorder()
	flashes := sm.TakeFlashes(rec2, r2)
	if len(flashes) != 1 {
		t.Fatalf("expected 1 flash, got %d", len(flashes))
	}
	if flashes[0].Kind != FlashInfo || flashes[0].Message != "heads up" {
		t.Errorf("unexpected flash: %+v", flashes[0])
	}

	// Draining again with the refreshed cookie yields nothing.
	r3 := httptest.NewRequest("GET", "/", nil)
	for _, c := range rec2.Result().Cookies() {
		r3.AddCookie(c)
	}
	rec3 := httptest.NewRecorder()
	if left := sm.TakeFlashes(rec3, r3); len(left) != 0 {
		t.Errorf("expected no flashes on second drain, got %d", len(left))
	}
}
