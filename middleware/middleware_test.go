package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/quickpoll/quickpoll/auth"
	"github.com/quickpoll/quickpoll/models"
	"github.com/quickpoll/quickpoll/store"
	"github.com/quickpoll/quickpoll/testutil"
)

func TestWithLogging(t *testing.T) {
	// Create a simple handler that returns OK
	handlerCalled := false
	testHandler := func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	}

	wrappedHandler := WithLogging(testHandler)

	req := httptest.NewRequest("GET", "/test-path", nil)
	w := httptest.NewRecorder()

	wrappedHandler(w, req)

	if !handlerCalled {
		t.Error("Expected handler to be called")
	}
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "success" {
		t.Errorf("Expected body 'success', got '%s'", w.Body.String())
	}
}

func TestCORSPreflight(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Preflight must not reach the wrapped handler")
	}))

	req := httptest.NewRequest("OPTIONS", "/api/polls", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 for preflight, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Expected origin echoed back, got %q", got)
	}
	if !strings.Contains(w.Header().Get("Access-Control-Allow-Methods"), "PATCH") {
		t.Error("Expected PATCH in allowed methods")
	}
}

func TestCORSPassesThrough(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest("GET", "/api/polls", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusTeapot {
		t.Errorf("Expected wrapped handler status, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("Expected CORS headers on normal responses too")
	}
}

func TestErrorResponseShape(t *testing.T) {
	w := httptest.NewRecorder()
	ErrorResponse(w, http.StatusForbidden, "no can do")

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Error != "Forbidden" {
		t.Errorf("Expected error 'Forbidden', got %q", resp.Error)
	}
	if resp.Message != "no can do" {
		t.Errorf("Expected message 'no can do', got %q", resp.Message)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected JSON content type, got %q", ct)
	}
}

func TestRequireAuth(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	users := store.NewUserStore(db)
	user := testutil.CreateTestUser(t, db, "alice", "alice@example.com")

	protected := RequireAuth(users, cfg.JWTSecret, func(w http.ResponseWriter, r *http.Request) {
		got, ok := UserFrom(r.Context())
		if !ok {
			t.Error("Expected user in request context")
		}
		if got.ID != user.ID {
			t.Errorf("Expected user %s in context, got %s", user.ID, got.ID)
		}
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{"valid token", "Bearer " + testutil.AuthToken(t, cfg, user.ID), http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc123", http.StatusUnauthorized},
		{"empty bearer", "Bearer ", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()

			protected(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("Expected status %d, got %d. Body: %s", tc.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestRequireAuthExpiredToken(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	users := store.NewUserStore(db)
	user := testutil.CreateTestUser(t, db, "alice", "alice@example.com")

	expired, err := auth.GenerateToken(user.ID, cfg.JWTSecret, -time.Minute)
	if err != nil {
		t.Fatalf("Failed to generate expired token: %v", err)
	}

	protected := RequireAuth(users, cfg.JWTSecret, func(w http.ResponseWriter, r *http.Request) {
		t.Error("Handler must not run with an expired token")
	})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	w := httptest.NewRecorder()

	protected(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}
}

func TestRequireAuthDeletedUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	users := store.NewUserStore(db)
	user := testutil.CreateTestUser(t, db, "ghost", "ghost@example.com")
	token := testutil.AuthToken(t, cfg, user.ID)

	// Account disappears after the token was issued
	if _, err := db.Exec("DELETE FROM app_user WHERE id = $1", user.ID); err != nil {
		t.Fatalf("Failed to delete user: %v", err)
	}

	protected := RequireAuth(users, cfg.JWTSecret, func(w http.ResponseWriter, r *http.Request) {
		t.Error("Handler must not run for a deleted account")
	})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	protected(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}
}
