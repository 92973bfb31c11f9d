package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

var testSecret = []byte("test-secret")

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("u1", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	userID, err := UserIDFromToken(token, testSecret)
	if err != nil {
		t.Fatalf("UserIDFromToken failed: %v", err)
	}
	if userID != "u1" {
		t.Errorf("Expected u1, got %q", userID)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("u1", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := UserIDFromToken(token, []byte("other-secret")); err == nil {
		t.Error("Expected validation to fail with the wrong secret")
	}
}

func TestExpiredToken(t *testing.T) {
	token, err := GenerateToken("u1", testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := UserIDFromToken(token, testSecret); err == nil {
		t.Error("Expected an expired token to be rejected")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "hunter2" {
		t.Error("Expected the password to be hashed")
	}
	if !CheckPassword(hash, "hunter2") {
		t.Error("Expected the password to verify")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("Expected a wrong password to fail")
	}
}

func TestMiddlewareResolvesSession(t *testing.T) {
	token, err := GenerateToken("u1", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	var got string
	handler := Middleware(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = UserID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	handler.ServeHTTP(httptest.NewRecorder(), req)
	if got != "u1" {
		t.Errorf("Expected user u1, got %q", got)
	}

	// A garbage cookie passes through unauthenticated.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "garbage"})
	handler.ServeHTTP(httptest.NewRecorder(), req)
	if got != "" {
		t.Errorf("Expected no user, got %q", got)
	}
}

func TestRequireUserRedirects(t *testing.T) {
	handler := RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Errorf("Expected redirect status %d, got %d", http.StatusFound, w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Errorf("Expected redirect to /login, got %q", loc)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithUserID(req.Context(), "u1"))
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("Expected authenticated request to pass, got %d", w.Code)
	}
}
