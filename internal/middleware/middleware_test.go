package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/vals999/asis-backend/internal/middleware"
	"github.com/vals999/asis-backend/internal/utils"
)

// mockFetcher implements middleware.SessionFetcher without any database dependency.
type mockFetcher struct {
	session utils.SessionData
	err     error
}

func (m mockFetcher) FindSessionByID(id string) (utils.SessionData, error) {
	return m.session, m.err
}

// callWithCookie wraps a simple 200-OK inner handler in the provided middleware,
// optionally setting one cookie on the request, and returns the recorded response.
func callWithCookie(t *testing.T, mw func(http.Handler) http.Handler, cookieName, cookieValue string) *httptest.ResponseRecorder {
	t.Helper()

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := mw(inner)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if cookieName != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: cookieValue})
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// TestSessionMiddleware_MissingCookie verifies that a request with no session_id
// cookie receives a 401 response.
func TestSessionMiddleware_MissingCookie(t *testing.T) {
	fetcher := mockFetcher{}
	mw := middleware.SessionMiddleware(fetcher)

	rec := callWithCookie(t, mw, "", "")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

// TestSessionMiddleware_ExpiredSession verifies that a valid session_id cookie
// with an expired session receives a 401 containing "Session expired".
func TestSessionMiddleware_ExpiredSession(t *testing.T) {
	fetcher := mockFetcher{
		session: utils.SessionData{
			UserID:    "some-user",
			ExpiresAt: time.Now().Add(-1 * time.Hour),
		},
	}
	mw := middleware.SessionMiddleware(fetcher)

	rec := callWithCookie(t, mw, "session_id", "expired-session-id")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if body := rec.Body.String(); !strings.Contains(body, "Session expired") {
		t.Errorf("expected body to contain %q, got: %q", "Session expired", body)
	}
}

// TestSessionMiddleware_FetcherError verifies that a fetcher error results in 401.
func TestSessionMiddleware_FetcherError(t *testing.T) {
	fetcher := mockFetcher{err: errors.New("session not found")}
	mw := middleware.SessionMiddleware(fetcher)

	rec := callWithCookie(t, mw, "session_id", "nonexistent-session-id")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

// TestSessionMiddleware_ValidSession verifies that a valid, non-expired session
// passes through and that the userID is injected into the request context.
func TestSessionMiddleware_ValidSession(t *testing.T) {
	const wantUserID = "test-user-123"

	fetcher := mockFetcher{
		session: utils.SessionData{
			UserID:    wantUserID,
			ExpiresAt: time.Now().Add(1 * time.Hour),
		},
	}

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "userID not in context", http.StatusInternalServerError)
			return
		}
		if gotUserID != wantUserID {
			http.Error(w, "wrong userID in context: "+gotUserID, http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	handler := middleware.SessionMiddleware(fetcher)(inner)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "valid-session"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

// TestCORSMiddleware_AllowedOrigin verifies that a configured origin is echoed
// back and that preflight requests short-circuit with 204.
func TestCORSMiddleware_AllowedOrigin(t *testing.T) {
	mw := middleware.CORSMiddleware([]string{"http://localhost:4200"})

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := mw(inner)

	req := httptest.NewRequest(http.MethodOptions, "/test", nil)
	req.Header.Set("Origin", "http://localhost:4200")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204 for preflight, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:4200" {
		t.Errorf("expected origin echoed back, got %q", got)
	}
}

// TestCORSMiddleware_UnknownOrigin verifies that unlisted origins get no CORS headers.
func TestCORSMiddleware_UnknownOrigin(t *testing.T) {
	mw := middleware.CORSMiddleware([]string{"http://localhost:4200"})

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := mw(inner)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Origin", "http://evil.test")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("expected no CORS header for unknown origin, got %q", got)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected request to pass through, got %d", rec.Code)
	}
}

// TestRateLimitMiddleware verifies that requests beyond the per-minute budget
// receive 429 with a Retry-After header.
func TestRateLimitMiddleware(t *testing.T) {
	mw := middleware.RateLimitMiddleware(2)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := mw(inner)

	codes := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		req := httptest.NewRequest(http.MethodPost, "/import-csv", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Errorf("expected first two requests allowed, got %v", codes)
	}
	if codes[3] != http.StatusTooManyRequests {
		t.Errorf("expected burst exhaustion to return 429, got %v", codes)
	}
}

// TestRateLimitMiddlewareNonPositiveRate verifies that a zero or negative
// rate is clamped instead of panicking when the limiter is built.
func TestRateLimitMiddlewareNonPositiveRate(t *testing.T) {
	mw := middleware.RateLimitMiddleware(0)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := mw(inner)

	req := httptest.NewRequest(http.MethodPost, "/import-csv", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected first request allowed at clamped rate, got %d", rec.Code)
	}
}
