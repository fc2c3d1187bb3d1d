package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

func TestIsAllowedOrigin(t *testing.T) {
	allowed := []string{
		"https://dashboard.example.com",
		"http://localhost:5173",
	}

	cases := []struct {
		origin string
		want   bool
	}{
		{"https://dashboard.example.com", true},
		{"http://localhost:5173", true},
		{"https://evil.example.com", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := isAllowedOrigin(tc.origin, allowed); got != tc.want {
			t.Errorf("isAllowedOrigin(%q) = %v, want %v", tc.origin, got, tc.want)
		}
	}
}

func TestGetAllowedOrigins(t *testing.T) {
	original := os.Getenv("CORS_ALLOWED_ORIGINS")
	defer os.Setenv("CORS_ALLOWED_ORIGINS", original)

	os.Setenv("CORS_ALLOWED_ORIGINS", "https://one.example.com,https://two.example.com")
	origins := getAllowedOrigins()
	if len(origins) != 2 {
		t.Fatalf("expected 2 origins from env, got %d", len(origins))
	}
	if origins[0] != "https://one.example.com" || origins[1] != "https://two.example.com" {
		t.Errorf("unexpected origins from env: %v", origins)
	}

	os.Unsetenv("CORS_ALLOWED_ORIGINS")
	origins = getAllowedOrigins()
	if len(origins) == 0 {
		t.Fatal("expected default origins when env is unset")
	}
	hasLocalhost := false
	for _, origin := range origins {
		if strings.Contains(origin, "localhost") {
			hasLocalhost = true
			break
		}
	}
	if !hasLocalhost {
		t.Error("default origins should include localhost development servers")
	}
}

func TestIsDevelopmentMode(t *testing.T) {
	original := os.Getenv("ENV")
	defer os.Setenv("ENV", original)

	os.Unsetenv("ENV")
	if !isDevelopmentMode() {
		t.Error("unset ENV should mean development mode")
	}

	os.Setenv("ENV", "development")
	if !isDevelopmentMode() {
		t.Error("ENV=development should mean development mode")
	}

	os.Setenv("ENV", "production")
	if isDevelopmentMode() {
		t.Error("ENV=production should not mean development mode")
	}
}

func TestEnableCORS(t *testing.T) {
	handler := EnableCORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("preflight short-circuits", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/api/dashboard/summary", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Errorf("expected 200 for preflight, got %d", rr.Code)
		}
		if rr.Header().Get("Access-Control-Allow-Methods") == "" {
			t.Error("expected Access-Control-Allow-Methods header")
		}
		if rr.Header().Get("Access-Control-Allow-Headers") == "" {
			t.Error("expected Access-Control-Allow-Headers header")
		}
	})

	t.Run("allowed origin is reflected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/dashboard/summary", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
			t.Errorf("expected origin to be reflected, got %q", got)
		}
	})
}

func TestCORSRejectsUnknownOriginInProduction(t *testing.T) {
	original := os.Getenv("ENV")
	defer os.Setenv("ENV", original)
	os.Setenv("ENV", "production")

	handler := EnableCORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/api/dashboard/summary", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	allowOrigin := rr.Header().Get("Access-Control-Allow-Origin")
	if allowOrigin == "https://evil.example.com" {
		t.Error("unknown origin must not be reflected in production")
	}
	if allowOrigin == "" {
		t.Error("a default origin should still be advertised")
	}
}
