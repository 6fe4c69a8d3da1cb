package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/geocoder89/volcanoes/internal/http/handlers"
	"github.com/gin-gonic/gin"
)

func TestMe(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/me", handlers.NewMeHandler("Jane Doe", "n1234567").Me)

	w := doRequest(r, httptest.NewRequest(http.MethodGet, "/me", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d", w.Code, http.StatusOK)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["name"] != "Jane Doe" || body["student_number"] != "n1234567" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		ping       func() error
		target     string
		wantStatus int
		wantBody   string
	}{
		{name: "root", target: "/", wantStatus: http.StatusOK, wantBody: "ok"},
		{name: "healthz", target: "/healthz", wantStatus: http.StatusOK},
		{name: "ready without ping", target: "/readyz", wantStatus: http.StatusOK},
		{name: "ready", target: "/readyz", ping: func() error { return nil }, wantStatus: http.StatusOK},
		{name: "not ready", target: "/readyz", ping: func() error { return errors.New("down") }, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handlers.NewHealthHandler(tt.ping)

			r := gin.New()
			r.GET("/", h.Root)
			r.GET("/healthz", h.Healthz)
			r.GET("/readyz", h.Readyz)

			w := doRequest(r, httptest.NewRequest(http.MethodGet, tt.target, nil))
			if w.Code != tt.wantStatus {
				t.Fatalf("got status %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantBody != "" && w.Body.String() != tt.wantBody {
				t.Fatalf("got body %q, want %q", w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestDocs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/docs", handlers.SwaggerUI)
	r.GET("/docs/openapi.yaml", handlers.OpenAPISpec)

	w := doRequest(r, httptest.NewRequest(http.MethodGet, "/docs/openapi.yaml", nil))
	if w.Code != http.StatusOK || w.Body.Len() == 0 {
		t.Fatalf("got status %d with %d bytes", w.Code, w.Body.Len())
	}

	w = doRequest(r, httptest.NewRequest(http.MethodGet, "/docs", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d", w.Code, http.StatusOK)
	}
}
