package middlewares_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/geocoder89/volcanoes/internal/actorctx"
	"github.com/geocoder89/volcanoes/internal/domain/user"
	"github.com/geocoder89/volcanoes/internal/http/middlewares"
	"github.com/geocoder89/volcanoes/internal/observability"
	"github.com/gin-gonic/gin"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRecovery_MasksPanicsInProduction(t *testing.T) {
	tests := []struct {
		name       string
		develop    bool
		wantStacks bool
		wantMsg    string
	}{
		{name: "production", develop: false, wantMsg: "Oops something went wrong!"},
		{name: "develop", develop: true, wantStacks: true, wantMsg: "kaboom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(middlewares.DevelopMode(tt.develop))
			r.Use(middlewares.Recovery(discardLogger()))
			r.GET("/panic", func(*gin.Context) { panic(errors.New("kaboom")) })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

			if w.Code != http.StatusInternalServerError {
				t.Fatalf("got status %d", w.Code)
			}

			var body map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if body["msg"] != tt.wantMsg {
				t.Fatalf("got msg %v, want %q", body["msg"], tt.wantMsg)
			}
			if _, ok := body["stacks"]; ok != tt.wantStacks {
				t.Fatalf("stacks present=%v, want %v", ok, tt.wantStacks)
			}
			if _, ok := body["error"]; ok {
				t.Fatalf("catch-all body must not carry the error flag: %v", body)
			}
		})
	}
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(middlewares.CORSMiddleware([]string{"*"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "http://example.test")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://example.test" {
		t.Fatalf("got allow-origin %q", got)
	}
}

func TestRequestID_EchoesOrGenerates(t *testing.T) {
	r := gin.New()
	r.Use(middlewares.RequestID())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-Id"); got != "abc-123" {
		t.Fatalf("got %q", got)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Header().Get("X-Request-Id") == "" {
		t.Fatalf("expected generated request id")
	}
}

func TestRequestLogger_RecordsRequestAndUser(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(observability.NewTraceHandler(slog.NewJSONHandler(&buf, nil)))

	r := gin.New()
	r.Use(middlewares.RequestID(), middlewares.RequestLogger(log))
	r.GET("/volcano/:id", func(c *gin.Context) {
		c.Set(middlewares.CtxIdentity, actorctx.Identity{IsAuthenticated: true, User: &user.User{ID: 9}})
		_ = c.Error(errors.New("lookup failed"))
		c.Status(http.StatusInternalServerError)
	})

	req := httptest.NewRequest(http.MethodGet, "/volcano/1", nil)
	req.Header.Set("X-Request-Id", "req-42")
	r.ServeHTTP(httptest.NewRecorder(), req)

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("unmarshal: %v, raw=%s", err, buf.String())
	}

	if rec["msg"] != "http_request" || rec["level"] != "ERROR" {
		t.Fatalf("unexpected record: %v", rec)
	}
	if rec["route"] != "/volcano/:id" || rec["request_id"] != "req-42" {
		t.Fatalf("missing route or request id: %v", rec)
	}
	if rec["user_id"] != float64(9) {
		t.Fatalf("missing user id: %v", rec)
	}
}
