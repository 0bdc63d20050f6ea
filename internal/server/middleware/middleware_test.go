package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"upload-ai-api/internal/logger"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestCORS(t *testing.T) {
	cfg := &CORSConfig{
		AllowedOrigins: []string{"http://localhost:5173"},
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Content-Type"},
	}

	t.Run("allowed origin gets headers", func(t *testing.T) {
		engine := newEngine()
		engine.Use(CORS(cfg))
		engine.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
			t.Errorf("allow-origin = %q", got)
		}
		if got := rec.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, "POST") {
			t.Errorf("allow-methods = %q", got)
		}
	})

	t.Run("disallowed origin gets no headers", func(t *testing.T) {
		engine := newEngine()
		engine.Use(CORS(cfg))
		engine.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("expected no allow-origin, got %q", got)
		}
	})

	t.Run("preflight is answered without hitting the handler", func(t *testing.T) {
		engine := newEngine()
		engine.Use(CORS(cfg))
		hit := false
		engine.OPTIONS("/x", func(c *gin.Context) { hit = true })

		req := httptest.NewRequest(http.MethodOptions, "/x", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Errorf("status = %d", rec.Code)
		}
		if hit {
			t.Error("handler should not run on preflight")
		}
	})

	t.Run("wildcard origin", func(t *testing.T) {
		engine := newEngine()
		engine.Use(CORS(&CORSConfig{AllowedOrigins: []string{"*"}}))
		engine.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Origin", "http://anywhere.example")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://anywhere.example" {
			t.Errorf("allow-origin = %q", got)
		}
	})
}

func TestBodySizeLimit(t *testing.T) {
	engine := newEngine()
	engine.Use(BodySizeLimit("1KB"))
	engine.POST("/x", func(c *gin.Context) {
		if _, err := c.GetRawData(); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})

	t.Run("under the limit passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(strings.Repeat("a", 512)))
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d", rec.Code)
		}
	})

	t.Run("over the limit aborts the read", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(strings.Repeat("a", 2048)))
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		if rec.Code != http.StatusRequestEntityTooLarge {
			t.Errorf("status = %d", rec.Code)
		}
	})
}

func TestRequestID(t *testing.T) {
	t.Run("generates an id when absent", func(t *testing.T) {
		engine := newEngine()
		engine.Use(RequestID())
		engine.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		if rec.Header().Get("X-Request-Id") == "" {
			t.Error("expected a generated request id")
		}
	})

	t.Run("preserves a caller-supplied id", func(t *testing.T) {
		engine := newEngine()
		engine.Use(RequestID())
		engine.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("X-Request-Id", "fixed-id")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		if got := rec.Header().Get("X-Request-Id"); got != "fixed-id" {
			t.Errorf("request id = %q", got)
		}
	})
}

func TestRecovery(t *testing.T) {
	engine := newEngine()
	engine.Use(Recovery(logger.NewDefault("test")))
	engine.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "error") {
		t.Errorf("body = %q", rec.Body.String())
	}
}
