package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "investtrack/internal/errors"
	"investtrack/internal/uuid"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestLogging(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogging())
	var seen string
	r.GET("/ping", func(c *gin.Context) {
		seen = RequestID(c)
		c.Status(http.StatusOK)
	})

	t.Run("assigns_id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest("GET", "/ping", nil))

		id := rec.Header().Get(RequestIDHeader)
		if !uuid.IsValid(id) {
			t.Fatalf("expected UUID request ID, got %q", id)
		}
		if seen != id {
			t.Errorf("handler saw %q, header has %q", seen, id)
		}
	})

	t.Run("reuses_client_id", func(t *testing.T) {
		clientID := uuid.NewRequestID()
		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set(RequestIDHeader, clientID)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if got := rec.Header().Get(RequestIDHeader); got != clientID {
			t.Errorf("expected %q, got %q", clientID, got)
		}
	})

	t.Run("replaces_malformed_id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set(RequestIDHeader, "<script>")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if got := rec.Header().Get(RequestIDHeader); got == "<script>" || !uuid.IsValid(got) {
			t.Errorf("expected fresh ID, got %q", got)
		}
	})
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("OPTIONS", "/x", nil))
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204 for preflight, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("expected allow-origin header")
	}
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogging())
	r.Use(ErrorHandler())
	r.GET("/app", func(c *gin.Context) { _ = c.Error(apperrors.ErrSymbolNotFound) })
	r.GET("/wrapped", func(c *gin.Context) {
		_ = c.Error(apperrors.Wrap(apperrors.ErrUpstreamUnavailable, errors.New("dial tcp: i/o timeout")))
	})
	r.GET("/raw", func(c *gin.Context) { _ = c.Error(errors.New("sql: connection refused")) })
	r.GET("/written", func(c *gin.Context) {
		_ = c.Error(errors.New("already handled"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch chart data"})
	})

	decode := func(t *testing.T, rec *httptest.ResponseRecorder) ErrorBody {
		t.Helper()
		var body ErrorBody
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to parse body %s: %v", rec.Body.String(), err)
		}
		return body
	}

	t.Run("renders_app_error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest("GET", "/app", nil))
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		body := decode(t, rec)
		if body.Error.Code != "SYMBOL_NOT_FOUND" || body.Error.Message != apperrors.ErrSymbolNotFound.Message {
			t.Errorf("unexpected body %s", rec.Body.String())
		}
		if rec.Header().Get(RequestIDHeader) == "" {
			t.Error("expected request ID header alongside the error")
		}
	})

	t.Run("hides_internal_detail", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest("GET", "/wrapped", nil))
		if rec.Code != http.StatusServiceUnavailable || strings.Contains(rec.Body.String(), "i/o timeout") {
			t.Fatalf("unexpected response %d %s", rec.Code, rec.Body.String())
		}
		if decode(t, rec).Error.Code != "UPSTREAM_UNAVAILABLE" {
			t.Errorf("unexpected body %s", rec.Body.String())
		}
	})

	t.Run("maps_unexpected_to_internal", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest("GET", "/raw", nil))
		if rec.Code != http.StatusInternalServerError || strings.Contains(rec.Body.String(), "connection refused") {
			t.Fatalf("unexpected response %d %s", rec.Code, rec.Body.String())
		}
		if decode(t, rec).Error.Code != apperrors.ErrInternalServer.Code {
			t.Errorf("unexpected body %s", rec.Body.String())
		}
	})

	t.Run("keeps_written_response", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest("GET", "/written", nil))
		if rec.Body.String() != `{"error":"Failed to fetch chart data"}` {
			t.Errorf("expected handler body untouched, got %s", rec.Body.String())
		}
	})
}
