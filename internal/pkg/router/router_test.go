package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shandysiswandi/gotp/internal/pkg/config"
	"github.com/shandysiswandi/gotp/internal/pkg/goerror"
	"github.com/shandysiswandi/gotp/internal/pkg/instrument"
	"github.com/shandysiswandi/gotp/internal/pkg/uid"
)

const routerConfigYAML = `
app:
  api_key: "test-key"
  maintenance:
    endpoints: "/api/v1/blocked"
instrument:
  log_mask_fields: "otp"
`

func newTestRouter(t *testing.T) *Router {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(routerConfigYAML))
	if err != nil {
		t.Fatalf("config error = %v", err)
	}
	t.Cleanup(func() { cfg.Close() })

	return NewRouter(Config{
		Config:     cfg,
		UUID:       uid.NewUUID(),
		Instrument: instrument.NewNoop(),
	})
}

func TestPublicEndpointNeedsNoKey(t *testing.T) {
	ro := newTestRouter(t)
	ro.GET("/health", func(r *Request) (any, error) {
		return map[string]string{"status": "ok"}, nil
	})

	rec := httptest.NewRecorder()
	ro.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestProtectedEndpointRequiresKey(t *testing.T) {
	ro := newTestRouter(t)
	ro.GET("/api/v1/email/health", func(r *Request) (any, error) {
		return map[string]string{"status": "ok"}, nil
	})

	rec := httptest.NewRecorder()
	ro.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/email/health", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status without key = %d, want 401", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/email/health", nil)
	req.Header.Set(HeaderAPIKey, "wrong-key")
	rec = httptest.NewRecorder()
	ro.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status with wrong key = %d, want 401", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/email/health", nil)
	req.Header.Set(HeaderAPIKey, "test-key")
	rec = httptest.NewRecorder()
	ro.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status with valid key = %d, want 200", rec.Code)
	}
}

func TestErrorCodecBusinessError(t *testing.T) {
	ro := newTestRouter(t)
	ro.POST("/api/v1/otp/generate", func(r *Request) (any, error) {
		return nil, goerror.NewBusiness("Too many requests. Please try again later.", goerror.CodeTooManyRequest)
	})

	rec := httptest.NewRecorder()
	ro.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/otp/generate", strings.NewReader("{}")))

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Message != "Too many requests. Please try again later." {
		t.Fatalf("message = %q", body.Message)
	}
}

func TestOkCodecStatusAndMessageHooks(t *testing.T) {
	ro := newTestRouter(t)
	ro.POST("/api/v1/otp/generate", func(r *Request) (any, error) {
		return statusResponse{}, nil
	})

	rec := httptest.NewRecorder()
	ro.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/otp/generate", strings.NewReader("{}")))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500 from StatusCode hook", rec.Code)
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Message != "delivery failed" {
		t.Fatalf("message = %q, want Message hook value", body.Message)
	}
}

type statusResponse struct {
	Success bool `json:"success"`
}

func (statusResponse) StatusCode() int {
	return http.StatusInternalServerError
}

func (statusResponse) Message() string {
	return "delivery failed"
}

func TestMaintenanceBlocksRoute(t *testing.T) {
	ro := newTestRouter(t)
	ro.GET("/api/v1/blocked", func(r *Request) (any, error) {
		return map[string]string{"status": "ok"}, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/blocked", nil)
	req.Header.Set(HeaderAPIKey, "test-key")
	rec := httptest.NewRecorder()
	ro.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestCorrelationIDEchoed(t *testing.T) {
	ro := newTestRouter(t)
	ro.GET("/health", func(r *Request) (any, error) {
		return map[string]string{"status": "ok"}, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(HeaderCorrelationID, "cid-123")
	rec := httptest.NewRecorder()
	ro.ServeHTTP(rec, req)

	if got := rec.Header().Get(HeaderCorrelationID); got != "cid-123" {
		t.Fatalf("correlation id = %q, want echo", got)
	}
}

func TestCorrelationIDGenerated(t *testing.T) {
	ro := newTestRouter(t)
	ro.GET("/health", func(r *Request) (any, error) {
		return map[string]string{"status": "ok"}, nil
	})

	rec := httptest.NewRecorder()
	ro.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Header().Get(HeaderCorrelationID) == "" {
		t.Fatal("correlation id not generated")
	}
}

func TestDecodeBodyRejectsUnknownFields(t *testing.T) {
	ro := newTestRouter(t)
	ro.POST("/api/v1/otp/generate", func(r *Request) (any, error) {
		var req struct {
			Identifier string `json:"identifier"`
		}
		if err := r.DecodeBody(&req); err != nil {
			return nil, err
		}
		return map[string]string{"status": "ok"}, nil
	})

	rec := httptest.NewRecorder()
	ro.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/otp/generate",
		strings.NewReader(`{"identifier":"a@b.com","bogus":true}`)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestRecovererTurnsPanicInto500(t *testing.T) {
	ro := newTestRouter(t)
	ro.GET("/health", func(r *Request) (any, error) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	ro.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}
