package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"cs-chat-simulator/internal/cache"
	cacheHTTP "cs-chat-simulator/internal/cache/delivery/http"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockUseCase struct {
	createFunc   func(input cache.CreateInput) (cache.CreateOutput, error)
	validateFunc func(input cache.ValidateInput) (cache.ValidateOutput, error)
}

func (m *mockUseCase) Create(ctx context.Context, input cache.CreateInput) (cache.CreateOutput, error) {
	return m.createFunc(input)
}

func (m *mockUseCase) Validate(ctx context.Context, input cache.ValidateInput) (cache.ValidateOutput, error) {
	return m.validateFunc(input)
}

func newRouter(uc cache.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cacheHTTP.RegisterRoutes(r.Group("/api/v1"), cacheHTTP.New(&mockLogger{}, uc))
	return r
}

func post(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r := newRouter(&mockUseCase{
			createFunc: func(input cache.CreateInput) (cache.CreateOutput, error) {
				if len(input.FileIDs) != 2 {
					t.Errorf("unexpected input: %+v", input)
				}
				return cache.CreateOutput{CacheName: "cachedContents/abc", TTLSeconds: 3600}, nil
			},
		})

		w := post(t, r, "/api/v1/cache", gin.H{"fileIds": []string{"doc-1", "doc-2"}})
		if w.Code != http.StatusOK {
			t.Fatalf("unexpected status: %d", w.Code)
		}

		var resp map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["cacheName"] != "cachedContents/abc" || resp["ttlSeconds"] != float64(3600) {
			t.Errorf("unexpected body: %v", resp)
		}
	})

	t.Run("Missing FileIDs", func(t *testing.T) {
		r := newRouter(&mockUseCase{})

		w := post(t, r, "/api/v1/cache", gin.H{})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("unexpected status: %d", w.Code)
		}

		var resp map[string]string
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["error"] != "No fileIds provided or invalid format" {
			t.Errorf("unexpected body: %v", resp)
		}
	})

	t.Run("Creation Failure", func(t *testing.T) {
		r := newRouter(&mockUseCase{
			createFunc: func(input cache.CreateInput) (cache.CreateOutput, error) {
				return cache.CreateOutput{}, errors.New("quota exceeded")
			},
		})

		w := post(t, r, "/api/v1/cache", gin.H{"fileIds": []string{"doc-1"}})
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("unexpected status: %d", w.Code)
		}
	})

	t.Run("No Valid Documents", func(t *testing.T) {
		r := newRouter(&mockUseCase{
			createFunc: func(input cache.CreateInput) (cache.CreateOutput, error) {
				return cache.CreateOutput{}, cache.ErrNoValidDocuments
			},
		})

		w := post(t, r, "/api/v1/cache", gin.H{"fileIds": []string{"doc-1"}})
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("unexpected status: %d", w.Code)
		}
	})
}

func TestValidateHandler(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		r := newRouter(&mockUseCase{
			validateFunc: func(input cache.ValidateInput) (cache.ValidateOutput, error) {
				return cache.ValidateOutput{Valid: true, Cache: &cache.Info{Name: input.CacheName}}, nil
			},
		})

		w := post(t, r, "/api/v1/cache/validate", gin.H{"cacheName": "cachedContents/abc"})
		if w.Code != http.StatusOK {
			t.Fatalf("unexpected status: %d", w.Code)
		}

		var resp map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["valid"] != true {
			t.Errorf("unexpected body: %v", resp)
		}
	})

	t.Run("Invalid Still 200", func(t *testing.T) {
		r := newRouter(&mockUseCase{
			validateFunc: func(input cache.ValidateInput) (cache.ValidateOutput, error) {
				return cache.ValidateOutput{Valid: false}, nil
			},
		})

		w := post(t, r, "/api/v1/cache/validate", gin.H{"cacheName": "cachedContents/gone"})
		if w.Code != http.StatusOK {
			t.Fatalf("unexpected status: %d", w.Code)
		}

		var resp map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["valid"] != false {
			t.Errorf("unexpected body: %v", resp)
		}
	})

	t.Run("Malformed Body Still 200", func(t *testing.T) {
		r := newRouter(&mockUseCase{})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/cache/validate", bytes.NewBufferString("not json"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("unexpected status: %d", w.Code)
		}
		var resp map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["valid"] != false {
			t.Errorf("unexpected body: %v", resp)
		}
	})
}
