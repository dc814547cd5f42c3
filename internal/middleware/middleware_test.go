package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"task-tracker-app/internal/middleware"
	"task-tracker-app/internal/model"
	"task-tracker-app/pkg/log"
	"task-tracker-app/pkg/scope"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

const secret = "test-secret"

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", handlers...)
	return r
}

func do(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	jwtManager := scope.New(secret)
	mw := middleware.New(&mockLogger{}, jwtManager, 0)

	var got model.Viewer
	r := newEngine(mw.Auth(), func(c *gin.Context) {
		got, _ = middleware.GetViewer(c)
		fromCtx, _ := scope.GetViewerFromContext(c.Request.Context())
		if fromCtx != got {
			t.Errorf("context viewer %+v differs from gin viewer %+v", fromCtx, got)
		}
		c.Status(http.StatusOK)
	})

	t.Run("Valid token", func(t *testing.T) {
		token, _ := jwtManager.CreateToken(model.Viewer{UserID: "u1", Role: model.RoleUser, IsActive: true})
		w := do(r, token)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got.UserID != "u1" || got.Role != model.RoleUser || !got.IsActive {
			t.Errorf("unexpected viewer %+v", got)
		}
	})

	t.Run("Missing token", func(t *testing.T) {
		if w := do(r, ""); w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("Invalid token", func(t *testing.T) {
		token, _ := scope.New("other").CreateToken(model.Viewer{UserID: "u1", IsActive: true})
		if w := do(r, token); w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})
}

func TestAdminOnly(t *testing.T) {
	jwtManager := scope.New(secret)
	mw := middleware.New(&mockLogger{}, jwtManager, 0)
	r := newEngine(mw.Auth(), mw.AdminOnly(), func(c *gin.Context) { c.Status(http.StatusOK) })

	tests := []struct {
		name   string
		viewer model.Viewer
		want   int
	}{
		{"Admin", model.Viewer{UserID: "a1", Role: model.RoleAdmin, IsActive: true}, http.StatusOK},
		{"User", model.Viewer{UserID: "u1", Role: model.RoleUser, IsActive: true}, http.StatusForbidden},
		{"Inactive admin", model.Viewer{UserID: "a2", Role: model.RoleAdmin}, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, _ := jwtManager.CreateToken(tt.viewer)
			if w := do(r, token); w.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, w.Code)
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	mw := middleware.New(&mockLogger{}, scope.New(secret), 0)
	var ctxID any
	r := newEngine(mw.RequestID(), func(c *gin.Context) {
		ctxID = c.Request.Context().Value(log.RequestIDKey)
		c.Status(http.StatusOK)
	})

	t.Run("Generated", func(t *testing.T) {
		w := do(r, "")
		id := w.Header().Get(middleware.RequestIDHeader)
		if id == "" || ctxID != id {
			t.Errorf("expected generated id in header and context, got %q / %v", id, ctxID)
		}
	})

	t.Run("Propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Header().Get(middleware.RequestIDHeader) != "abc-123" || ctxID != "abc-123" {
			t.Errorf("expected caller id to be kept, got %q / %v", w.Header().Get(middleware.RequestIDHeader), ctxID)
		}
	})
}

func TestRateLimit(t *testing.T) {
	jwtManager := scope.New(secret)
	mw := middleware.New(&mockLogger{}, jwtManager, 10) // burst 1
	r := newEngine(mw.Auth(), mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	u1, _ := jwtManager.CreateToken(model.Viewer{UserID: "u1", Role: model.RoleUser, IsActive: true})
	u2, _ := jwtManager.CreateToken(model.Viewer{UserID: "u2", Role: model.RoleUser, IsActive: true})

	if w := do(r, u1); w.Code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", w.Code)
	}
	if w := do(r, u1); w.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", w.Code)
	}
	if w := do(r, u2); w.Code != http.StatusOK {
		t.Errorf("other viewer should not be limited, got %d", w.Code)
	}
}
