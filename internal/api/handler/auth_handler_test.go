package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/shopor/catalog-api/internal/core/domain"
)

type stubIdentityService struct {
	registerFn func(ctx context.Context, username, password, role string) (*domain.User, string, error)
	loginFn    func(ctx context.Context, username, password string) (string, error)
	listFn     func(ctx context.Context) ([]domain.User, error)
}

func (s *stubIdentityService) Register(ctx context.Context, username, password, role string) (*domain.User, string, error) {
	return s.registerFn(ctx, username, password, role)
}

func (s *stubIdentityService) Login(ctx context.Context, username, password string) (string, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubIdentityService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.listFn(ctx)
}

func postJSON(t *testing.T, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubIdentityService{
		registerFn: func(_ context.Context, username, password, role string) (*domain.User, string, error) {
			if username != "alice" || password != "secret" || role != "creator" {
				t.Fatalf("unexpected args: %s %s %s", username, password, role)
			}
			return &domain.User{ID: 1, Username: username, Password: password, Role: domain.RoleCreator}, "token123", nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := postJSON(t, "/register", `{"username":"alice","password":"secret","role":"creator"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != "success" || resp["token"] != "token123" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["username"] != "alice" || user["role"] != "creator" || user["id"] != float64(1) {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	stub := &stubIdentityService{
		registerFn: func(_ context.Context, _, _, _ string) (*domain.User, string, error) {
			t.Fatalf("service should not be called")
			return nil, "", nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := postJSON(t, "/register", `{"username":"alice"}`)
	if err := h.Register(c); err != nil {
		c.Echo().HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_UnknownRole(t *testing.T) {
	h := NewAuthHandler(&stubIdentityService{
		registerFn: func(_ context.Context, _, _, _ string) (*domain.User, string, error) {
			t.Fatalf("service should not be called")
			return nil, "", nil
		},
	})

	c, rec := postJSON(t, "/register", `{"username":"alice","password":"secret","role":"owner"}`)
	if err := h.Register(c); err != nil {
		c.Echo().HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	h := NewAuthHandler(&stubIdentityService{
		registerFn: func(_ context.Context, _, _, _ string) (*domain.User, string, error) {
			return nil, "", domain.ErrUserExists
		},
	})

	c, _ := postJSON(t, "/register", `{"username":"bob","password":"x","role":"creator"}`)
	err := h.Register(c)
	if err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists to propagate, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	h := NewAuthHandler(&stubIdentityService{
		loginFn: func(_ context.Context, username, password string) (string, error) {
			if username != "alice" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return "token456", nil
		},
	})

	c, rec := postJSON(t, "/login", `{"username":"alice","password":"secret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Status != "success" || resp.Token != "token456" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&stubIdentityService{
		loginFn: func(_ context.Context, _, _ string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	})

	c, _ := postJSON(t, "/login", `{"username":"alice","password":"wrong"}`)
	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}
