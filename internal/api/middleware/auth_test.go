package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/shopor/catalog-api/internal/core/domain"
	"github.com/shopor/catalog-api/internal/core/token"
)

func newEchoContext(t *testing.T, authorization string) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	return e, e.NewContext(req, rec), rec
}

func TestAuth_ValidToken(t *testing.T) {
	tokens := token.NewService("secret", time.Hour)
	signed, err := tokens.Issue(domain.Principal{Username: "alice", Role: domain.RoleCreator})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, c, rec := newEchoContext(t, "Bearer "+signed)

	called := false
	handler := Auth(tokens)(func(c echo.Context) error {
		called = true
		if c.Get("username") != "alice" {
			t.Fatalf("username not set")
		}
		if c.Get("role") != "creator" {
			t.Fatalf("role not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	tokens := token.NewService("secret", time.Hour)
	e, c, rec := newEchoContext(t, "")

	handler := Auth(tokens)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_InvalidHeaderFormat(t *testing.T) {
	tokens := token.NewService("secret", time.Hour)
	e, c, rec := newEchoContext(t, "Token abc")

	handler := Auth(tokens)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	tokens := token.NewService("secret", time.Hour)
	e, c, rec := newEchoContext(t, "Bearer not-a-token")

	handler := Auth(tokens)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	tokens := token.NewService("secret", time.Hour)
	signed, err := tokens.IssueFor(domain.Principal{Username: "alice", Role: domain.RoleCreator}, -time.Minute)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	e, c, rec := newEchoContext(t, "Bearer "+signed)

	handler := Auth(tokens)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
