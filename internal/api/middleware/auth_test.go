package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/salonelidia/salon-system/internal/core/domain"
	"github.com/salonelidia/salon-system/internal/core/service"
)

type stubVerifier struct {
	verifyFn func(token string) (domain.Identity, error)
}

func (s *stubVerifier) Verify(token string) (domain.Identity, error) {
	return s.verifyFn(token)
}

func runAuth(t *testing.T, verifier *stubVerifier, header string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(verifier)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	verifier := &stubVerifier{verifyFn: func(token string) (domain.Identity, error) {
		if token != "good" {
			t.Fatalf("unexpected token %q", token)
		}
		return domain.Identity{UserID: 7, Username: "alice", Role: domain.RoleAdmin}, nil
	}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(verifier)(func(c echo.Context) error {
		called = true
		identity, ok := IdentityFrom(c)
		if !ok {
			t.Fatalf("identity not set")
		}
		if identity.UserID != 7 || identity.Role != domain.RoleAdmin {
			t.Fatalf("unexpected identity: %+v", identity)
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

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	verifier := &stubVerifier{verifyFn: func(token string) (domain.Identity, error) {
		if token != "" {
			t.Fatalf("expected empty token, got %q", token)
		}
		return domain.Identity{}, domain.ErrMissingToken
	}}

	rec, called := runAuth(t, verifier, "")
	if called {
		t.Fatalf("should not reach next")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_NonBearerSchemeIsMissing(t *testing.T) {
	verifier := &stubVerifier{verifyFn: func(token string) (domain.Identity, error) {
		if token != "" {
			t.Fatalf("expected empty token, got %q", token)
		}
		return domain.Identity{}, domain.ErrMissingToken
	}}

	for _, header := range []string{"Token abc", "Bearer", "Basic YWRtaW46YWRtaW4xMjM="} {
		rec, called := runAuth(t, verifier, header)
		if called {
			t.Fatalf("%q: should not reach next", header)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%q: expected 401, got %d", header, rec.Code)
		}
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	verifier := &stubVerifier{verifyFn: func(token string) (domain.Identity, error) {
		return domain.Identity{}, domain.ErrInvalidToken
	}}

	rec, called := runAuth(t, verifier, "Bearer not-a-token")
	if called {
		t.Fatalf("should not reach next")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func signedToken(t *testing.T, secret string, now time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       1,
		"username": "admin",
		"role":     "admin",
		"exp":      now.Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestAuthMiddleware_WithAuthService(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	verifier := service.NewAuthService(nil, "middleware-secret", 0, service.WithClock(func() time.Time { return now }))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"same secret", "Bearer " + signedToken(t, "middleware-secret", now), http.StatusOK},
		{"other secret", "Bearer " + signedToken(t, "other-secret", now), http.StatusForbidden},
		{"no header", "", http.StatusUnauthorized},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := Auth(verifier)(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})
			if err := handler(c); err != nil {
				e.HTTPErrorHandler(err, c)
			}
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rec.Code)
			}
		})
	}
}
