package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func runAuth(t *testing.T, cookie *http.Cookie) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/documents", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := Auth("secret")(next)(c)
	return c, err
}

func TestAuth_ValidCookie(t *testing.T) {
	token := signToken(t, "secret", jwt.MapClaims{
		"sub": int64(7),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	c, err := runAuth(t, &http.Cookie{Name: CookieName, Value: token})
	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}

	id, ok := c.Get("user_id").(int64)
	if !ok || id != 7 {
		t.Fatalf("expected user_id 7 in context, got %v", c.Get("user_id"))
	}
}

func TestAuth_MissingCookie(t *testing.T) {
	_, err := runAuth(t, nil)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_InvalidSignature(t *testing.T) {
	token := signToken(t, "other-secret", jwt.MapClaims{
		"sub": int64(7),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := runAuth(t, &http.Cookie{Name: CookieName, Value: token})

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	token := signToken(t, "secret", jwt.MapClaims{
		"sub": int64(7),
		"exp": time.Now().Add(-time.Minute).Unix(),
	})

	_, err := runAuth(t, &http.Cookie{Name: CookieName, Value: token})

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_MissingSubject(t *testing.T) {
	token := signToken(t, "secret", jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := runAuth(t, &http.Cookie{Name: CookieName, Value: token})

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
