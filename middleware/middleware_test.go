package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runMiddleware(t *testing.T, mw echo.MiddlewareFunc, req *http.Request) (*httptest.ResponseRecorder, echo.Context, error) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return rec, c, handler(c)
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec, c, err := runMiddleware(t, RequestIDMiddleware(), req)
	require.NoError(t, err)

	id := rec.Header().Get("X-Request-ID")
	assert.NotEmpty(t, id)
	assert.Equal(t, id, RequestIDFromContext(c))
}

func TestRequestIDMiddleware_PropagatesInboundID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "upstream-id")

	rec, c, err := runMiddleware(t, RequestIDMiddleware(), req)
	require.NoError(t, err)

	assert.Equal(t, "upstream-id", rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "upstream-id", RequestIDFromContext(c))
}

func signServiceToken(t *testing.T, secret string, method jwt.SigningMethod) string {
	t.Helper()

	claims := ServiceTokenClaims{
		ServiceName: "scheduler",
		Permissions: []string{"feed:refresh"},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestServiceTokenMiddleware(t *testing.T) {
	const secret = "test-secret"

	t.Run("valid token passes and exposes service name", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signServiceToken(t, secret, jwt.SigningMethodHS256))

		rec, c, err := runMiddleware(t, ServiceTokenMiddleware(secret), req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "scheduler", c.Get("service_name"))
	})

	t.Run("missing header rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		_, _, err := runMiddleware(t, ServiceTokenMiddleware(secret), req)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signServiceToken(t, "other-secret", jwt.SigningMethodHS256))

		_, _, err := runMiddleware(t, ServiceTokenMiddleware(secret), req)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		claims := ServiceTokenClaims{
			ServiceName: "scheduler",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		_, _, mwErr := runMiddleware(t, ServiceTokenMiddleware(secret), req)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, mwErr, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("malformed token rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")

		_, _, err := runMiddleware(t, ServiceTokenMiddleware(secret), req)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})
}
