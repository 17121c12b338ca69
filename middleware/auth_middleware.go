package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// ServiceTokenClaims is the HS256 service-to-service token payload.
type ServiceTokenClaims struct {
	ServiceName string   `json:"service_name"`
	Permissions []string `json:"permissions"`
	jwt.RegisteredClaims
}

// ServiceTokenMiddleware validates a bearer service token against a
// shared secret. Intended for internal callers only; the middleware is
// wired up only when a secret is configured.
func ServiceTokenMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			tokenString := strings.TrimPrefix(header, "Bearer ")

			claims := &ServiceTokenClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid service token")
			}

			c.Set("service_name", claims.ServiceName)

			return next(c)
		}
	}
}
