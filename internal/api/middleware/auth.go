package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/upturn/portfolio-api/internal/api/metrics"
	"github.com/upturn/portfolio-api/internal/core/ports"
)

// TokenCookieName is the cookie transport for the access token. The same
// token is also accepted via "Authorization: Bearer"; when both are present
// the cookie wins.
const TokenCookieName = "token"

// Context keys populated by Auth for downstream middleware and handlers.
const (
	ClaimsContextKey = "claims"
	EmailContextKey  = "email"
)

// Auth validates the access token and injects its claims into the request
// context. A token failing verification that arrived via the cookie also has
// that cookie cleared, so browser clients recover without a manual logout.
// revoked may be nil to disable the revocation check.
func Auth(jwtSecret string, revoked ports.TokenRevoker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, fromCookie := ExtractToken(c)
			if raw == "" {
				metrics.AuthRejectedTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized access.")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				if fromCookie {
					c.SetCookie(ClearTokenCookie())
				}
				metrics.AuthRejectedTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized.")
			}

			if revoked != nil {
				if jti, _ := claims["jti"].(string); jti != "" {
					isRevoked, err := revoked.IsRevoked(c.Request().Context(), jti)
					if err == nil && isRevoked {
						if fromCookie {
							c.SetCookie(ClearTokenCookie())
						}
						metrics.AuthRejectedTotal.WithLabelValues("revoked").Inc()
						return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized.")
					}
				}
			}

			email, _ := claims["email"].(string)
			c.Set(ClaimsContextKey, claims)
			c.Set(EmailContextKey, email)

			return next(c)
		}
	}
}

// ExtractToken locates the access token on the request. It prefers the cookie
// transport and falls back to the Authorization header. The boolean reports
// whether the cookie supplied the token.
func ExtractToken(c echo.Context) (string, bool) {
	if cookie, err := c.Cookie(TokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}

	header := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1]), false
	}

	return "", false
}

// NewTokenCookie builds the httpOnly cookie carrying the access token.
// SameSite=None because the reference front-end is served cross-site.
func NewTokenCookie(token string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     TokenCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}

// ClearTokenCookie builds an expired cookie that removes the token transport
// client-side.
func ClearTokenCookie() *http.Cookie {
	return &http.Cookie{
		Name:     TokenCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}
