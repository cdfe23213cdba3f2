// Package middleware contains the HTTP middleware chain: session parsing,
// authentication requirements and the central error responder.
package middleware

import (
	"travelapp/internal/delivery/http/session"
	domainerrors "travelapp/internal/domain/errors"
	"travelapp/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// identityKey is the echo context key the session identity is stored under.
const identityKey = "identity"

// SessionMiddleware decodes the session cookie and attaches the verified
// identity to the request context.
type SessionMiddleware struct {
	tokenService service.TokenService
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(tokenService service.TokenService) *SessionMiddleware {
	return &SessionMiddleware{tokenService: tokenService}
}

// Attach parses the session cookie, verifies the embedded token and stores
// the identity claims on the context. A missing or invalid token silently
// yields "no identity" — rejecting is RequireAuth's job.
func (m *SessionMiddleware) Attach(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := session.Token(c)
		if !ok {
			return next(c)
		}

		claims, err := m.tokenService.Verify(token)
		if err != nil {
			return next(c)
		}

		c.Set(identityKey, claims)

		return next(c)
	}
}

// RequireAuth fails the request when no identity was attached by Attach.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if Identity(c) == nil {
			return domainerrors.NewAuthentication("Not authorized")
		}

		return next(c)
	}
}

// Identity returns the session identity attached to the request, or nil.
func Identity(c echo.Context) *service.SessionClaims {
	claims, _ := c.Get(identityKey).(*service.SessionClaims)

	return claims
}
