// Package session implements the client-held session cookie.
//
// The cookie value is a base64-encoded JSON envelope holding the signed
// session token. The envelope itself is deliberately unsigned: the outer
// encoding is opaque transport, the inner JWT is the trust boundary.
package session

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// CookieName is the name of the session cookie.
const CookieName = "session"

type envelope struct {
	JWT string `json:"jwt"`
}

// Write attaches a session cookie carrying the given token to the response.
func Write(c echo.Context, token string) {
	payload, _ := json.Marshal(envelope{JWT: token})

	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    base64.StdEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
	})
}

// Token extracts the session token from the request cookie.
// The second return value is false when no usable token is present.
func Token(c echo.Context) (string, bool) {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	payload, err := base64.StdEncoding.DecodeString(cookie.Value)
	if err != nil {
		return "", false
	}

	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil || env.JWT == "" {
		return "", false
	}

	return env.JWT, true
}

// Present reports whether the request carries a session envelope with a token.
// It does not verify the token.
func Present(c echo.Context) bool {
	_, ok := Token(c)

	return ok
}

// Clear expires the session cookie on the client.
func Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
}
