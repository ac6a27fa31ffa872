// Package cookie reads and writes the session cookie.
package cookie

import (
	"net/http"
	"time"

	"gatehouse/config"

	"github.com/labstack/echo/v4"
)

// SessionCookie knows the name and attributes of the cookie that carries the session token.
type SessionCookie struct {
	name   string
	secure bool
}

// NewSessionCookie is the constructor for SessionCookie.
func NewSessionCookie(cfg *config.Config) *SessionCookie {
	return &SessionCookie{
		name:   cfg.Session.CookieName,
		secure: cfg.Session.Secure,
	}
}

// Name returns the cookie name.
func (s *SessionCookie) Name() string {
	return s.name
}

// Read returns the session token sent by the client, if any.
func (s *SessionCookie) Read(c echo.Context) (string, bool) {
	ck, err := c.Cookie(s.name)
	if err != nil || ck.Value == "" {
		return "", false
	}

	return ck.Value, true
}

// Write sets the session cookie so that it expires together with the session.
func (s *SessionCookie) Write(c echo.Context, token string, expiresAt time.Time) {
	c.SetCookie(s.build(token, expiresAt, 0))
}

// Clear instructs the client to drop the session cookie.
func (s *SessionCookie) Clear(c echo.Context) {
	c.SetCookie(s.build("", time.Unix(0, 0), -1))
}

func (s *SessionCookie) build(value string, expires time.Time, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     s.name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		MaxAge:   maxAge,
		Secure:   s.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
