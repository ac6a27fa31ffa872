package middleware

import (
	deliverycontext "gatehouse/internal/delivery/context"
	"gatehouse/internal/delivery/http/cookie"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionMiddleware resolves the session cookie into the logged-in username.
type SessionMiddleware struct {
	sessions usecase.SessionUsecase
	cookie   *cookie.SessionCookie
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(sessions usecase.SessionUsecase, sessionCookie *cookie.SessionCookie) *SessionMiddleware {
	return &SessionMiddleware{
		sessions: sessions,
		cookie:   sessionCookie,
	}
}

// Load stores the session username in the request context when the cookie resolves.
// An invalid cookie is cleared and the request continues anonymously.
func (m *SessionMiddleware) Load(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := m.cookie.Read(c)
		if !ok {
			return next(c)
		}

		ctx := c.Request().Context()
		username, err := m.sessions.Resolve(ctx, token)
		if errors.Is(err, domainerrors.ErrSessionInvalid) {
			m.cookie.Clear(c)

			return next(c)
		}
		if err != nil {
			return err
		}

		c.SetRequest(c.Request().WithContext(deliverycontext.WithSessionUsername(ctx, username)))

		return next(c)
	}
}

// RequireSession rejects anonymous requests with 401. It must run after Load.
func (m *SessionMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if deliverycontext.SessionUsernameFromContext(c.Request().Context()) == "" {
			return domainerrors.ErrUnauthorized
		}

		return next(c)
	}
}
