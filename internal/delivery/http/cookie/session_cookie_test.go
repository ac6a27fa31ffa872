package cookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gatehouse/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCookie(secure bool) *SessionCookie {
	return NewSessionCookie(&config.Config{
		Session: &config.SessionConfig{CookieName: "sid", Secure: secure},
	})
}

func TestSessionCookie_Read(t *testing.T) {
	e := echo.New()
	sc := newTestCookie(false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := sc.Read(e.NewContext(req, httptest.NewRecorder()))
	assert.False(t, ok)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "token"})
	token, ok := sc.Read(e.NewContext(req, httptest.NewRecorder()))
	assert.True(t, ok)
	assert.Equal(t, "token", token)
}

func TestSessionCookie_WriteAndClear(t *testing.T) {
	e := echo.New()
	sc := newTestCookie(true)
	expiresAt := time.Now().Add(time.Hour).UTC().Truncate(time.Second)

	rec := httptest.NewRecorder()
	sc.Write(e.NewContext(httptest.NewRequest(http.MethodPost, "/login", nil), rec), "token", expiresAt)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sid", cookies[0].Name)
	assert.Equal(t, "token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, "/", cookies[0].Path)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	assert.True(t, expiresAt.Equal(cookies[0].Expires))

	rec = httptest.NewRecorder()
	sc.Clear(e.NewContext(httptest.NewRequest(http.MethodGet, "/logout", nil), rec))

	cookies = rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
