package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gatehouse/config"
	"gatehouse/internal/delivery/http/cookie"
	"gatehouse/internal/delivery/http/response"
	"gatehouse/internal/delivery/http/validator"
	"gatehouse/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testCookieName = "sid"

var testCreatedAt = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func newTestCookie() *cookie.SessionCookie {
	return cookie.NewSessionCookie(&config.Config{
		Session: &config.SessionConfig{CookieName: testCookieName},
	})
}

func newTestUser() *entity.User {
	return &entity.User{
		ID:           7,
		FirstName:    "Ann",
		Surname:      "Lee",
		Username:     "annlee",
		PasswordHash: []byte("$2a$10$hash"),
		CreatedAt:    testCreatedAt,
	}
}

func newJSONRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}
