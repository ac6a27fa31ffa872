package handler

import (
	"net/http"

	"gatehouse/internal/delivery/http/cookie"
	"gatehouse/internal/delivery/http/response"
	"gatehouse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LoginRequest is the login form.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// SessionHandler handles logging in and out.
type SessionHandler struct {
	uc     usecase.SessionUsecase
	cookie *cookie.SessionCookie
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase, sessionCookie *cookie.SessionCookie) *SessionHandler {
	return &SessionHandler{
		uc:     uc,
		cookie: sessionCookie,
	}
}

// Login opens a session and sets the session cookie. Failures never reveal whether the
// username exists.
func (h *SessionHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Username and password are required")
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookie.Write(c, output.Token, output.ExpiresAt)

	return response.Success(c, http.StatusOK, toUserResponse(output.User), "Login successful")
}

// Logout ends the current session, if any, and clears the cookie.
func (h *SessionHandler) Logout(c echo.Context) error {
	if token, ok := h.cookie.Read(c); ok {
		if err := h.uc.Logout(c.Request().Context(), token); err != nil {
			return errors.WithStack(err)
		}
	}

	h.cookie.Clear(c)

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}
