// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"
	"time"

	deliverycontext "gatehouse/internal/delivery/context"
	"gatehouse/internal/delivery/http/response"
	"gatehouse/internal/domain/entity"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RegisterRequest is the registration form. Values are passed on untrimmed.
type RegisterRequest struct {
	FirstName       string `json:"first_name" form:"first_name"`
	Surname         string `json:"surname" form:"surname"`
	Username        string `json:"username" form:"username"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

// UserResponse is the public view of a user. The password hash never leaves the server.
type UserResponse struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	Surname   string    `json:"surname"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// HomeResponse is the body of the home page.
type HomeResponse struct {
	User *UserResponse `json:"user"`
}

func toUserResponse(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}

	return &UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		Surname:   user.Surname,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Home shows the logged-in user, or a null user for anonymous visitors.
func (h *UserHandler) Home(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := h.uc.CurrentUser(ctx, deliverycontext.SessionUsernameFromContext(ctx))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, HomeResponse{User: toUserResponse(user)}, "")
}

// Register handles the user registration request. Field problems are answered with 422 and
// the messages for every field; registration does not log the user in.
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	output, err := h.uc.RegisterUser(c.Request().Context(), &usecase.RegisterUserInput{
		FirstName:       req.FirstName,
		Surname:         req.Surname,
		Username:        req.Username,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}
	if output.User == nil {
		return response.ValidationFailed(c, output.Errors)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(output.User), "User registered successfully")
}

// GetUser returns a user by numeric ID. It requires a session.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "User id must be an integer")
	}

	user, err := h.uc.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}
	if user == nil {
		return domainerrors.ErrUserNotFound
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "")
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
