package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	deliverycontext "gatehouse/internal/delivery/context"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/domain/validation"
	mockusecase "gatehouse/internal/mocks/usecase"
	"gatehouse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_Home(t *testing.T) {
	t.Run("anonymous visitor gets a null user", func(t *testing.T) {
		uc := mockusecase.NewMockUserUsecase(t)
		uc.EXPECT().CurrentUser(mock.Anything, "").Return(nil, nil).Once()

		rec := httptest.NewRecorder()
		c := newTestEcho().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		require.NoError(t, NewUserHandler(uc).Home(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"user":null`)
	})

	t.Run("logged-in user is shown without the hash", func(t *testing.T) {
		uc := mockusecase.NewMockUserUsecase(t)
		uc.EXPECT().CurrentUser(mock.Anything, "annlee").Return(newTestUser(), nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(deliverycontext.WithSessionUsername(req.Context(), "annlee"))
		rec := httptest.NewRecorder()

		require.NoError(t, NewUserHandler(uc).Home(newTestEcho().NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"username":"annlee"`)
		assert.NotContains(t, rec.Body.String(), "hash")
	})

	t.Run("store failure is returned", func(t *testing.T) {
		uc := mockusecase.NewMockUserUsecase(t)
		storeErr := errors.New("db down")
		uc.EXPECT().CurrentUser(mock.Anything, "").Return(nil, storeErr).Once()

		c := newTestEcho().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

		assert.ErrorIs(t, NewUserHandler(uc).Home(c), storeErr)
	})
}

func TestUserHandler_Register(t *testing.T) {
	t.Run("json body creates the user", func(t *testing.T) {
		uc := mockusecase.NewMockUserUsecase(t)
		uc.EXPECT().RegisterUser(mock.Anything, &usecase.RegisterUserInput{
			FirstName:       "Ann",
			Surname:         "Lee",
			Username:        "annlee",
			Password:        "Passw0rd",
			ConfirmPassword: "Passw0rd",
		}).Return(&usecase.RegisterOutput{User: newTestUser()}, nil).Once()

		body := `{"first_name":"Ann","surname":"Lee","username":"annlee","password":"Passw0rd","confirm_password":"Passw0rd"}`
		rec := httptest.NewRecorder()
		c := newTestEcho().NewContext(newJSONRequest(http.MethodPost, "/register", body), rec)

		require.NoError(t, NewUserHandler(uc).Register(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		resp := decodeResponse(t, rec)
		assert.True(t, resp.Success)
		assert.NotContains(t, rec.Body.String(), "Passw0rd")
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("form body values are passed untrimmed", func(t *testing.T) {
		uc := mockusecase.NewMockUserUsecase(t)
		uc.EXPECT().RegisterUser(mock.Anything, mock.MatchedBy(func(in *usecase.RegisterUserInput) bool {
			return in.FirstName == " Ann " && in.Username == "annlee"
		})).Return(&usecase.RegisterOutput{User: newTestUser()}, nil).Once()

		form := url.Values{
			"first_name":       {" Ann "},
			"surname":          {"Lee"},
			"username":         {"annlee"},
			"password":         {"Passw0rd"},
			"confirm_password": {"Passw0rd"},
		}
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := httptest.NewRecorder()

		require.NoError(t, NewUserHandler(uc).Register(newTestEcho().NewContext(req, rec)))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("validation failures render 422 with field messages", func(t *testing.T) {
		errs := validation.NewErrors(validation.RegistrationFields...)
		errs.Add(validation.FieldUsername, validation.KindDuplicateUsername, validation.MsgDuplicateUsername)
		errs.Add(validation.FieldPassword, validation.KindTooShort, validation.MsgPasswordTooShort)

		uc := mockusecase.NewMockUserUsecase(t)
		uc.EXPECT().RegisterUser(mock.Anything, mock.Anything).Return(&usecase.RegisterOutput{Errors: errs}, nil).Once()

		rec := httptest.NewRecorder()
		c := newTestEcho().NewContext(newJSONRequest(http.MethodPost, "/register", `{"username":"annlee"}`), rec)

		require.NoError(t, NewUserHandler(uc).Register(c))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		resp := decodeResponse(t, rec)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)
		assert.Equal(t, []string{validation.MsgDuplicateUsername}, resp.Error.Fields[validation.FieldUsername])
		assert.Equal(t, []string{validation.MsgPasswordTooShort}, resp.Error.Fields[validation.FieldPassword])
		assert.Empty(t, resp.Error.Fields[validation.FieldFirstName])
	})

	t.Run("malformed body is a binding error", func(t *testing.T) {
		uc := mockusecase.NewMockUserUsecase(t)

		rec := httptest.NewRecorder()
		c := newTestEcho().NewContext(newJSONRequest(http.MethodPost, "/register", `{"username":`), rec)

		require.NoError(t, NewUserHandler(uc).Register(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("usecase failure is returned", func(t *testing.T) {
		uc := mockusecase.NewMockUserUsecase(t)
		uc.EXPECT().RegisterUser(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrPasswordHashFailed).Once()

		c := newTestEcho().NewContext(newJSONRequest(http.MethodPost, "/register", `{}`), httptest.NewRecorder())

		assert.ErrorIs(t, NewUserHandler(uc).Register(c), domainerrors.ErrPasswordHashFailed)
	})
}

func TestUserHandler_GetUser(t *testing.T) {
	newContext := func(id string) (echo.Context, *httptest.ResponseRecorder) {
		rec := httptest.NewRecorder()
		c := newTestEcho().NewContext(httptest.NewRequest(http.MethodGet, "/users/"+id, nil), rec)
		c.SetPath("/users/:id")
		c.SetParamNames("id")
		c.SetParamValues(id)

		return c, rec
	}

	t.Run("found", func(t *testing.T) {
		uc := mockusecase.NewMockUserUsecase(t)
		uc.EXPECT().GetUser(mock.Anything, int64(7)).Return(newTestUser(), nil).Once()

		c, rec := newContext("7")
		require.NoError(t, NewUserHandler(uc).GetUser(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":7`)
	})

	t.Run("absent user is not found", func(t *testing.T) {
		uc := mockusecase.NewMockUserUsecase(t)
		uc.EXPECT().GetUser(mock.Anything, int64(8)).Return(nil, nil).Once()

		c, _ := newContext("8")
		assert.ErrorIs(t, NewUserHandler(uc).GetUser(c), domainerrors.ErrUserNotFound)
	})

	t.Run("non-numeric id is rejected", func(t *testing.T) {
		uc := mockusecase.NewMockUserUsecase(t)

		c, rec := newContext("abc")
		require.NoError(t, NewUserHandler(uc).GetUser(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHealthCheck(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, HealthCheck(newTestEcho().NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
