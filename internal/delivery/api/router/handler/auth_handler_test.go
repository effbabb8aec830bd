package handler

import (
	"net/http"
	"testing"

	domainerrors "mart/internal/domain/errors"
	mockUsecase "mart/internal/mocks/usecase"
	"mart/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAuthHandler(t *testing.T) (*AuthHandler, *mockUsecase.MockAuthUsecase) {
	authUC := mockUsecase.NewMockAuthUsecase(t)

	return NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()}), authUC
}

func TestAuthHandler_Join(t *testing.T) {
	h, authUC := newTestAuthHandler(t)
	authUC.EXPECT().
		JoinUser(mock.Anything, &usecase.JoinUserInput{Email: "hello@hello.world", Password: "hello!123"}).
		Return(&usecase.JoinUserOutput{UserID: 7, Email: "hello@hello.world"}, nil)

	c, rec := newTestContext(testRequest{
		method: http.MethodPost,
		path:   "/auth/join",
		body:   `{"email":"hello@hello.world","password":"hello!123"}`,
	})

	require.NoError(t, h.Join(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var data JoinResponse
	decodeSuccess(t, rec, &data)
	assert.Equal(t, JoinResponse{UserID: 7, Email: "hello@hello.world"}, data)
}

func TestAuthHandler_Join_DomainErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
		wantHTTP int
	}{
		{name: "invalid email", err: domainerrors.ErrInvalidEmail, wantCode: "AUTH-401", wantHTTP: http.StatusBadRequest},
		{name: "invalid password", err: domainerrors.ErrInvalidPassword, wantCode: "AUTH-402", wantHTTP: http.StatusBadRequest},
		{name: "duplicated email", err: domainerrors.ErrDuplicatedEmail, wantCode: "AUTH-404", wantHTTP: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, authUC := newTestAuthHandler(t)
			authUC.EXPECT().JoinUser(mock.Anything, mock.Anything).Return(nil, tt.err)

			c, rec := newTestContext(testRequest{
				method: http.MethodPost,
				path:   "/auth/join",
				body:   `{"email":"x","password":"y"}`,
			})

			require.NoError(t, h.Join(c))

			assert.Equal(t, tt.wantHTTP, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}
}

func TestAuthHandler_Join_MalformedBody(t *testing.T) {
	h, _ := newTestAuthHandler(t)
	c, rec := newTestContext(testRequest{method: http.MethodPost, path: "/auth/join", body: `{"email":`})

	require.NoError(t, h.Join(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decodeError(t, rec).Code)
}

func TestAuthHandler_Login(t *testing.T) {
	h, authUC := newTestAuthHandler(t)
	authUC.EXPECT().
		Authenticate(mock.Anything, &usecase.LoginInput{Email: "hello@hello.world", Password: "hello!123"}).
		Return(&usecase.TokenOutput{AccessToken: "access-token"}, nil)

	c, rec := newTestContext(testRequest{
		method: http.MethodPost,
		path:   "/auth/login",
		body:   `{"email":"hello@hello.world","password":"hello!123"}`,
	})

	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var data LoginResponse
	decodeSuccess(t, rec, &data)
	assert.Equal(t, "access-token", data.AccessToken)
	assert.Equal(t, "Bearer", data.TokenType)
}

func TestAuthHandler_Login_Failures(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{name: "wrong password", err: domainerrors.ErrLoginFailed, wantCode: "AUTH-403"},
		{name: "unknown email", err: domainerrors.ErrEmailNotFound, wantCode: "AUTH-405"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, authUC := newTestAuthHandler(t)
			authUC.EXPECT().Authenticate(mock.Anything, mock.Anything).Return(nil, tt.err)

			c, rec := newTestContext(testRequest{
				method: http.MethodPost,
				path:   "/auth/login",
				body:   `{"email":"hello@hello.world","password":"hello!124"}`,
			})

			require.NoError(t, h.Login(c))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			errInfo := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, errInfo.Code)
			assert.Equal(t, "email or password does not match", errInfo.Message)
		})
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	h, _ := newTestAuthHandler(t)
	c, rec := newTestContext(testRequest{method: http.MethodPost, path: "/auth/login", body: `{"email":"hello@hello.world"}`})

	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errInfo := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", errInfo.Code)
	assert.Equal(t, map[string]any{"password": "required"}, errInfo.Details)
}
