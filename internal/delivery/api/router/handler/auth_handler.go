package handler

import (
	"log/slog"
	"net/http"

	"mart/internal/delivery/api/response"
	"mart/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves registration and login.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// JoinRequest is the body of POST /auth/join. Email and password rules are
// enforced by the domain so clients receive the AUTH status codes.
type JoinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// JoinResponse is returned after a successful registration.
type JoinResponse struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
}

// Join registers a user.
func (h *AuthHandler) Join(c echo.Context) error {
	var req JoinRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	output, err := h.authUC.JoinUser(c.Request().Context(), &usecase.JoinUserInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, JoinResponse{UserID: output.UserID, Email: output.Email})
}

// Login authenticates a user and returns an access token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	output, err := h.authUC.Authenticate(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, LoginResponse{AccessToken: output.AccessToken, TokenType: "Bearer"})
}
