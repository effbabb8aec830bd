package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "mart/internal/delivery/context"
	"mart/internal/domain/service"
	"mart/internal/errors"
	mockSvc "mart/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setupMock  func(tokenService *mockSvc.MockTokenService)
		wantStatus int
		wantUserID int64
	}{
		{
			name:   "valid token",
			header: "Bearer good-token",
			setupMock: func(tokenService *mockSvc.MockTokenService) {
				tokenService.EXPECT().ValidateToken("good-token").Return(&service.Claims{UserID: 7, Type: "access"}, nil)
			},
			wantStatus: http.StatusOK,
			wantUserID: 7,
		},
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty bearer token",
			header:     "Bearer  ",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "rejected token",
			header: "Bearer expired-token",
			setupMock: func(tokenService *mockSvc.MockTokenService) {
				tokenService.EXPECT().ValidateToken("expired-token").Return(nil, errors.New("token is expired"))
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenService := mockSvc.NewMockTokenService(t)
			if tt.setupMock != nil {
				tt.setupMock(tokenService)
			}
			m := NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokenService, Logger: newDiscardLogger()})

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/carts", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var gotUserID int64
			next := func(c echo.Context) error {
				gotUserID, _ = deliverycontext.GetUserID(c)

				return c.NoContent(http.StatusOK)
			}

			require.NoError(t, m.Authenticate(next)(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantUserID, gotUserID)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "UNAUTHORIZED", decodeErrorResponse(t, rec).Code)
			}
		})
	}
}
