// Package handler contains the HTTP handlers for the JSON API.
package handler

import (
	"net/http"
	"strconv"

	"mart/internal/delivery/api/response"
	"mart/internal/delivery/api/validator"
	domainerrors "mart/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// bindAndValidate binds the request body into req and runs struct validation.
// On failure the error response is already written and ok is false.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "Malformed request body")
	}

	if err := c.Validate(req); err != nil {
		return false, response.BadRequestWithDetails(c,
			domainerrors.ErrValidationFailed.ErrorCode(),
			domainerrors.ErrValidationFailed.Message(),
			validator.FieldErrors(err),
		)
	}

	return true, nil
}

// invalidUser answers requests that reached an authenticated route without a user id.
func invalidUser(c echo.Context) error {
	return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Invalid user ID in token")
}

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}
