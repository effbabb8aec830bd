package context

import (
	"github.com/labstack/echo/v4"
)

// KeyUserID is the echo.Context key holding the authenticated user id.
const KeyUserID ContextKey = "user_id"

// SetUserID stores the authenticated user id in echo.Context.
func SetUserID(c echo.Context, userID int64) {
	c.Set(string(KeyUserID), userID)
}

// GetUserID returns the authenticated user id, or false when the request
// did not pass the auth middleware.
func GetUserID(c echo.Context) (int64, bool) {
	userID, ok := fromEcho[int64](c, KeyUserID)

	return userID, ok && userID > 0
}
