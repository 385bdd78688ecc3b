package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

// userID returns the identifier of the authenticated user for rate-limit
// key construction.  JWTAuth stores the token's subject claim under
// "user_id"; JWT numeric claims decode as float64, so the value is
// normalized to its decimal string form.  Anonymous submitters come
// through as "guest".
func userID(c echo.Context) string {
	switch v := c.Get("user_id").(type) {
	case nil:
		return "guest"
	case string:
		if v == "" {
			return "guest"
		}
		return v
	case float64:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprint(v)
	}
}
