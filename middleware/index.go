package middleware

import (
	"strings"

	"campus_market/helper"
	"campus_market/utils"

	"github.com/gofiber/fiber/v2"
)

// Protected requires a valid campus bearer token. The token comes from the
// Authorization header, with a cookie fallback for browser WebSocket
// upgrades (browsers cannot set headers there). Verified claims and the raw
// token land in Locals for helper.CurrentUser; the raw token is what gets
// forwarded to the core API.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := ""
		if auth := c.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		}
		if token == "" {
			token = c.Cookies("access_token")
		}

		if token == "" {
			return utils.LoginRequired(c)
		}

		jwtToken, err := helper.ParseToken(token)
		if err != nil || !jwtToken.Valid {
			return utils.LoginRequired(c)
		}

		claim, err := helper.ClaimFromToken(jwtToken)
		if err != nil {
			return utils.LoginRequired(c)
		}

		c.Locals("claims", claim)
		c.Locals("token", token)
		return c.Next()
	}
}
