package validate

import (
	"errors"

	"campus_market/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// RequireOrderID guards routes with an :orderId path param. Order ids are
// opaque strings from the core, so only presence is checked.
func RequireOrderID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		orderID := c.Params("orderId")
		if orderID == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing order id", errors.New("params invalid"))
		}

		c.Locals("orderId", orderID)
		return c.Next()
	}
}
