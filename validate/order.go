package validate

import (
	"fmt"

	"campus_market/model"

	"github.com/gofiber/fiber/v2"
)

// RejectOrder parses the optional rejection reason. An empty body is fine;
// the reason stays optional all the way to the core API.
func RejectOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RejectOrderInput

		if len(c.Body()) > 0 {
			if err := c.BodyParser(&input); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": fmt.Sprintf("Invalid input %s", err.Error()),
				})
			}
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("inputRejectOrder", input)
		return c.Next()
	}
}
