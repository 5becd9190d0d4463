package validate

import (
	"fmt"

	"campus_market/model"

	"github.com/gofiber/fiber/v2"
)

func CreateThread() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateThreadInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("inputCreateThread", input)
		return c.Next()
	}
}
