package handler

import (
	"campus_market/helper"
	"campus_market/model"
	"campus_market/utils"

	"github.com/gofiber/fiber/v2"
)

// ContactSeller opens a chat thread with the seller and hands the thread id
// back so the frontend can navigate to it.
func ContactSeller(c *fiber.Ctx) error {
	_, token, err := helper.CurrentUser(c)
	if err != nil {
		return utils.LoginRequired(c)
	}
	input, _ := c.Locals("inputCreateThread").(model.CreateThreadInput)

	threadID, err := Upstream.CreateThread(c.UserContext(), token, input.SellerID)
	if err != nil {
		return upstreamError(c, "Failed to contact seller", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"threadId": threadID,
	})
}
