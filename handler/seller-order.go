package handler

import (
	"campus_market/cache"
	"campus_market/helper"
	"campus_market/model"
	"campus_market/utils"

	"github.com/gofiber/fiber/v2"
)

// GetSellerOrders serves one page of orders placed against the caller's
// listings. Same controller shape as the buyer list, seller-scoped.
func GetSellerOrders(c *fiber.Ctx) error {
	claim, token, err := helper.CurrentUser(c)
	if err != nil {
		return utils.LoginRequired(c)
	}
	status, page, limit := utils.ParseListQuery(c)

	ctx := c.UserContext()
	gen := cache.ListGeneration(ctx, "seller", claim.UserID)
	if resp, ok := cache.CachedList(ctx, "seller", claim.UserID, gen, status, page, limit); ok {
		return utils.SuccessResponse(c, fiber.StatusOK, resp)
	}

	result, err := Upstream.ListSellerOrders(ctx, token, status, page, limit)
	if err != nil {
		return upstreamError(c, "Failed to load orders", err)
	}

	resp := buildListResponse(result, status, page, limit)
	cache.StoreList(ctx, "seller", claim.UserID, gen, status, page, limit, resp, AppConfig.Cache.ListTTL)
	return utils.SuccessResponse(c, fiber.StatusOK, resp)
}

// ConfirmOrder accepts a pending order. The core owns the transition rules;
// its rejection passes through untouched and leaves cached pages valid.
func ConfirmOrder(c *fiber.Ctx) error {
	claim, token, err := helper.CurrentUser(c)
	if err != nil {
		return utils.LoginRequired(c)
	}
	orderID, _ := c.Locals("orderId").(string)

	ctx := c.UserContext()
	if err := Upstream.ConfirmOrder(ctx, token, orderID); err != nil {
		return upstreamError(c, "Failed to confirm order", err)
	}
	cache.BumpListGeneration(ctx, claim.UserID)
	cache.PublishOrdersChanged(ctx, claim.UserID)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Order confirmed",
	})
}

func RejectOrder(c *fiber.Ctx) error {
	claim, token, err := helper.CurrentUser(c)
	if err != nil {
		return utils.LoginRequired(c)
	}
	orderID, _ := c.Locals("orderId").(string)
	input, _ := c.Locals("inputRejectOrder").(model.RejectOrderInput)

	ctx := c.UserContext()
	if err := Upstream.RejectOrder(ctx, token, orderID, input.Reason); err != nil {
		return upstreamError(c, "Failed to reject order", err)
	}
	cache.BumpListGeneration(ctx, claim.UserID)
	cache.PublishOrdersChanged(ctx, claim.UserID)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Order rejected",
	})
}

func MarkDelivered(c *fiber.Ctx) error {
	claim, token, err := helper.CurrentUser(c)
	if err != nil {
		return utils.LoginRequired(c)
	}
	orderID, _ := c.Locals("orderId").(string)

	ctx := c.UserContext()
	if err := Upstream.MarkDelivered(ctx, token, orderID); err != nil {
		return upstreamError(c, "Failed to mark order delivered", err)
	}
	cache.BumpListGeneration(ctx, claim.UserID)
	cache.PublishOrdersChanged(ctx, claim.UserID)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Order marked as delivered",
	})
}
