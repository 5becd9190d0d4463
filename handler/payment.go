package handler

import (
	"campus_market/helper"
	"campus_market/model"
	"campus_market/utils"

	"github.com/gofiber/fiber/v2"
)

// PromptPayPage is the dedicated payment page promptpay orders are sent to:
// order amount, the EMV payload, and the payload rendered as a QR for
// banking apps.
func PromptPayPage(c *fiber.Ctx) error {
	_, token, err := helper.CurrentUser(c)
	if err != nil {
		return utils.LoginRequired(c)
	}
	orderID, _ := c.Locals("orderId").(string)

	ctx := c.UserContext()
	order, err := Upstream.GetOrder(ctx, token, orderID)
	if err != nil {
		return upstreamError(c, "Failed to load order", err)
	}

	if model.NormalizePaymentMethod(order.PaymentMethod) != model.PaymentMethodPromptPay {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "This order is not paid via PromptPay", nil)
	}
	actions := helper.DeriveOrderActions(*order)
	if actions.PaymentComplete {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Payment was already submitted for this order", nil)
	}

	target := AppConfig.PromptPay.MerchantTarget
	if target == "" {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "PromptPay is not configured", nil)
	}

	payload := helper.BuildPromptPayPayload(target, order.TotalAmount)
	qr, err := utils.QRCodeDataURI(payload, 320)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to render payment QR", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.PromptPayCharge{
		OrderID: order.ID,
		Amount:  order.TotalAmount,
		Payload: payload,
		QRCode:  qr,
	})
}
