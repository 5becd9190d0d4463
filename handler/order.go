package handler

import (
	"fmt"
	"strings"

	"campus_market/cache"
	"campus_market/helper"
	"campus_market/model"
	"campus_market/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"
)

// GetMyOrders serves one page of the caller's purchases with derived action
// flags per row. Pages are cached per user under a generation counter; any
// successful mutation bumps the generation so the next read is a full,
// fresh reload.
func GetMyOrders(c *fiber.Ctx) error {
	claim, token, err := helper.CurrentUser(c)
	if err != nil {
		return utils.LoginRequired(c)
	}
	status, page, limit := utils.ParseListQuery(c)

	ctx := c.UserContext()
	gen := cache.ListGeneration(ctx, "buyer", claim.UserID)
	if resp, ok := cache.CachedList(ctx, "buyer", claim.UserID, gen, status, page, limit); ok {
		return utils.SuccessResponse(c, fiber.StatusOK, resp)
	}

	result, err := Upstream.ListOrders(ctx, token, status, page, limit)
	if err != nil {
		return upstreamError(c, "Failed to load orders", err)
	}

	resp := buildListResponse(result, status, page, limit)
	cache.StoreList(ctx, "buyer", claim.UserID, gen, status, page, limit, resp, AppConfig.Cache.ListTTL)
	return utils.SuccessResponse(c, fiber.StatusOK, resp)
}

// MakePayment starts the buyer payment flow for an order. PromptPay orders
// get a paymentUrl to the QR page; other payable methods submit the bare
// payment notification straight to the core.
func MakePayment(c *fiber.Ctx) error {
	claim, token, err := helper.CurrentUser(c)
	if err != nil {
		return utils.LoginRequired(c)
	}
	orderID, _ := c.Locals("orderId").(string)

	ctx := c.UserContext()
	order, err := Upstream.GetOrder(ctx, token, orderID)
	if err != nil {
		return upstreamError(c, "Failed to load order", err)
	}

	actions := helper.DeriveOrderActions(*order)
	if !actions.RequiresPayment {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "This order is settled in cash on handover", nil)
	}
	if actions.PaymentComplete {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Payment was already submitted for this order", nil)
	}

	if model.NormalizePaymentMethod(order.PaymentMethod) == model.PaymentMethodPromptPay {
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
			"paymentUrl": "/payments/promptpay/" + order.ID,
		})
	}

	// Transfer, or an unrecognized non-cash method: still collect.
	if err := Upstream.NotifyPayment(ctx, token, orderID); err != nil {
		return upstreamError(c, "Failed to submit payment", err)
	}
	cache.BumpListGeneration(ctx, claim.UserID)
	cache.PublishOrdersChanged(ctx, claim.UserID)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Payment notification sent",
	})
}

// SubmitPromptPayPayment is the confirm step after the buyer scanned the QR
// on the promptpay page.
func SubmitPromptPayPayment(c *fiber.Ctx) error {
	claim, token, err := helper.CurrentUser(c)
	if err != nil {
		return utils.LoginRequired(c)
	}
	orderID, _ := c.Locals("orderId").(string)

	ctx := c.UserContext()
	if err := Upstream.NotifyPayment(ctx, token, orderID); err != nil {
		return upstreamError(c, "Failed to submit payment", err)
	}
	cache.BumpListGeneration(ctx, claim.UserID)
	cache.PublishOrdersChanged(ctx, claim.UserID)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Payment submitted, waiting for the seller to verify",
	})
}

// PrintLabel builds the printable parcel label for a delivery order.
func PrintLabel(c *fiber.Ctx) error {
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

	actions := helper.DeriveOrderActions(*order)
	if !actions.CanPrintLabel {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Labels are only available for delivery orders", nil)
	}
	addr := order.ShippingAddress
	if addr == nil {
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, "Order has no shipping address", nil)
	}

	qr, err := utils.QRCodeDataURI(order.ID, 300)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to render label QR", err)
	}

	lines := []string{addr.Line1}
	if addr.Line2 != "" {
		lines = append(lines, addr.Line2)
	}
	if addr.Campus != "" {
		lines = append(lines, addr.Campus)
	}
	lines = append(lines, addr.PostalCode)

	return utils.SuccessResponse(c, fiber.StatusOK, model.LabelView{
		OrderID:   order.ID,
		ParcelRef: parcelRef(*order),
		Recipient: addr.Recipient,
		Phone:     addr.Phone,
		Address:   lines,
		QRCode:    qr,
	})
}

// parcelRef is the human-readable line couriers sort by: the first item's
// slug plus an order id suffix.
func parcelRef(order model.Order) string {
	title := "parcel"
	if len(order.Items) > 0 && order.Items[0].Title != "" {
		title = order.Items[0].Title
	}
	suffix := order.ID
	if len(suffix) > 6 {
		suffix = suffix[len(suffix)-6:]
	}
	return strings.ToUpper(fmt.Sprintf("%s-%s", slug.Make(title), suffix))
}
