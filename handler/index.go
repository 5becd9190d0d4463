package handler

import (
	"errors"
	"log"
	"time"

	"campus_market/cache"
	"campus_market/config"
	"campus_market/helper"
	"campus_market/model"
	"campus_market/upstream"
	"campus_market/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

var (
	Upstream  *upstream.Client
	AppConfig *config.Config
)

func Init(cfg *config.Config, client *upstream.Client) {
	AppConfig = cfg
	Upstream = client
}

// upstreamError maps a failed core call to the caller. Structured upstream
// errors pass their status and message through verbatim (the frontend shows
// the message as a toast); transport failures become a 502 with a generic
// message.
func upstreamError(c *fiber.Ctx, message string, err error) error {
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		return utils.ErrorResponse(c, apiErr.Status, apiErr.Message, nil)
	}
	return utils.ErrorResponse(c, fiber.StatusBadGateway, message, err)
}

// buildListResponse turns an upstream page into the served envelope: every
// row normalized and annotated with its derived action set. Rows always
// replace whatever the client had; there is no merging.
func buildListResponse(result *upstream.OrderListResult, statusFilter string, page, limit int) *model.OrderListResponse {
	rows := make([]model.OrderView, 0, len(result.Orders))
	for _, order := range result.Orders {
		rows = append(rows, buildOrderView(order))
	}

	resp := &model.OrderListResponse{
		Rows:         rows,
		Page:         page,
		Limit:        limit,
		TotalPages:   result.Pagination.TotalPages,
		Total:        result.Pagination.Total,
		StatusCounts: result.StatusCounts,
	}
	if len(rows) == 0 {
		resp.EmptyMessage = utils.EmptyListMessage(statusFilter)
	}
	return resp
}

func buildOrderView(order model.Order) model.OrderView {
	var view model.OrderView
	if err := copier.Copy(&view, &order); err != nil {
		log.Printf("copy order %s into view: %v", order.ID, err)
	}

	view.Status = displayStatus(order.Status)
	view.DeliveryMethod = displayEnum(string(model.NormalizeDeliveryMethod(order.DeliveryMethod)), order.DeliveryMethod)
	view.PaymentMethod = displayEnum(string(model.NormalizePaymentMethod(order.PaymentMethod)), order.PaymentMethod)
	view.PaymentStatus = string(model.NormalizePaymentStatus(order.PaymentStatus))
	if view.Items == nil {
		view.Items = []model.OrderItem{}
	}

	view.Actions = helper.DeriveOrderActions(order)
	if !helper.ActionsConsistent(view.Actions) {
		// Contradictory payment data from the core. Served as-is; see the
		// backend's order state machine before changing anything here.
		log.Printf("order %s: awaitingBuyerPayment and paymentComplete both set", order.ID)
	}
	return view
}

// displayStatus falls back to the earliest state so an unknown status is
// rendered as a pending badge rather than something actionable.
func displayStatus(raw string) string {
	if s := model.NormalizeOrderStatus(raw); s != model.OrderStatusUnknown {
		return string(s)
	}
	return string(model.OrderStatusPendingSeller)
}

// displayEnum serves the normalized member, or the raw value when the
// normalizer does not recognize it so legacy data stays visible.
func displayEnum(normalized, raw string) string {
	if normalized != "" {
		return normalized
	}
	return raw
}

func HealthCheck(c *fiber.Ctx) error {
	upstreamState := cache.UpstreamHealth(c.UserContext())
	status := "ok"
	if upstreamState == "down" {
		status = "degraded"
	}
	return c.JSON(fiber.Map{
		"status":   status,
		"upstream": upstreamState,
		"time":     time.Now(),
	})
}

// Me serves the caller's profile snapshot, redis-cached per session.
func Me(c *fiber.Ctx) error {
	claim, token, err := helper.CurrentUser(c)
	if err != nil {
		return utils.LoginRequired(c)
	}

	ctx := c.UserContext()
	if snapshot, ok := cache.Session(ctx, claim.UserID); ok {
		return utils.SuccessResponse(c, fiber.StatusOK, snapshot)
	}

	snapshot, err := Upstream.Me(ctx, token)
	if err != nil {
		return upstreamError(c, "Failed to load profile", err)
	}
	cache.SaveSession(ctx, claim.UserID, *snapshot, AppConfig.Cache.SessionTTL)
	return utils.SuccessResponse(c, fiber.StatusOK, snapshot)
}
