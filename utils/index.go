package utils

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
)

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	} else {
		errMsg = nil
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   errMsg,
	})
}

func SuccessResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

// LoginRequired rejects the request before any upstream call and tells the
// frontend where to bounce back to after logging in.
func LoginRequired(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message":  "Please login",
		"redirect": "/login?redirect=" + url.QueryEscape(c.OriginalURL()),
	})
}

const (
	defaultPageLimit = 10
	maxPageLimit     = 50
)

// ParseListQuery reads the status filter and paging params with the same
// defaults and clamping the original pages used.
func ParseListQuery(c *fiber.Ctx) (status string, page, limit int) {
	status = c.Query("status", "all")
	page = c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit = c.QueryInt("limit", defaultPageLimit)
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return status, page, limit
}

// EmptyListMessage picks the empty-state text. An active filter gets a
// filter-specific message so the user knows the filter (not the account) is
// why nothing shows.
func EmptyListMessage(statusFilter string) string {
	if statusFilter == "" || statusFilter == "all" {
		return "No orders yet"
	}
	switch statusFilter {
	case "pending_seller_confirmation":
		return "No orders awaiting confirmation"
	default:
		return "No " + statusFilter + " orders"
	}
}
