package router

import (
	"campus_market/handler"
	"campus_market/middleware"
	"campus_market/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	v1.Get("/me", middleware.Protected(), handler.Me)

	orders := v1.Group("/orders")
	orders.Get("/", middleware.Protected(), handler.GetMyOrders)
	orders.Post("/:orderId/payment", middleware.Protected(), validate.RequireOrderID(), handler.MakePayment)
	orders.Post("/:orderId/payment/submitted", middleware.Protected(), validate.RequireOrderID(), handler.SubmitPromptPayPayment)
	orders.Get("/:orderId/label", middleware.Protected(), validate.RequireOrderID(), handler.PrintLabel)

	seller := v1.Group("/seller")
	sellerOrders := seller.Group("/orders")
	sellerOrders.Get("/", middleware.Protected(), handler.GetSellerOrders)
	sellerOrders.Patch("/:orderId/confirm", middleware.Protected(), validate.RequireOrderID(), handler.ConfirmOrder)
	sellerOrders.Patch("/:orderId/reject", middleware.Protected(), validate.RequireOrderID(), validate.RejectOrder(), handler.RejectOrder)
	sellerOrders.Post("/:orderId/delivered", middleware.Protected(), validate.RequireOrderID(), handler.MarkDelivered)

	chats := v1.Group("/chats")
	chats.Post("/threads", middleware.Protected(), validate.CreateThread(), handler.ContactSeller)

	notifications := v1.Group("/notifications")
	notifications.Get("/", middleware.Protected(), handler.GetNotifications)

	// Payment page promptpay orders redirect to.
	app.Get("/payments/promptpay/:orderId", middleware.Protected(), validate.RequireOrderID(), handler.PromptPayPage)

	app.Get("/ws/notifications", middleware.Protected(), websocket.New(handler.NotificationSocket))

	app.Get("/health", handler.HealthCheck)
}
