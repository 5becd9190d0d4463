package handler

import (
	"context"
	"log"
	"time"

	"campus_market/cache"
	"campus_market/helper"
	"campus_market/model"
	"campus_market/utils"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

func GetNotifications(c *fiber.Ctx) error {
	_, token, err := helper.CurrentUser(c)
	if err != nil {
		return utils.LoginRequired(c)
	}

	result, err := Upstream.ListNotifications(c.UserContext(), token)
	if err != nil {
		return upstreamError(c, "Failed to load notifications", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, result)
}

const notificationPollInterval = 30 * time.Second

// NotificationSocket streams the bell dropdown. While the socket is open the
// gateway polls the core every 30 seconds; mutation handlers publish refresh
// hints over redis so open sockets update without waiting for the tick.
// Everything stops when the client closes the socket.
func NotificationSocket(conn *websocket.Conn) {
	claim, ok := conn.Locals("claims").(model.TokenClaim)
	token, _ := conn.Locals("token").(string)
	if !ok || token == "" {
		conn.Close()
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The client never sends payloads; reading only detects the close.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	var hints <-chan *redis.Message
	if cache.Rdb != nil {
		pubsub := cache.Rdb.Subscribe(ctx, cache.OrdersChannel(claim.UserID))
		defer pubsub.Close()
		hints = pubsub.Channel()
	}

	push := func() {
		result, err := Upstream.ListNotifications(ctx, token)
		if err != nil {
			// Transient; the socket stays up and the next tick retries.
			log.Printf("notification poll for %s: %v", claim.UserID, err)
			return
		}
		newest := ""
		if len(result.Notifications) > 0 {
			newest = result.Notifications[0].ID
		}
		if newest != "" && newest == cache.LastSeenNotification(ctx, claim.UserID) {
			return
		}
		if err := conn.WriteJSON(result); err != nil {
			cancel()
			return
		}
		cache.SetLastSeenNotification(ctx, claim.UserID, newest, AppConfig.Cache.SessionTTL)
	}

	push()
	ticker := time.NewTicker(notificationPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			push()
		case _, open := <-hints:
			if !open {
				return
			}
			push()
		}
	}
}
