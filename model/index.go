package model

import "time"

type TokenClaim struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// UserSnapshot is the denormalized profile blob the original frontend kept
// next to the token. The gateway caches it per session and serves it on /me.
type UserSnapshot struct {
	ID        string `json:"id" validate:"required"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// OrderListResponse is the list envelope the gateway serves. StatusCounts
// mirrors what the core API reports so filter tabs can show badge numbers.
type OrderListResponse struct {
	Rows         []OrderView    `json:"rows"`
	Page         int            `json:"page"`
	Limit        int            `json:"limit"`
	TotalPages   int            `json:"totalPages"`
	Total        int            `json:"total"`
	StatusCounts map[string]int `json:"statusCounts,omitempty"`
	EmptyMessage string         `json:"emptyMessage,omitempty"`
}

type RejectOrderInput struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type CreateThreadInput struct {
	SellerID string `json:"sellerId" validate:"required"`
}

// LabelView is the printable shipping label for a delivery order.
type LabelView struct {
	OrderID   string   `json:"orderId"`
	ParcelRef string   `json:"parcelRef"`
	Recipient string   `json:"recipient"`
	Phone     string   `json:"phone"`
	Address   []string `json:"address"`
	QRCode    string   `json:"qrCode"`
}

// PromptPayCharge is what the promptpay payment page renders: the EMV
// payload for banking apps plus a scannable QR of the same payload.
type PromptPayCharge struct {
	OrderID string  `json:"orderId"`
	Amount  float64 `json:"amount"`
	Payload string  `json:"payload"`
	QRCode  string  `json:"qrCode"`
}

type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	OrderID   string    `json:"orderId,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
