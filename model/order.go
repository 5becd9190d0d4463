package model

import (
	"strings"
	"time"
)

// OrderStatus is the closed set of order states the backend is supposed to
// send. Unknown/legacy values normalize to OrderStatusUnknown ("").
type OrderStatus string

const (
	OrderStatusPendingSeller OrderStatus = "pending_seller_confirmation"
	OrderStatusConfirmed     OrderStatus = "confirmed"
	OrderStatusRejected      OrderStatus = "rejected"
	OrderStatusCompleted     OrderStatus = "completed"
	OrderStatusCancelled     OrderStatus = "cancelled"
	OrderStatusUnknown       OrderStatus = ""
)

type DeliveryMethod string

const (
	DeliveryMethodPickup   DeliveryMethod = "pickup"
	DeliveryMethodDelivery DeliveryMethod = "delivery"
	DeliveryMethodUnknown  DeliveryMethod = ""
)

type PaymentMethod string

const (
	PaymentMethodCash      PaymentMethod = "cash"
	PaymentMethodTransfer  PaymentMethod = "transfer"
	PaymentMethodPromptPay PaymentMethod = "promptpay"
	PaymentMethodUnknown   PaymentMethod = ""
)

type PaymentStatus string

const (
	PaymentStatusPending     PaymentStatus = "pending"
	PaymentStatusAwaiting    PaymentStatus = "awaiting_payment"
	PaymentStatusSubmitted   PaymentStatus = "payment_submitted"
	PaymentStatusPaid        PaymentStatus = "paid"
	PaymentStatusNotRequired PaymentStatus = "not_required"
	PaymentStatusUnknown     PaymentStatus = ""
)

// canon trims and lowercases a wire value. The backend is not consistent
// about casing or padding, so every enum goes through this before matching.
func canon(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func NormalizeOrderStatus(raw string) OrderStatus {
	switch s := OrderStatus(canon(raw)); s {
	case OrderStatusPendingSeller, OrderStatusConfirmed, OrderStatusRejected,
		OrderStatusCompleted, OrderStatusCancelled:
		return s
	default:
		return OrderStatusUnknown
	}
}

func NormalizeDeliveryMethod(raw string) DeliveryMethod {
	switch m := DeliveryMethod(canon(raw)); m {
	case DeliveryMethodPickup, DeliveryMethodDelivery:
		return m
	default:
		return DeliveryMethodUnknown
	}
}

func NormalizePaymentMethod(raw string) PaymentMethod {
	switch m := PaymentMethod(canon(raw)); m {
	case PaymentMethodCash, PaymentMethodTransfer, PaymentMethodPromptPay:
		return m
	default:
		return PaymentMethodUnknown
	}
}

func NormalizePaymentStatus(raw string) PaymentStatus {
	switch s := PaymentStatus(canon(raw)); s {
	case PaymentStatusPending, PaymentStatusAwaiting, PaymentStatusSubmitted,
		PaymentStatusPaid, PaymentStatusNotRequired:
		return s
	default:
		return PaymentStatusUnknown
	}
}

// IsTerminal reports whether no further transition is expected. The gateway
// never sends a mutation for a terminal order on its own initiative.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusRejected || s == OrderStatusCancelled
}

// Order is the wire shape the marketplace core returns. Enum fields stay raw
// strings here; they are normalized where the gateway builds views, never
// trusted as-is.
type Order struct {
	ID              string           `json:"id" validate:"required"`
	SellerID        string           `json:"sellerId"`
	Status          string           `json:"status" validate:"required"`
	DeliveryMethod  string           `json:"deliveryMethod"`
	PaymentMethod   string           `json:"paymentMethod"`
	PaymentStatus   string           `json:"paymentStatus"`
	SellerDelivered bool             `json:"sellerDelivered"`
	TotalAmount     float64          `json:"totalAmount" validate:"gte=0"`
	Items           []OrderItem      `json:"items" validate:"dive"`
	BuyerContact    *BuyerContact    `json:"buyerContact,omitempty"`
	ShippingAddress *ShippingAddress `json:"shippingAddress,omitempty"`
	PickupDetails   *PickupDetails   `json:"pickupDetails,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
}

type OrderItem struct {
	ItemID   string  `json:"itemId" validate:"required"`
	Title    string  `json:"title"`
	Price    float64 `json:"price" validate:"gte=0"`
	Quantity int     `json:"quantity" validate:"gte=1"`
	Image    *string `json:"image,omitempty"`
}

// Snapshots captured at checkout time, not live profile references.
type BuyerContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type ShippingAddress struct {
	Recipient  string `json:"recipient"`
	Phone      string `json:"phone"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	Campus     string `json:"campus,omitempty"`
	PostalCode string `json:"postalCode"`
}

type PickupDetails struct {
	Location string `json:"location"`
	Note     string `json:"note,omitempty"`
}

// OrderActions is the derived per-order eligibility set. Nothing here is
// stored anywhere; it is recomputed from normalized fields on every read.
type OrderActions struct {
	RequiresPayment      bool `json:"requiresPayment"`
	AwaitingBuyerPayment bool `json:"awaitingBuyerPayment"`
	PaymentComplete      bool `json:"paymentComplete"`
	CanMarkDelivered     bool `json:"canMarkDelivered"`
	CanPrintLabel        bool `json:"canPrintLabel"`
	CanContactSeller     bool `json:"canContactSeller"`
}

// OrderView is what the gateway serves per row: the order with its enum
// fields normalized plus the derived action set.
type OrderView struct {
	ID              string           `json:"id"`
	SellerID        string           `json:"sellerId,omitempty"`
	Status          string           `json:"status"`
	DeliveryMethod  string           `json:"deliveryMethod"`
	PaymentMethod   string           `json:"paymentMethod"`
	PaymentStatus   string           `json:"paymentStatus,omitempty"`
	SellerDelivered bool             `json:"sellerDelivered"`
	TotalAmount     float64          `json:"totalAmount"`
	Items           []OrderItem      `json:"items"`
	BuyerContact    *BuyerContact    `json:"buyerContact,omitempty"`
	ShippingAddress *ShippingAddress `json:"shippingAddress,omitempty"`
	PickupDetails   *PickupDetails   `json:"pickupDetails,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	Actions         OrderActions     `json:"actions"`
}
