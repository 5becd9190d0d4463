package helper

import (
	"strings"

	"campus_market/model"
)

// RequiresPayment decides whether the buyer owes an online payment. Besides
// the two known online methods it keeps a raw-string fallback: any non-empty
// method that is not literally "cash" is treated as payable, so an
// unrecognized method never silently skips payment collection.
func RequiresPayment(method model.PaymentMethod, rawMethod string) bool {
	if method == model.PaymentMethodPromptPay || method == model.PaymentMethodTransfer {
		return true
	}
	raw := strings.ToLower(strings.TrimSpace(rawMethod))
	return raw != "" && raw != string(model.PaymentMethodCash)
}

// DeriveOrderActions computes the action set for one order. Pure; callers
// own any logging or mutation that follows.
//
// AwaitingBuyerPayment and PaymentComplete are computed independently. On
// backend-consistent data they are mutually exclusive, but nothing here
// enforces that; see ActionsConsistent.
func DeriveOrderActions(o model.Order) model.OrderActions {
	status := model.NormalizeOrderStatus(o.Status)
	method := model.NormalizePaymentMethod(o.PaymentMethod)
	payStatus := model.NormalizePaymentStatus(o.PaymentStatus)
	delivery := model.NormalizeDeliveryMethod(o.DeliveryMethod)

	requires := RequiresPayment(method, o.PaymentMethod)

	awaiting := requires &&
		status == model.OrderStatusConfirmed &&
		(payStatus == model.PaymentStatusAwaiting ||
			payStatus == model.PaymentStatusPending ||
			payStatus == model.PaymentStatusUnknown)

	complete := payStatus == model.PaymentStatusSubmitted || payStatus == model.PaymentStatusPaid

	return model.OrderActions{
		RequiresPayment:      requires,
		AwaitingBuyerPayment: awaiting,
		PaymentComplete:      complete,
		CanMarkDelivered:     status == model.OrderStatusConfirmed && !o.SellerDelivered && !(requires && !complete),
		CanPrintLabel:        delivery == model.DeliveryMethodDelivery,
		CanContactSeller:     o.SellerID != "",
	}
}

// ActionsConsistent reports whether the derived set is free of the
// awaiting-and-complete contradiction. False means the backend sent
// contradictory payment data; the gateway logs it and serves the row as-is.
func ActionsConsistent(a model.OrderActions) bool {
	return !(a.AwaitingBuyerPayment && a.PaymentComplete)
}
