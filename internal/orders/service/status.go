package service

import (
	"time"

	"delivery-tracker/internal/orders/model"
)

// ApplyStatus moves an order into a new workflow state. Any state may move to
// any other; delivery wipes the failure context, a partial-payment
// cancellation records the cash actually collected, every other state keeps
// the operator's reason and has no meaningful paid amount.
func ApplyStatus(o *model.Order, status model.Status, reason string, paidAmount float64, now time.Time) {
	o.Status = status
	switch status {
	case model.StatusDelivered:
		o.StatusReason = ""
		o.PaidAmount = 0
	case model.StatusCancelledDeliveryPayment:
		o.StatusReason = reason
		o.PaidAmount = paidAmount
	default:
		o.StatusReason = reason
		o.PaidAmount = 0
	}
	o.StatusUpdatedAt = now
}
