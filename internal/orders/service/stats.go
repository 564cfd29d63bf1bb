package service

import "delivery-tracker/internal/orders/model"

// DeliveryFee is the flat per-order fee the courier charges for every order
// whose delivery attempt ended in a financial outcome.
const DeliveryFee = 1.0

// ComputeStats derives the financial summary from the live collection. Fees
// apply only to delivered, partially-paid-cancelled and not-paid orders;
// pending, cancelled and postponed orders never triggered a delivery.
func ComputeStats(orders []model.Order) model.Stats {
	var st model.Stats
	st.TotalOrders = len(orders)

	deliveryActions := 0
	for _, o := range orders {
		st.TotalRevenue += o.Price
		switch o.Status {
		case model.StatusPending:
			st.PendingOrders++
		case model.StatusDelivered:
			st.DeliveredOrders++
			st.DeliveredRevenue += o.Price
			deliveryActions++
		case model.StatusCancelled:
			st.CancelledOrders++
		case model.StatusPostponed:
			st.PostponedOrders++
		case model.StatusNotPaid:
			st.NotPaidOrders++
			deliveryActions++
		case model.StatusCancelledDeliveryPayment:
			st.CancelledDeliveryPaymentOrders++
			st.TotalCashInHand += o.PaidAmount
			deliveryActions++
		}
	}
	st.TotalCashInHand += st.DeliveredRevenue
	st.NetRevenue = st.TotalCashInHand - float64(deliveryActions)*DeliveryFee
	return st
}
