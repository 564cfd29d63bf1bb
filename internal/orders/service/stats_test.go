package service

import (
	"testing"

	"delivery-tracker/internal/orders/model"
)

func TestComputeStats_Financials(t *testing.T) {
	t.Parallel()

	orders := []model.Order{
		{Status: model.StatusDelivered, Price: 10},
		{Status: model.StatusCancelledDeliveryPayment, Price: 20, PaidAmount: 5},
		{Status: model.StatusNotPaid, Price: 8},
	}
	st := ComputeStats(orders)

	if st.TotalRevenue != 38 {
		t.Fatalf("totalRevenue want=38 got=%v", st.TotalRevenue)
	}
	if st.TotalCashInHand != 15 {
		t.Fatalf("totalCashInHand want=15 got=%v", st.TotalCashInHand)
	}
	if st.NetRevenue != 12 {
		t.Fatalf("netRevenue want=12 got=%v", st.NetRevenue)
	}
	if st.DeliveredRevenue != 10 {
		t.Fatalf("deliveredRevenue want=10 got=%v", st.DeliveredRevenue)
	}
}

func TestComputeStats_FeesSkipNonDeliveryOutcomes(t *testing.T) {
	t.Parallel()

	orders := []model.Order{
		{Status: model.StatusPending, Price: 10},
		{Status: model.StatusCancelled, Price: 10},
		{Status: model.StatusPostponed, Price: 10},
	}
	st := ComputeStats(orders)
	if st.TotalCashInHand != 0 || st.NetRevenue != 0 {
		t.Fatalf("no delivery action may incur a fee: %+v", st)
	}
	if st.TotalRevenue != 30 {
		t.Fatalf("totalRevenue want=30 got=%v", st.TotalRevenue)
	}
}

func TestComputeStats_Counts(t *testing.T) {
	t.Parallel()

	orders := []model.Order{
		{Status: model.StatusPending},
		{Status: model.StatusPending},
		{Status: model.StatusDelivered},
		{Status: model.StatusCancelled},
		{Status: model.StatusPostponed},
		{Status: model.StatusNotPaid},
		{Status: model.StatusCancelledDeliveryPayment},
	}
	st := ComputeStats(orders)
	if st.TotalOrders != 7 || st.PendingOrders != 2 || st.DeliveredOrders != 1 ||
		st.CancelledOrders != 1 || st.PostponedOrders != 1 || st.NotPaidOrders != 1 ||
		st.CancelledDeliveryPaymentOrders != 1 {
		t.Fatalf("unexpected counts: %+v", st)
	}
}

func TestComputeStats_Empty(t *testing.T) {
	t.Parallel()

	if st := ComputeStats(nil); st != (model.Stats{}) {
		t.Fatalf("empty collection must yield all-zero stats: %+v", st)
	}
}
