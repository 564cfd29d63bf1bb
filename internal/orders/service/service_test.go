package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"delivery-tracker/internal/orders/model"
	"delivery-tracker/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("file store: %v", err)
	}
	return New(store, zerolog.Nop())
}

func TestAddManualOrder_SequenceContinues(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.AddManualOrder(ctx, ManualOrder{OrderID: "M-1", Price: 10})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if first.Sequence != "1" {
		t.Fatalf("first sequence want=1 got=%q", first.Sequence)
	}
	if first.Status != model.StatusPending {
		t.Fatalf("manual orders start pending, got %q", first.Status)
	}
	if first.PackageName != "طلب يدوي" {
		t.Fatalf("default package name not applied: %q", first.PackageName)
	}

	second, err := svc.AddManualOrder(ctx, ManualOrder{OrderID: "M-2"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if second.Sequence != "2" {
		t.Fatalf("second sequence want=2 got=%q", second.Sequence)
	}

	orders, err := svc.Orders(ctx)
	if err != nil {
		t.Fatalf("orders: %v", err)
	}
	if len(orders) != 2 || orders[0].ID != second.ID {
		t.Fatalf("manual orders must be prepended: %+v", orders)
	}
}

func TestUpdateStatus_Persisted(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	o, err := svc.AddManualOrder(ctx, ManualOrder{OrderID: "M-1", Price: 10})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	updated, err := svc.UpdateStatus(ctx, o.ID, model.StatusCancelledDeliveryPayment, "رفض الطرد", 3)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.PaidAmount != 3 || updated.StatusReason != "رفض الطرد" {
		t.Fatalf("unexpected update: %+v", updated)
	}

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalCashInHand != 3 || stats.NetRevenue != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	if _, err := svc.UpdateStatus(ctx, "missing", model.StatusDelivered, "", 0); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("want ErrOrderNotFound, got %v", err)
	}
}

func TestBulkUpdates(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	a, _ := svc.AddManualOrder(ctx, ManualOrder{OrderID: "A"})
	b, _ := svc.AddManualOrder(ctx, ManualOrder{OrderID: "B"})
	c, _ := svc.AddManualOrder(ctx, ManualOrder{OrderID: "C"})

	if err := svc.BulkUpdateStatus(ctx, []string{a.ID, b.ID}, model.StatusDelivered); err != nil {
		t.Fatalf("bulk status: %v", err)
	}
	if err := svc.BulkUpdateCompany(ctx, []string{c.ID}, "شركة النجمة"); err != nil {
		t.Fatalf("bulk company: %v", err)
	}

	orders, _ := svc.Orders(ctx)
	byID := map[string]model.Order{}
	for _, o := range orders {
		byID[o.ID] = o
	}
	if byID[a.ID].Status != model.StatusDelivered || byID[b.ID].Status != model.StatusDelivered {
		t.Fatalf("bulk status not applied")
	}
	if byID[c.ID].Status != model.StatusPending {
		t.Fatalf("untargeted order must stay pending")
	}
	if byID[c.ID].DeliveryCompany != "شركة النجمة" {
		t.Fatalf("bulk company not applied")
	}
}

func TestArchiveRound(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.ArchiveCurrentRound(ctx); !errors.Is(err, ErrNoOrders) {
		t.Fatalf("empty round must not archive, got %v", err)
	}

	o, _ := svc.AddManualOrder(ctx, ManualOrder{OrderID: "A", Price: 10})
	if _, err := svc.SetOrderImage(ctx, o.ID, "base64-image-data"); err != nil {
		t.Fatalf("set image: %v", err)
	}
	if _, err := svc.UpdateStatus(ctx, o.ID, model.StatusDelivered, "", 0); err != nil {
		t.Fatalf("update: %v", err)
	}

	round, err := svc.ArchiveCurrentRound(ctx)
	if err != nil {
		t.Fatalf("archive: %v", err)
	}
	if round.Stats.DeliveredOrders != 1 || round.Stats.NetRevenue != 9 {
		t.Fatalf("unexpected archived stats: %+v", round.Stats)
	}
	if round.Orders[0].OrderImage != "" {
		t.Fatalf("archived orders must have images stripped")
	}

	orders, _ := svc.Orders(ctx)
	if len(orders) != 0 {
		t.Fatalf("archiving must clear the working set, got %d orders", len(orders))
	}

	archives, _ := svc.Archives(ctx)
	if len(archives) != 1 || archives[0].ID != round.ID {
		t.Fatalf("unexpected archives: %+v", archives)
	}

	if err := svc.DeleteArchive(ctx, round.ID); err != nil {
		t.Fatalf("delete archive: %v", err)
	}
	if err := svc.DeleteArchive(ctx, round.ID); !errors.Is(err, ErrArchiveNotFound) {
		t.Fatalf("want ErrArchiveNotFound, got %v", err)
	}
}

func TestResetKeepsSettings(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	if err := svc.SaveSettings(ctx, model.Settings{DeliveryDate: "الخميس", ManagerPhone: "70123123"}); err != nil {
		t.Fatalf("save settings: %v", err)
	}
	if _, err := svc.AddManualOrder(ctx, ManualOrder{OrderID: "A"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := svc.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	orders, _ := svc.Orders(ctx)
	archives, _ := svc.Archives(ctx)
	if len(orders) != 0 || len(archives) != 0 {
		t.Fatalf("reset must clear orders and archives")
	}
	settings, _ := svc.Settings(ctx)
	if settings.ManagerPhone != "70123123" {
		t.Fatalf("reset must keep settings: %+v", settings)
	}
}

func TestEditAndContactFlags(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	o, _ := svc.AddManualOrder(ctx, ManualOrder{OrderID: "A", Price: 10})

	price := 15.5
	addr := "شارع الحمرا، بناية 4"
	edited, err := svc.EditOrder(ctx, o.ID, OrderPatch{Price: &price, DetailedAddress: &addr})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if edited.Price != 15.5 || edited.DetailedAddress != addr {
		t.Fatalf("edit not applied: %+v", edited)
	}

	if _, err := svc.MarkContacted(ctx, o.ID); err != nil {
		t.Fatalf("mark contacted: %v", err)
	}
	if _, err := svc.MarkManagerContacted(ctx, o.ID, 2); err != nil {
		t.Fatalf("mark manager contacted: %v", err)
	}
	if _, err := svc.MarkManagerContacted(ctx, o.ID, 3); err == nil {
		t.Fatalf("manager index 3 must be rejected")
	}

	got, _ := svc.Order(ctx, o.ID)
	if !got.IsContacted || !got.IsManager2Contacted || got.IsManager1Contacted {
		t.Fatalf("unexpected contact flags: %+v", got)
	}
}
