package storage

import (
	"context"
	"testing"
	"time"

	"delivery-tracker/internal/orders/model"
)

func TestFileStore_OrdersRoundtrip(t *testing.T) {
	t.Parallel()

	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	orders, err := store.LoadOrders(ctx)
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("fresh store must be empty, got %d", len(orders))
	}

	now := time.Now().UTC().Truncate(time.Second)
	want := []model.Order{{
		ID:          "ord-1",
		OrderID:     "S-1",
		PhoneNumber: "03123456",
		Price:       25,
		Sequence:    "1",
		Status:      model.StatusPending,
		CreatedAt:   now,
	}}
	if err := store.SaveOrders(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.LoadOrders(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0].ID != "ord-1" || got[0].Price != 25 || !got[0].CreatedAt.Equal(now) {
		t.Fatalf("roundtrip mismatch: %+v", got)
	}

	// full replacement, not merge
	if err := store.SaveOrders(ctx, nil); err != nil {
		t.Fatalf("save nil: %v", err)
	}
	got, _ = store.LoadOrders(ctx)
	if len(got) != 0 {
		t.Fatalf("save of empty collection must replace, got %d", len(got))
	}
}

func TestFileStore_ArchivesAndSettings(t *testing.T) {
	t.Parallel()

	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	settings, err := store.LoadSettings(ctx)
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if settings != model.DefaultSettings() {
		t.Fatalf("missing settings must fall back to defaults: %+v", settings)
	}

	settings.ManagerPhone = "70123123"
	if err := store.SaveSettings(ctx, settings); err != nil {
		t.Fatalf("save settings: %v", err)
	}
	got, _ := store.LoadSettings(ctx)
	if got.ManagerPhone != "70123123" {
		t.Fatalf("settings roundtrip mismatch: %+v", got)
	}

	round := model.ArchiveRound{ID: "round-1", Date: "2026-08-28 10:00"}
	if err := store.SaveArchives(ctx, []model.ArchiveRound{round}); err != nil {
		t.Fatalf("save archives: %v", err)
	}
	archives, err := store.LoadArchives(ctx)
	if err != nil {
		t.Fatalf("load archives: %v", err)
	}
	if len(archives) != 1 || archives[0].ID != "round-1" {
		t.Fatalf("archives roundtrip mismatch: %+v", archives)
	}
}
