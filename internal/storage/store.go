// Package storage persists the order book as whole-collection blobs keyed by
// name. There is no row-level API: callers read a full copy and write back a
// full replacement, which keeps the single-writer assumption explicit.
package storage

import (
	"context"
	"errors"

	"delivery-tracker/internal/orders/model"
)

// blob keys
const (
	KeyOrders   = "orders"
	KeyArchives = "archives"
	KeySettings = "settings"
)

// ErrQuota means a write exceeded the available storage. The in-memory result
// of the operation was computed correctly but is not durable.
var ErrQuota = errors.New("storage quota exceeded")

// Store is the full-collection get/set contract. Any key-value persistence
// satisfies it; file and Postgres implementations are provided.
type Store interface {
	LoadOrders(ctx context.Context) ([]model.Order, error)
	SaveOrders(ctx context.Context, orders []model.Order) error
	LoadArchives(ctx context.Context) ([]model.ArchiveRound, error)
	SaveArchives(ctx context.Context, archives []model.ArchiveRound) error
	LoadSettings(ctx context.Context) (model.Settings, error)
	SaveSettings(ctx context.Context, s model.Settings) error
}
