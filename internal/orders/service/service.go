// Package service owns the persisted order collection: imports merge into it,
// status updates and edits rewrite it, archiving snapshots and clears it.
// All writes are full-collection replacements through the storage contract.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"delivery-tracker/internal/orders/importer"
	"delivery-tracker/internal/orders/model"
	"delivery-tracker/internal/storage"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrArchiveNotFound = errors.New("archive not found")
	ErrNoOrders        = errors.New("no orders to archive")
)

type Service struct {
	store storage.Store
	log   zerolog.Logger
}

func New(store storage.Store, log zerolog.Logger) *Service {
	return &Service{store: store, log: log}
}

func (s *Service) Orders(ctx context.Context) ([]model.Order, error) {
	return s.store.LoadOrders(ctx)
}

func (s *Service) Order(ctx context.Context, id string) (model.Order, error) {
	orders, err := s.store.LoadOrders(ctx)
	if err != nil {
		return model.Order{}, err
	}
	for _, o := range orders {
		if o.ID == id {
			return o, nil
		}
	}
	return model.Order{}, ErrOrderNotFound
}

func (s *Service) Stats(ctx context.Context) (model.Stats, error) {
	orders, err := s.store.LoadOrders(ctx)
	if err != nil {
		return model.Stats{}, err
	}
	return ComputeStats(orders), nil
}

// ImportWorkbook runs the ingestion pipeline and persists the result. In
// append mode the new orders are concatenated after the existing collection
// and their sequences continue from its maximum; replace mode starts over at
// 1. A failed parse writes nothing.
func (s *Service) ImportWorkbook(ctx context.Context, r io.Reader, filename, sheet string, appendMode bool) ([]model.Order, error) {
	existing, err := s.store.LoadOrders(ctx)
	if err != nil {
		return nil, err
	}

	built, err := importer.Import(r, filename, sheet, existing, appendMode)
	if err != nil {
		return nil, err
	}

	merged := built
	if appendMode {
		merged = append(existing, built...)
	}
	if err := s.store.SaveOrders(ctx, merged); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("file", filename).
		Str("sheet", sheet).
		Bool("append", appendMode).
		Int("imported", len(built)).
		Int("total", len(merged)).
		Msg("import done")
	return built, nil
}

// ManualOrder is the operator-entered counterpart of an imported row.
type ManualOrder struct {
	OrderID         string  `json:"orderId"`
	PhoneNumber     string  `json:"phoneNumber"`
	Country         string  `json:"country"`
	DeliveryCompany string  `json:"deliveryCompany"`
	Note            string  `json:"note"`
	PackageName     string  `json:"packageName"`
	Price           float64 `json:"price"`
}

// AddManualOrder prepends a single hand-entered order, continuing the
// sequence from the collection's current maximum.
func (s *Service) AddManualOrder(ctx context.Context, draft ManualOrder) (model.Order, error) {
	orders, err := s.store.LoadOrders(ctx)
	if err != nil {
		return model.Order{}, err
	}

	pkg := strings.TrimSpace(draft.PackageName)
	if pkg == "" {
		pkg = "طلب يدوي"
	}
	now := time.Now().UTC()
	o := model.Order{
		ID:              fmt.Sprintf("man-%d-%s", now.UnixMilli(), strings.SplitN(uuid.NewString(), "-", 2)[0]),
		OrderID:         strings.TrimSpace(draft.OrderID),
		PhoneNumber:     strings.TrimSpace(draft.PhoneNumber),
		Country:         strings.TrimSpace(draft.Country),
		DeliveryCompany: strings.TrimSpace(draft.DeliveryCompany),
		Note:            strings.TrimSpace(draft.Note),
		Price:           draft.Price,
		Sequence:        strconv.Itoa(importer.NextSequence(orders)),
		PackageName:     pkg,
		Status:          model.StatusPending,
		StatusUpdatedAt: now,
		CreatedAt:       now,
	}

	if err := s.store.SaveOrders(ctx, append([]model.Order{o}, orders...)); err != nil {
		return model.Order{}, err
	}
	return o, nil
}

// mutate applies fn to one order and writes the whole collection back.
func (s *Service) mutate(ctx context.Context, id string, fn func(*model.Order)) (model.Order, error) {
	orders, err := s.store.LoadOrders(ctx)
	if err != nil {
		return model.Order{}, err
	}
	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		fn(&orders[i])
		if err := s.store.SaveOrders(ctx, orders); err != nil {
			return model.Order{}, err
		}
		return orders[i], nil
	}
	return model.Order{}, ErrOrderNotFound
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status model.Status, reason string, paidAmount float64) (model.Order, error) {
	now := time.Now().UTC()
	return s.mutate(ctx, id, func(o *model.Order) {
		ApplyStatus(o, status, reason, paidAmount, now)
	})
}

func (s *Service) BulkUpdateStatus(ctx context.Context, ids []string, status model.Status) error {
	orders, err := s.store.LoadOrders(ctx)
	if err != nil {
		return err
	}
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	now := time.Now().UTC()
	for i := range orders {
		if wanted[orders[i].ID] {
			ApplyStatus(&orders[i], status, "", 0, now)
		}
	}
	return s.store.SaveOrders(ctx, orders)
}

func (s *Service) BulkUpdateCompany(ctx context.Context, ids []string, company string) error {
	orders, err := s.store.LoadOrders(ctx)
	if err != nil {
		return err
	}
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	for i := range orders {
		if wanted[orders[i].ID] {
			orders[i].DeliveryCompany = company
		}
	}
	return s.store.SaveOrders(ctx, orders)
}

// OrderPatch carries the editable order fields; nil means leave unchanged.
type OrderPatch struct {
	Price           *float64 `json:"price"`
	PhoneNumber     *string  `json:"phoneNumber"`
	Country         *string  `json:"country"`
	DetailedAddress *string  `json:"detailedAddress"`
	Note            *string  `json:"note"`
}

func (s *Service) EditOrder(ctx context.Context, id string, patch OrderPatch) (model.Order, error) {
	return s.mutate(ctx, id, func(o *model.Order) {
		if patch.Price != nil {
			o.Price = *patch.Price
		}
		if patch.PhoneNumber != nil {
			o.PhoneNumber = *patch.PhoneNumber
		}
		if patch.Country != nil {
			o.Country = *patch.Country
		}
		if patch.DetailedAddress != nil {
			o.DetailedAddress = *patch.DetailedAddress
		}
		if patch.Note != nil {
			o.Note = *patch.Note
		}
	})
}

func (s *Service) MarkContacted(ctx context.Context, id string) (model.Order, error) {
	return s.mutate(ctx, id, func(o *model.Order) {
		o.IsContacted = true
	})
}

func (s *Service) MarkManagerContacted(ctx context.Context, id string, managerIndex int) (model.Order, error) {
	if managerIndex != 1 && managerIndex != 2 {
		return model.Order{}, fmt.Errorf("manager index must be 1 or 2, got %d", managerIndex)
	}
	return s.mutate(ctx, id, func(o *model.Order) {
		if managerIndex == 1 {
			o.IsManager1Contacted = true
		} else {
			o.IsManager2Contacted = true
		}
	})
}

func (s *Service) SetOrderImage(ctx context.Context, id, image string) (model.Order, error) {
	return s.mutate(ctx, id, func(o *model.Order) {
		o.OrderImage = image
	})
}

func (s *Service) DeleteOrderImage(ctx context.Context, id string) (model.Order, error) {
	return s.mutate(ctx, id, func(o *model.Order) {
		o.OrderImage = ""
	})
}

func (s *Service) ClearImages(ctx context.Context) error {
	orders, err := s.store.LoadOrders(ctx)
	if err != nil {
		return err
	}
	for i := range orders {
		orders[i].OrderImage = ""
	}
	return s.store.SaveOrders(ctx, orders)
}

// ArchiveCurrentRound snapshots the working set (stats plus image-stripped
// orders), prepends it to the archive list and clears the working set. The
// snapshot is written first so a failed write leaves the orders in place.
func (s *Service) ArchiveCurrentRound(ctx context.Context) (model.ArchiveRound, error) {
	orders, err := s.store.LoadOrders(ctx)
	if err != nil {
		return model.ArchiveRound{}, err
	}
	if len(orders) == 0 {
		return model.ArchiveRound{}, ErrNoOrders
	}
	archives, err := s.store.LoadArchives(ctx)
	if err != nil {
		return model.ArchiveRound{}, err
	}

	stripped := make([]model.Order, len(orders))
	for i, o := range orders {
		o.OrderImage = ""
		stripped[i] = o
	}
	now := time.Now()
	round := model.ArchiveRound{
		ID:     fmt.Sprintf("round-%d", now.UnixMilli()),
		Date:   now.Format("2006-01-02 15:04"),
		Stats:  ComputeStats(orders),
		Orders: stripped,
	}

	if err := s.store.SaveArchives(ctx, append([]model.ArchiveRound{round}, archives...)); err != nil {
		return model.ArchiveRound{}, err
	}
	if err := s.store.SaveOrders(ctx, nil); err != nil {
		return model.ArchiveRound{}, err
	}

	s.log.Info().Str("round", round.ID).Int("orders", len(stripped)).Msg("round archived")
	return round, nil
}

func (s *Service) Archives(ctx context.Context) ([]model.ArchiveRound, error) {
	return s.store.LoadArchives(ctx)
}

func (s *Service) DeleteArchive(ctx context.Context, id string) error {
	archives, err := s.store.LoadArchives(ctx)
	if err != nil {
		return err
	}
	kept := archives[:0]
	for _, a := range archives {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(archives) {
		return ErrArchiveNotFound
	}
	return s.store.SaveArchives(ctx, kept)
}

func (s *Service) Settings(ctx context.Context) (model.Settings, error) {
	return s.store.LoadSettings(ctx)
}

func (s *Service) SaveSettings(ctx context.Context, settings model.Settings) error {
	return s.store.SaveSettings(ctx, settings)
}

// Reset clears orders and archives but keeps the operator settings.
func (s *Service) Reset(ctx context.Context) error {
	if err := s.store.SaveOrders(ctx, nil); err != nil {
		return err
	}
	return s.store.SaveArchives(ctx, nil)
}
