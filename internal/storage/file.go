package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"syscall"

	"delivery-tracker/internal/orders/model"
)

// FileStore keeps each blob as one JSON file under dir. Writes go through a
// temp file and rename so a crash never leaves a half-written collection.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) load(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

func (s *FileStore) save(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		if errors.Is(err, syscall.ENOSPC) {
			return fmt.Errorf("%w: %v", ErrQuota, err)
		}
		return err
	}
	return os.Rename(tmp, s.path(key))
}

func (s *FileStore) LoadOrders(_ context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := s.load(KeyOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *FileStore) SaveOrders(_ context.Context, orders []model.Order) error {
	if orders == nil {
		orders = []model.Order{}
	}
	return s.save(KeyOrders, orders)
}

func (s *FileStore) LoadArchives(_ context.Context) ([]model.ArchiveRound, error) {
	var archives []model.ArchiveRound
	if err := s.load(KeyArchives, &archives); err != nil {
		return nil, err
	}
	return archives, nil
}

func (s *FileStore) SaveArchives(_ context.Context, archives []model.ArchiveRound) error {
	if archives == nil {
		archives = []model.ArchiveRound{}
	}
	return s.save(KeyArchives, archives)
}

func (s *FileStore) LoadSettings(_ context.Context) (model.Settings, error) {
	settings := model.DefaultSettings()
	if err := s.load(KeySettings, &settings); err != nil {
		return model.Settings{}, err
	}
	return settings, nil
}

func (s *FileStore) SaveSettings(_ context.Context, settings model.Settings) error {
	return s.save(KeySettings, settings)
}

var _ Store = (*FileStore)(nil)
