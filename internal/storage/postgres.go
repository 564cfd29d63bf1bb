package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"delivery-tracker/internal/orders/model"
)

// PostgresStore keeps each blob as one jsonb row in a kv table. Collections
// are still replaced wholesale; Postgres buys durability, not a row API.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS kv (
  key text PRIMARY KEY,
  payload jsonb NOT NULL
);`); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}

func (s *PostgresStore) load(ctx context.Context, key string, v any) error {
	var payload []byte
	err := s.pool.QueryRow(ctx, `SELECT payload FROM kv WHERE key = $1`, key).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(payload, v)
}

func (s *PostgresStore) save(ctx context.Context, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `INSERT INTO kv(key, payload) VALUES($1, $2)
        ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload`, key, payload)
	return err
}

func (s *PostgresStore) LoadOrders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := s.load(ctx, KeyOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *PostgresStore) SaveOrders(ctx context.Context, orders []model.Order) error {
	if orders == nil {
		orders = []model.Order{}
	}
	return s.save(ctx, KeyOrders, orders)
}

func (s *PostgresStore) LoadArchives(ctx context.Context) ([]model.ArchiveRound, error) {
	var archives []model.ArchiveRound
	if err := s.load(ctx, KeyArchives, &archives); err != nil {
		return nil, err
	}
	return archives, nil
}

func (s *PostgresStore) SaveArchives(ctx context.Context, archives []model.ArchiveRound) error {
	if archives == nil {
		archives = []model.ArchiveRound{}
	}
	return s.save(ctx, KeyArchives, archives)
}

func (s *PostgresStore) LoadSettings(ctx context.Context) (model.Settings, error) {
	settings := model.DefaultSettings()
	if err := s.load(ctx, KeySettings, &settings); err != nil {
		return model.Settings{}, err
	}
	return settings, nil
}

func (s *PostgresStore) SaveSettings(ctx context.Context, settings model.Settings) error {
	return s.save(ctx, KeySettings, settings)
}

var _ Store = (*PostgresStore)(nil)
