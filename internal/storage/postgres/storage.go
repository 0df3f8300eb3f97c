package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ChristianPavilonis/orderdesk/internal/domain/model"
	"github.com/ChristianPavilonis/orderdesk/internal/domain/repository"
)

// pgxPool is the slice of pgxpool.Pool behavior the storage depends on.
type pgxPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type orderRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	logger.Info("database schema initialized")

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Orders returns the order repository backed by this storage.
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
            id BIGSERIAL PRIMARY KEY,
            status TEXT NOT NULL,
            amount BIGINT NOT NULL
        )`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) Save(ctx context.Context, order *model.Order) error {
	if order.IsNew() {
		const query = `INSERT INTO orders (status, amount) VALUES ($1, $2) RETURNING id`
		var id int64
		if err := r.storage.pool.QueryRow(ctx, query, order.Status, order.Amount).Scan(&id); err != nil {
			return err
		}
		order.ID = &id
		return nil
	}

	// Updating a row that no longer exists affects nothing and is not an error.
	const query = `UPDATE orders SET status=$1, amount=$2 WHERE id=$3`
	_, err := r.storage.pool.Exec(ctx, query, order.Status, order.Amount, *order.ID)
	return err
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, bool, error) {
	const query = `SELECT id, status, amount FROM orders WHERE id=$1`
	var (
		storedID  int64
		rawStatus string
		amount    int64
	)
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&storedID, &rawStatus, &amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return &model.Order{ID: &storedID, Amount: amount, Status: model.StatusFromStorage(rawStatus)}, true, nil
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	const query = `SELECT id, status, amount FROM orders`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var (
			id        int64
			rawStatus string
			amount    int64
		)
		if err := rows.Scan(&id, &rawStatus, &amount); err != nil {
			return nil, err
		}
		result = append(result, model.Order{ID: &id, Amount: amount, Status: model.StatusFromStorage(rawStatus)})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM orders WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
