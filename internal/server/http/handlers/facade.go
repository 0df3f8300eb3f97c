package handlers

import (
	"context"

	"github.com/ChristianPavilonis/orderdesk/internal/domain/model"
)

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, amount int64, status *model.Status) (*model.Order, error)
	Order(ctx context.Context, id int64) (*model.Order, error)
	Orders(ctx context.Context) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status model.Status) error
	DeleteOrder(ctx context.Context, id int64) error
}

// HealthFacade reports backing store reachability.
type HealthFacade interface {
	Health(ctx context.Context) error
}

// OrdersFacade aggregates the full set of operations used across handlers.
type OrdersFacade interface {
	OrderFacade
	HealthFacade
}
