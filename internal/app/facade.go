package app

import (
	"context"

	"github.com/ChristianPavilonis/orderdesk/internal/domain/model"
	"github.com/ChristianPavilonis/orderdesk/internal/usecase"
)

type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type OrdersFacade struct {
	orders *usecase.OrderUseCase
	health HealthChecker
}

func NewOrdersFacade(orders *usecase.OrderUseCase, health HealthChecker) *OrdersFacade {
	return &OrdersFacade{orders: orders, health: health}
}

func (f *OrdersFacade) CreateOrder(ctx context.Context, amount int64, status *model.Status) (*model.Order, error) {
	return f.orders.Create(ctx, amount, status)
}

func (f *OrdersFacade) Order(ctx context.Context, id int64) (*model.Order, error) {
	return f.orders.Get(ctx, id)
}

func (f *OrdersFacade) Orders(ctx context.Context) ([]model.Order, error) {
	return f.orders.List(ctx)
}

func (f *OrdersFacade) UpdateOrderStatus(ctx context.Context, id int64, status model.Status) error {
	return f.orders.UpdateStatus(ctx, id, status)
}

func (f *OrdersFacade) DeleteOrder(ctx context.Context, id int64) error {
	return f.orders.Delete(ctx, id)
}

func (f *OrdersFacade) Health(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
