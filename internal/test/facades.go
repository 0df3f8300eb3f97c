package test

import (
	"context"

	"github.com/ChristianPavilonis/orderdesk/internal/domain/model"
)

// OrderUpdateCall stores information about UpdateOrderStatus invocations.
type OrderUpdateCall struct {
	ID     int64
	Status model.Status
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateFn func(context.Context, int64, *model.Status) (*model.Order, error)
	OrderFn  func(context.Context, int64) (*model.Order, error)
	OrdersFn func(context.Context) ([]model.Order, error)
	UpdateFn func(context.Context, int64, model.Status) error
	DeleteFn func(context.Context, int64) error

	UpdateCalls []OrderUpdateCall
	DeleteCalls []int64
}

// CreateOrder delegates to the provided function or returns a saved order
// with identifier 1.
func (s *OrderFacadeStub) CreateOrder(ctx context.Context, amount int64, status *model.Status) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, amount, status)
	}
	order := model.NewOrder(amount)
	if status != nil {
		order.Status = *status
	}
	id := int64(1)
	order.ID = &id
	return order, nil
}

// Order returns a predefined order under the requested identifier.
func (s *OrderFacadeStub) Order(ctx context.Context, id int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return &model.Order{ID: &id, Amount: 500, Status: model.StatusPending}, nil
}

// Orders returns predefined orders.
func (s *OrderFacadeStub) Orders(ctx context.Context) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	id := int64(1)
	return []model.Order{{ID: &id, Amount: 500, Status: model.StatusPending}}, nil
}

// UpdateOrderStatus records update requests.
func (s *OrderFacadeStub) UpdateOrderStatus(ctx context.Context, id int64, status model.Status) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, status)
	}
	s.UpdateCalls = append(s.UpdateCalls, OrderUpdateCall{ID: id, Status: status})
	return nil
}

// DeleteOrder records delete requests.
func (s *OrderFacadeStub) DeleteOrder(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	s.DeleteCalls = append(s.DeleteCalls, id)
	return nil
}

// HealthFacadeStub simulates store connectivity checks behind handlers.
type HealthFacadeStub struct {
	Err error
}

// Health reports the configured state.
func (s HealthFacadeStub) Health(context.Context) error { return s.Err }

// OrdersFacadeStub aggregates order and health stubs for router-level tests.
type OrdersFacadeStub struct {
	OrderFacadeStub
	HealthFacadeStub
}

// HealthCheckerStub reports configured store reachability.
type HealthCheckerStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s HealthCheckerStub) HealthCheck(context.Context) error { return s.Err }
