package usecase

import (
	"context"

	domainErrors "github.com/ChristianPavilonis/orderdesk/internal/domain/errors"
	"github.com/ChristianPavilonis/orderdesk/internal/domain/model"
	"github.com/ChristianPavilonis/orderdesk/internal/domain/repository"
)

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// Create registers a new order. A nil status means the order starts out
// pending. The returned order carries the identifier assigned by the store.
func (u *OrderUseCase) Create(ctx context.Context, amount int64, status *model.Status) (*model.Order, error) {
	order := model.NewOrder(amount)
	if status != nil {
		order.Status = *status
	}
	if err := u.orders.Save(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Get returns the order with the given id.
func (u *OrderUseCase) Get(ctx context.Context, id int64) (*model.Order, error) {
	order, found, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domainErrors.ErrNotFound
	}
	return order, nil
}

// List returns every stored order.
func (u *OrderUseCase) List(ctx context.Context) ([]model.Order, error) {
	return u.orders.List(ctx)
}

// UpdateStatus moves an existing order to the given status. The fetch and the
// save are two independent store operations.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, id int64, status model.Status) error {
	order, found, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return domainErrors.ErrNotFound
	}
	order.Status = status
	return u.orders.Save(ctx, order)
}

// Delete removes the order with the given id.
func (u *OrderUseCase) Delete(ctx context.Context, id int64) error {
	deleted, err := u.orders.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domainErrors.ErrNotFound
	}
	return nil
}
