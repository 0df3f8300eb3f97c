package repository

import (
	"context"

	"github.com/ChristianPavilonis/orderdesk/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
//
// Save inserts when the order carries no ID and assigns the generated one to
// the caller's instance; otherwise it updates by ID, succeeding even when the
// row no longer exists. GetByID and DeleteByID report absence through their
// bool result rather than an error.
type OrderRepository interface {
	Save(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id int64) (*model.Order, bool, error)
	List(ctx context.Context) ([]model.Order, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
}
