package dto

import "github.com/ChristianPavilonis/orderdesk/internal/domain/model"

// CreateOrderRequest describes the payload for registering an order. Status
// is optional; orders without one start out pending.
type CreateOrderRequest struct {
	Amount int64         `json:"amount"`
	Status *model.Status `json:"status"`
}

// UpdateOrderStatusRequest describes the payload for moving an order to a
// new status.
type UpdateOrderStatusRequest struct {
	Status model.Status `json:"status"`
}

// OrderResponse represents a persisted order.
type OrderResponse struct {
	ID     int64  `json:"id"`
	Amount int64  `json:"amount"`
	Status string `json:"status"`
}
