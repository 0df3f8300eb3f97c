package test

import (
	"context"
	"sort"

	"github.com/ChristianPavilonis/orderdesk/internal/domain/model"
)

// OrderRepositoryStub keeps orders in memory and assigns sequential
// identifiers, so full request flows can run against it. Individual
// operations can be overridden through the function fields.
type OrderRepositoryStub struct {
	SaveFn    func(context.Context, *model.Order) error
	GetByIDFn func(context.Context, int64) (*model.Order, bool, error)
	ListFn    func(context.Context) ([]model.Order, error)
	DeleteFn  func(context.Context, int64) (bool, error)

	Orders map[int64]*model.Order
	Next   int64
}

// NewOrderRepositoryStub constructs stub repository with initialized state.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{
		Orders: make(map[int64]*model.Order),
		Next:   1,
	}
}

// Save inserts orders without an identifier and updates the rest. An update
// of a vanished order silently does nothing.
func (s *OrderRepositoryStub) Save(ctx context.Context, order *model.Order) error {
	if s.SaveFn != nil {
		return s.SaveFn(ctx, order)
	}
	if s.Orders == nil {
		s.Orders = make(map[int64]*model.Order)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	if order.IsNew() {
		id := s.Next
		s.Next++
		order.ID = &id
	} else if _, ok := s.Orders[*order.ID]; !ok {
		return nil
	}
	stored := *order
	s.Orders[*order.ID] = &stored
	return nil
}

// GetByID returns a copy of the stored order when present.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, bool, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	order, ok := s.Orders[id]
	if !ok {
		return nil, false, nil
	}
	result := *order
	return &result, true, nil
}

// List returns stored orders sorted by identifier for deterministic tests.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	ids := make([]int64, 0, len(s.Orders))
	for id := range s.Orders {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	result := make([]model.Order, 0, len(ids))
	for _, id := range ids {
		result = append(result, *s.Orders[id])
	}
	return result, nil
}

// DeleteByID removes the order and reports whether it existed.
func (s *OrderRepositoryStub) DeleteByID(ctx context.Context, id int64) (bool, error) {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	if _, ok := s.Orders[id]; !ok {
		return false, nil
	}
	delete(s.Orders, id)
	return true, nil
}
