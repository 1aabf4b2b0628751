package repository

import (
	"context"

	"bizportal/internal/domain/entities"
	"bizportal/internal/usecase/interfaces"
)

// OrderMemoryRepository keeps the Orders collection in memory.

type OrderMemoryRepository struct {
	orders *collection[entities.Order]
}

var _ interfaces.IOrderRepository = (*OrderMemoryRepository)(nil)

func NewOrderMemoryRepository() *OrderMemoryRepository {
	return &OrderMemoryRepository{
		orders: newCollection(func(o entities.Order) string { return o.ID }, nil),
	}
}

func (r *OrderMemoryRepository) Prepend(_ context.Context, o entities.Order) (entities.Order, error) {
	if !r.orders.prepend(o) {
		return entities.Order{}, ErrDuplicateID
	}
	return o, nil
}

func (r *OrderMemoryRepository) GetByID(_ context.Context, id string) (entities.Order, error) {
	o, _ := r.orders.get(id)
	return o, nil
}

func (r *OrderMemoryRepository) Update(_ context.Context, o entities.Order) (entities.Order, error) {
	if !r.orders.replace(o) {
		return entities.Order{}, nil
	}
	return o, nil
}

func (r *OrderMemoryRepository) List(_ context.Context) ([]entities.Order, error) {
	return r.orders.list(), nil
}
