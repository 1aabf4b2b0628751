package interfaces

import (
	"bizportal/internal/domain/entities"
	"context"
)

// IOrderRepository holds the Orders collection, newest first. Orders are never deleted.

type IOrderRepository interface {
	Prepend(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	Update(ctx context.Context, o entities.Order) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
}
