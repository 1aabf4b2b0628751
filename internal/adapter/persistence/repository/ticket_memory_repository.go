package repository

import (
	"context"

	"bizportal/internal/domain/entities"
	"bizportal/internal/usecase/interfaces"
)

type TicketMemoryRepository struct {
	tickets *collection[entities.Ticket]
}

var _ interfaces.ITicketRepository = (*TicketMemoryRepository)(nil)

func NewTicketMemoryRepository(seed ...entities.Ticket) *TicketMemoryRepository {
	r := &TicketMemoryRepository{
		tickets: newCollection(func(t entities.Ticket) string { return t.ID }, nil),
	}
	// Seeds are given oldest-last, so insert from the end to keep their order.
	for i := len(seed) - 1; i >= 0; i-- {
		r.tickets.prepend(seed[i])
	}
	return r
}

func (r *TicketMemoryRepository) Prepend(_ context.Context, t entities.Ticket) (entities.Ticket, error) {
	if !r.tickets.prepend(t) {
		return entities.Ticket{}, ErrDuplicateID
	}
	return t, nil
}

func (r *TicketMemoryRepository) List(_ context.Context) ([]entities.Ticket, error) {
	return r.tickets.list(), nil
}
