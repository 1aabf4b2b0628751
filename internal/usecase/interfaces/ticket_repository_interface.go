package interfaces

import (
	"bizportal/internal/domain/entities"
	"context"
)

type ITicketRepository interface {
	Prepend(ctx context.Context, t entities.Ticket) (entities.Ticket, error)
	List(ctx context.Context) ([]entities.Ticket, error)
}
