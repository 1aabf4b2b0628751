package interfaces

import (
	"bizportal/internal/domain/entities"
	"context"
)

// IQuoteRepository holds the active Quotes collection, newest first.
//
// Lookups return a zero Quote (empty ID) and a nil error when nothing matches,
// the same convention the other repositories follow.

type IQuoteRepository interface {
	Prepend(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	Update(ctx context.Context, q entities.Quote) (entities.Quote, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]entities.Quote, error)
}
