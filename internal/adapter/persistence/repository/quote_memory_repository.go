package repository

import (
	"context"

	"bizportal/internal/domain/entities"
	"bizportal/internal/usecase/interfaces"
)

// QuoteMemoryRepository keeps the active Quotes collection in memory.

type QuoteMemoryRepository struct {
	quotes *collection[entities.Quote]
}

var _ interfaces.IQuoteRepository = (*QuoteMemoryRepository)(nil)

func NewQuoteMemoryRepository() *QuoteMemoryRepository {
	return &QuoteMemoryRepository{
		quotes: newCollection(func(q entities.Quote) string { return q.ID }, entities.Quote.Clone),
	}
}

func (r *QuoteMemoryRepository) Prepend(_ context.Context, q entities.Quote) (entities.Quote, error) {
	if !r.quotes.prepend(q) {
		return entities.Quote{}, ErrDuplicateID
	}
	return q.Clone(), nil
}

func (r *QuoteMemoryRepository) GetByID(_ context.Context, id string) (entities.Quote, error) {
	q, _ := r.quotes.get(id)
	return q, nil
}

func (r *QuoteMemoryRepository) Update(_ context.Context, q entities.Quote) (entities.Quote, error) {
	if !r.quotes.replace(q) {
		return entities.Quote{}, nil
	}
	return q.Clone(), nil
}

func (r *QuoteMemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	return r.quotes.remove(id), nil
}

func (r *QuoteMemoryRepository) List(_ context.Context) ([]entities.Quote, error) {
	return r.quotes.list(), nil
}
