package repository

import (
	"context"

	"bizportal/internal/domain/entities"
	"bizportal/internal/usecase/interfaces"
)

// InvoiceMemoryRepository keeps the Invoices collection in memory.
//
// Lookup by order id is a linear scan; the collection only grows by one
// invoice per delivered order.

type InvoiceMemoryRepository struct {
	invoices *collection[entities.Invoice]
}

var _ interfaces.IInvoiceRepository = (*InvoiceMemoryRepository)(nil)

func NewInvoiceMemoryRepository() *InvoiceMemoryRepository {
	return &InvoiceMemoryRepository{
		invoices: newCollection(func(i entities.Invoice) string { return i.ID }, entities.Invoice.Clone),
	}
}

func (r *InvoiceMemoryRepository) Prepend(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
	if !r.invoices.prepend(inv) {
		return entities.Invoice{}, ErrDuplicateID
	}
	return inv.Clone(), nil
}

func (r *InvoiceMemoryRepository) GetByID(_ context.Context, id string) (entities.Invoice, error) {
	inv, _ := r.invoices.get(id)
	return inv, nil
}

func (r *InvoiceMemoryRepository) GetByOrderID(_ context.Context, orderID string) (entities.Invoice, error) {
	inv, _ := r.invoices.find(func(i entities.Invoice) bool { return i.OrderID == orderID })
	return inv, nil
}

func (r *InvoiceMemoryRepository) List(_ context.Context) ([]entities.Invoice, error) {
	return r.invoices.list(), nil
}
