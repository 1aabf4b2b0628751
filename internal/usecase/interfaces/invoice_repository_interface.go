package interfaces

import (
	"bizportal/internal/domain/entities"
	"context"
)

// IInvoiceRepository holds the Invoices collection, newest first.
//
// GetByOrderID backs the one-invoice-per-order guard.

type IInvoiceRepository interface {
	Prepend(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	GetByOrderID(ctx context.Context, orderID string) (entities.Invoice, error)
	List(ctx context.Context) ([]entities.Invoice, error)
}
