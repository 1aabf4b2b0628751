package interfaces

import "bizportal/internal/domain/entities"

// IInvoiceRenderer turns an invoice into a printable document.
type IInvoiceRenderer interface {
	RenderInvoice(inv entities.Invoice) ([]byte, error)
}
