package usecase

import (
	"context"

	"bizportal/internal/domain/entities"
	"bizportal/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

type IInvoiceDocumentUseCase interface {
	RenderPDF(ctx context.Context, invoiceID string) (entities.Invoice, []byte, error)
}

// InvoiceDocumentUseCase renders a stored invoice for download.
type InvoiceDocumentUseCase struct {
	invoices ILifecycleUseCase
	renderer interfaces.IInvoiceRenderer
}

var _ IInvoiceDocumentUseCase = (*InvoiceDocumentUseCase)(nil)

func NewInvoiceDocumentUseCase(invoices ILifecycleUseCase, renderer interfaces.IInvoiceRenderer) *InvoiceDocumentUseCase {
	return &InvoiceDocumentUseCase{invoices: invoices, renderer: renderer}
}

func (u *InvoiceDocumentUseCase) RenderPDF(ctx context.Context, invoiceID string) (entities.Invoice, []byte, error) {
	inv, err := u.invoices.GetInvoice(ctx, invoiceID)
	if err != nil {
		return entities.Invoice{}, nil, err
	}
	doc, err := u.renderer.RenderInvoice(inv)
	if err != nil {
		log.Error().Err(err).Str("invoice_id", inv.ID).Msg("documents: failed to render invoice")
		return entities.Invoice{}, nil, err
	}
	return inv, doc, nil
}
