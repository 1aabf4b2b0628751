package usecase

import (
	"context"
	"errors"
	"testing"

	"bizportal/internal/domain/entities"
	mock_interfaces "bizportal/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestInvoiceDocumentUseCase_RenderPDF(t *testing.T) {
	ctx := context.Background()
	f := newLifecycleFixture(t)
	if err := f.uc.Seed(ctx, nil, nil, []entities.Invoice{{ID: "INV-1", OrderID: "ORD-1", Total: 120}}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	t.Run("unknown invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewInvoiceDocumentUseCase(f.uc, mock_interfaces.NewMockIInvoiceRenderer(ctrl))

		if _, _, err := uc.RenderPDF(ctx, "INV-404"); !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})

	t.Run("renderer error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		renderer := mock_interfaces.NewMockIInvoiceRenderer(ctrl)
		uc := NewInvoiceDocumentUseCase(f.uc, renderer)

		renderer.EXPECT().RenderInvoice(gomock.AssignableToTypeOf(entities.Invoice{})).Return(nil, errors.New("pdf"))

		if _, _, err := uc.RenderPDF(ctx, "INV-1"); err == nil || err.Error() != "pdf" {
			t.Fatalf("expected pdf error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		renderer := mock_interfaces.NewMockIInvoiceRenderer(ctrl)
		uc := NewInvoiceDocumentUseCase(f.uc, renderer)

		renderer.EXPECT().RenderInvoice(gomock.Any()).DoAndReturn(func(inv entities.Invoice) ([]byte, error) {
			if inv.ID != "INV-1" || inv.Total != 120 {
				t.Fatalf("unexpected invoice: %+v", inv)
			}
			return []byte("%PDF-1.3"), nil
		})

		inv, doc, err := uc.RenderPDF(ctx, "INV-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.ID != "INV-1" || string(doc) != "%PDF-1.3" {
			t.Fatalf("unexpected result: %s %q", inv.ID, doc)
		}
	})
}
