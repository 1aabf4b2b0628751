package database

import (
	"context"
	"testing"

	"bizportal/internal/domain/entities"
	"bizportal/pkg/money"
)

func TestMockOrdersRespectStageInvariant(t *testing.T) {
	for _, o := range MockOrders() {
		delivered := o.Status == entities.OrderStatusDelivered
		final := o.TrackingStage == entities.FinalTrackingStage
		if delivered != final {
			t.Fatalf("order %s: status %s at stage %d", o.ID, o.Status, o.TrackingStage)
		}
	}
}

func TestMockInvoicesTotals(t *testing.T) {
	for _, inv := range MockInvoices() {
		if money.Add(inv.Amount, inv.VAT) != inv.Total {
			t.Fatalf("invoice %s: %v + %v != %v", inv.ID, inv.Amount, inv.VAT, inv.Total)
		}
	}
}

func TestStaticCatalogReturnsCopies(t *testing.T) {
	c := NewStaticCatalog(MockProducts())
	first, _ := c.Products(context.Background())
	first[0].Features[0] = "changed"

	second, _ := c.Products(context.Background())
	if second[0].Features[0] == "changed" {
		t.Fatalf("catalog leaked internal slice")
	}
	if len(second) != 6 {
		t.Fatalf("expected 6 products, got %d", len(second))
	}
}
