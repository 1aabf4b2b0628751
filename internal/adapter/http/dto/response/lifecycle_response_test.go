package response

import (
	"testing"

	"bizportal/internal/domain/entities"
	"bizportal/internal/usecase"
)

func TestFromOrder_StageInfo(t *testing.T) {
	got := FromOrder(entities.Order{ID: "ORD-1", Status: entities.OrderStatusInProgress, TrackingStage: 3})
	if got.Stage.Title != "Agent Assign" || got.Stage.SubTitle != "STAFFING" || got.Stage.Index != 3 {
		t.Fatalf("unexpected stage: %+v", got.Stage)
	}
	if got.Status != "In Progress" {
		t.Fatalf("unexpected status: %s", got.Status)
	}
}

func TestFromQuote_CopiesNegotiationPrice(t *testing.T) {
	price := 40.0
	q := entities.Quote{ID: "QT-1", Status: entities.QuoteStatusInReview, NegotiationPrice: &price, LastActionBy: entities.ActorUser}
	got := FromQuote(q)
	*got.NegotiationPrice = 1
	if price != 40 {
		t.Fatalf("response must not alias the entity")
	}
	if got.Status != "In Review" || got.LastActionBy != "user" {
		t.Fatalf("unexpected quote: %+v", got)
	}
}

func TestFromRespondResult(t *testing.T) {
	declined := FromRespondResult(usecase.RespondResult{Applied: true, Quote: entities.Quote{ID: "QT-1", Status: entities.QuoteStatusRejected}})
	if declined.Order != nil {
		t.Fatalf("decline must not carry an order")
	}

	approved := FromRespondResult(usecase.RespondResult{
		Applied: true,
		Quote:   entities.Quote{ID: "QT-2", Status: entities.QuoteStatusApproved},
		Order:   &entities.Order{ID: "ORD-12345", Status: entities.OrderStatusInProgress},
	})
	if approved.Order == nil || approved.Order.ID != "ORD-12345" || approved.Order.Stage.Title != "Verification" {
		t.Fatalf("unexpected order: %+v", approved.Order)
	}
}

func TestFromTickReport_EmptyListsAreNotNull(t *testing.T) {
	got := FromTickReport(usecase.TickReport{})
	if got.Advanced == nil || got.Delivered == nil || got.Invoiced == nil {
		t.Fatalf("expected empty slices, got %+v", got)
	}
}

func TestFromInvoice(t *testing.T) {
	got := FromInvoice(entities.Invoice{
		ID: "INV-1", OrderID: "ORD-1", Amount: 100, VAT: 20, Total: 120, Status: entities.InvoiceStatusUnpaid,
		Items: []entities.InvoiceItem{{Description: "Router", Quantity: 1, UnitPrice: 100}},
	})
	if got.Status != "Unpaid" || len(got.Items) != 1 || got.Items[0].UnitPrice != 100 {
		t.Fatalf("unexpected invoice: %+v", got)
	}
}
