package response

import (
	"time"

	"bizportal/internal/domain/entities"
	"bizportal/internal/usecase"
)

type QuoteResponse struct {
	ID               string   `json:"id"`
	ProductID        string   `json:"product_id"`
	ProductTitle     string   `json:"product_title"`
	Date             string   `json:"date"`
	Status           string   `json:"status"`
	Amount           float64  `json:"amount"`
	Quantity         int      `json:"quantity"`
	Notes            string   `json:"notes,omitempty"`
	NegotiationPrice *float64 `json:"negotiation_price,omitempty"`
	LastActionBy     string   `json:"last_action_by"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:               q.ID,
		ProductID:        q.ProductID,
		ProductTitle:     q.ProductTitle,
		Date:             q.Date,
		Status:           string(q.Status),
		Amount:           q.Amount,
		Quantity:         q.Quantity,
		Notes:            q.Notes,
		NegotiationPrice: q.Clone().NegotiationPrice,
		LastActionBy:     string(q.LastActionBy),
	}
}

type StageResponse struct {
	Index       int    `json:"index"`
	Title       string `json:"title"`
	SubTitle    string `json:"sub_title"`
	Description string `json:"description"`
}

type OrderResponse struct {
	ID                  string        `json:"id"`
	Date                string        `json:"date"`
	Item                string        `json:"item"`
	Amount              float64       `json:"amount"`
	Status              string        `json:"status"`
	TrackingStage       int           `json:"tracking_stage"`
	Stage               StageResponse `json:"stage"`
	EstimatedCompletion string        `json:"estimated_completion"`
}

func FromOrder(o entities.Order) OrderResponse {
	stage, _ := entities.StageInfo(o.TrackingStage)
	return OrderResponse{
		ID:                  o.ID,
		Date:                o.Date,
		Item:                o.Item,
		Amount:              o.Amount,
		Status:              string(o.Status),
		TrackingStage:       o.TrackingStage,
		Stage:               StageResponse{Index: o.TrackingStage, Title: stage.Title, SubTitle: stage.SubTitle, Description: stage.Description},
		EstimatedCompletion: o.EstimatedCompletion,
	}
}

type InvoiceItemResponse struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type InvoiceResponse struct {
	ID      string                `json:"id"`
	OrderID string                `json:"order_id"`
	Date    string                `json:"date"`
	DueDate string                `json:"due_date"`
	Amount  float64               `json:"amount"`
	VAT     float64               `json:"vat"`
	Total   float64               `json:"total"`
	Status  string                `json:"status"`
	Items   []InvoiceItemResponse `json:"items"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, InvoiceItemResponse{Description: it.Description, Quantity: it.Quantity, UnitPrice: it.UnitPrice})
	}
	return InvoiceResponse{
		ID:      inv.ID,
		OrderID: inv.OrderID,
		Date:    inv.Date,
		DueDate: inv.DueDate,
		Amount:  inv.Amount,
		VAT:     inv.VAT,
		Total:   inv.Total,
		Status:  string(inv.Status),
		Items:   items,
	}
}

// RespondQuoteResponse is returned by the approve, decline and negotiate
// endpoints. Order is present only after an approval.
type RespondQuoteResponse struct {
	Quote QuoteResponse  `json:"quote"`
	Order *OrderResponse `json:"order,omitempty"`
}

func FromRespondResult(res usecase.RespondResult) RespondQuoteResponse {
	out := RespondQuoteResponse{Quote: FromQuote(res.Quote)}
	if res.Order != nil {
		o := FromOrder(*res.Order)
		out.Order = &o
	}
	return out
}

type TickResponse struct {
	Advanced  []string          `json:"advanced"`
	Delivered []string          `json:"delivered"`
	Invoiced  []InvoiceResponse `json:"invoiced"`
}

func FromTickReport(r usecase.TickReport) TickResponse {
	out := TickResponse{
		Advanced:  nonNil(r.Advanced),
		Delivered: nonNil(r.Delivered),
		Invoiced:  make([]InvoiceResponse, 0, len(r.Invoiced)),
	}
	for _, inv := range r.Invoiced {
		out.Invoiced = append(out.Invoiced, FromInvoice(inv))
	}
	return out
}

type SnapshotResponse struct {
	Quotes   []QuoteResponse   `json:"quotes"`
	Orders   []OrderResponse   `json:"orders"`
	Invoices []InvoiceResponse `json:"invoices"`
	TakenAt  time.Time         `json:"taken_at"`
}

func FromSnapshot(s usecase.Snapshot) SnapshotResponse {
	return SnapshotResponse{
		Quotes:   FromQuotes(s.Quotes),
		Orders:   FromOrders(s.Orders),
		Invoices: FromInvoices(s.Invoices),
		TakenAt:  s.TakenAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

func FromInvoices(invoices []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, FromInvoice(inv))
	}
	return out
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
