package request

import "strings"

// SubmitQuoteRequest is the body of POST /v1/quotes. Amount defaults to the
// catalog price times quantity when omitted.
type SubmitQuoteRequest struct {
	ProductID    string   `json:"product_id" binding:"required"`
	ProductTitle string   `json:"product_title"`
	Quantity     int      `json:"quantity"`
	Amount       *float64 `json:"amount"`
	Notes        string   `json:"notes"`
}

func (r SubmitQuoteRequest) ResolveProductID() string {
	return strings.TrimSpace(r.ProductID)
}

// ResolveQuantity treats a missing quantity as a single unit.
func (r SubmitQuoteRequest) ResolveQuantity() int {
	if r.Quantity == 0 {
		return 1
	}
	return r.Quantity
}

func (r SubmitQuoteRequest) ResolveAmount(listAmount float64) float64 {
	if r.Amount == nil {
		return listAmount
	}
	return *r.Amount
}

func (r SubmitQuoteRequest) ResolveTitle(catalogTitle string) string {
	if v := strings.TrimSpace(r.ProductTitle); v != "" {
		return v
	}
	return catalogTitle
}

type NegotiateQuoteRequest struct {
	TargetPrice float64 `json:"target_price" binding:"required"`
}
