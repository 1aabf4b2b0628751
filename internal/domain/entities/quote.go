package entities

// QuoteStatus represents where a quote sits in the negotiation protocol.
//
// Approved and Rejected are terminal: no command or deferred admin response
// moves a quote out of them.
type QuoteStatus string

const (
	QuoteStatusInReview       QuoteStatus = "In Review"
	QuoteStatusActionRequired QuoteStatus = "Action Required"
	QuoteStatusApproved       QuoteStatus = "Approved"
	QuoteStatusRejected       QuoteStatus = "Rejected"
	QuoteStatusPending        QuoteStatus = "Pending"
)

func (s QuoteStatus) IsTerminal() bool {
	return s == QuoteStatusApproved || s == QuoteStatusRejected
}

// Actor tracks whose turn it is to act on a quote.
type Actor string

const (
	ActorUser  Actor = "user"
	ActorAdmin Actor = "admin"
)

// Quote is a price proposal for a catalog product.
//
// Revision is bumped on every mutation. Deferred admin responses capture the
// revision they were scheduled against and only apply while it is unchanged.
type Quote struct {
	ID               string      `json:"id"`
	ProductID        string      `json:"product_id"`
	ProductTitle     string      `json:"product_title"`
	Date             string      `json:"date"`
	Status           QuoteStatus `json:"status"`
	Amount           float64     `json:"amount"`
	Quantity         int         `json:"quantity"`
	Notes            string      `json:"notes,omitempty"`
	NegotiationPrice *float64    `json:"negotiation_price,omitempty"`
	LastActionBy     Actor       `json:"last_action_by"`
	Revision         int         `json:"revision"`
}

// Clone returns a copy that shares no memory with q.
func (q Quote) Clone() Quote {
	if q.NegotiationPrice != nil {
		p := *q.NegotiationPrice
		q.NegotiationPrice = &p
	}
	return q
}
