package entities

type TicketStatus string

const (
	TicketStatusOpen   TicketStatus = "Open"
	TicketStatusClosed TicketStatus = "Closed"
)

// TicketCategories lists the categories a support ticket may be raised under.
var TicketCategories = []string{"Technical", "Billing", "Sales", "Account"}

type Ticket struct {
	ID          string       `json:"id"`
	Subject     string       `json:"subject"`
	Description string       `json:"description,omitempty"`
	Category    string       `json:"category"`
	Status      TicketStatus `json:"status"`
	Date        string       `json:"date"`
}
