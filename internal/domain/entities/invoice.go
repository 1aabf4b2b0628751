package entities

type InvoiceStatus string

const (
	InvoiceStatusPaid    InvoiceStatus = "Paid"
	InvoiceStatusUnpaid  InvoiceStatus = "Unpaid"
	InvoiceStatusOverdue InvoiceStatus = "Overdue"
)

type InvoiceItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// Invoice is the billing document generated once per delivered order.
//
// OrderID is a weak reference: the invoice does not own the order and seeded
// invoices may point to orders that are not in the collection.
type Invoice struct {
	ID      string        `json:"id"`
	OrderID string        `json:"order_id"`
	Date    string        `json:"date"`
	DueDate string        `json:"due_date"`
	Amount  float64       `json:"amount"`
	VAT     float64       `json:"vat"`
	Total   float64       `json:"total"`
	Status  InvoiceStatus `json:"status"`
	Items   []InvoiceItem `json:"items"`
}

func (i Invoice) Clone() Invoice {
	if i.Items != nil {
		items := make([]InvoiceItem, len(i.Items))
		copy(items, i.Items)
		i.Items = items
	}
	return i
}
