package response

import (
	"time"

	"bizportal/internal/domain/entities"
)

type ProductResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Supplier    string   `json:"supplier,omitempty"`
	Category    string   `json:"category"`
	Summary     string   `json:"summary"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Features    []string `json:"features"`
}

func FromProduct(p entities.Product) ProductResponse {
	features := p.Clone().Features
	if features == nil {
		features = []string{}
	}
	return ProductResponse{
		ID:          p.ID,
		Title:       p.Title,
		Supplier:    p.Supplier,
		Category:    p.Category,
		Summary:     p.Summary,
		Description: p.Description,
		Price:       p.Price,
		Image:       p.Image,
		Features:    features,
	}
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}

type TicketResponse struct {
	ID          string `json:"id"`
	Subject     string `json:"subject"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
	Status      string `json:"status"`
	Date        string `json:"date"`
}

func FromTicket(t entities.Ticket) TicketResponse {
	return TicketResponse{
		ID:          t.ID,
		Subject:     t.Subject,
		Description: t.Description,
		Category:    t.Category,
		Status:      string(t.Status),
		Date:        t.Date,
	}
}

func FromTickets(tickets []entities.Ticket) []TicketResponse {
	out := make([]TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, FromTicket(t))
	}
	return out
}

type SessionResponse struct {
	ID          string    `json:"id"`
	UserName    string    `json:"user_name"`
	CompanyName string    `json:"company_name"`
	Email       string    `json:"email"`
	StartedAt   time.Time `json:"started_at"`
}

func FromSession(s entities.Session) SessionResponse {
	return SessionResponse{
		ID:          s.ID,
		UserName:    s.UserName,
		CompanyName: s.CompanyName,
		Email:       s.Email,
		StartedAt:   s.StartedAt,
	}
}
