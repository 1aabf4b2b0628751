package entities

import "time"

// Session is the mock signed-in user of the portal. There is no real
// authentication: any non-empty credentials open a session.
type Session struct {
	ID          string    `json:"id"`
	UserName    string    `json:"user_name"`
	CompanyName string    `json:"company_name"`
	Email       string    `json:"email"`
	StartedAt   time.Time `json:"started_at"`
}
