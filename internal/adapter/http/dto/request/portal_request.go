package request

type RaiseTicketRequest struct {
	Subject     string `json:"subject" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	CompanyName     string `json:"company_name"`
	Phone           string `json:"phone"`
}
