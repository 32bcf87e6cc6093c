package dto

import "time"

// CreateCompanyRequest cuerpo de POST /companies (solo admin).
type CreateCompanyRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Address string `json:"address"`
	Email   string `json:"email"`
}

// CompanyResponse representación pública de una empresa compradora.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	Address   string    `json:"address"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
