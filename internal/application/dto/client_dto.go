package dto

import "time"

// CreateClientRequest alta de cliente.
type CreateClientRequest struct {
	Name     string `json:"name"`
	Document string `json:"document"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// UpdateClientRequest actualización parcial de cliente.
type UpdateClientRequest struct {
	Name     *string `json:"name"`
	Document *string `json:"document"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
}

// ClientResponse cliente serializado.
type ClientResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	Document  string    `json:"document"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClientListResponse listado paginado de clientes.
type ClientListResponse struct {
	Items []ClientResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
