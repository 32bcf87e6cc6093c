package dto

import "time"

// UserResponse representación pública de un usuario.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Picture   string    `json:"picture,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginURLResponse respuesta de GET /auth/login.
type LoginURLResponse struct {
	AuthURL string `json:"auth_url"`
}

// ExchangeResponse respuesta del intercambio X-Session-ID → sesión propia.
// El token también se entrega como cookie; se repite en el cuerpo para
// clientes que prefieran el header Authorization.
type ExchangeResponse struct {
	User         UserResponse `json:"user"`
	SessionToken string       `json:"session_token"`
}
