package auth

import "context"

// ProviderProfile perfil devuelto por el proveedor de autenticación hospedado
// a cambio de un session ID de un solo uso.
type ProviderProfile struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Picture      string `json:"picture"`
	SessionToken string `json:"session_token"`
}

// SessionExchanger puerto hacia el proveedor externo. La implementación debe
// devolver domain.ErrUnauthenticated si el proveedor rechaza el session ID y
// domain.ErrExternalService ante fallos de red o respuestas malformadas.
// No se reintenta: el fallo es terminal por petición.
type SessionExchanger interface {
	ExchangeSession(ctx context.Context, sessionID string) (*ProviderProfile, error)
}
