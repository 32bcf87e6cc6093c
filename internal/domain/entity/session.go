package entity

import "time"

// Session credencial opaca emitida tras el intercambio con el proveedor de
// auth. Se destruye en logout o al detectarse expirada en un lookup.
type Session struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired informa si la sesión ya venció respecto a now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
