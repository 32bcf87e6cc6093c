package repository

import (
	"context"

	"github.com/tu-usuario/scrapmaster-api/internal/domain/entity"
)

// SessionRepository puerto de persistencia para sesiones.
// GetByToken devuelve (nil, nil) si el token no existe.
type SessionRepository interface {
	// Upsert inserta la sesión o renueva user_id/expires_at si el token ya existe.
	Upsert(ctx context.Context, session *entity.Session) error
	GetByToken(ctx context.Context, token string) (*entity.Session, error)
	Delete(ctx context.Context, token string) error
}
