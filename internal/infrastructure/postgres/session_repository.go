package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/scrapmaster-api/internal/domain/entity"
	"github.com/tu-usuario/scrapmaster-api/internal/domain/repository"
)

// Asegura que SessionRepo implementa repository.SessionRepository.
var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo implementación del puerto SessionRepository sobre PostgreSQL.
type SessionRepo struct {
	db Querier
}

// NewSessionRepository construye el adaptador de persistencia para sesiones.
func NewSessionRepository(db Querier) *SessionRepo {
	return &SessionRepo{db: db}
}

// Upsert inserta o renueva la sesión (el proveedor puede reemitir el mismo token).
func (r *SessionRepo) Upsert(ctx context.Context, session *entity.Session) error {
	const query = `
		INSERT INTO sessions (token, user_id, expires_at, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (token) DO UPDATE SET user_id = $2, expires_at = $3`
	_, err := r.db.Exec(ctx, query,
		session.Token, session.UserID, session.ExpiresAt, session.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}
	return nil
}

// GetByToken obtiene una sesión por su token opaco.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*entity.Session, error) {
	const query = `
		SELECT token, user_id, expires_at, created_at
		FROM sessions WHERE token = $1`
	var s entity.Session
	err := r.db.QueryRow(ctx, query, token).Scan(
		&s.Token, &s.UserID, &s.ExpiresAt, &s.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &s, nil
}

// Delete elimina la sesión (logout o expiración detectada en un lookup).
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
