package repository

import (
	"context"

	"github.com/tu-usuario/scrapmaster-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para usuarios.
// Los métodos Get devuelven (nil, nil) cuando el usuario no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
