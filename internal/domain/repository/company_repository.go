package repository

import (
	"context"

	"github.com/tu-usuario/scrapmaster-api/internal/domain/entity"
)

// CompanyRepository puerto de persistencia para empresas compradoras.
// GetByID devuelve (nil, nil) si la empresa no existe.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	// List devuelve todas las empresas, más recientes primero.
	List(ctx context.Context) ([]*entity.Company, error)
	// Delete elimina por ID. Devuelve false si la empresa no existía.
	Delete(ctx context.Context, id string) (bool, error)
}
