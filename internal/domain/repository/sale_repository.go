package repository

import (
	"context"

	"github.com/tu-usuario/scrapmaster-api/internal/domain/entity"
)

// SaleDetail fila del listado de ventas: venta + ítem vendido + empresa.
type SaleDetail struct {
	Sale    entity.Sale
	Item    entity.ScrapItem
	Company entity.Company
}

// SaleRepository puerto de persistencia para ventas.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	// GetDetailByID devuelve (nil, nil) si la venta no existe.
	GetDetailByID(ctx context.Context, id string) (*SaleDetail, error)
	// ListWithDetail devuelve las ventas con ítem y empresa, más recientes primero.
	ListWithDetail(ctx context.Context) ([]*SaleDetail, error)
	// CountByCompany cuenta las ventas que referencian a la empresa
	// (soporte del restrict-delete de companies).
	CountByCompany(ctx context.Context, companyID string) (int64, error)
}
