package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/scrapmaster-api/internal/domain/entity"
	"github.com/tu-usuario/scrapmaster-api/internal/domain/repository"
)

// Asegura que SaleRepo implementa repository.SaleRepository.
var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL.
type SaleRepo struct {
	db Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(db Querier) *SaleRepo {
	return &SaleRepo{db: db}
}

// Create persiste una venta. scrap_item_id tiene constraint UNIQUE: un
// segundo insert sobre el mismo ítem falla en la DB aunque la capa de
// aplicación ya lo impida con el UPDATE condicional.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	const query = `
		INSERT INTO sales (id, scrap_item_id, company_id, selling_price, profit, sold_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query,
		sale.ID, sale.ScrapItemID, sale.CompanyID,
		sale.SellingPrice, sale.Profit, sale.SoldAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert sale: item ya vendido: %w", err)
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

const saleDetailColumns = `
	s.id, s.scrap_item_id, s.company_id, s.selling_price, s.profit, s.sold_at,
	i.id, i.user_id, i.scrap_type, i.weight, i.price_offered, i.description, i.status, i.created_at, i.updated_at,
	c.id, c.name, c.contact, c.address, c.email, c.created_at`

// GetDetailByID obtiene una venta con su ítem y empresa.
func (r *SaleRepo) GetDetailByID(ctx context.Context, id string) (*repository.SaleDetail, error) {
	query := `
		SELECT ` + saleDetailColumns + `
		FROM sales s
		JOIN scrap_items i ON i.id = s.scrap_item_id
		JOIN companies   c ON c.id = s.company_id
		WHERE s.id = $1`
	row := r.db.QueryRow(ctx, query, id)
	detail, err := scanSaleDetail(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale detail: %w", err)
	}
	return detail, nil
}

// ListWithDetail devuelve las ventas con ítem y empresa, más recientes primero.
func (r *SaleRepo) ListWithDetail(ctx context.Context) ([]*repository.SaleDetail, error) {
	query := `
		SELECT ` + saleDetailColumns + `
		FROM sales s
		JOIN scrap_items i ON i.id = s.scrap_item_id
		JOIN companies   c ON c.id = s.company_id
		ORDER BY s.sold_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var list []*repository.SaleDetail
	for rows.Next() {
		detail, err := scanSaleDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale detail: %w", err)
		}
		list = append(list, detail)
	}
	return list, rows.Err()
}

// CountByCompany cuenta ventas de la empresa (soporte del restrict-delete).
func (r *SaleRepo) CountByCompany(ctx context.Context, companyID string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM sales WHERE company_id = $1`, companyID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count sales by company: %w", err)
	}
	return count, nil
}

func scanSaleDetail(row pgx.Row) (*repository.SaleDetail, error) {
	var d repository.SaleDetail
	err := row.Scan(
		&d.Sale.ID, &d.Sale.ScrapItemID, &d.Sale.CompanyID,
		&d.Sale.SellingPrice, &d.Sale.Profit, &d.Sale.SoldAt,
		&d.Item.ID, &d.Item.UserID, &d.Item.ScrapType, &d.Item.Weight,
		&d.Item.PriceOffered, &d.Item.Description, &d.Item.Status,
		&d.Item.CreatedAt, &d.Item.UpdatedAt,
		&d.Company.ID, &d.Company.Name, &d.Company.Contact,
		&d.Company.Address, &d.Company.Email, &d.Company.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
