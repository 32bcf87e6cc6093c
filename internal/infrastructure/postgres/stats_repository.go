package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/scrapmaster-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de solo lectura para el dashboard.
type StatsRepo struct {
	db Querier
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(db Querier) *StatsRepo {
	return &StatsRepo{db: db}
}

// CountItems cuenta ítems por estado en una sola pasada con FILTER.
// ownerID vacío = conteo global (admin); si no, solo los del usuario.
func (r *StatsRepo) CountItems(ctx context.Context, ownerID string) (*repository.ItemCounts, error) {
	const query = `
	SELECT
	    COUNT(*)                                      AS total,
	    COUNT(*) FILTER (WHERE status = 'pending')    AS pending,
	    COUNT(*) FILTER (WHERE status = 'approved')   AS approved,
	    COUNT(*) FILTER (WHERE status = 'sold')       AS sold
	FROM scrap_items
	WHERE ($1 = '' OR user_id = $1)`

	var c repository.ItemCounts
	err := r.db.QueryRow(ctx, query, ownerID).
		Scan(&c.Total, &c.Pending, &c.Approved, &c.Sold)
	if err != nil {
		return nil, fmt.Errorf("stats.CountItems: %w", err)
	}
	return &c, nil
}

// SalesTotals devuelve revenue (suma de precios de venta) y profit (suma de
// utilidades) de todas las ventas. COALESCE devuelve cero sin filas.
func (r *StatsRepo) SalesTotals(ctx context.Context) (revenue, profit decimal.Decimal, err error) {
	const query = `
	SELECT
	    COALESCE(SUM(selling_price), 0) AS revenue,
	    COALESCE(SUM(profit),        0) AS profit
	FROM sales`

	err = r.db.QueryRow(ctx, query).Scan(&revenue, &profit)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("stats.SalesTotals: %w", err)
	}
	return revenue, profit, nil
}

// CountCompanies cuenta las empresas registradas.
func (r *StatsRepo) CountCompanies(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM companies`).Scan(&count); err != nil {
		return 0, fmt.Errorf("stats.CountCompanies: %w", err)
	}
	return count, nil
}
