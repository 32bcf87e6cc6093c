package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// ItemCounts conteos de ítems por estado. No incluye rejected como campo
// propio: el dashboard solo muestra pending/approved/sold, igual que el total.
type ItemCounts struct {
	Total    int64
	Pending  int64
	Approved int64
	Sold     int64
}

// StatsRepository consultas read-only para el dashboard. Siempre leen el
// estado comprometido más reciente; no hay capa de caché.
type StatsRepository interface {
	// CountItems cuenta ítems por estado. Con ownerID vacío cuenta global
	// (vista admin); con ownerID cuenta solo los del usuario.
	CountItems(ctx context.Context, ownerID string) (*ItemCounts, error)
	// SalesTotals devuelve la suma de precios de venta (revenue) y de
	// utilidades (profit) de todas las ventas. Cero si no hay ventas.
	SalesTotals(ctx context.Context) (revenue, profit decimal.Decimal, err error)
	CountCompanies(ctx context.Context) (int64, error)
}
