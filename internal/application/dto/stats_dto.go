package dto

import "github.com/shopspring/decimal"

// AdminStatsResponse métricas globales del dashboard (rol admin).
type AdminStatsResponse struct {
	TotalScrapItems int64           `json:"total_scrap_items"`
	PendingItems    int64           `json:"pending_items"`
	ApprovedItems   int64           `json:"approved_items"`
	SoldItems       int64           `json:"sold_items"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	TotalProfit     decimal.Decimal `json:"total_profit"`
	TotalCompanies  int64           `json:"total_companies"`
}

// UserStatsResponse métricas del dashboard restringidas al usuario autenticado.
type UserStatsResponse struct {
	TotalItems    int64           `json:"total_items"`
	PendingItems  int64           `json:"pending_items"`
	ApprovedItems int64           `json:"approved_items"`
	SoldItems     int64           `json:"sold_items"`
	TotalEarnings decimal.Decimal `json:"total_earnings"`
}
