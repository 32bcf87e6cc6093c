// Package analytics contiene los casos de uso read-only del dashboard.
package analytics

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/scrapmaster-api/internal/domain/entity"
	"github.com/tu-usuario/scrapmaster-api/internal/domain/repository"

	"github.com/tu-usuario/scrapmaster-api/internal/application/dto"
)

// DashboardUseCase proyección derivada sobre ítems, ventas y empresas,
// acotada por rol: el admin ve totales globales; el usuario solo lo suyo.
//
// Fuente de datos: StatsRepository + TransactionRepository (consultas
// read-only). Sin caché: el volumen es bajo y las lecturas deben reflejar
// el último commit.
type DashboardUseCase struct {
	statsRepo repository.StatsRepository
	txRepo    repository.TransactionRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(statsRepo repository.StatsRepository, txRepo repository.TransactionRepository) *DashboardUseCase {
	return &DashboardUseCase{statsRepo: statsRepo, txRepo: txRepo}
}

// AdminStats construye las métricas globales.
//
// Tres llamadas en paralelo:
//  1. CountItems(global)  → conteos por estado
//  2. SalesTotals         → revenue + profit
//  3. CountCompanies      → total de empresas
func (uc *DashboardUseCase) AdminStats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	type countsResult struct {
		counts *repository.ItemCounts
		err    error
	}
	type totalsResult struct {
		revenue decimal.Decimal
		profit  decimal.Decimal
		err     error
	}
	type companiesResult struct {
		total int64
		err   error
	}

	countsCh := make(chan countsResult, 1)
	totalsCh := make(chan totalsResult, 1)
	companiesCh := make(chan companiesResult, 1)

	go func() {
		counts, err := uc.statsRepo.CountItems(ctx, "")
		countsCh <- countsResult{counts, err}
	}()
	go func() {
		revenue, profit, err := uc.statsRepo.SalesTotals(ctx)
		totalsCh <- totalsResult{revenue, profit, err}
	}()
	go func() {
		total, err := uc.statsRepo.CountCompanies(ctx)
		companiesCh <- companiesResult{total, err}
	}()

	counts := <-countsCh
	totals := <-totalsCh
	companies := <-companiesCh

	if counts.err != nil {
		return nil, counts.err
	}
	if totals.err != nil {
		return nil, totals.err
	}
	if companies.err != nil {
		return nil, companies.err
	}

	return &dto.AdminStatsResponse{
		TotalScrapItems: counts.counts.Total,
		PendingItems:    counts.counts.Pending,
		ApprovedItems:   counts.counts.Approved,
		SoldItems:       counts.counts.Sold,
		TotalRevenue:    totals.revenue,
		TotalProfit:     totals.profit,
		TotalCompanies:  companies.total,
	}, nil
}

// UserStats construye las métricas restringidas al usuario: conteos de sus
// ítems y ganancias (suma de sus transacciones "sell").
func (uc *DashboardUseCase) UserStats(ctx context.Context, userID string) (*dto.UserStatsResponse, error) {
	type countsResult struct {
		counts *repository.ItemCounts
		err    error
	}
	type earningsResult struct {
		total decimal.Decimal
		err   error
	}

	countsCh := make(chan countsResult, 1)
	earningsCh := make(chan earningsResult, 1)

	go func() {
		counts, err := uc.statsRepo.CountItems(ctx, userID)
		countsCh <- countsResult{counts, err}
	}()
	go func() {
		total, err := uc.txRepo.SumByUserAndType(ctx, userID, entity.TransactionSell)
		earningsCh <- earningsResult{total, err}
	}()

	counts := <-countsCh
	earnings := <-earningsCh

	if counts.err != nil {
		return nil, counts.err
	}
	if earnings.err != nil {
		return nil, earnings.err
	}

	return &dto.UserStatsResponse{
		TotalItems:    counts.counts.Total,
		PendingItems:  counts.counts.Pending,
		ApprovedItems: counts.counts.Approved,
		SoldItems:     counts.counts.Sold,
		TotalEarnings: earnings.total,
	}, nil
}
