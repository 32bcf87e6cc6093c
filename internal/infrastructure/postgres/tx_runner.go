package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/scrapmaster-api/internal/application/sales"
	"github.com/tu-usuario/scrapmaster-api/internal/application/scrap"
	"github.com/tu-usuario/scrapmaster-api/internal/domain/repository"
)

// Ensure TxRunner implements scrap.TxRunner and sales.SaleTxRunner.
var _ scrap.TxRunner = (*TxRunner)(nil)
var _ sales.SaleTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	db TxBeginner
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(db TxBeginner) *TxRunner {
	return &TxRunner{db: db}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback (envío de ítem: ítem + transacción "buy").
func (r *TxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.ScrapItemRepository,
	txRepo repository.TransactionRepository,
) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewScrapItemRepository(tx), NewTransactionRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunSale inicia una transacción con los repos del registro de venta
// (UPDATE condicional del ítem + venta + transacción "sell").
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	itemRepo repository.ScrapItemRepository,
	saleRepo repository.SaleRepository,
	txRepo repository.TransactionRepository,
) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewScrapItemRepository(tx), NewSaleRepository(tx), NewTransactionRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
