package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/scrapmaster-api/internal/domain/entity"
	"github.com/tu-usuario/scrapmaster-api/internal/domain/repository"
)

// Asegura que TransactionRepo implementa repository.TransactionRepository.
var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del puerto TransactionRepository sobre PostgreSQL.
type TransactionRepo struct {
	db Querier
}

// NewTransactionRepository construye el adaptador del historial económico.
func NewTransactionRepository(db Querier) *TransactionRepo {
	return &TransactionRepo{db: db}
}

// Create persiste una transacción.
func (r *TransactionRepo) Create(ctx context.Context, tx *entity.Transaction) error {
	const query = `
		INSERT INTO transactions (id, user_id, scrap_item_id, amount, type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query,
		tx.ID, tx.UserID, tx.ScrapItemID, tx.Amount, tx.Type, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// SumByUserAndType suma los montos del usuario para el tipo dado.
// COALESCE devuelve cero cuando no hay filas.
func (r *TransactionRepo) SumByUserAndType(ctx context.Context, userID, txType string) (decimal.Decimal, error) {
	const query = `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions WHERE user_id = $1 AND type = $2`
	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, query, userID, txType).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum transactions: %w", err)
	}
	return total, nil
}
