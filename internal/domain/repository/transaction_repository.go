package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/scrapmaster-api/internal/domain/entity"
)

// TransactionRepository puerto de persistencia para el historial económico.
type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	// SumByUserAndType suma los montos de las transacciones del usuario del
	// tipo indicado ("buy" | "sell"). Devuelve cero si no hay filas.
	SumByUserAndType(ctx context.Context, userID, txType string) (decimal.Decimal, error)
}
