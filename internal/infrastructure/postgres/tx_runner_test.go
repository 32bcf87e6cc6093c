package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/scrapmaster-api/internal/domain"
	"github.com/tu-usuario/scrapmaster-api/internal/domain/entity"
	"github.com/tu-usuario/scrapmaster-api/internal/domain/repository"
)

func TestTxRunner_Run_Commit(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	runner := NewTxRunner(mock)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO scrap_items`).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`INSERT INTO transactions`).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	err := runner.Run(context.Background(), func(
		itemRepo repository.ScrapItemRepository,
		txRepo repository.TransactionRepository,
	) error {
		if err := itemRepo.Create(context.Background(), &entity.ScrapItem{ID: "i-1"}); err != nil {
			return err
		}
		return txRepo.Create(context.Background(), &entity.Transaction{ID: "t-1"})
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTxRunner_Run_RollbackSiFnFalla(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	runner := NewTxRunner(mock)

	boom := errors.New("fallo del callback")
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO scrap_items`).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectRollback()

	err := runner.Run(context.Background(), func(
		itemRepo repository.ScrapItemRepository,
		txRepo repository.TransactionRepository,
	) error {
		if err := itemRepo.Create(context.Background(), &entity.ScrapItem{ID: "i-1"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom, "el error del callback se propaga y la tx se revierte")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTxRunner_RunSale_ConflictoRevierteTodo(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	runner := NewTxRunner(mock)
	now := time.Now()

	// El UPDATE condicional no afecta filas (el ítem dejó de estar approved):
	// nada posterior debe ejecutarse y la transacción completa se revierte.
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE scrap_items SET status = \$3, updated_at = \$4\s+WHERE id = \$1 AND status = \$2`).
		WithArgs("item-1", entity.StatusApproved, entity.StatusSold, now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	err := runner.RunSale(context.Background(), func(
		itemRepo repository.ScrapItemRepository,
		saleRepo repository.SaleRepository,
		txRepo repository.TransactionRepository,
	) error {
		ok, err := itemRepo.UpdateStatus(context.Background(), "item-1", entity.StatusApproved, entity.StatusSold, now)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrConflict
		}
		return saleRepo.Create(context.Background(), &entity.Sale{ID: "s-1"})
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTxRunner_RunSale_Commit(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	runner := NewTxRunner(mock)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE scrap_items`).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`INSERT INTO sales`).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`INSERT INTO transactions`).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	err := runner.RunSale(context.Background(), func(
		itemRepo repository.ScrapItemRepository,
		saleRepo repository.SaleRepository,
		txRepo repository.TransactionRepository,
	) error {
		ok, err := itemRepo.UpdateStatus(context.Background(), "item-1", entity.StatusApproved, entity.StatusSold, now)
		if err != nil {
			return err
		}
		require.True(t, ok)
		if err := saleRepo.Create(context.Background(), &entity.Sale{ID: "s-1"}); err != nil {
			return err
		}
		return txRepo.Create(context.Background(), &entity.Transaction{ID: "t-1", Type: entity.TransactionSell})
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
