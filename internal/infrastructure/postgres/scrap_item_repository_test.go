package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/scrapmaster-api/internal/domain/entity"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return mock
}

func TestScrapItemRepo_UpdateStatus_CondicionalPorEstado(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	r := NewScrapItemRepository(mock)
	ctx := context.Background()
	now := time.Now()

	// El ítem sigue pending: el UPDATE afecta 1 fila → true.
	mock.ExpectExec(`UPDATE scrap_items SET status = \$3, updated_at = \$4\s+WHERE id = \$1 AND status = \$2`).
		WithArgs("item-1", entity.StatusPending, entity.StatusApproved, now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	ok, err := r.UpdateStatus(ctx, "item-1", entity.StatusPending, entity.StatusApproved, now)
	require.NoError(t, err)
	assert.True(t, ok)

	// Otro actor ganó la carrera: cero filas afectadas → false, sin error.
	mock.ExpectExec(`UPDATE scrap_items SET status = \$3, updated_at = \$4\s+WHERE id = \$1 AND status = \$2`).
		WithArgs("item-1", entity.StatusPending, entity.StatusApproved, now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	ok, err = r.UpdateStatus(ctx, "item-1", entity.StatusPending, entity.StatusApproved, now)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestScrapItemRepo_GetByID_NoRows_NilNil(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	r := NewScrapItemRepository(mock)

	mock.ExpectQuery(`SELECT id, user_id, scrap_type, weight, price_offered, description, status, created_at, updated_at\s+FROM scrap_items WHERE id = \$1`).
		WithArgs("no-existe").
		WillReturnError(pgx.ErrNoRows)

	it, err := r.GetByID(context.Background(), "no-existe")
	require.NoError(t, err, "ausencia no es error: el caller decide entre NotFound y Conflict")
	assert.Nil(t, it)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestScrapItemRepo_Create(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	r := NewScrapItemRepository(mock)

	item := &entity.ScrapItem{
		ID:        "item-1",
		UserID:    "user-1",
		ScrapType: entity.TypeMetal,
		Status:    entity.StatusPending,
	}
	mock.ExpectExec(`INSERT INTO scrap_items`).
		WithArgs(item.ID, item.UserID, item.ScrapType, item.Weight, item.PriceOffered,
			item.Description, item.Status, item.CreatedAt, item.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, r.Create(context.Background(), item))
	require.NoError(t, mock.ExpectationsWereMet())
}
