package postgres

import (
	"context"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/scrapmaster-api/internal/domain/entity"
)

func TestStatsRepo_CountItems_GlobalYPorUsuario(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	r := NewStatsRepository(mock)
	ctx := context.Background()

	cols := []string{"total", "pending", "approved", "sold"}

	// ownerID vacío = conteo global (vista admin).
	mock.ExpectQuery(`SELECT(.|\s)+FROM scrap_items\s+WHERE \(\$1 = '' OR user_id = \$1\)`).
		WithArgs("").
		WillReturnRows(pgxmock.NewRows(cols).AddRow(int64(10), int64(4), int64(3), int64(2)))
	c, err := r.CountItems(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(10), c.Total)
	assert.Equal(t, int64(4), c.Pending)
	assert.Equal(t, int64(3), c.Approved)
	assert.Equal(t, int64(2), c.Sold)

	// Con ownerID solo cuentan los ítems del usuario.
	mock.ExpectQuery(`SELECT(.|\s)+FROM scrap_items\s+WHERE \(\$1 = '' OR user_id = \$1\)`).
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows(cols).AddRow(int64(2), int64(1), int64(0), int64(1)))
	c, err = r.CountItems(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), c.Total)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepo_SalesTotals(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	r := NewStatsRepository(mock)

	mock.ExpectQuery(`SELECT(.|\s)+FROM sales`).
		WillReturnRows(pgxmock.NewRows([]string{"revenue", "profit"}).AddRow("1500", "-100"))

	revenue, profit, err := r.SalesTotals(context.Background())
	require.NoError(t, err)
	assert.True(t, revenue.Equal(decimal.NewFromInt(1500)))
	assert.True(t, profit.Equal(decimal.NewFromInt(-100)), "el profit agregado puede ser negativo")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepo_CountCompanies(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	r := NewStatsRepository(mock)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM companies`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	total, err := r.CountCompanies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestTransactionRepo_SumByUserAndType(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	r := NewTransactionRepository(mock)

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\)\s+FROM transactions WHERE user_id = \$1 AND type = \$2`).
		WithArgs("user-1", entity.TransactionSell).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow("900"))

	total, err := r.SumByUserAndType(context.Background(), "user-1", entity.TransactionSell)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(900)))
	require.NoError(t, mock.ExpectationsWereMet())
}
