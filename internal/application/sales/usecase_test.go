package sales_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/scrapmaster-api/internal/application/dto"
	"github.com/tu-usuario/scrapmaster-api/internal/application/sales"
	"github.com/tu-usuario/scrapmaster-api/internal/domain"
	"github.com/tu-usuario/scrapmaster-api/internal/domain/entity"
	"github.com/tu-usuario/scrapmaster-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memItemRepo struct {
	mu    sync.Mutex
	items map[string]*entity.ScrapItem
}

func (r *memItemRepo) Create(_ context.Context, item *entity.ScrapItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *memItemRepo) GetByID(_ context.Context, id string) (*entity.ScrapItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *memItemRepo) ListByUser(context.Context, string) ([]*entity.ScrapItem, error) {
	return nil, nil
}

func (r *memItemRepo) ListAllWithOwner(context.Context) ([]*repository.ScrapItemWithOwner, error) {
	return nil, nil
}

func (r *memItemRepo) UpdateStatus(_ context.Context, id, fromStatus, toStatus string, updatedAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[id]
	if !ok || it.Status != fromStatus {
		return false, nil
	}
	it.Status = toStatus
	it.UpdatedAt = updatedAt
	return true, nil
}

type memCompanyRepo struct {
	companies map[string]*entity.Company
}

func (r *memCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	r.companies[c.ID] = c
	return nil
}

func (r *memCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (r *memCompanyRepo) List(context.Context) ([]*entity.Company, error) { return nil, nil }
func (r *memCompanyRepo) Delete(context.Context, string) (bool, error)   { return false, nil }

type memSaleRepo struct {
	mu    sync.Mutex
	sales []*entity.Sale
}

func (r *memSaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *sale
	r.sales = append(r.sales, &cp)
	return nil
}

func (r *memSaleRepo) GetDetailByID(context.Context, string) (*repository.SaleDetail, error) {
	return nil, nil
}

func (r *memSaleRepo) ListWithDetail(context.Context) ([]*repository.SaleDetail, error) {
	return nil, nil
}

func (r *memSaleRepo) CountByCompany(context.Context, string) (int64, error) { return 0, nil }

type memTxRepo struct {
	mu  sync.Mutex
	txs []entity.Transaction
}

func (r *memTxRepo) Create(_ context.Context, tx *entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.txs = append(r.txs, *tx)
	return nil
}

func (r *memTxRepo) SumByUserAndType(context.Context, string, string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

// fakeSaleTxRunner ejecuta el callback directamente; si fn falla descarta las
// escrituras hechas sobre el saleRepo y txRepo espejo, emulando el rollback.
type fakeSaleTxRunner struct {
	itemRepo repository.ScrapItemRepository
	saleRepo *memSaleRepo
	txRepo   *memTxRepo
}

func (f *fakeSaleTxRunner) RunSale(ctx context.Context, fn func(
	itemRepo repository.ScrapItemRepository,
	saleRepo repository.SaleRepository,
	txRepo repository.TransactionRepository,
) error) error {
	shadowSales := &memSaleRepo{}
	shadowTxs := &memTxRepo{}
	if err := fn(f.itemRepo, shadowSales, shadowTxs); err != nil {
		return err
	}
	f.saleRepo.sales = append(f.saleRepo.sales, shadowSales.sales...)
	f.txRepo.txs = append(f.txRepo.txs, shadowTxs.txs...)
	return nil
}

type fakePDFGen struct{}

func (fakePDFGen) GenerateReceiptPDF(context.Context, *repository.SaleDetail) ([]byte, error) {
	return []byte("%PDF-1.4 fake"), nil
}

type fixture struct {
	uc       *sales.SalesUseCase
	itemRepo *memItemRepo
	saleRepo *memSaleRepo
	txRepo   *memTxRepo
}

func buildFixture(itemStatus string, priceOffered decimal.Decimal) *fixture {
	itemRepo := &memItemRepo{items: map[string]*entity.ScrapItem{
		"item-1": {
			ID:           "item-1",
			UserID:       "user-1",
			ScrapType:    entity.TypeMetal,
			Weight:       decimal.NewFromInt(10),
			PriceOffered: priceOffered,
			Status:       itemStatus,
		},
	}}
	companyRepo := &memCompanyRepo{companies: map[string]*entity.Company{
		"comp-1": {ID: "comp-1", Name: "Recicladora Norte", Contact: "311", Address: "Calle 1"},
	}}
	saleRepo := &memSaleRepo{}
	txRepo := &memTxRepo{}
	runner := &fakeSaleTxRunner{itemRepo: itemRepo, saleRepo: saleRepo, txRepo: txRepo}
	uc := sales.NewSalesUseCase(runner, itemRepo, companyRepo, saleRepo, fakePDFGen{})
	return &fixture{uc: uc, itemRepo: itemRepo, saleRepo: saleRepo, txRepo: txRepo}
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordSale
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordSale_ItemAprobado_QuedaVendido(t *testing.T) {
	f := buildFixture(entity.StatusApproved, decimal.NewFromInt(500))

	out, err := f.uc.RecordSale(context.Background(), dto.CreateSaleRequest{
		ScrapItemID:  "item-1",
		CompanyID:    "comp-1",
		SellingPrice: decimal.NewFromInt(800),
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.True(t, out.Profit.Equal(decimal.NewFromInt(300)), "profit = 800 - 500")

	item, _ := f.itemRepo.GetByID(context.Background(), "item-1")
	assert.Equal(t, entity.StatusSold, item.Status, "el ítem vendido pasa a sold")

	require.Len(t, f.saleRepo.sales, 1)
	require.Len(t, f.txRepo.txs, 1, "la venta registra una transacción sell")
	assert.Equal(t, entity.TransactionSell, f.txRepo.txs[0].Type)
	assert.Equal(t, "user-1", f.txRepo.txs[0].UserID, "la transacción sell se acredita al dueño del ítem")
	assert.True(t, f.txRepo.txs[0].Amount.Equal(decimal.NewFromInt(800)))
}

func TestRecordSale_ProfitNegativo_SinPiso(t *testing.T) {
	f := buildFixture(entity.StatusApproved, decimal.NewFromInt(500))

	out, err := f.uc.RecordSale(context.Background(), dto.CreateSaleRequest{
		ScrapItemID:  "item-1",
		CompanyID:    "comp-1",
		SellingPrice: decimal.NewFromInt(400),
	})
	require.NoError(t, err)
	assert.True(t, out.Profit.Equal(decimal.NewFromInt(-100)),
		"vender por debajo del precio pedido produce profit negativo, no error")
}

func TestRecordSale_ItemPendiente_RetornaConflict(t *testing.T) {
	f := buildFixture(entity.StatusPending, decimal.NewFromInt(100))

	_, err := f.uc.RecordSale(context.Background(), dto.CreateSaleRequest{
		ScrapItemID:  "item-1",
		CompanyID:    "comp-1",
		SellingPrice: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrConflict, "solo se venden ítems approved")
	assert.Empty(t, f.saleRepo.sales)
}

func TestRecordSale_ItemRechazado_RetornaConflict(t *testing.T) {
	f := buildFixture(entity.StatusRejected, decimal.NewFromInt(100))

	_, err := f.uc.RecordSale(context.Background(), dto.CreateSaleRequest{
		ScrapItemID:  "item-1",
		CompanyID:    "comp-1",
		SellingPrice: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestRecordSale_DobleVenta_SoloGanaUna(t *testing.T) {
	f := buildFixture(entity.StatusApproved, decimal.NewFromInt(500))

	in := dto.CreateSaleRequest{
		ScrapItemID:  "item-1",
		CompanyID:    "comp-1",
		SellingPrice: decimal.NewFromInt(600),
	}
	_, err := f.uc.RecordSale(context.Background(), in)
	require.NoError(t, err)

	// Segunda venta del mismo ítem: el UPDATE condicional approved→sold ya no
	// afecta filas y la transacción se revierte completa.
	_, err = f.uc.RecordSale(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrConflict)

	assert.Len(t, f.saleRepo.sales, 1, "un ítem se vende exactamente una vez")
	assert.Len(t, f.txRepo.txs, 1, "la venta perdedora no deja transacción sell")
}

func TestRecordSale_ItemInexistente_RetornaNotFound(t *testing.T) {
	f := buildFixture(entity.StatusApproved, decimal.NewFromInt(500))

	_, err := f.uc.RecordSale(context.Background(), dto.CreateSaleRequest{
		ScrapItemID:  "no-existe",
		CompanyID:    "comp-1",
		SellingPrice: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordSale_EmpresaInexistente_RetornaNotFound(t *testing.T) {
	f := buildFixture(entity.StatusApproved, decimal.NewFromInt(500))

	_, err := f.uc.RecordSale(context.Background(), dto.CreateSaleRequest{
		ScrapItemID:  "item-1",
		CompanyID:    "no-existe",
		SellingPrice: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordSale_Validacion(t *testing.T) {
	f := buildFixture(entity.StatusApproved, decimal.NewFromInt(500))

	cases := []dto.CreateSaleRequest{
		{CompanyID: "comp-1", SellingPrice: decimal.NewFromInt(100)},
		{ScrapItemID: "item-1", SellingPrice: decimal.NewFromInt(100)},
		{ScrapItemID: "item-1", CompanyID: "comp-1", SellingPrice: decimal.NewFromInt(-5)},
	}
	for _, in := range cases {
		_, err := f.uc.RecordSale(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Receipt
// ──────────────────────────────────────────────────────────────────────────────

func TestReceipt_VentaInexistente_RetornaNotFound(t *testing.T) {
	f := buildFixture(entity.StatusApproved, decimal.NewFromInt(500))

	_, err := f.uc.Receipt(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
