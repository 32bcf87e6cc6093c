package sales

import (
	"context"

	"github.com/tu-usuario/scrapmaster-api/internal/domain/repository"
)

// SaleTxRunner ejecuta fn dentro de una transacción con repos atados a la tx.
// RecordSale necesita que la transición approved→sold, la venta y la
// transacción "sell" se confirmen o reviertan juntas: una aplicación parcial
// nunca debe ser observable.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(
		itemRepo repository.ScrapItemRepository,
		saleRepo repository.SaleRepository,
		txRepo repository.TransactionRepository,
	) error) error
}

// ReceiptPDFGenerator genera el comprobante PDF de una venta.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, detail *repository.SaleDetail) ([]byte, error)
}
