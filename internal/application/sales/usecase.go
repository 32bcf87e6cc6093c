// Package sales contiene el registro de ventas: el único punto que mueve un
// ítem de "approved" a "sold".
package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/scrapmaster-api/internal/application/dto"
	"github.com/tu-usuario/scrapmaster-api/internal/application/scrap"
	"github.com/tu-usuario/scrapmaster-api/internal/domain"
	"github.com/tu-usuario/scrapmaster-api/internal/domain/entity"
	"github.com/tu-usuario/scrapmaster-api/internal/domain/repository"
)

// SalesUseCase registro y consulta de ventas.
type SalesUseCase struct {
	txRunner    SaleTxRunner
	itemRepo    repository.ScrapItemRepository
	companyRepo repository.CompanyRepository
	saleRepo    repository.SaleRepository
	pdfGen      ReceiptPDFGenerator
	now         func() time.Time
}

// NewSalesUseCase construye el caso de uso.
func NewSalesUseCase(
	txRunner SaleTxRunner,
	itemRepo repository.ScrapItemRepository,
	companyRepo repository.CompanyRepository,
	saleRepo repository.SaleRepository,
	pdfGen ReceiptPDFGenerator,
) *SalesUseCase {
	return &SalesUseCase{
		txRunner:    txRunner,
		itemRepo:    itemRepo,
		companyRepo: companyRepo,
		saleRepo:    saleRepo,
		pdfGen:      pdfGen,
		now:         time.Now,
	}
}

// RecordSale vende un ítem aprobado a una empresa.
//
// Profit = selling_price - price_offered, sin piso: puede ser negativo.
// Todo ocurre en una sola transacción: UPDATE condicional approved→sold,
// INSERT de la venta e INSERT de la transacción "sell". Si el UPDATE no
// afecta filas (el ítem dejó de estar approved por una decisión o venta
// concurrente) la transacción se revierte y se devuelve domain.ErrConflict;
// de dos RecordSale en carrera sobre el mismo ítem gana exactamente uno.
func (uc *SalesUseCase) RecordSale(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.ScrapItemID == "" || in.CompanyID == "" {
		return nil, domain.ErrValidation
	}
	if in.SellingPrice.IsNegative() {
		return nil, domain.ErrValidation
	}

	item, err := uc.itemRepo.GetByID(ctx, in.ScrapItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	company, err := uc.companyRepo.GetByID(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if item.Status != entity.StatusApproved {
		return nil, domain.ErrConflict
	}

	now := uc.now()
	sale := &entity.Sale{
		ID:           uuid.New().String(),
		ScrapItemID:  item.ID,
		CompanyID:    company.ID,
		SellingPrice: in.SellingPrice,
		Profit:       in.SellingPrice.Sub(item.PriceOffered),
		SoldAt:       now,
	}

	err = uc.txRunner.RunSale(ctx, func(
		itemRepo repository.ScrapItemRepository,
		saleRepo repository.SaleRepository,
		txRepo repository.TransactionRepository,
	) error {
		// Recheck dentro de la tx: solo gana quien encuentre el ítem aún approved.
		ok, err := itemRepo.UpdateStatus(ctx, item.ID, entity.StatusApproved, entity.StatusSold, now)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrConflict
		}
		if err := saleRepo.Create(ctx, sale); err != nil {
			return err
		}
		return txRepo.Create(ctx, &entity.Transaction{
			ID:          uuid.New().String(),
			UserID:      item.UserID,
			ScrapItemID: item.ID,
			Amount:      sale.SellingPrice,
			Type:        entity.TransactionSell,
			CreatedAt:   now,
		})
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// ListSales devuelve las ventas con el detalle de ítem y empresa.
func (uc *SalesUseCase) ListSales(ctx context.Context) ([]dto.SaleDetailResponse, error) {
	list, err := uc.saleRepo.ListWithDetail(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleDetailResponse, 0, len(list))
	for _, d := range list {
		out = append(out, *toSaleDetailResponse(d))
	}
	return out, nil
}

// Receipt genera el comprobante PDF de una venta.
func (uc *SalesUseCase) Receipt(ctx context.Context, saleID string) ([]byte, error) {
	detail, err := uc.saleRepo.GetDetailByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	return uc.pdfGen.GenerateReceiptPDF(ctx, detail)
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
		ID:           s.ID,
		ScrapItemID:  s.ScrapItemID,
		CompanyID:    s.CompanyID,
		SellingPrice: s.SellingPrice,
		Profit:       s.Profit,
		SoldAt:       s.SoldAt,
	}
}

func toSaleDetailResponse(d *repository.SaleDetail) *dto.SaleDetailResponse {
	return &dto.SaleDetailResponse{
		SaleResponse: *toSaleResponse(&d.Sale),
		ScrapItem:    *scrap.ToScrapItemResponse(&d.Item),
		Company: dto.CompanyResponse{
			ID:        d.Company.ID,
			Name:      d.Company.Name,
			Contact:   d.Company.Contact,
			Address:   d.Company.Address,
			Email:     d.Company.Email,
			CreatedAt: d.Company.CreatedAt,
		},
	}
}
