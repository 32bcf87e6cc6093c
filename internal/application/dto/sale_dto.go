package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest cuerpo de POST /sales (solo admin).
type CreateSaleRequest struct {
	ScrapItemID  string          `json:"scrap_item_id"`
	CompanyID    string          `json:"company_id"`
	SellingPrice decimal.Decimal `json:"selling_price"`
}

// SaleResponse representación pública de una venta.
type SaleResponse struct {
	ID           string          `json:"id"`
	ScrapItemID  string          `json:"scrap_item_id"`
	CompanyID    string          `json:"company_id"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	Profit       decimal.Decimal `json:"profit"`
	SoldAt       time.Time       `json:"sold_at"`
}

// SaleDetailResponse fila del listado de ventas: venta + ítem + empresa.
type SaleDetailResponse struct {
	SaleResponse
	ScrapItem ScrapItemResponse `json:"scrap_item"`
	Company   CompanyResponse   `json:"company"`
}
