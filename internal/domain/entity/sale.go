package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale registro de auditoría de la venta de un ítem aprobado a una empresa.
// Inmutable una vez creado. Profit = SellingPrice - PriceOffered del ítem;
// puede ser negativo (venta a pérdida, sin piso).
type Sale struct {
	ID           string
	ScrapItemID  string
	CompanyID    string
	SellingPrice decimal.Decimal
	Profit       decimal.Decimal
	SoldAt       time.Time
}
