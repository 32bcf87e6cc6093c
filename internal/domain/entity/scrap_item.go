package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un ítem de chatarra.
//
//	pending ──(admin)──▶ approved ──(venta)──▶ sold
//	   └─────(admin)──▶ rejected
//
// rejected y sold son terminales; no existen transiciones hacia atrás.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
	StatusSold     = "sold"
)

// Tipos de chatarra aceptados (catálogo fijo).
const (
	TypeMetal       = "Metal"
	TypePaper       = "Paper"
	TypePlastic     = "Plastic"
	TypeGlass       = "Glass"
	TypeElectronics = "Electronics"
)

// ScrapTypes devuelve el catálogo de tipos en orden estable.
func ScrapTypes() []string {
	return []string{TypeMetal, TypePaper, TypePlastic, TypeGlass, TypeElectronics}
}

// IsValidScrapType informa si el tipo pertenece al catálogo.
func IsValidScrapType(t string) bool {
	switch t {
	case TypeMetal, TypePaper, TypePlastic, TypeGlass, TypeElectronics:
		return true
	}
	return false
}

// IsValidDecision informa si el estado es una decisión admin válida sobre un
// ítem pendiente (approved o rejected).
func IsValidDecision(status string) bool {
	return status == StatusApproved || status == StatusRejected
}

// ScrapItem representa una unidad de material reciclable ofrecida en venta.
// Weight en kilogramos (> 0); PriceOffered es el precio pedido por el usuario (>= 0).
// El estado lo muta solo un admin (pending→approved|rejected) o el registro de
// una venta (approved→sold).
type ScrapItem struct {
	ID           string
	UserID       string
	ScrapType    string
	Weight       decimal.Decimal
	PriceOffered decimal.Decimal
	Description  string // opcional
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
