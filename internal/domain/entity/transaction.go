package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción del historial económico.
const (
	TransactionBuy  = "buy"  // compromiso de compra al enviar el ítem (precio pedido)
	TransactionSell = "sell" // venta efectiva (precio de venta a la empresa)
)

// Transaction rastro económico asociado a un ítem: una entrada "buy" al
// enviarlo y una "sell" al venderlo. Las ganancias del usuario se derivan
// sumando sus transacciones "sell".
type Transaction struct {
	ID          string
	UserID      string
	ScrapItemID string
	Amount      decimal.Decimal
	Type        string // "buy" | "sell"
	CreatedAt   time.Time
}
