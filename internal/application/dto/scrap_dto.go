package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateScrapItemRequest cuerpo de POST /scrap-items.
type CreateScrapItemRequest struct {
	ScrapType    string          `json:"scrap_type"`
	Weight       decimal.Decimal `json:"weight"`
	PriceOffered decimal.Decimal `json:"price_offered"`
	Description  string          `json:"description"`
}

// DecideScrapItemRequest cuerpo de PUT /scrap-items/:id/status (solo admin).
type DecideScrapItemRequest struct {
	Status string `json:"status"` // "approved" | "rejected"
}

// ScrapItemResponse representación pública de un ítem.
type ScrapItemResponse struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	ScrapType    string          `json:"scrap_type"`
	Weight       decimal.Decimal `json:"weight"`
	PriceOffered decimal.Decimal `json:"price_offered"`
	Description  string          `json:"description,omitempty"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ScrapItemWithOwnerResponse fila del listado admin: ítem + datos del dueño.
type ScrapItemWithOwnerResponse struct {
	ScrapItemResponse
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
}

// ScrapTypesResponse catálogo fijo de tipos de chatarra.
type ScrapTypesResponse struct {
	ScrapTypes []string `json:"scrap_types"`
}
