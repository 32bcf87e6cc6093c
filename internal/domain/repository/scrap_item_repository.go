package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/scrapmaster-api/internal/domain/entity"
)

// ScrapItemWithOwner fila del listado admin: ítem anotado con datos del dueño.
type ScrapItemWithOwner struct {
	Item      entity.ScrapItem
	UserName  string
	UserEmail string
}

// ScrapItemRepository puerto de persistencia para ítems de chatarra.
// GetByID devuelve (nil, nil) si el ítem no existe.
type ScrapItemRepository interface {
	Create(ctx context.Context, item *entity.ScrapItem) error
	GetByID(ctx context.Context, id string) (*entity.ScrapItem, error)
	// ListByUser devuelve los ítems del usuario, más recientes primero.
	ListByUser(ctx context.Context, userID string) ([]*entity.ScrapItem, error)
	// ListAllWithOwner devuelve todos los ítems con nombre y email del dueño
	// (vista admin), más recientes primero.
	ListAllWithOwner(ctx context.Context) ([]*ScrapItemWithOwner, error)
	// UpdateStatus hace la transición condicional fromStatus→toStatus.
	// Devuelve false si el ítem no existe o su estado ya no es fromStatus
	// (concurrencia optimista: el UPDATE lleva el estado esperado en el WHERE).
	UpdateStatus(ctx context.Context, id, fromStatus, toStatus string, updatedAt time.Time) (bool, error)
}
