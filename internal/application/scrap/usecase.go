// Package scrap contiene los casos de uso del ciclo de vida de los ítems de
// chatarra: envío por el usuario, decisión del admin y listados.
package scrap

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/scrapmaster-api/internal/application/dto"
	"github.com/tu-usuario/scrapmaster-api/internal/domain"
	"github.com/tu-usuario/scrapmaster-api/internal/domain/entity"
	"github.com/tu-usuario/scrapmaster-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repos atados a la tx.
// El envío de un ítem escribe el ítem y su transacción "buy" como una sola
// unidad atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ScrapItemRepository,
		txRepo repository.TransactionRepository,
	) error) error
}

// ScrapUseCase casos de uso del ciclo de vida de ítems.
type ScrapUseCase struct {
	txRunner TxRunner
	itemRepo repository.ScrapItemRepository
	now      func() time.Time
}

// NewScrapUseCase construye el caso de uso.
func NewScrapUseCase(txRunner TxRunner, itemRepo repository.ScrapItemRepository) *ScrapUseCase {
	return &ScrapUseCase{txRunner: txRunner, itemRepo: itemRepo, now: time.Now}
}

// Submit crea un ítem en estado "pending" junto con su transacción "buy".
// Valida tipo (catálogo fijo), weight > 0 y price_offered >= 0; cualquier
// incumplimiento devuelve domain.ErrValidation sin tocar la DB.
func (uc *ScrapUseCase) Submit(ctx context.Context, user *entity.User, in dto.CreateScrapItemRequest) (*dto.ScrapItemResponse, error) {
	if !entity.IsValidScrapType(in.ScrapType) {
		return nil, domain.ErrValidation
	}
	if !in.Weight.IsPositive() {
		return nil, domain.ErrValidation
	}
	if in.PriceOffered.IsNegative() {
		return nil, domain.ErrValidation
	}

	now := uc.now()
	item := &entity.ScrapItem{
		ID:           uuid.New().String(),
		UserID:       user.ID,
		ScrapType:    in.ScrapType,
		Weight:       in.Weight,
		PriceOffered: in.PriceOffered,
		Description:  in.Description,
		Status:       entity.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ScrapItemRepository,
		txRepo repository.TransactionRepository,
	) error {
		if err := itemRepo.Create(ctx, item); err != nil {
			return err
		}
		return txRepo.Create(ctx, &entity.Transaction{
			ID:          uuid.New().String(),
			UserID:      user.ID,
			ScrapItemID: item.ID,
			Amount:      item.PriceOffered,
			Type:        entity.TransactionBuy,
			CreatedAt:   now,
		})
	})
	if err != nil {
		return nil, err
	}
	return ToScrapItemResponse(item), nil
}

// ListOwn devuelve los ítems del usuario, más recientes primero.
func (uc *ScrapUseCase) ListOwn(ctx context.Context, userID string) ([]dto.ScrapItemResponse, error) {
	list, err := uc.itemRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ScrapItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *ToScrapItemResponse(it))
	}
	return items, nil
}

// ListAll devuelve todos los ítems anotados con el dueño (vista admin).
func (uc *ScrapUseCase) ListAll(ctx context.Context) ([]dto.ScrapItemWithOwnerResponse, error) {
	list, err := uc.itemRepo.ListAllWithOwner(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ScrapItemWithOwnerResponse, 0, len(list))
	for _, row := range list {
		items = append(items, dto.ScrapItemWithOwnerResponse{
			ScrapItemResponse: *ToScrapItemResponse(&row.Item),
			UserName:          row.UserName,
			UserEmail:         row.UserEmail,
		})
	}
	return items, nil
}

// Decide aplica la decisión del admin sobre un ítem pendiente.
// El UPDATE es condicional al estado "pending": si no afecta filas y el ítem
// existe, otro actor ya decidió (o vendió) → domain.ErrConflict; si el ítem
// no existe → domain.ErrNotFound. Decisiones fuera de {approved, rejected}
// devuelven domain.ErrValidation.
func (uc *ScrapUseCase) Decide(ctx context.Context, itemID, decision string) error {
	if !entity.IsValidDecision(decision) {
		return domain.ErrValidation
	}
	ok, err := uc.itemRepo.UpdateStatus(ctx, itemID, entity.StatusPending, decision, uc.now())
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return domain.ErrConflict
}

// ToScrapItemResponse convierte la entidad al DTO público.
func ToScrapItemResponse(it *entity.ScrapItem) *dto.ScrapItemResponse {
	if it == nil {
		return nil
	}
	return &dto.ScrapItemResponse{
		ID:           it.ID,
		UserID:       it.UserID,
		ScrapType:    it.ScrapType,
		Weight:       it.Weight,
		PriceOffered: it.PriceOffered,
		Description:  it.Description,
		Status:       it.Status,
		CreatedAt:    it.CreatedAt,
		UpdatedAt:    it.UpdatedAt,
	}
}
