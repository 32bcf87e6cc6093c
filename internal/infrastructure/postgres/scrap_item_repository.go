package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/scrapmaster-api/internal/domain/entity"
	"github.com/tu-usuario/scrapmaster-api/internal/domain/repository"
)

// Asegura que ScrapItemRepo implementa repository.ScrapItemRepository.
var _ repository.ScrapItemRepository = (*ScrapItemRepo)(nil)

// ScrapItemRepo implementación del puerto ScrapItemRepository sobre PostgreSQL.
type ScrapItemRepo struct {
	db Querier
}

// NewScrapItemRepository construye el adaptador de persistencia para ítems.
func NewScrapItemRepository(db Querier) *ScrapItemRepo {
	return &ScrapItemRepo{db: db}
}

// Create persiste un nuevo ítem.
func (r *ScrapItemRepo) Create(ctx context.Context, item *entity.ScrapItem) error {
	const query = `
		INSERT INTO scrap_items (id, user_id, scrap_type, weight, price_offered, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		item.ID, item.UserID, item.ScrapType, item.Weight, item.PriceOffered,
		item.Description, item.Status, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert scrap item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID.
func (r *ScrapItemRepo) GetByID(ctx context.Context, id string) (*entity.ScrapItem, error) {
	const query = `
		SELECT id, user_id, scrap_type, weight, price_offered, description, status, created_at, updated_at
		FROM scrap_items WHERE id = $1`
	var it entity.ScrapItem
	err := r.db.QueryRow(ctx, query, id).Scan(
		&it.ID, &it.UserID, &it.ScrapType, &it.Weight, &it.PriceOffered,
		&it.Description, &it.Status, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get scrap item: %w", err)
	}
	return &it, nil
}

// ListByUser devuelve los ítems del usuario, más recientes primero.
func (r *ScrapItemRepo) ListByUser(ctx context.Context, userID string) ([]*entity.ScrapItem, error) {
	const query = `
		SELECT id, user_id, scrap_type, weight, price_offered, description, status, created_at, updated_at
		FROM scrap_items WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list scrap items: %w", err)
	}
	defer rows.Close()

	var list []*entity.ScrapItem
	for rows.Next() {
		var it entity.ScrapItem
		if err := rows.Scan(&it.ID, &it.UserID, &it.ScrapType, &it.Weight, &it.PriceOffered,
			&it.Description, &it.Status, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan scrap item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// ListAllWithOwner devuelve todos los ítems con nombre y email del dueño (vista admin).
func (r *ScrapItemRepo) ListAllWithOwner(ctx context.Context) ([]*repository.ScrapItemWithOwner, error) {
	const query = `
		SELECT i.id, i.user_id, i.scrap_type, i.weight, i.price_offered, i.description, i.status,
		       i.created_at, i.updated_at, u.name, u.email
		FROM scrap_items i
		JOIN users u ON u.id = i.user_id
		ORDER BY i.created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list scrap items with owner: %w", err)
	}
	defer rows.Close()

	var list []*repository.ScrapItemWithOwner
	for rows.Next() {
		var row repository.ScrapItemWithOwner
		if err := rows.Scan(
			&row.Item.ID, &row.Item.UserID, &row.Item.ScrapType, &row.Item.Weight,
			&row.Item.PriceOffered, &row.Item.Description, &row.Item.Status,
			&row.Item.CreatedAt, &row.Item.UpdatedAt, &row.UserName, &row.UserEmail,
		); err != nil {
			return nil, fmt.Errorf("scan scrap item with owner: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}

// UpdateStatus transición condicional fromStatus→toStatus. El estado esperado
// va en el WHERE: con cero filas afectadas otro actor ganó la carrera (o el
// ítem no existe) y el caller decide entre NotFound y Conflict.
func (r *ScrapItemRepo) UpdateStatus(ctx context.Context, id, fromStatus, toStatus string, updatedAt time.Time) (bool, error) {
	const query = `
		UPDATE scrap_items SET status = $3, updated_at = $4
		WHERE id = $1 AND status = $2`
	cmd, err := r.db.Exec(ctx, query, id, fromStatus, toStatus, updatedAt)
	if err != nil {
		return false, fmt.Errorf("update scrap item status: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
