package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/scrapmaster-api/internal/application/dto"
	"github.com/tu-usuario/scrapmaster-api/internal/domain"
	"github.com/tu-usuario/scrapmaster-api/internal/domain/entity"
	"github.com/tu-usuario/scrapmaster-api/internal/domain/repository"
)

// CompanyUseCase casos de uso CRUD para empresas compradoras (solo admin).
type CompanyUseCase struct {
	repo     repository.CompanyRepository
	saleRepo repository.SaleRepository
	now      func() time.Time
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(repo repository.CompanyRepository, saleRepo repository.SaleRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, saleRepo: saleRepo, now: time.Now}
}

// Create crea una empresa. name, contact y address son obligatorios.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if in.Name == "" || in.Contact == "" || in.Address == "" {
		return nil, domain.ErrValidation
	}
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Contact:   in.Contact,
		Address:   in.Address,
		Email:     in.Email,
		CreatedAt: uc.now(),
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByID obtiene una empresa por ID. Devuelve (nil, nil) si no existe.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return toCompanyResponse(company), nil
}

// List devuelve todas las empresas, más recientes primero.
func (uc *CompanyUseCase) List(ctx context.Context) ([]dto.CompanyResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompanyResponse(c))
	}
	return items, nil
}

// Delete elimina una empresa. Restrict-delete: si tiene ventas asociadas
// devuelve domain.ErrCompanyInUse (las ventas son registros de auditoría y
// no deben quedar con referencias colgantes).
func (uc *CompanyUseCase) Delete(ctx context.Context, id string) error {
	count, err := uc.saleRepo.CountByCompany(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrCompanyInUse
	}
	ok, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Contact:   c.Contact,
		Address:   c.Address,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
}
