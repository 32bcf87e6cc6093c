package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/scrapmaster-api/internal/application/dto"
	"github.com/tu-usuario/scrapmaster-api/internal/application/usecase"
	"github.com/tu-usuario/scrapmaster-api/internal/domain"
	"github.com/tu-usuario/scrapmaster-api/internal/domain/entity"
	"github.com/tu-usuario/scrapmaster-api/internal/domain/repository"
)

type memCompanyRepo struct {
	companies map[string]*entity.Company
}

func newMemCompanyRepo() *memCompanyRepo {
	return &memCompanyRepo{companies: map[string]*entity.Company{}}
}

func (r *memCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	r.companies[c.ID] = c
	return nil
}

func (r *memCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (r *memCompanyRepo) List(context.Context) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range r.companies {
		out = append(out, c)
	}
	return out, nil
}

func (r *memCompanyRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := r.companies[id]; !ok {
		return false, nil
	}
	delete(r.companies, id)
	return true, nil
}

// stubSaleRepo solo responde CountByCompany; el resto no se usa aquí.
type stubSaleRepo struct {
	salesByCompany map[string]int64
}

func (r *stubSaleRepo) Create(context.Context, *entity.Sale) error { return nil }

func (r *stubSaleRepo) GetDetailByID(context.Context, string) (*repository.SaleDetail, error) {
	return nil, nil
}

func (r *stubSaleRepo) ListWithDetail(context.Context) ([]*repository.SaleDetail, error) {
	return nil, nil
}

func (r *stubSaleRepo) CountByCompany(_ context.Context, companyID string) (int64, error) {
	return r.salesByCompany[companyID], nil
}

func TestCompanyCreate_CamposObligatorios(t *testing.T) {
	uc := usecase.NewCompanyUseCase(newMemCompanyRepo(), &stubSaleRepo{})

	cases := []dto.CreateCompanyRequest{
		{Contact: "311", Address: "Calle 1"},
		{Name: "Recicladora", Address: "Calle 1"},
		{Name: "Recicladora", Contact: "311"},
	}
	for _, in := range cases {
		_, err := uc.Create(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}

	out, err := uc.Create(context.Background(), dto.CreateCompanyRequest{
		Name:    "Recicladora Norte",
		Contact: "311-555-0101",
		Address: "Calle 1 #2-3",
		Email:   "compras@norte.co",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Recicladora Norte", out.Name)
}

func TestCompanyCreate_EmailOpcional(t *testing.T) {
	uc := usecase.NewCompanyUseCase(newMemCompanyRepo(), &stubSaleRepo{})

	out, err := uc.Create(context.Background(), dto.CreateCompanyRequest{
		Name: "Sin Email SAS", Contact: "300", Address: "Cra 4",
	})
	require.NoError(t, err)
	assert.Empty(t, out.Email)
}

func TestCompanyDelete_ConVentas_RetornaCompanyInUse(t *testing.T) {
	repo := newMemCompanyRepo()
	repo.companies["comp-1"] = &entity.Company{ID: "comp-1", Name: "Con Ventas"}
	uc := usecase.NewCompanyUseCase(repo, &stubSaleRepo{salesByCompany: map[string]int64{"comp-1": 2}})

	err := uc.Delete(context.Background(), "comp-1")
	assert.ErrorIs(t, err, domain.ErrCompanyInUse,
		"una empresa con ventas asociadas no se elimina (restrict-delete)")

	_, exists := repo.companies["comp-1"]
	assert.True(t, exists, "la empresa debe seguir existiendo tras el intento")
}

func TestCompanyDelete_SinVentas_Elimina(t *testing.T) {
	repo := newMemCompanyRepo()
	repo.companies["comp-1"] = &entity.Company{ID: "comp-1", Name: "Sin Ventas"}
	uc := usecase.NewCompanyUseCase(repo, &stubSaleRepo{})

	require.NoError(t, uc.Delete(context.Background(), "comp-1"))
	assert.Empty(t, repo.companies)
}

func TestCompanyDelete_Inexistente_RetornaNotFound(t *testing.T) {
	uc := usecase.NewCompanyUseCase(newMemCompanyRepo(), &stubSaleRepo{})

	err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompanyGetByID_Inexistente_NilNil(t *testing.T) {
	uc := usecase.NewCompanyUseCase(newMemCompanyRepo(), &stubSaleRepo{})

	out, err := uc.GetByID(context.Background(), "no-existe")
	require.NoError(t, err)
	assert.Nil(t, out)
}
