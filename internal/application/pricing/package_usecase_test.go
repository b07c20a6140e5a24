package pricing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/agency-ops-api/internal/application/dto"
	apppricing "github.com/jhoicas/agency-ops-api/internal/application/pricing"
	"github.com/jhoicas/agency-ops-api/internal/domain"
	"github.com/jhoicas/agency-ops-api/internal/domain/entity"
	"github.com/jhoicas/agency-ops-api/internal/domain/pricing"
	"github.com/jhoicas/agency-ops-api/internal/domain/repository"
)

// Fake en memoria del repositorio de cotizaciones.
type memPackageRepo struct {
	packages map[string]*entity.Package
}

var _ repository.PackageRepository = (*memPackageRepo)(nil)

func newMemPackageRepo() *memPackageRepo {
	return &memPackageRepo{packages: make(map[string]*entity.Package)}
}

func (r *memPackageRepo) Create(p *entity.Package) error {
	cp := *p
	r.packages[cp.ID] = &cp
	return nil
}

func (r *memPackageRepo) GetByID(id string) (*entity.Package, error) {
	p, ok := r.packages[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memPackageRepo) ListByClient(clientID string, limit, offset int) ([]*entity.Package, error) {
	out := []*entity.Package{}
	for _, p := range r.packages {
		if p.ClientID == clientID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memPackageRepo) Update(p *entity.Package) error {
	if _, ok := r.packages[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.packages[cp.ID] = &cp
	return nil
}

func createRequest() dto.CreatePackageRequest {
	return dto.CreatePackageRequest{
		ClientID:           "client-1",
		CompanyName:        "Acme Corp",
		ScaleTier:          pricing.ScaleMedium,
		AnnualRevenue:      decimal.NewFromInt(2_000_000),
		GrossMarginPercent: decimal.NewFromInt(30),
		GrowthTarget:       pricing.GrowthModerate,
		SelectedOption:     pricing.OptionStrategicConsulting,
	}
}

func TestPackageQuote_NoPersiste(t *testing.T) {
	repo := newMemPackageRepo()
	uc := apppricing.NewPackageUseCase(repo)

	quote, err := uc.Quote(dto.QuoteRequest{
		SelectedOption:     pricing.OptionStrategicConsulting,
		ScaleTier:          pricing.ScaleMedium,
		AnnualRevenue:      decimal.NewFromInt(2_000_000),
		GrossMarginPercent: decimal.NewFromInt(30),
		GrowthTarget:       pricing.GrowthModerate,
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(10000).Equal(quote.MonthlyRetainer))
	assert.Empty(t, repo.packages, "Quote evalúa sin persistir")
}

func TestPackageQuote_TierDesconocido(t *testing.T) {
	uc := apppricing.NewPackageUseCase(newMemPackageRepo())

	req := dto.QuoteRequest{
		SelectedOption: pricing.OptionStrategicConsulting,
		ScaleTier:      "Gigantic",
		GrowthTarget:   pricing.GrowthModerate,
	}
	_, err := uc.Quote(req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPackageCreate_DraftConDeadline(t *testing.T) {
	uc := apppricing.NewPackageUseCase(newMemPackageRepo())

	before := time.Now()
	pkg, err := uc.Create("u-admin", createRequest())
	require.NoError(t, err)

	assert.Equal(t, entity.PackageStatusDraft, pkg.Status)
	assert.Equal(t, "u-admin", pkg.CreatedBy)
	assert.True(t, decimal.NewFromInt(10000).Equal(pkg.CalculatedRetainer))
	assert.True(t, pricing.AuditFee.Equal(pkg.AuditFee))

	// La fecha límite de decisión es creación + ventana.
	wantDeadline := before.AddDate(0, 0, entity.DecisionWindowDays)
	assert.WithinDuration(t, wantDeadline, pkg.DecisionDeadline, 5*time.Second)
}

func TestPackageCreate_RequiereClienteYEmpresa(t *testing.T) {
	uc := apppricing.NewPackageUseCase(newMemPackageRepo())

	req := createRequest()
	req.ClientID = ""
	_, err := uc.Create("u-admin", req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestPackageUpdate_SoloDraftYRecalcula: editar recalcula el retainer con el
// motor; una cotización enviada no admite más mutaciones de precio.
func TestPackageUpdate_SoloDraftYRecalcula(t *testing.T) {
	uc := apppricing.NewPackageUseCase(newMemPackageRepo())

	pkg, err := uc.Create("u-admin", createRequest())
	require.NoError(t, err)

	updated, err := uc.Update(pkg.ID, dto.UpdatePackageRequest{
		ScaleTier:          pricing.ScaleSmall,
		AnnualRevenue:      decimal.Zero,
		GrossMarginPercent: decimal.Zero,
		GrowthTarget:       pricing.GrowthConservative,
		SelectedOption:     pricing.OptionStrategicConsulting,
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(5000).Equal(updated.CalculatedRetainer),
		"la edición recalcula con los nuevos inputs")

	_, err = uc.Send(pkg.ID)
	require.NoError(t, err)

	_, err = uc.Update(pkg.ID, dto.UpdatePackageRequest{
		ScaleTier:      pricing.ScaleSmall,
		GrowthTarget:   pricing.GrowthConservative,
		SelectedOption: pricing.OptionStrategicConsulting,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestPackageSend_DraftASent(t *testing.T) {
	uc := apppricing.NewPackageUseCase(newMemPackageRepo())

	pkg, err := uc.Create("u-admin", createRequest())
	require.NoError(t, err)

	sent, err := uc.Send(pkg.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PackageStatusSent, sent.Status)

	// Reenviar no está permitido: Sent es terminal.
	_, err = uc.Send(pkg.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = uc.Send("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
