package pricing

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/agency-ops-api/internal/application/dto"
	"github.com/jhoicas/agency-ops-api/internal/domain"
	"github.com/jhoicas/agency-ops-api/internal/domain/entity"
	"github.com/jhoicas/agency-ops-api/internal/domain/pricing"
	"github.com/jhoicas/agency-ops-api/internal/domain/repository"
)

// PackageUseCase casos de uso de cotizaciones de engagement: creación desde
// el wizard de admin, edición explícita (solo Draft, recalcula el retainer)
// y envío (Draft → Sent, terminal para mutaciones de precio).
type PackageUseCase struct {
	repo repository.PackageRepository
}

// NewPackageUseCase construye el caso de uso.
func NewPackageUseCase(repo repository.PackageRepository) *PackageUseCase {
	return &PackageUseCase{repo: repo}
}

// Quote evalúa el motor de pricing sin persistir. Un tier desconocido es un
// error de validación, nunca un factor 1 silencioso.
func (uc *PackageUseCase) Quote(in dto.QuoteRequest) (*dto.QuoteResponse, error) {
	quote, err := pricing.ComputeRetainer(pricing.QuoteInput{
		Option:        in.SelectedOption,
		ScaleTier:     in.ScaleTier,
		AnnualRevenue: in.AnnualRevenue,
		GrossMargin:   in.GrossMarginPercent,
		GrowthTarget:  in.GrowthTarget,
	})
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return &dto.QuoteResponse{MonthlyRetainer: quote.MonthlyRetainer, AuditFee: quote.AuditFee}, nil
}

// Create crea la cotización: corre el motor, fija la fecha límite de decisión
// (creación + ventana) y persiste en Draft.
func (uc *PackageUseCase) Create(createdBy string, in dto.CreatePackageRequest) (*entity.Package, error) {
	if in.ClientID == "" || in.CompanyName == "" {
		return nil, domain.ErrInvalidInput
	}
	quote, err := pricing.ComputeRetainer(pricing.QuoteInput{
		Option:        in.SelectedOption,
		ScaleTier:     in.ScaleTier,
		AnnualRevenue: in.AnnualRevenue,
		GrossMargin:   in.GrossMarginPercent,
		GrowthTarget:  in.GrowthTarget,
	})
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	pkg := &entity.Package{
		ID:                 uuid.New().String(),
		ClientID:           in.ClientID,
		CompanyName:        in.CompanyName,
		ScaleTier:          in.ScaleTier,
		AnnualRevenue:      in.AnnualRevenue,
		GrossMarginPercent: in.GrossMarginPercent,
		GrowthTarget:       in.GrowthTarget,
		SelectedOption:     in.SelectedOption,
		CalculatedRetainer: quote.MonthlyRetainer,
		AuditFee:           quote.AuditFee,
		DecisionDeadline:   now.AddDate(0, 0, entity.DecisionWindowDays),
		Status:             entity.PackageStatusDraft,
		CreatedBy:          createdBy,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

// Update edita los inputs de pricing de una cotización en Draft y recalcula.
// Una cotización enviada no admite más mutaciones de precio.
func (uc *PackageUseCase) Update(id string, in dto.UpdatePackageRequest) (*entity.Package, error) {
	pkg, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, domain.ErrNotFound
	}
	if pkg.Status != entity.PackageStatusDraft {
		return nil, domain.ErrInvalidTransition
	}

	quote, err := pricing.ComputeRetainer(pricing.QuoteInput{
		Option:        in.SelectedOption,
		ScaleTier:     in.ScaleTier,
		AnnualRevenue: in.AnnualRevenue,
		GrossMargin:   in.GrossMarginPercent,
		GrowthTarget:  in.GrowthTarget,
	})
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	pkg.ScaleTier = in.ScaleTier
	pkg.AnnualRevenue = in.AnnualRevenue
	pkg.GrossMarginPercent = in.GrossMarginPercent
	pkg.GrowthTarget = in.GrowthTarget
	pkg.SelectedOption = in.SelectedOption
	pkg.CalculatedRetainer = quote.MonthlyRetainer
	pkg.AuditFee = quote.AuditFee
	pkg.UpdatedAt = time.Now()
	if err := uc.repo.Update(pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

// Send marca la cotización como entregada: Draft → Sent.
func (uc *PackageUseCase) Send(id string) (*entity.Package, error) {
	pkg, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, domain.ErrNotFound
	}
	if pkg.Status != entity.PackageStatusDraft {
		return nil, domain.ErrInvalidTransition
	}
	pkg.Status = entity.PackageStatusSent
	pkg.UpdatedAt = time.Now()
	if err := uc.repo.Update(pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

// GetByID obtiene una cotización.
func (uc *PackageUseCase) GetByID(id string) (*entity.Package, error) {
	pkg, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, domain.ErrNotFound
	}
	return pkg, nil
}

// ListByClient lista las cotizaciones de un cliente.
func (uc *PackageUseCase) ListByClient(clientID string, limit, offset int) ([]*entity.Package, error) {
	return uc.repo.ListByClient(clientID, limit, offset)
}
