package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/agency-ops-api/internal/application/dto"
	"github.com/jhoicas/agency-ops-api/internal/domain"
	"github.com/jhoicas/agency-ops-api/internal/domain/entity"
	"github.com/jhoicas/agency-ops-api/internal/domain/repository"
)

// PartnerUseCase casos de uso CRUD del agregado Partner. Las mutaciones de
// saldo NO pasan por aquí: solo por las operaciones del ledger.
type PartnerUseCase struct {
	repo repository.PartnerRepository
}

// NewPartnerUseCase construye el caso de uso.
func NewPartnerUseCase(repo repository.PartnerRepository) *PartnerUseCase {
	return &PartnerUseCase{repo: repo}
}

// Create da de alta un partner con saldo cero. La tasa de comisión debe estar
// en el rango permitido (porcentaje 1–50).
func (uc *PartnerUseCase) Create(in dto.CreatePartnerRequest) (*entity.Partner, error) {
	if in.Name == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	minRate := decimal.NewFromInt(entity.MinCommissionRate)
	maxRate := decimal.NewFromInt(entity.MaxCommissionRate)
	if in.CommissionRate.LessThan(minRate) || in.CommissionRate.GreaterThan(maxRate) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	partner := &entity.Partner{
		ID:                        uuid.New().String(),
		Name:                      in.Name,
		Email:                     in.Email,
		CommissionRate:            in.CommissionRate,
		AvailableBalance:          decimal.Zero,
		TotalEarnings:             decimal.Zero,
		TotalAuditCommissions:     decimal.Zero,
		TotalRetentionCommissions: decimal.Zero,
		CreatedAt:                 now,
		UpdatedAt:                 now,
	}
	if err := uc.repo.Create(partner); err != nil {
		return nil, err
	}
	return partner, nil
}

// GetBalance devuelve el agregado de saldo de un partner.
func (uc *PartnerUseCase) GetBalance(partnerID string) (*dto.BalanceResponse, error) {
	partner, err := uc.repo.GetByID(partnerID)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.BalanceResponse{
		PartnerID:                 partner.ID,
		AvailableBalance:          partner.AvailableBalance,
		TotalEarnings:             partner.TotalEarnings,
		TotalAuditCommissions:     partner.TotalAuditCommissions,
		TotalRetentionCommissions: partner.TotalRetentionCommissions,
	}, nil
}

// List lista partners.
func (uc *PartnerUseCase) List(limit, offset int) ([]*entity.Partner, error) {
	return uc.repo.List(limit, offset)
}
