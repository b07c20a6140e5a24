package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/agency-ops-api/internal/application/notify"
	"github.com/jhoicas/agency-ops-api/internal/domain"
	"github.com/jhoicas/agency-ops-api/internal/domain/entity"
	"github.com/jhoicas/agency-ops-api/internal/domain/repository"
)

// CommissionUseCase opera el ciclo de vida de comisiones:
// Record (Pending) → Approve → MarkPaid (acredita saldo del partner).
type CommissionUseCase struct {
	txRunner       TxRunner
	partnerRepo    repository.PartnerRepository
	commissionRepo repository.CommissionRepository
	notifier       notify.Notifier
}

// NewCommissionUseCase construye el caso de uso. partnerRepo y commissionRepo
// van atados al pool (solo lecturas); las escrituras pasan por txRunner.
func NewCommissionUseCase(
	txRunner TxRunner,
	partnerRepo repository.PartnerRepository,
	commissionRepo repository.CommissionRepository,
	notifier notify.Notifier,
) *CommissionUseCase {
	return &CommissionUseCase{txRunner: txRunner, partnerRepo: partnerRepo, commissionRepo: commissionRepo, notifier: notifier}
}

// RecordInput datos para registrar una comisión.
type RecordInput struct {
	PartnerID string
	Type      string
	Amount    decimal.Decimal
	LeadID    string // tipo Audit
	ClientID  string // tipo Retention
	Period    string // tipo Retention, YYYY-MM
}

// RecordCommissionTx valida, chequea duplicados y crea la comisión en Pending
// usando el repositorio proporcionado (misma transacción del caller). La usa
// tanto Record como el caso de uso del embudo al ganar un lead.
func RecordCommissionTx(commissionRepo repository.CommissionRepository, in RecordInput, now time.Time) (*entity.Commission, error) {
	if !in.Amount.GreaterThan(decimal.Zero) || in.PartnerID == "" {
		return nil, domain.ErrInvalidInput
	}
	switch in.Type {
	case entity.CommissionTypeAudit:
		if in.LeadID == "" {
			return nil, domain.ErrInvalidInput
		}
		exists, err := commissionRepo.ExistsForLead(in.PartnerID, in.LeadID, in.Type)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrDuplicateCommission
		}
	case entity.CommissionTypeRetention:
		if in.ClientID == "" || in.Period == "" {
			return nil, domain.ErrInvalidInput
		}
		exists, err := commissionRepo.ExistsForClientPeriod(in.PartnerID, in.ClientID, in.Period, in.Type)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrDuplicateCommission
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	commission := &entity.Commission{
		ID:        uuid.New().String(),
		PartnerID: in.PartnerID,
		LeadID:    in.LeadID,
		ClientID:  in.ClientID,
		Period:    in.Period,
		Type:      in.Type,
		Amount:    in.Amount,
		Status:    entity.CommissionStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := commissionRepo.Create(commission); err != nil {
		return nil, err
	}
	return commission, nil
}

// Record registra una comisión en estado Pending. Retorna
// ErrDuplicateCommission si ya existe una equivalente (mismo partner + tipo +
// lead, o partner + tipo + cliente + período).
func (uc *CommissionUseCase) Record(ctx context.Context, in RecordInput) (*entity.Commission, error) {
	partner, err := uc.partnerRepo.GetByID(in.PartnerID)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, domain.ErrNotFound
	}

	var commission *entity.Commission
	err = uc.txRunner.Run(ctx, func(
		_ repository.PartnerRepository,
		_ repository.LeadRepository,
		commissionRepo repository.CommissionRepository,
		_ repository.PayoutRepository,
	) error {
		var txErr error
		commission, txErr = RecordCommissionTx(commissionRepo, in, time.Now())
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return commission, nil
}

// Approve aprueba una comisión: Pending → Approved, ninguna otra transición.
func (uc *CommissionUseCase) Approve(ctx context.Context, commissionID string) (*entity.Commission, error) {
	var commission *entity.Commission
	err := uc.txRunner.Run(ctx, func(
		_ repository.PartnerRepository,
		_ repository.LeadRepository,
		commissionRepo repository.CommissionRepository,
		_ repository.PayoutRepository,
	) error {
		c, err := commissionRepo.GetByIDForUpdate(commissionID)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrNotFound
		}
		if c.Status != entity.CommissionStatusPending {
			return domain.ErrInvalidTransition
		}
		c.Status = entity.CommissionStatusApproved
		c.UpdatedAt = time.Now()
		commission = c
		return commissionRepo.Update(c)
	})
	if err != nil {
		return nil, err
	}
	return commission, nil
}

// MarkPaid liquida una comisión: Approved → Paid. En la misma transacción
// acredita AvailableBalance, TotalEarnings y el total por tipo del partner
// (fila bloqueada con FOR UPDATE) y fija PaidDate. Pagar una comisión ya
// pagada retorna ErrInvalidTransition sin tocar el saldo: nunca doble crédito.
func (uc *CommissionUseCase) MarkPaid(ctx context.Context, commissionID string) (*entity.Commission, error) {
	var commission *entity.Commission
	err := uc.txRunner.Run(ctx, func(
		partnerRepo repository.PartnerRepository,
		leadRepo repository.LeadRepository,
		commissionRepo repository.CommissionRepository,
		_ repository.PayoutRepository,
	) error {
		c, err := commissionRepo.GetByIDForUpdate(commissionID)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrNotFound
		}
		if c.Status != entity.CommissionStatusApproved {
			return domain.ErrInvalidTransition
		}

		partner, err := partnerRepo.GetByIDForUpdate(c.PartnerID)
		if err != nil {
			return err
		}
		if partner == nil {
			return domain.ErrNotFound
		}

		now := time.Now()
		partner.AvailableBalance = partner.AvailableBalance.Add(c.Amount)
		partner.TotalEarnings = partner.TotalEarnings.Add(c.Amount)
		switch c.Type {
		case entity.CommissionTypeAudit:
			partner.TotalAuditCommissions = partner.TotalAuditCommissions.Add(c.Amount)
		case entity.CommissionTypeRetention:
			partner.TotalRetentionCommissions = partner.TotalRetentionCommissions.Add(c.Amount)
		}
		partner.UpdatedAt = now
		if err := partnerRepo.UpdateBalances(partner); err != nil {
			return err
		}

		c.Status = entity.CommissionStatusPaid
		c.PaidDate = &now
		c.UpdatedAt = now
		if err := commissionRepo.Update(c); err != nil {
			return err
		}

		// Una comisión Audit pagada marca el flag en el lead de origen.
		if c.Type == entity.CommissionTypeAudit && c.LeadID != "" {
			lead, err := leadRepo.GetByIDForUpdate(c.LeadID)
			if err != nil {
				return err
			}
			if lead != nil && lead.AuditCompletedDate != nil {
				lead.AuditCommissionPaid = true
				lead.UpdatedAt = now
				if err := leadRepo.Update(lead); err != nil {
					return err
				}
			}
		}

		commission = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.notifier.CommissionPaid(ctx, notify.CommissionPaidEvent{
		CommissionID: commission.ID,
		PartnerID:    commission.PartnerID,
		Type:         commission.Type,
		Amount:       commission.Amount,
	})
	return commission, nil
}

// ListByPartner lista comisiones de un partner.
func (uc *CommissionUseCase) ListByPartner(partnerID string, limit, offset int) ([]*entity.Commission, error) {
	return uc.commissionRepo.ListByPartner(partnerID, limit, offset)
}

// List lista comisiones de todos los partners (vista admin).
func (uc *CommissionUseCase) List(limit, offset int) ([]*entity.Commission, error) {
	return uc.commissionRepo.List(limit, offset)
}
