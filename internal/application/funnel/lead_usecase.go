package funnel

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/agency-ops-api/internal/application/dto"
	"github.com/jhoicas/agency-ops-api/internal/application/ledger"
	"github.com/jhoicas/agency-ops-api/internal/application/notify"
	"github.com/jhoicas/agency-ops-api/internal/domain"
	"github.com/jhoicas/agency-ops-api/internal/domain/entity"
	"github.com/jhoicas/agency-ops-api/internal/domain/funnel"
	"github.com/jhoicas/agency-ops-api/internal/domain/pricing"
	"github.com/jhoicas/agency-ops-api/internal/domain/repository"
)

// Actor identidad ya resuelta del operador que ejecuta la acción.
type Actor struct {
	UserID string
	Role   string
}

// LeadUseCase opera el embudo de leads: alta por el partner (siempre en
// Submitted), avance de estado por un operador autorizado y la sub-ruta de
// auditoría. Al ganar un lead registra la comisión Audit en la misma
// transacción que el update del lead.
type LeadUseCase struct {
	txRunner    ledger.TxRunner
	leadRepo    repository.LeadRepository
	partnerRepo repository.PartnerRepository
	notifier    notify.Notifier
}

// NewLeadUseCase construye el caso de uso.
func NewLeadUseCase(
	txRunner ledger.TxRunner,
	leadRepo repository.LeadRepository,
	partnerRepo repository.PartnerRepository,
	notifier notify.Notifier,
) *LeadUseCase {
	return &LeadUseCase{txRunner: txRunner, leadRepo: leadRepo, partnerRepo: partnerRepo, notifier: notifier}
}

// Create da de alta un lead referido por el partner, siempre en Submitted.
func (uc *LeadUseCase) Create(ctx context.Context, partnerID string, in dto.CreateLeadRequest) (*entity.Lead, error) {
	if partnerID == "" || in.CompanyName == "" || in.ContactName == "" || in.ContactEmail == "" {
		return nil, domain.ErrInvalidInput
	}
	partner, err := uc.partnerRepo.GetByID(partnerID)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	lead := &entity.Lead{
		ID:           uuid.New().String(),
		PartnerID:    partnerID,
		CompanyName:  in.CompanyName,
		ContactName:  in.ContactName,
		ContactEmail: in.ContactEmail,
		ContactPhone: in.ContactPhone,
		Status:       funnel.StatusSubmitted,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.leadRepo.Create(lead); err != nil {
		return nil, err
	}
	return lead, nil
}

// ChangeStatus avanza el estado del embudo. Solo un admin o el manager
// asignado al lead puede operar. La legalidad del cambio la decide la tabla
// de transiciones del dominio; Won/Lost son terminales. Al pasar a Won se
// validan los datos de conversión, se fija el snapshot de comisión y se
// registra la comisión Audit, todo en una sola transacción con el lead
// bloqueado (FOR UPDATE).
func (uc *LeadUseCase) ChangeStatus(ctx context.Context, actor Actor, leadID string, in dto.ChangeLeadStatusRequest) (*entity.Lead, error) {
	if !funnel.ValidStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}

	var (
		lead *entity.Lead
		from string
	)
	err := uc.txRunner.Run(ctx, func(
		partnerRepo repository.PartnerRepository,
		leadRepo repository.LeadRepository,
		commissionRepo repository.CommissionRepository,
		_ repository.PayoutRepository,
	) error {
		l, err := leadRepo.GetByIDForUpdate(leadID)
		if err != nil {
			return err
		}
		if l == nil {
			return domain.ErrNotFound
		}
		if actor.Role != entity.RoleAdmin && actor.UserID != l.AssignedManagerID {
			return domain.ErrForbidden
		}
		if !funnel.CanTransition(l.Status, in.Status) {
			return domain.ErrInvalidTransition
		}

		from = l.Status
		now := time.Now()

		if in.Status == funnel.StatusWon {
			if err := uc.applyWon(partnerRepo, commissionRepo, l, in, now); err != nil {
				return err
			}
		}

		l.Status = in.Status
		l.UpdatedAt = now
		lead = l
		return leadRepo.Update(l)
	})
	if err != nil {
		return nil, err
	}

	uc.notifier.LeadStatusChanged(ctx, notify.LeadStatusChangedEvent{
		LeadID:    lead.ID,
		PartnerID: lead.PartnerID,
		From:      from,
		To:        lead.Status,
	})
	return lead, nil
}

// applyWon fija la economía de la conversión sobre el lead y registra la
// comisión Audit del partner. Regla de retención: la comisión recurrente solo
// se activa si la conversión cae dentro de la ventana contada desde la
// auditoría completada (chequeo de servidor, no de formulario).
func (uc *LeadUseCase) applyWon(
	partnerRepo repository.PartnerRepository,
	commissionRepo repository.CommissionRepository,
	l *entity.Lead,
	in dto.ChangeLeadStatusRequest,
	now time.Time,
) error {
	if !pricing.ValidOption(in.ConversionOption) {
		return domain.ErrInvalidInput
	}

	recurring := pricing.RecurringOption(in.ConversionOption)
	if recurring {
		if in.MonthlyRetainer == nil || !in.MonthlyRetainer.GreaterThan(decimal.Zero) || in.ConversionDate == nil {
			return domain.ErrInvalidInput
		}
	}

	partner, err := partnerRepo.GetByID(l.PartnerID)
	if err != nil {
		return err
	}
	if partner == nil {
		return domain.ErrNotFound
	}

	l.ConversionOption = in.ConversionOption
	if in.ConversionDate != nil {
		l.ConversionDate = in.ConversionDate
	} else {
		l.ConversionDate = &now
	}
	if recurring {
		l.MonthlyRetainer = *in.MonthlyRetainer
		l.RetentionCommissionActive = l.AuditCompletedDate != nil &&
			funnel.WithinRetentionWindow(*l.ConversionDate, *l.AuditCompletedDate)
	}

	// Snapshot de comisión al convertir: tasa del partner sobre el retainer
	// mensual (recurrente) o sobre la tarifa de auditoría (Independent).
	base := pricing.AuditFee
	if recurring {
		base = l.MonthlyRetainer
	}
	l.CommissionAmount = base.Mul(partner.CommissionRate).Div(decimal.NewFromInt(100))

	_, err = ledger.RecordCommissionTx(commissionRepo, ledger.RecordInput{
		PartnerID: l.PartnerID,
		Type:      entity.CommissionTypeAudit,
		Amount:    l.CommissionAmount,
		LeadID:    l.ID,
	}, now)
	if err != nil {
		// Duplicada: ya fue registrada a mano por un admin; el Won sigue.
		if errors.Is(err, domain.ErrDuplicateCommission) {
			return nil
		}
		return err
	}
	return nil
}

// UpdateAudit fija las fechas de la sub-ruta de auditoría. No se admite sobre
// un lead perdido; la fecha de completada no puede preceder a la agendada.
func (uc *LeadUseCase) UpdateAudit(ctx context.Context, actor Actor, leadID string, in dto.LeadAuditRequest) (*entity.Lead, error) {
	var lead *entity.Lead
	err := uc.txRunner.Run(ctx, func(
		_ repository.PartnerRepository,
		leadRepo repository.LeadRepository,
		_ repository.CommissionRepository,
		_ repository.PayoutRepository,
	) error {
		l, err := leadRepo.GetByIDForUpdate(leadID)
		if err != nil {
			return err
		}
		if l == nil {
			return domain.ErrNotFound
		}
		if actor.Role != entity.RoleAdmin && actor.UserID != l.AssignedManagerID {
			return domain.ErrForbidden
		}
		if l.Status == funnel.StatusLost {
			return domain.ErrInvalidTransition
		}
		if in.ScheduledDate != nil {
			l.AuditScheduledDate = in.ScheduledDate
		}
		if in.CompletedDate != nil {
			if l.AuditScheduledDate != nil && in.CompletedDate.Before(*l.AuditScheduledDate) {
				return domain.ErrInvalidInput
			}
			l.AuditCompletedDate = in.CompletedDate
		}
		l.UpdatedAt = time.Now()
		lead = l
		return leadRepo.Update(l)
	})
	if err != nil {
		return nil, err
	}
	return lead, nil
}

// GetByID obtiene un lead. El scoping por partner lo aplica el handler.
func (uc *LeadUseCase) GetByID(leadID string) (*entity.Lead, error) {
	lead, err := uc.leadRepo.GetByID(leadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, domain.ErrNotFound
	}
	return lead, nil
}

// ListByPartner lista los leads referidos por un partner.
func (uc *LeadUseCase) ListByPartner(partnerID string, limit, offset int) ([]*entity.Lead, error) {
	return uc.leadRepo.ListByPartner(partnerID, limit, offset)
}

// List lista todos los leads (vista admin).
func (uc *LeadUseCase) List(limit, offset int) ([]*entity.Lead, error) {
	return uc.leadRepo.List(limit, offset)
}
