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

// PayoutUseCase opera el ciclo de retiro de saldo de un partner:
// Request (debita de inmediato, semántica de reserva) → Approve → MarkPaid,
// o Reject (devuelve el débito). El saldo nunca cambia en MarkPaid: ya fue
// debitado al solicitar.
type PayoutUseCase struct {
	txRunner   TxRunner
	payoutRepo repository.PayoutRepository
	notifier   notify.Notifier
}

// NewPayoutUseCase construye el caso de uso. payoutRepo va atado al pool
// (solo lecturas); las escrituras pasan por txRunner.
func NewPayoutUseCase(txRunner TxRunner, payoutRepo repository.PayoutRepository, notifier notify.Notifier) *PayoutUseCase {
	return &PayoutUseCase{txRunner: txRunner, payoutRepo: payoutRepo, notifier: notifier}
}

// Request crea la solicitud de retiro y debita el saldo en la misma
// transacción, con la fila del partner bloqueada (FOR UPDATE): dos solicitudes
// simultáneas contra el mismo saldo se serializan y la segunda ve el saldo ya
// debitado. Falla con ErrBelowMinimumPayout bajo el mínimo y con
// ErrInsufficientBalance si el monto excede el saldo disponible.
func (uc *PayoutUseCase) Request(ctx context.Context, partnerID string, amount decimal.Decimal) (*entity.Payout, error) {
	if partnerID == "" || !amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if amount.LessThan(entity.MinimumPayout) {
		return nil, domain.ErrBelowMinimumPayout
	}

	var payout *entity.Payout
	err := uc.txRunner.Run(ctx, func(
		partnerRepo repository.PartnerRepository,
		_ repository.LeadRepository,
		_ repository.CommissionRepository,
		payoutRepo repository.PayoutRepository,
	) error {
		partner, err := partnerRepo.GetByIDForUpdate(partnerID)
		if err != nil {
			return err
		}
		if partner == nil {
			return domain.ErrNotFound
		}
		if amount.GreaterThan(partner.AvailableBalance) {
			return domain.ErrInsufficientBalance
		}

		now := time.Now()
		partner.AvailableBalance = partner.AvailableBalance.Sub(amount)
		partner.UpdatedAt = now
		if err := partnerRepo.UpdateBalances(partner); err != nil {
			return err
		}

		payout = &entity.Payout{
			ID:          uuid.New().String(),
			PartnerID:   partnerID,
			Amount:      amount,
			Status:      entity.PayoutStatusRequested,
			RequestedAt: now,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		return payoutRepo.Create(payout)
	})
	if err != nil {
		return nil, err
	}
	return payout, nil
}

// Approve aprueba un retiro: Requested → Approved, ninguna otra transición.
func (uc *PayoutUseCase) Approve(ctx context.Context, payoutID string) (*entity.Payout, error) {
	var payout *entity.Payout
	err := uc.txRunner.Run(ctx, func(
		_ repository.PartnerRepository,
		_ repository.LeadRepository,
		_ repository.CommissionRepository,
		payoutRepo repository.PayoutRepository,
	) error {
		p, err := payoutRepo.GetByIDForUpdate(payoutID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		if p.Status != entity.PayoutStatusRequested {
			return domain.ErrInvalidTransition
		}
		now := time.Now()
		p.Status = entity.PayoutStatusApproved
		p.ApprovedAt = &now
		p.UpdatedAt = now
		payout = p
		return payoutRepo.Update(p)
	})
	if err != nil {
		return nil, err
	}

	uc.notifier.PayoutStatusChanged(ctx, notify.PayoutStatusChangedEvent{
		PayoutID:  payout.ID,
		PartnerID: payout.PartnerID,
		Status:    payout.Status,
		Amount:    payout.Amount,
	})
	return payout, nil
}

// MarkPaid liquida un retiro aprobado: Approved → Paid. Fija
// payment_reference y paid_at. No toca el saldo (ya debitado al solicitar);
// es la liquidación terminal e irreversible.
func (uc *PayoutUseCase) MarkPaid(ctx context.Context, payoutID, paymentReference string) (*entity.Payout, error) {
	if paymentReference == "" {
		return nil, domain.ErrInvalidInput
	}
	var payout *entity.Payout
	err := uc.txRunner.Run(ctx, func(
		_ repository.PartnerRepository,
		_ repository.LeadRepository,
		_ repository.CommissionRepository,
		payoutRepo repository.PayoutRepository,
	) error {
		p, err := payoutRepo.GetByIDForUpdate(payoutID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		if p.Status != entity.PayoutStatusApproved {
			return domain.ErrInvalidTransition
		}
		now := time.Now()
		p.Status = entity.PayoutStatusPaid
		p.PaymentReference = paymentReference
		p.PaidAt = &now
		p.UpdatedAt = now
		payout = p
		return payoutRepo.Update(p)
	})
	if err != nil {
		return nil, err
	}

	uc.notifier.PayoutStatusChanged(ctx, notify.PayoutStatusChangedEvent{
		PayoutID:  payout.ID,
		PartnerID: payout.PartnerID,
		Status:    payout.Status,
		Amount:    payout.Amount,
	})
	return payout, nil
}

// Reject rechaza un retiro no terminal y devuelve el monto reservado al saldo
// del partner, en la misma transacción. El chequeo de estado bajo FOR UPDATE
// hace la operación idempotente en efecto: un segundo Reject encuentra el
// estado Rejected y falla con ErrInvalidTransition sin acreditar de nuevo.
func (uc *PayoutUseCase) Reject(ctx context.Context, payoutID string) (*entity.Payout, error) {
	var payout *entity.Payout
	err := uc.txRunner.Run(ctx, func(
		partnerRepo repository.PartnerRepository,
		_ repository.LeadRepository,
		_ repository.CommissionRepository,
		payoutRepo repository.PayoutRepository,
	) error {
		p, err := payoutRepo.GetByIDForUpdate(payoutID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		if entity.PayoutTerminal(p.Status) {
			return domain.ErrInvalidTransition
		}

		partner, err := partnerRepo.GetByIDForUpdate(p.PartnerID)
		if err != nil {
			return err
		}
		if partner == nil {
			return domain.ErrNotFound
		}

		now := time.Now()
		partner.AvailableBalance = partner.AvailableBalance.Add(p.Amount)
		partner.UpdatedAt = now
		if err := partnerRepo.UpdateBalances(partner); err != nil {
			return err
		}

		p.Status = entity.PayoutStatusRejected
		p.UpdatedAt = now
		payout = p
		return payoutRepo.Update(p)
	})
	if err != nil {
		return nil, err
	}

	uc.notifier.PayoutStatusChanged(ctx, notify.PayoutStatusChangedEvent{
		PayoutID:  payout.ID,
		PartnerID: payout.PartnerID,
		Status:    payout.Status,
		Amount:    payout.Amount,
	})
	return payout, nil
}

// ListByPartner lista retiros de un partner.
func (uc *PayoutUseCase) ListByPartner(partnerID string, limit, offset int) ([]*entity.Payout, error) {
	return uc.payoutRepo.ListByPartner(partnerID, limit, offset)
}

// List lista retiros de todos los partners (vista admin).
func (uc *PayoutUseCase) List(limit, offset int) ([]*entity.Payout, error) {
	return uc.payoutRepo.List(limit, offset)
}
