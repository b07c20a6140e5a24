package ledger

import (
	"context"

	"github.com/jhoicas/agency-ops-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para las operaciones del
// ledger: el cambio de estado y la mutación de saldo se confirman juntos o no
// se confirman. El repositorio de leads participa porque pagar una comisión
// Audit marca el flag audit_commission_paid del lead en la misma transacción,
// y porque ganar un lead registra su comisión junto con el update del lead.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		partnerRepo repository.PartnerRepository,
		leadRepo repository.LeadRepository,
		commissionRepo repository.CommissionRepository,
		payoutRepo repository.PayoutRepository,
	) error) error
}
