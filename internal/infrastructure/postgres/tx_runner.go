package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/agency-ops-api/internal/application/ledger"
	"github.com/jhoicas/agency-ops-api/internal/domain/repository"
)

// Ensure TxRunner implements ledger.TxRunner.
var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Es la
// unidad de atomicidad del ledger: crédito de comisión, débito de retiro y
// reversa de rechazo ocurren completos o no ocurren.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	partnerRepo repository.PartnerRepository,
	leadRepo repository.LeadRepository,
	commissionRepo repository.CommissionRepository,
	payoutRepo repository.PayoutRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	partnerRepo := NewPartnerRepository(tx)
	leadRepo := NewLeadRepository(tx)
	commissionRepo := NewCommissionRepository(tx)
	payoutRepo := NewPayoutRepository(tx)

	if err := fn(partnerRepo, leadRepo, commissionRepo, payoutRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
