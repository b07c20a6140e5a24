package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/agency-ops-api/internal/domain/entity"
	"github.com/jhoicas/agency-ops-api/internal/domain/repository"
)

var _ repository.PayoutRepository = (*PayoutRepo)(nil)

// PayoutRepo implementación de PayoutRepository sobre PostgreSQL (usable con pool o tx).
type PayoutRepo struct {
	q Querier
}

// NewPayoutRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPayoutRepository(q Querier) *PayoutRepo {
	return &PayoutRepo{q: q}
}

const payoutColumns = `id, partner_id, amount, status, payment_reference,
	requested_at, approved_at, paid_at, created_at, updated_at`

func scanPayout(row pgx.Row) (*entity.Payout, error) {
	var p entity.Payout
	err := row.Scan(
		&p.ID, &p.PartnerID, &p.Amount, &p.Status, &p.PaymentReference,
		&p.RequestedAt, &p.ApprovedAt, &p.PaidAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserta un retiro.
func (r *PayoutRepo) Create(p *entity.Payout) error {
	query := `
		INSERT INTO payouts (id, partner_id, amount, status, payment_reference,
			requested_at, approved_at, paid_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.PartnerID, p.Amount, p.Status, p.PaymentReference,
		p.RequestedAt, p.ApprovedAt, p.PaidAt, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create payout: %w", err)
	}
	return nil
}

// GetByID obtiene un retiro por id. Retorna nil si no existe.
func (r *PayoutRepo) GetByID(id string) (*entity.Payout, error) {
	query := `SELECT ` + payoutColumns + ` FROM payouts WHERE id = $1`
	p, err := scanPayout(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payout: %w", err)
	}
	return p, nil
}

// GetByIDForUpdate obtiene el retiro y bloquea la fila (SELECT FOR UPDATE).
// Dos operadores resolviendo el mismo retiro a la vez se serializan aquí.
func (r *PayoutRepo) GetByIDForUpdate(id string) (*entity.Payout, error) {
	query := `SELECT ` + payoutColumns + ` FROM payouts WHERE id = $1 FOR UPDATE`
	p, err := scanPayout(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payout for update: %w", err)
	}
	return p, nil
}

// ListByPartner lista retiros de un partner, paginados.
func (r *PayoutRepo) ListByPartner(partnerID string, limit, offset int) ([]*entity.Payout, error) {
	query := `SELECT ` + payoutColumns + ` FROM payouts WHERE partner_id = $1
		ORDER BY requested_at DESC LIMIT $2 OFFSET $3`
	return r.queryPayouts(query, partnerID, limit, offset)
}

// List lista todos los retiros, paginados.
func (r *PayoutRepo) List(limit, offset int) ([]*entity.Payout, error) {
	query := `SELECT ` + payoutColumns + ` FROM payouts ORDER BY requested_at DESC LIMIT $1 OFFSET $2`
	return r.queryPayouts(query, limit, offset)
}

func (r *PayoutRepo) queryPayouts(query string, args ...any) ([]*entity.Payout, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payouts: %w", err)
	}
	defer rows.Close()

	var out []*entity.Payout
	for rows.Next() {
		p, err := scanPayout(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payout: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Update actualiza estado, referencia de pago y fechas de un retiro.
func (r *PayoutRepo) Update(p *entity.Payout) error {
	query := `
		UPDATE payouts
		SET status = $2, payment_reference = $3, approved_at = $4, paid_at = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Status, p.PaymentReference, p.ApprovedAt, p.PaidAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update payout: %w", err)
	}
	return nil
}
