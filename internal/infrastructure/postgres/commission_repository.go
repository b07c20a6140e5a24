package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/agency-ops-api/internal/domain"
	"github.com/jhoicas/agency-ops-api/internal/domain/entity"
	"github.com/jhoicas/agency-ops-api/internal/domain/repository"
)

var _ repository.CommissionRepository = (*CommissionRepo)(nil)

// CommissionRepo implementación de CommissionRepository sobre PostgreSQL (usable con pool o tx).
// La tabla lleva índices únicos parciales sobre (partner_id, lead_id, type) y
// (partner_id, client_id, period, type) como respaldo del chequeo de duplicados.
type CommissionRepo struct {
	q Querier
}

// NewCommissionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCommissionRepository(q Querier) *CommissionRepo {
	return &CommissionRepo{q: q}
}

const commissionColumns = `id, partner_id, lead_id, client_id, period, type,
	amount, status, paid_date, created_at, updated_at`

func scanCommission(row pgx.Row) (*entity.Commission, error) {
	var c entity.Commission
	err := row.Scan(
		&c.ID, &c.PartnerID, &c.LeadID, &c.ClientID, &c.Period, &c.Type,
		&c.Amount, &c.Status, &c.PaidDate, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserta una comisión en Pending. Mapea la violación de índice único
// a domain.ErrDuplicateCommission.
func (r *CommissionRepo) Create(c *entity.Commission) error {
	query := `
		INSERT INTO commissions (id, partner_id, lead_id, client_id, period, type,
			amount, status, paid_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.PartnerID, c.LeadID, c.ClientID, c.Period, c.Type,
		c.Amount, c.Status, c.PaidDate, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCommission
		}
		return fmt.Errorf("create commission: %w", err)
	}
	return nil
}

// GetByID obtiene una comisión por id. Retorna nil si no existe.
func (r *CommissionRepo) GetByID(id string) (*entity.Commission, error) {
	query := `SELECT ` + commissionColumns + ` FROM commissions WHERE id = $1`
	c, err := scanCommission(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get commission: %w", err)
	}
	return c, nil
}

// GetByIDForUpdate obtiene la comisión y bloquea la fila (SELECT FOR UPDATE).
func (r *CommissionRepo) GetByIDForUpdate(id string) (*entity.Commission, error) {
	query := `SELECT ` + commissionColumns + ` FROM commissions WHERE id = $1 FOR UPDATE`
	c, err := scanCommission(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get commission for update: %w", err)
	}
	return c, nil
}

// ExistsForLead indica si ya hay una comisión para (partner, lead, tipo).
func (r *CommissionRepo) ExistsForLead(partnerID, leadID, ctype string) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM commissions WHERE partner_id = $1 AND lead_id = $2 AND type = $3)`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, partnerID, leadID, ctype).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists commission for lead: %w", err)
	}
	return exists, nil
}

// ExistsForClientPeriod indica si ya hay una comisión para (partner, cliente, período, tipo).
func (r *CommissionRepo) ExistsForClientPeriod(partnerID, clientID, period, ctype string) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM commissions
		WHERE partner_id = $1 AND client_id = $2 AND period = $3 AND type = $4)`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, partnerID, clientID, period, ctype).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists commission for client period: %w", err)
	}
	return exists, nil
}

// ListByPartner lista comisiones de un partner, paginadas.
func (r *CommissionRepo) ListByPartner(partnerID string, limit, offset int) ([]*entity.Commission, error) {
	query := `SELECT ` + commissionColumns + ` FROM commissions WHERE partner_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.queryCommissions(query, partnerID, limit, offset)
}

// List lista todas las comisiones, paginadas.
func (r *CommissionRepo) List(limit, offset int) ([]*entity.Commission, error) {
	query := `SELECT ` + commissionColumns + ` FROM commissions ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryCommissions(query, limit, offset)
}

func (r *CommissionRepo) queryCommissions(query string, args ...any) ([]*entity.Commission, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list commissions: %w", err)
	}
	defer rows.Close()

	var out []*entity.Commission
	for rows.Next() {
		c, err := scanCommission(rows)
		if err != nil {
			return nil, fmt.Errorf("scan commission: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Update actualiza estado y fecha de pago de una comisión.
func (r *CommissionRepo) Update(c *entity.Commission) error {
	query := `
		UPDATE commissions
		SET status = $2, paid_date = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, c.ID, c.Status, c.PaidDate, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update commission: %w", err)
	}
	return nil
}
