package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/agency-ops-api/internal/domain/entity"
	"github.com/jhoicas/agency-ops-api/internal/domain/repository"
)

var _ repository.PartnerRepository = (*PartnerRepo)(nil)

// PartnerRepo implementación de PartnerRepository sobre PostgreSQL (usable con pool o tx).
type PartnerRepo struct {
	q Querier
}

// NewPartnerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPartnerRepository(q Querier) *PartnerRepo {
	return &PartnerRepo{q: q}
}

const partnerColumns = `id, user_id, name, email, commission_rate,
	available_balance, total_earnings, total_audit_commissions, total_retention_commissions,
	created_at, updated_at`

func scanPartner(row pgx.Row) (*entity.Partner, error) {
	var p entity.Partner
	err := row.Scan(
		&p.ID, &p.UserID, &p.Name, &p.Email, &p.CommissionRate,
		&p.AvailableBalance, &p.TotalEarnings, &p.TotalAuditCommissions, &p.TotalRetentionCommissions,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserta un partner.
func (r *PartnerRepo) Create(p *entity.Partner) error {
	query := `
		INSERT INTO partners (id, user_id, name, email, commission_rate,
			available_balance, total_earnings, total_audit_commissions, total_retention_commissions,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.UserID, p.Name, p.Email, p.CommissionRate,
		p.AvailableBalance, p.TotalEarnings, p.TotalAuditCommissions, p.TotalRetentionCommissions,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create partner: %w", err)
	}
	return nil
}

// GetByID obtiene un partner por id. Retorna nil si no existe.
func (r *PartnerRepo) GetByID(id string) (*entity.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners WHERE id = $1`
	p, err := scanPartner(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get partner: %w", err)
	}
	return p, nil
}

// GetByIDForUpdate obtiene el partner y bloquea la fila (SELECT FOR UPDATE).
// Serializa toda mutación de saldo contra el mismo partner.
func (r *PartnerRepo) GetByIDForUpdate(id string) (*entity.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners WHERE id = $1 FOR UPDATE`
	p, err := scanPartner(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get partner for update: %w", err)
	}
	return p, nil
}

// List lista partners paginados.
func (r *PartnerRepo) List(limit, offset int) ([]*entity.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list partners: %w", err)
	}
	defer rows.Close()

	var out []*entity.Partner
	for rows.Next() {
		p, err := scanPartner(rows)
		if err != nil {
			return nil, fmt.Errorf("scan partner: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Update actualiza los datos generales del partner (no el saldo).
func (r *PartnerRepo) Update(p *entity.Partner) error {
	query := `
		UPDATE partners
		SET name = $2, email = $3, commission_rate = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, p.ID, p.Name, p.Email, p.CommissionRate, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update partner: %w", err)
	}
	return nil
}

// UpdateBalances persiste los campos de saldo. Debe llamarse con la fila
// bloqueada (GetByIDForUpdate) dentro de la misma transacción. El CHECK
// available_balance >= 0 de la tabla es el último respaldo contra un débito
// que deje el saldo negativo.
func (r *PartnerRepo) UpdateBalances(p *entity.Partner) error {
	query := `
		UPDATE partners
		SET available_balance = $2, total_earnings = $3,
			total_audit_commissions = $4, total_retention_commissions = $5,
			updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.AvailableBalance, p.TotalEarnings,
		p.TotalAuditCommissions, p.TotalRetentionCommissions, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update partner balances: %w", err)
	}
	return nil
}
