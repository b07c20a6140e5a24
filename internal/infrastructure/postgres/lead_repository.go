package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/agency-ops-api/internal/domain/entity"
	"github.com/jhoicas/agency-ops-api/internal/domain/repository"
)

var _ repository.LeadRepository = (*LeadRepo)(nil)

// LeadRepo implementación de LeadRepository sobre PostgreSQL (usable con pool o tx).
type LeadRepo struct {
	q Querier
}

// NewLeadRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLeadRepository(q Querier) *LeadRepo {
	return &LeadRepo{q: q}
}

const leadColumns = `id, partner_id, assigned_manager_id, company_name, contact_name,
	contact_email, contact_phone, status,
	audit_scheduled_date, audit_completed_date, audit_commission_paid,
	conversion_option, conversion_date, monthly_retainer,
	retention_commission_active, commission_amount, created_at, updated_at`

func scanLead(row pgx.Row) (*entity.Lead, error) {
	var l entity.Lead
	err := row.Scan(
		&l.ID, &l.PartnerID, &l.AssignedManagerID, &l.CompanyName, &l.ContactName,
		&l.ContactEmail, &l.ContactPhone, &l.Status,
		&l.AuditScheduledDate, &l.AuditCompletedDate, &l.AuditCommissionPaid,
		&l.ConversionOption, &l.ConversionDate, &l.MonthlyRetainer,
		&l.RetentionCommissionActive, &l.CommissionAmount, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// Create inserta un lead.
func (r *LeadRepo) Create(l *entity.Lead) error {
	query := `
		INSERT INTO leads (id, partner_id, assigned_manager_id, company_name, contact_name,
			contact_email, contact_phone, status,
			audit_scheduled_date, audit_completed_date, audit_commission_paid,
			conversion_option, conversion_date, monthly_retainer,
			retention_commission_active, commission_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.PartnerID, l.AssignedManagerID, l.CompanyName, l.ContactName,
		l.ContactEmail, l.ContactPhone, l.Status,
		l.AuditScheduledDate, l.AuditCompletedDate, l.AuditCommissionPaid,
		l.ConversionOption, l.ConversionDate, l.MonthlyRetainer,
		l.RetentionCommissionActive, l.CommissionAmount, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create lead: %w", err)
	}
	return nil
}

// GetByID obtiene un lead por id. Retorna nil si no existe.
func (r *LeadRepo) GetByID(id string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`
	l, err := scanLead(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lead: %w", err)
	}
	return l, nil
}

// GetByIDForUpdate obtiene el lead y bloquea la fila (SELECT FOR UPDATE).
func (r *LeadRepo) GetByIDForUpdate(id string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1 FOR UPDATE`
	l, err := scanLead(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lead for update: %w", err)
	}
	return l, nil
}

// ListByPartner lista los leads de un partner, paginados.
func (r *LeadRepo) ListByPartner(partnerID string, limit, offset int) ([]*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE partner_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.queryLeads(query, partnerID, limit, offset)
}

// List lista todos los leads, paginados.
func (r *LeadRepo) List(limit, offset int) ([]*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryLeads(query, limit, offset)
}

func (r *LeadRepo) queryLeads(query string, args ...any) ([]*entity.Lead, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var out []*entity.Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// Update actualiza el lead completo (estado, fechas de auditoría y economía de conversión).
func (r *LeadRepo) Update(l *entity.Lead) error {
	query := `
		UPDATE leads
		SET assigned_manager_id = $2, status = $3,
			audit_scheduled_date = $4, audit_completed_date = $5, audit_commission_paid = $6,
			conversion_option = $7, conversion_date = $8, monthly_retainer = $9,
			retention_commission_active = $10, commission_amount = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.AssignedManagerID, l.Status,
		l.AuditScheduledDate, l.AuditCompletedDate, l.AuditCommissionPaid,
		l.ConversionOption, l.ConversionDate, l.MonthlyRetainer,
		l.RetentionCommissionActive, l.CommissionAmount, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update lead: %w", err)
	}
	return nil
}
