package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/agency-ops-api/internal/domain/entity"
	"github.com/jhoicas/agency-ops-api/internal/domain/repository"
)

var _ repository.PackageRepository = (*PackageRepo)(nil)

// PackageRepo implementación de PackageRepository sobre PostgreSQL (usable con pool o tx).
type PackageRepo struct {
	q Querier
}

// NewPackageRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPackageRepository(q Querier) *PackageRepo {
	return &PackageRepo{q: q}
}

const packageColumns = `id, client_id, company_name, scale_tier, annual_revenue,
	gross_margin_percent, growth_target, selected_option, calculated_retainer,
	audit_fee, decision_deadline, status, created_by, created_at, updated_at`

func scanPackage(row pgx.Row) (*entity.Package, error) {
	var p entity.Package
	err := row.Scan(
		&p.ID, &p.ClientID, &p.CompanyName, &p.ScaleTier, &p.AnnualRevenue,
		&p.GrossMarginPercent, &p.GrowthTarget, &p.SelectedOption, &p.CalculatedRetainer,
		&p.AuditFee, &p.DecisionDeadline, &p.Status, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserta una cotización.
func (r *PackageRepo) Create(p *entity.Package) error {
	query := `
		INSERT INTO packages (id, client_id, company_name, scale_tier, annual_revenue,
			gross_margin_percent, growth_target, selected_option, calculated_retainer,
			audit_fee, decision_deadline, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.ClientID, p.CompanyName, p.ScaleTier, p.AnnualRevenue,
		p.GrossMarginPercent, p.GrowthTarget, p.SelectedOption, p.CalculatedRetainer,
		p.AuditFee, p.DecisionDeadline, p.Status, p.CreatedBy, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create package: %w", err)
	}
	return nil
}

// GetByID obtiene una cotización por id. Retorna nil si no existe.
func (r *PackageRepo) GetByID(id string) (*entity.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages WHERE id = $1`
	p, err := scanPackage(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get package: %w", err)
	}
	return p, nil
}

// ListByClient lista cotizaciones de un cliente, paginadas.
func (r *PackageRepo) ListByClient(clientID string, limit, offset int) ([]*entity.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages WHERE client_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, clientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	defer rows.Close()

	var out []*entity.Package
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan package: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Update actualiza inputs de pricing, retainer calculado y estado.
func (r *PackageRepo) Update(p *entity.Package) error {
	query := `
		UPDATE packages
		SET scale_tier = $2, annual_revenue = $3, gross_margin_percent = $4,
			growth_target = $5, selected_option = $6, calculated_retainer = $7,
			audit_fee = $8, status = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.ScaleTier, p.AnnualRevenue, p.GrossMarginPercent,
		p.GrowthTarget, p.SelectedOption, p.CalculatedRetainer,
		p.AuditFee, p.Status, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update package: %w", err)
	}
	return nil
}
