package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteRequest evaluación directa del motor de pricing (sin persistir).
type QuoteRequest struct {
	SelectedOption     string          `json:"selected_option"`
	ScaleTier          string          `json:"scale_tier"`
	AnnualRevenue      decimal.Decimal `json:"annual_revenue"`
	GrossMarginPercent decimal.Decimal `json:"gross_margin_percent"`
	GrowthTarget       string          `json:"growth_target"`
}

// QuoteResponse salida del motor de pricing.
type QuoteResponse struct {
	MonthlyRetainer decimal.Decimal `json:"monthly_retainer"`
	AuditFee        decimal.Decimal `json:"audit_fee"`
}

// CreatePackageRequest alta de una cotización desde el wizard (admin).
type CreatePackageRequest struct {
	ClientID           string          `json:"client_id"`
	CompanyName        string          `json:"company_name"`
	ScaleTier          string          `json:"scale_tier"`
	AnnualRevenue      decimal.Decimal `json:"annual_revenue"`
	GrossMarginPercent decimal.Decimal `json:"gross_margin_percent"`
	GrowthTarget       string          `json:"growth_target"`
	SelectedOption     string          `json:"selected_option"`
}

// UpdatePackageRequest edición explícita de inputs (solo en Draft; recalcula).
type UpdatePackageRequest struct {
	ScaleTier          string          `json:"scale_tier"`
	AnnualRevenue      decimal.Decimal `json:"annual_revenue"`
	GrossMarginPercent decimal.Decimal `json:"gross_margin_percent"`
	GrowthTarget       string          `json:"growth_target"`
	SelectedOption     string          `json:"selected_option"`
}

// PackageResponse representación pública de una cotización.
type PackageResponse struct {
	ID                 string          `json:"id"`
	ClientID           string          `json:"client_id"`
	CompanyName        string          `json:"company_name"`
	ScaleTier          string          `json:"scale_tier"`
	AnnualRevenue      decimal.Decimal `json:"annual_revenue"`
	GrossMarginPercent decimal.Decimal `json:"gross_margin_percent"`
	GrowthTarget       string          `json:"growth_target"`
	SelectedOption     string          `json:"selected_option"`
	CalculatedRetainer decimal.Decimal `json:"calculated_retainer"`
	AuditFee           decimal.Decimal `json:"audit_fee"`
	DecisionDeadline   time.Time       `json:"decision_deadline"`
	Status             string          `json:"status"`
	CreatedAt          time.Time       `json:"created_at"`
}
