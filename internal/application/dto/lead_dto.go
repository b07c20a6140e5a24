package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateLeadRequest alta de lead por un partner (siempre nace en Submitted).
type CreateLeadRequest struct {
	CompanyName  string `json:"company_name"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
}

// ChangeLeadStatusRequest avance de estado del embudo (solo operadores).
// Los campos de conversión son obligatorios al pasar a Won con opción recurrente.
type ChangeLeadStatusRequest struct {
	Status           string           `json:"status"`
	ConversionOption string           `json:"conversion_option,omitempty"`
	ConversionDate   *time.Time       `json:"conversion_date,omitempty"`
	MonthlyRetainer  *decimal.Decimal `json:"monthly_retainer,omitempty"`
}

// LeadAuditRequest fechas de la sub-ruta de auditoría.
type LeadAuditRequest struct {
	ScheduledDate *time.Time `json:"scheduled_date,omitempty"`
	CompletedDate *time.Time `json:"completed_date,omitempty"`
}

// LeadResponse representación pública de un lead.
type LeadResponse struct {
	ID                        string          `json:"id"`
	PartnerID                 string          `json:"partner_id"`
	AssignedManagerID         string          `json:"assigned_manager_id,omitempty"`
	CompanyName               string          `json:"company_name"`
	ContactName               string          `json:"contact_name"`
	ContactEmail              string          `json:"contact_email"`
	ContactPhone              string          `json:"contact_phone,omitempty"`
	Status                    string          `json:"status"`
	AuditScheduledDate        *time.Time      `json:"audit_scheduled_date,omitempty"`
	AuditCompletedDate        *time.Time      `json:"audit_completed_date,omitempty"`
	AuditCommissionPaid       bool            `json:"audit_commission_paid"`
	ConversionOption          string          `json:"conversion_option,omitempty"`
	ConversionDate            *time.Time      `json:"conversion_date,omitempty"`
	MonthlyRetainer           decimal.Decimal `json:"monthly_retainer"`
	RetentionCommissionActive bool            `json:"retention_commission_active"`
	CommissionAmount          decimal.Decimal `json:"commission_amount"`
	CreatedAt                 time.Time       `json:"created_at"`
}
