package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordCommissionRequest registro manual de una comisión (admin).
// Tipo Audit: requiere LeadID. Tipo Retention: requiere ClientID y Period.
type RecordCommissionRequest struct {
	PartnerID string          `json:"partner_id"`
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	LeadID    string          `json:"lead_id,omitempty"`
	ClientID  string          `json:"client_id,omitempty"`
	Period    string          `json:"period,omitempty"` // YYYY-MM
}

// CommissionResponse representación pública de una comisión.
type CommissionResponse struct {
	ID        string          `json:"id"`
	PartnerID string          `json:"partner_id"`
	LeadID    string          `json:"lead_id,omitempty"`
	ClientID  string          `json:"client_id,omitempty"`
	Period    string          `json:"period,omitempty"`
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	PaidDate  *time.Time      `json:"paid_date,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// RequestPayoutRequest solicitud de retiro de un partner.
type RequestPayoutRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// MarkPayoutPaidRequest liquidación final de un retiro aprobado.
type MarkPayoutPaidRequest struct {
	PaymentReference string `json:"payment_reference"`
}

// PayoutResponse representación pública de un retiro.
type PayoutResponse struct {
	ID               string          `json:"id"`
	PartnerID        string          `json:"partner_id"`
	Amount           decimal.Decimal `json:"amount"`
	Status           string          `json:"status"`
	PaymentReference string          `json:"payment_reference,omitempty"`
	RequestedAt      time.Time       `json:"requested_at"`
	ApprovedAt       *time.Time      `json:"approved_at,omitempty"`
	PaidAt           *time.Time      `json:"paid_at,omitempty"`
}

// BalanceResponse agregado de saldo de un partner.
type BalanceResponse struct {
	PartnerID                 string          `json:"partner_id"`
	AvailableBalance          decimal.Decimal `json:"available_balance"`
	TotalEarnings             decimal.Decimal `json:"total_earnings"`
	TotalAuditCommissions     decimal.Decimal `json:"total_audit_commissions"`
	TotalRetentionCommissions decimal.Decimal `json:"total_retention_commissions"`
}
