package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de comisión.
const (
	CommissionTypeAudit     = "Audit"     // única, ligada a un lead ganado
	CommissionTypeRetention = "Retention" // recurrente, ligada a cliente+período
)

// Estados de una comisión. Pending → Approved → Paid, sin saltos ni retrocesos.
const (
	CommissionStatusPending  = "Pending"
	CommissionStatusApproved = "Approved"
	CommissionStatusPaid     = "Paid"
)

// Commission representa un crédito monetario a favor de un partner.
//
// Unicidad: un par (lead, Audit) genera a lo sumo una comisión; un trío
// (cliente, período, Retention) genera a lo sumo una comisión por período.
// PaidDate se fija si y solo si Status = Paid.
type Commission struct {
	ID        string
	PartnerID string
	LeadID    string // solo tipo Audit
	ClientID  string // solo tipo Retention
	Period    string // solo tipo Retention, formato YYYY-MM
	Type      string
	Amount    decimal.Decimal // > 0
	Status    string
	PaidDate  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
