package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un retiro. El monto se debita del saldo al solicitar (reserva)
// y se retiene hasta llegar a un estado terminal: Paid lo consume, Rejected
// lo devuelve al saldo.
const (
	PayoutStatusRequested  = "Requested"
	PayoutStatusApproved   = "Approved"
	PayoutStatusProcessing = "Processing"
	PayoutStatusPaid       = "Paid"
	PayoutStatusRejected   = "Rejected"
)

// MinimumPayout es el monto mínimo que un partner puede retirar.
var MinimumPayout = decimal.NewFromInt(100)

// Payout representa una solicitud de retiro del saldo acumulado de un partner.
// PaymentReference se fija si y solo si Status = Paid.
type Payout struct {
	ID               string
	PartnerID        string
	Amount           decimal.Decimal // > 0, <= saldo disponible al solicitar
	Status           string
	PaymentReference string
	RequestedAt      time.Time
	ApprovedAt       *time.Time
	PaidAt           *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// PayoutTerminal indica si el estado es terminal (no admite más transiciones).
func PayoutTerminal(status string) bool {
	return status == PayoutStatusPaid || status == PayoutStatusRejected
}
