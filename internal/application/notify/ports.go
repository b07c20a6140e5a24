package notify

import (
	"context"

	"github.com/shopspring/decimal"
)

// Eventos de dominio emitidos por el core. Son notificaciones unidireccionales
// (fire-and-forget): el core no depende de que la entrega tenga éxito, por eso
// ningún método retorna error.

// LeadStatusChangedEvent cambio de estado en el embudo de un lead.
type LeadStatusChangedEvent struct {
	LeadID    string
	PartnerID string
	From      string
	To        string
}

// CommissionPaidEvent comisión marcada como pagada (saldo acreditado).
type CommissionPaidEvent struct {
	CommissionID string
	PartnerID    string
	Type         string
	Amount       decimal.Decimal
}

// PayoutStatusChangedEvent transición de estado de un retiro.
type PayoutStatusChangedEvent struct {
	PayoutID  string
	PartnerID string
	Status    string
	Amount    decimal.Decimal
}

// Notifier puerto hacia el sistema de mensajería/notificaciones.
type Notifier interface {
	LeadStatusChanged(ctx context.Context, ev LeadStatusChangedEvent)
	CommissionPaid(ctx context.Context, ev CommissionPaidEvent)
	PayoutStatusChanged(ctx context.Context, ev PayoutStatusChangedEvent)
}
