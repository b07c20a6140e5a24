package notify

import (
	"context"

	appnotify "github.com/jhoicas/agency-ops-api/internal/application/notify"
	"github.com/jhoicas/agency-ops-api/pkg/logger"
)

var _ appnotify.Notifier = (*LogNotifier)(nil)

// LogNotifier emite los eventos del core como logs estructurados. Es el
// adaptador por defecto del puerto Notifier: el sistema de mensajería real
// (email/push) los consume aguas abajo; el core no espera confirmación.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier construye el adaptador.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// LeadStatusChanged registra el cambio de estado de un lead.
func (n *LogNotifier) LeadStatusChanged(_ context.Context, ev appnotify.LeadStatusChangedEvent) {
	n.log.Info().
		Str("event", "lead_status_changed").
		Str("lead_id", ev.LeadID).
		Str("partner_id", ev.PartnerID).
		Str("from", ev.From).
		Str("to", ev.To).
		Msg("estado de lead actualizado")
}

// CommissionPaid registra el pago de una comisión.
func (n *LogNotifier) CommissionPaid(_ context.Context, ev appnotify.CommissionPaidEvent) {
	n.log.Info().
		Str("event", "commission_paid").
		Str("commission_id", ev.CommissionID).
		Str("partner_id", ev.PartnerID).
		Str("type", ev.Type).
		Str("amount", ev.Amount.String()).
		Msg("comisión pagada")
}

// PayoutStatusChanged registra la transición de un retiro.
func (n *LogNotifier) PayoutStatusChanged(_ context.Context, ev appnotify.PayoutStatusChangedEvent) {
	n.log.Info().
		Str("event", "payout_status_changed").
		Str("payout_id", ev.PayoutID).
		Str("partner_id", ev.PartnerID).
		Str("status", ev.Status).
		Str("amount", ev.Amount.String()).
		Msg("estado de retiro actualizado")
}
