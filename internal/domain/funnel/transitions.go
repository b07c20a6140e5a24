package funnel

import "time"

// Estados del embudo de un lead, en orden. Won y Lost son terminales.
const (
	StatusSubmitted    = "Submitted"
	StatusContacted    = "Contacted"
	StatusQualified    = "Qualified"
	StatusProposalSent = "Proposal Sent"
	StatusWon          = "Won"
	StatusLost         = "Lost"
)

// RetentionWindowDays ventana (desde la auditoría completada) dentro de la
// cual una conversión puede activar comisión de retención recurrente.
const RetentionWindowDays = 30

// Transiciones permitidas: avance de a un paso, con Lost alcanzable desde
// cualquier estado activo. Los terminales no tienen salidas.
var transitions = map[string][]string{
	StatusSubmitted:    {StatusContacted, StatusLost},
	StatusContacted:    {StatusQualified, StatusLost},
	StatusQualified:    {StatusProposalSent, StatusLost},
	StatusProposalSent: {StatusWon, StatusLost},
	StatusWon:          {},
	StatusLost:         {},
}

// ValidStatus indica si el estado pertenece al embudo.
func ValidStatus(s string) bool {
	_, ok := transitions[s]
	return ok
}

// Terminal indica si el estado no admite más transiciones.
func Terminal(s string) bool {
	return s == StatusWon || s == StatusLost
}

// CanTransition indica si el cambio current → next está permitido por la tabla.
func CanTransition(current, next string) bool {
	for _, allowed := range transitions[current] {
		if allowed == next {
			return true
		}
	}
	return false
}

// WithinRetentionWindow indica si la conversión ocurrió dentro de la ventana
// de retención contada desde la auditoría completada.
func WithinRetentionWindow(conversionDate, auditCompletedDate time.Time) bool {
	deadline := auditCompletedDate.AddDate(0, 0, RetentionWindowDays)
	return !conversionDate.Before(auditCompletedDate) && !conversionDate.After(deadline)
}
