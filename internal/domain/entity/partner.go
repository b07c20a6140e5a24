package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Límites de la tasa de comisión de un partner (porcentaje).
const (
	MinCommissionRate = 1
	MaxCommissionRate = 50
)

// Partner representa un socio referenciador. Es el agregado durable del ledger:
// Lead, Commission y Payout lo referencian por ID, nunca lo embeben.
//
// AvailableBalance nunca puede ser negativo y TotalEarnings solo crece
// (se incrementa únicamente cuando una comisión pasa a Paid). Las tres
// operaciones del ledger (pagar comisión, solicitar retiro, rechazar retiro)
// son las únicas que mutan estos campos, siempre dentro de una transacción
// con la fila del partner bloqueada (SELECT FOR UPDATE).
type Partner struct {
	ID                        string
	UserID                    string
	Name                      string
	Email                     string
	CommissionRate            decimal.Decimal // porcentaje, 1–50
	AvailableBalance          decimal.Decimal
	TotalEarnings             decimal.Decimal
	TotalAuditCommissions     decimal.Decimal
	TotalRetentionCommissions decimal.Decimal
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}
