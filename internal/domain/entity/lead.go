package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lead representa un prospecto referido por un partner, rastreado por el
// embudo de ventas (ver domain/funnel para las transiciones válidas).
//
// Invariantes:
//   - CommissionAmount solo se fija cuando Status = Won (snapshot al convertir).
//   - AuditCommissionPaid solo puede ser true si AuditCompletedDate está fijada.
//   - RetentionCommissionActive solo se activa si la conversión ocurre dentro
//     de la ventana de retención contada desde AuditCompletedDate.
type Lead struct {
	ID                 string
	PartnerID          string
	AssignedManagerID  string
	CompanyName        string
	ContactName        string
	ContactEmail       string
	ContactPhone       string
	Status             string // ver funnel.Status*

	// Sub-ruta de auditoría (fechas sobre los estados del embudo).
	AuditScheduledDate  *time.Time
	AuditCompletedDate  *time.Time
	AuditCommissionPaid bool

	// Economía de la conversión (se fijan al pasar a Won).
	ConversionOption          string // opción de pricing elegida
	ConversionDate            *time.Time
	MonthlyRetainer           decimal.Decimal
	RetentionCommissionActive bool
	CommissionAmount          decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}
