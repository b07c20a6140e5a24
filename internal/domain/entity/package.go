package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un paquete de pricing. Sent es terminal: la cotización fue
// entregada y no se esperan más mutaciones de precio.
const (
	PackageStatusDraft = "Draft"
	PackageStatusSent  = "Sent"
)

// DecisionWindowDays días que tiene el cliente para decidir desde la creación.
const DecisionWindowDays = 30

// Package representa una cotización de engagement generada por el wizard de
// un admin: inputs financieros de la empresa + opción seleccionada + retainer
// calculado por el motor de pricing. Los inputs son inmutables salvo edición
// explícita (solo en Draft).
type Package struct {
	ID                 string
	ClientID           string
	CompanyName        string
	ScaleTier          string
	AnnualRevenue      decimal.Decimal
	GrossMarginPercent decimal.Decimal
	GrowthTarget       string
	SelectedOption     string
	CalculatedRetainer decimal.Decimal
	AuditFee           decimal.Decimal
	DecisionDeadline   time.Time
	Status             string
	CreatedBy          string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
