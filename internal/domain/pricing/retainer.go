package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Opciones de engagement (paquetes de servicio).
const (
	OptionIndependent         = "Option 1 - Independent"
	OptionStrategicConsulting = "Option 2 - Strategic Consulting"
	OptionFullService         = "Option 3 - Full-Service"
)

// Escalas de empresa (ordenadas de menor a mayor).
const (
	ScaleSmall      = "Small (<$1M)"
	ScaleMedium     = "Medium ($1M-$10M)"
	ScaleLarge      = "Large ($10M-$50M)"
	ScaleEnterprise = "Enterprise (>$50M)"
)

// Metas de crecimiento (ordenadas de menor a mayor).
const (
	GrowthConservative = "Conservative (<20%)"
	GrowthModerate     = "Moderate (20-40%)"
	GrowthAggressive   = "Aggressive (>40%)"
)

// AuditFee tarifa fija de auditoría inicial, igual para toda opción.
var AuditFee = decimal.NewFromInt(2500)

// Parámetros del cálculo. El retainer crece con la escala y la meta de
// crecimiento, más un ajuste por facturación (tope 5000) y por margen bruto.
var (
	baseStrategic   = decimal.NewFromInt(5000)
	baseFullService = decimal.NewFromInt(10000)

	revenueAdjRate = decimal.NewFromFloat(0.001)
	revenueAdjCap  = decimal.NewFromInt(5000)
	marginAdjUnit  = decimal.NewFromInt(1000)
	oneHundred     = decimal.NewFromInt(100)

	clampStrategicMin   = decimal.NewFromInt(5000)
	clampStrategicMax   = decimal.NewFromInt(10000)
	clampFullServiceMin = decimal.NewFromInt(10000)
	clampFullServiceMax = decimal.NewFromInt(25000)
)

// QuoteInput inputs financieros de la empresa + opción seleccionada.
type QuoteInput struct {
	Option        string
	ScaleTier     string
	AnnualRevenue decimal.Decimal
	GrossMargin   decimal.Decimal // porcentaje 0–100
	GrowthTarget  string
}

// Quote salida del motor: retainer mensual y tarifa única de auditoría.
type Quote struct {
	MonthlyRetainer decimal.Decimal
	AuditFee        decimal.Decimal
}

// scaleFactor mapea la escala a su factor. Escala desconocida es un error de
// validación, nunca un factor 1 silencioso.
func scaleFactor(tier string) (decimal.Decimal, error) {
	switch tier {
	case ScaleSmall:
		return decimal.NewFromInt(1), nil
	case ScaleMedium:
		return decimal.NewFromFloat(1.5), nil
	case ScaleLarge:
		return decimal.NewFromInt(2), nil
	case ScaleEnterprise:
		return decimal.NewFromFloat(2.5), nil
	default:
		return decimal.Zero, fmt.Errorf("escala desconocida: %q", tier)
	}
}

// growthFactor mapea la meta de crecimiento a su factor.
func growthFactor(target string) (decimal.Decimal, error) {
	switch target {
	case GrowthConservative:
		return decimal.NewFromInt(1), nil
	case GrowthModerate:
		return decimal.NewFromFloat(1.3), nil
	case GrowthAggressive:
		return decimal.NewFromFloat(1.6), nil
	default:
		return decimal.Zero, fmt.Errorf("meta de crecimiento desconocida: %q", target)
	}
}

// ComputeRetainer calcula el retainer mensual para los inputs dados.
// Es una función pura y determinista: mismos inputs, mismo resultado.
//
//	raw = base * scaleFactor * growthFactor + min(revenue*0.001, 5000) + (margin/100)*1000
//
// acotado a [5000,10000] para Strategic Consulting y [10000,25000] para
// Full-Service. Independent no tiene retainer (solo tarifa única de auditoría).
func ComputeRetainer(in QuoteInput) (Quote, error) {
	if in.AnnualRevenue.IsNegative() || in.GrossMargin.IsNegative() || in.GrossMargin.GreaterThan(oneHundred) {
		return Quote{}, fmt.Errorf("inputs financieros fuera de rango")
	}

	if in.Option == OptionIndependent {
		return Quote{MonthlyRetainer: decimal.Zero, AuditFee: AuditFee}, nil
	}

	var base, min, max decimal.Decimal
	switch in.Option {
	case OptionStrategicConsulting:
		base, min, max = baseStrategic, clampStrategicMin, clampStrategicMax
	case OptionFullService:
		base, min, max = baseFullService, clampFullServiceMin, clampFullServiceMax
	default:
		return Quote{}, fmt.Errorf("opción desconocida: %q", in.Option)
	}

	sf, err := scaleFactor(in.ScaleTier)
	if err != nil {
		return Quote{}, err
	}
	gf, err := growthFactor(in.GrowthTarget)
	if err != nil {
		return Quote{}, err
	}

	revenueAdj := decimal.Min(in.AnnualRevenue.Mul(revenueAdjRate), revenueAdjCap)
	marginAdj := in.GrossMargin.Div(oneHundred).Mul(marginAdjUnit)

	raw := base.Mul(sf).Mul(gf).Add(revenueAdj).Add(marginAdj)
	clamped := decimal.Max(min, decimal.Min(raw, max))

	return Quote{MonthlyRetainer: clamped, AuditFee: AuditFee}, nil
}

// RecurringOption indica si la opción implica retainer mensual recurrente.
func RecurringOption(option string) bool {
	return option == OptionStrategicConsulting || option == OptionFullService
}

// ValidOption indica si la opción pertenece al catálogo.
func ValidOption(option string) bool {
	switch option {
	case OptionIndependent, OptionStrategicConsulting, OptionFullService:
		return true
	}
	return false
}
