package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePartnerRequest alta de un partner referenciador (admin).
type CreatePartnerRequest struct {
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	CommissionRate decimal.Decimal `json:"commission_rate"` // porcentaje 1–50
}

// PartnerResponse representación pública de un partner.
type PartnerResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
	CreatedAt      time.Time       `json:"created_at"`
}
