package entity

import "time"

// Roles de usuario del portal.
const (
	RoleAdmin   = "admin"
	RolePartner = "partner"
	RoleClient  = "client"
)

// User representa una cuenta del portal. Si Role = partner, PartnerID enlaza
// al registro Partner (agregado del ledger).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	PartnerID    string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
