package repository

import "github.com/jhoicas/agency-ops-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (cuentas del portal).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
