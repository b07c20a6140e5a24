package repository

import "github.com/jhoicas/agency-ops-api/internal/domain/entity"

// PartnerRepository define el puerto de persistencia para Partner.
// GetByIDForUpdate bloquea la fila del partner (SELECT FOR UPDATE): toda
// mutación de saldo debe leer con lock y escribir dentro de la misma tx.
type PartnerRepository interface {
	Create(partner *entity.Partner) error
	GetByID(id string) (*entity.Partner, error)
	GetByIDForUpdate(id string) (*entity.Partner, error)
	List(limit, offset int) ([]*entity.Partner, error)
	Update(partner *entity.Partner) error
	UpdateBalances(partner *entity.Partner) error
}
