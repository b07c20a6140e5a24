package repository

import "github.com/jhoicas/agency-ops-api/internal/domain/entity"

// LeadRepository define el puerto de persistencia para Lead.
type LeadRepository interface {
	Create(lead *entity.Lead) error
	GetByID(id string) (*entity.Lead, error)
	GetByIDForUpdate(id string) (*entity.Lead, error)
	ListByPartner(partnerID string, limit, offset int) ([]*entity.Lead, error)
	List(limit, offset int) ([]*entity.Lead, error)
	Update(lead *entity.Lead) error
}
