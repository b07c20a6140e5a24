package repository

import "github.com/jhoicas/agency-ops-api/internal/domain/entity"

// PayoutRepository define el puerto de persistencia para Payout.
type PayoutRepository interface {
	Create(payout *entity.Payout) error
	GetByID(id string) (*entity.Payout, error)
	GetByIDForUpdate(id string) (*entity.Payout, error)
	ListByPartner(partnerID string, limit, offset int) ([]*entity.Payout, error)
	List(limit, offset int) ([]*entity.Payout, error)
	Update(payout *entity.Payout) error
}
