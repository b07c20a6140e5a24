package repository

import "github.com/jhoicas/agency-ops-api/internal/domain/entity"

// CommissionRepository define el puerto de persistencia para Commission.
// Create retorna domain.ErrDuplicateCommission si ya existe una comisión
// equivalente (índice único en la DB como respaldo del chequeo previo).
type CommissionRepository interface {
	Create(commission *entity.Commission) error
	GetByID(id string) (*entity.Commission, error)
	GetByIDForUpdate(id string) (*entity.Commission, error)
	ExistsForLead(partnerID, leadID, ctype string) (bool, error)
	ExistsForClientPeriod(partnerID, clientID, period, ctype string) (bool, error)
	ListByPartner(partnerID string, limit, offset int) ([]*entity.Commission, error)
	List(limit, offset int) ([]*entity.Commission, error)
	Update(commission *entity.Commission) error
}
