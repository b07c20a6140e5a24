package repository

import "github.com/jhoicas/agency-ops-api/internal/domain/entity"

// PackageRepository define el puerto de persistencia para Package (cotizaciones).
type PackageRepository interface {
	Create(pkg *entity.Package) error
	GetByID(id string) (*entity.Package, error)
	ListByClient(clientID string, limit, offset int) ([]*entity.Package, error)
	Update(pkg *entity.Package) error
}
