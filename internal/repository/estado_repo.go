package repository

import (
	"context"

	"github.com/oscarmanceraa/KitchON/internal/model"

	"gorm.io/gorm"
)

// EstadoRepository reads the shared status catalog. Rows are seeded
// administratively; the API never mutates them.
type EstadoRepository interface {
	List(ctx context.Context) ([]model.Estado, error)
	FindByID(ctx context.Context, id uint) (*model.Estado, error)
	FindByNombre(ctx context.Context, nombre string) (*model.Estado, error)
}

type estadoRepo struct{ db *gorm.DB }

func NewEstadoRepository(db *gorm.DB) EstadoRepository { return &estadoRepo{db: db} }

func (r *estadoRepo) List(ctx context.Context) ([]model.Estado, error) {
	var estados []model.Estado
	err := r.db.WithContext(ctx).Order("id_estado").Find(&estados).Error
	return estados, err
}

func (r *estadoRepo) FindByID(ctx context.Context, id uint) (*model.Estado, error) {
	var e model.Estado
	err := r.db.WithContext(ctx).First(&e, id).Error
	return &e, err
}

func (r *estadoRepo) FindByNombre(ctx context.Context, nombre string) (*model.Estado, error) {
	var e model.Estado
	err := r.db.WithContext(ctx).Where("estado = ?", nombre).First(&e).Error
	return &e, err
}
