package repository

import (
	"context"

	"github.com/oscarmanceraa/KitchON/internal/model"

	"gorm.io/gorm"
)

type MesaRepository interface {
	List(ctx context.Context) ([]model.Mesa, error)
	FindByID(ctx context.Context, id uint) (*model.Mesa, error)
}

type mesaRepo struct{ db *gorm.DB }

func NewMesaRepository(db *gorm.DB) MesaRepository { return &mesaRepo{db: db} }

func (r *mesaRepo) List(ctx context.Context) ([]model.Mesa, error) {
	var mesas []model.Mesa
	err := r.db.WithContext(ctx).Order("id_mesa").Find(&mesas).Error
	return mesas, err
}

func (r *mesaRepo) FindByID(ctx context.Context, id uint) (*model.Mesa, error) {
	var m model.Mesa
	err := r.db.WithContext(ctx).First(&m, id).Error
	return &m, err
}
