package repository

import (
	"context"

	"github.com/oscarmanceraa/KitchON/internal/model"

	"gorm.io/gorm"
)

// Product-type and user-type catalogs: read-only lookup tables, same shape.

type TipoProductoRepository interface {
	List(ctx context.Context) ([]model.TipoProducto, error)
	FindByID(ctx context.Context, id uint) (*model.TipoProducto, error)
}

type tipoProductoRepo struct{ db *gorm.DB }

func NewTipoProductoRepository(db *gorm.DB) TipoProductoRepository {
	return &tipoProductoRepo{db: db}
}

func (r *tipoProductoRepo) List(ctx context.Context) ([]model.TipoProducto, error) {
	var tipos []model.TipoProducto
	err := r.db.WithContext(ctx).Order("id_tipo_producto").Find(&tipos).Error
	return tipos, err
}

func (r *tipoProductoRepo) FindByID(ctx context.Context, id uint) (*model.TipoProducto, error) {
	var t model.TipoProducto
	err := r.db.WithContext(ctx).First(&t, id).Error
	return &t, err
}

type TipoUsuarioRepository interface {
	List(ctx context.Context) ([]model.TipoUsuario, error)
	FindByID(ctx context.Context, id uint) (*model.TipoUsuario, error)
}

type tipoUsuarioRepo struct{ db *gorm.DB }

func NewTipoUsuarioRepository(db *gorm.DB) TipoUsuarioRepository {
	return &tipoUsuarioRepo{db: db}
}

func (r *tipoUsuarioRepo) List(ctx context.Context) ([]model.TipoUsuario, error) {
	var tipos []model.TipoUsuario
	err := r.db.WithContext(ctx).Order("id_tipo_usuario").Find(&tipos).Error
	return tipos, err
}

func (r *tipoUsuarioRepo) FindByID(ctx context.Context, id uint) (*model.TipoUsuario, error) {
	var t model.TipoUsuario
	err := r.db.WithContext(ctx).First(&t, id).Error
	return &t, err
}
