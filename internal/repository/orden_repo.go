package repository

import (
	"context"

	"github.com/oscarmanceraa/KitchON/internal/model"

	"gorm.io/gorm"
)

type OrdenRepository interface {
	// Create inserts the header and every line item appended to
	// o.Productos. Callers open the transaction and pass it in; all rows
	// commit or roll back together.
	Create(ctx context.Context, tx *gorm.DB, o *model.Orden) error
	FindByID(ctx context.Context, id uint) (*model.Orden, error)
	List(ctx context.Context) ([]model.Orden, error)
	UpdateEstado(ctx context.Context, id, estadoID uint) error
	Delete(ctx context.Context, id uint) error
	DB() *gorm.DB // exposes the DB for transaction creation in the service layer
}

type ordenRepo struct{ db *gorm.DB }

func NewOrdenRepository(db *gorm.DB) OrdenRepository { return &ordenRepo{db: db} }

func (r *ordenRepo) DB() *gorm.DB { return r.db }

func (r *ordenRepo) Create(ctx context.Context, tx *gorm.DB, o *model.Orden) error {
	return tx.WithContext(ctx).
		Omit("Usuario", "Mesa", "Estado", "Productos.Producto").
		Create(o).Error
}

// FindByID resolves the full nested graph in one call chain: usuario with
// persona and tipo, mesa, estado, and every line item with its product and
// product type. Either everything resolves or the lookup fails.
func (r *ordenRepo) FindByID(ctx context.Context, id uint) (*model.Orden, error) {
	var o model.Orden
	err := r.db.WithContext(ctx).
		Preload("Usuario.Persona").
		Preload("Usuario.TipoUsuario").
		Preload("Usuario.Estado").
		Preload("Mesa").
		Preload("Estado").
		Preload("Productos.Producto.TipoProducto").
		First(&o, id).Error
	return &o, err
}

func (r *ordenRepo) List(ctx context.Context) ([]model.Orden, error) {
	var ordenes []model.Orden
	err := r.db.WithContext(ctx).
		Preload("Usuario.Persona").
		Preload("Usuario.TipoUsuario").
		Preload("Usuario.Estado").
		Preload("Mesa").
		Preload("Estado").
		Preload("Productos.Producto.TipoProducto").
		Order("fecha_creacion DESC").
		Find(&ordenes).Error
	return ordenes, err
}

// UpdateEstado touches only the estado column — line items and the creation
// timestamp are left untouched.
func (r *ordenRepo) UpdateEstado(ctx context.Context, id, estadoID uint) error {
	res := r.db.WithContext(ctx).
		Model(&model.Orden{}).
		Where("id_orden = ?", id).
		Update("id_estado", estadoID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the header; line items go with it via ON DELETE CASCADE.
func (r *ordenRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Orden{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
