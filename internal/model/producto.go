package model

import "github.com/shopspring/decimal"

// Producto is a menu item. Valor is the sale price; availability is expressed
// through the shared Estado catalog rather than a dedicated flag.
type Producto struct {
	ID             uint            `gorm:"column:id_producto;primaryKey"`
	TipoProductoID uint            `gorm:"column:id_tipo_producto;not null"`
	Nombre         string          `gorm:"column:nombre_producto;size:100;not null"`
	Valor          decimal.Decimal `gorm:"column:valor;type:decimal(10,2);not null"`
	EstadoID       uint            `gorm:"column:id_estado;not null"`

	TipoProducto *TipoProducto `gorm:"foreignKey:TipoProductoID;constraint:OnDelete:CASCADE"`
	Estado       *Estado       `gorm:"foreignKey:EstadoID;constraint:OnDelete:CASCADE"`
}

func (Producto) TableName() string { return "producto" }
