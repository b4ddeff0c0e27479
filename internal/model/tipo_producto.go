package model

// TipoProducto classifies menu items (Entrada, Plato Principal, Bebida...).
type TipoProducto struct {
	ID     uint   `gorm:"column:id_tipo_producto;primaryKey"`
	Nombre string `gorm:"column:tipo_producto;size:50;uniqueIndex;not null"`
}

func (TipoProducto) TableName() string { return "tipo_producto" }
