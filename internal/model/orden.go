package model

import "time"

// Orden is one customer service event: who took it, which table, its current
// estado and when it was created. FechaCreacion is set by the server on insert
// and never updated afterwards — only EstadoID and the child set mutate.
type Orden struct {
	ID            uint      `gorm:"column:id_orden;primaryKey"`
	UsuarioID     uint      `gorm:"column:id_usuario;not null"`
	MesaID        uint      `gorm:"column:id_mesa;not null"`
	EstadoID      uint      `gorm:"column:id_estado;not null"`
	FechaCreacion time.Time `gorm:"column:fecha_creacion;autoCreateTime;<-:create"`

	Usuario   *Usuario `gorm:"foreignKey:UsuarioID;constraint:OnDelete:CASCADE"`
	Mesa      *Mesa    `gorm:"foreignKey:MesaID;constraint:OnDelete:CASCADE"`
	Estado    *Estado  `gorm:"foreignKey:EstadoID;constraint:OnDelete:CASCADE"`
	Productos []ProductoOrden `gorm:"foreignKey:OrdenID;constraint:OnDelete:CASCADE"`
}

func (Orden) TableName() string { return "orden" }

// ProductoOrden is one line item: a product, its quantity and free-text notes,
// belonging to exactly one Orden. The composite key (producto, orden) means a
// product appears at most once per order.
type ProductoOrden struct {
	ProductoID uint    `gorm:"column:id_producto;primaryKey;autoIncrement:false"`
	OrdenID    uint    `gorm:"column:id_orden;primaryKey;autoIncrement:false"`
	Cantidad   int     `gorm:"column:cantidad;not null;default:1"`
	Notas      *string `gorm:"column:notas;type:text"`

	Producto *Producto `gorm:"foreignKey:ProductoID;constraint:OnDelete:CASCADE"`
}

func (ProductoOrden) TableName() string { return "producto_orden" }
