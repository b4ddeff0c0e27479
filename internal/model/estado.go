package model

// Estado is the shared status catalog. A single vocabulary covers both entity
// availability (Activo/Inactivo) and order lifecycle stages.
type Estado struct {
	ID     uint   `gorm:"column:id_estado;primaryKey"`
	Nombre string `gorm:"column:estado;size:50;uniqueIndex;not null"`
}

func (Estado) TableName() string { return "estado" }

// Known estado names. The table may hold more; these are the ones the code
// reasons about.
const (
	EstadoActivo        = "Activo"
	EstadoPendiente     = "Pendiente"
	EstadoEnPreparacion = "En Preparación"
	EstadoListo         = "Listo"
	EstadoEntregado     = "Entregado"
	EstadoCancelado     = "Cancelado"
	EstadoInactivo      = "Inactivo"
)

// Estados lists the seed vocabulary in catalog order.
var Estados = []string{
	EstadoActivo,
	EstadoPendiente,
	EstadoEnPreparacion,
	EstadoListo,
	EstadoEntregado,
	EstadoCancelado,
	EstadoInactivo,
}
