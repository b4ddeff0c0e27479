package model

// TipoUsuario is the account role: it drives authorization decisions in the
// HTTP layer.
type TipoUsuario struct {
	ID     uint   `gorm:"column:id_tipo_usuario;primaryKey"`
	Nombre string `gorm:"column:tipo_usuario;size:50;uniqueIndex;not null"`
}

func (TipoUsuario) TableName() string { return "tipo_usuario" }

const (
	TipoUsuarioAdministrador = "Administrador"
	TipoUsuarioMesero        = "Mesero"
	TipoUsuarioCocina        = "Cocina"
)
