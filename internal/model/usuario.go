package model

// Usuario is a login-capable account: a Persona plus credentials, a role type
// and a status. PasswordHash holds a bcrypt hash — the plaintext is never
// persisted, logged or serialized.
type Usuario struct {
	ID            uint   `gorm:"column:id_usuario;primaryKey"`
	PersonaID     uint   `gorm:"column:id_persona;not null"`
	TipoUsuarioID uint   `gorm:"column:id_tipo_usuario;not null"`
	Username      string `gorm:"column:username;size:50;uniqueIndex;not null"`
	PasswordHash  string `gorm:"column:password;size:255;not null"`
	EstadoID      uint   `gorm:"column:id_estado;not null"`

	Persona     *Persona     `gorm:"foreignKey:PersonaID;constraint:OnDelete:CASCADE"`
	TipoUsuario *TipoUsuario `gorm:"foreignKey:TipoUsuarioID;constraint:OnDelete:CASCADE"`
	Estado      *Estado      `gorm:"foreignKey:EstadoID;constraint:OnDelete:CASCADE"`
}

func (Usuario) TableName() string { return "usuario" }

// Activo reports whether the account may log in or keep using issued tokens.
// Requires Estado to be preloaded; an unresolved estado counts as inactive.
func (u *Usuario) Activo() bool {
	return u.Estado != nil && u.Estado.Nombre == EstadoActivo
}
