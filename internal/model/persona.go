package model

// Persona holds the identity data of a staff member, separate from the
// account that logs in. Second name and second surname are optional.
type Persona struct {
	ID              uint    `gorm:"column:id_persona;primaryKey"`
	PrimerNombre    string  `gorm:"column:primer_nombre;size:50;not null"`
	SegundoNombre   *string `gorm:"column:segundo_nombre;size:50"`
	PrimerApellido  string  `gorm:"column:primer_apellido;size:50;not null"`
	SegundoApellido *string `gorm:"column:segundo_apellido;size:50"`
}

func (Persona) TableName() string { return "persona" }
