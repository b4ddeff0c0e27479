package model

// Mesa is a physical table in the dining room, identified by a display name.
type Mesa struct {
	ID     uint   `gorm:"column:id_mesa;primaryKey"`
	Nombre string `gorm:"column:mesa;size:50;uniqueIndex;not null"`
}

func (Mesa) TableName() string { return "mesa" }
