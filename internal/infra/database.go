package infra

import (
	"fmt"

	"github.com/oscarmanceraa/KitchON/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs
// AutoMigrate for the full schema. Foreign keys carry ON DELETE CASCADE:
// removing an orden drops its line items, and removing a producto, usuario or
// mesa drops the dependent orders and items with it.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return db, nil
}

// RunMigrations creates or updates all tables. Leaf catalogs first so the
// FK constraints on dependent tables can be created in one pass.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Estado{},
		&model.TipoProducto{},
		&model.TipoUsuario{},
		&model.Persona{},
		&model.Mesa{},
		&model.Producto{},
		&model.Usuario{},
		&model.Orden{},
		&model.ProductoOrden{},
	)
}
