package infra

import (
	"fmt"

	"github.com/gleydi12/web-inventario/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens a GORM connection for driver ("postgres" or "sqlite"),
// runs AutoMigrate over every model and applies the idempotent SQL patches
// AutoMigrate cannot express.
func NewDatabase(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres", "":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("DB_DRIVER %q no soportado", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if driver == "sqlite" {
		// one writer; avoids "database is locked" under the worker pool
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
	}

	if err := RunMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}

// RunMigrations creates or updates every table. Tests call it directly on an
// in-memory SQLite database.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Usuario{},
		&model.Producto{},
		&model.Proveedor{},
		&model.Compra{},
		&model.Venta{},
		&model.DetalleCompra{},
		&model.DetalleVenta{},
		&model.MovimientoStock{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	if db.Dialector.Name() == "postgres" {
		if err := applySchemaPatches(db); err != nil {
			return fmt.Errorf("schema patches: %w", err)
		}
	}
	return nil
}

// applySchemaPatches adds the CHECK constraints GORM tags cannot declare.
// Each statement is guarded so re-running on a patched DB is a no-op.
func applySchemaPatches(db *gorm.DB) error {
	patches := []struct{ descr, sql string }{
		{"detalles_compra cantidad > 0", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_detalles_compra_cantidad') THEN
    ALTER TABLE detalles_compra ADD CONSTRAINT chk_detalles_compra_cantidad CHECK (cantidad > 0);
  END IF;
END $$`},
		{"detalles_venta cantidad > 0", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_detalles_venta_cantidad') THEN
    ALTER TABLE detalles_venta ADD CONSTRAINT chk_detalles_venta_cantidad CHECK (cantidad > 0);
  END IF;
END $$`},
		{"productos precio_venta >= 0", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_productos_precio_venta') THEN
    ALTER TABLE productos ADD CONSTRAINT chk_productos_precio_venta CHECK (precio_venta >= 0);
  END IF;
END $$`},
	}
	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", p.descr, err)
		}
	}
	return nil
}
