package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Sentinel errors. Handlers map them to HTTP status codes with errors.Is.
var (
	ErrNoEncontrado       = errors.New("no encontrado")
	ErrEnUso              = errors.New("registro en uso")
	ErrReferenciaInvalida = errors.New("referencia inválida")
	ErrCredenciales       = errors.New("credenciales invalidas")
)

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// notFound turns gorm.ErrRecordNotFound into ErrNoEncontrado naming the entity.
func notFound(err error, entidad string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %d: %w", entidad, id, ErrNoEncontrado)
	}
	return err
}

// mustNotBeReferenced fails with ErrEnUso when n rows still point at the record.
func mustNotBeReferenced(n int64, err error, entidad, por string) error {
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%s tiene %d %s asociados: %w", entidad, n, por, ErrEnUso)
	}
	return nil
}

// missingRef turns gorm.ErrRecordNotFound on a referenced row into
// ErrReferenciaInvalida.
func missingRef(err error, entidad string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %d no existe: %w", entidad, id, ErrReferenciaInvalida)
	}
	return err
}
