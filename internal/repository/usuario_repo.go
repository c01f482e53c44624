package repository

import (
	"context"

	"github.com/gleydi12/web-inventario/internal/model"

	"gorm.io/gorm"
)

type UsuarioRepository interface {
	Repo[model.Usuario]
	// FindByUsername only returns active users.
	FindByUsername(ctx context.Context, username string) (*model.Usuario, error)
}

type usuarioRepo struct{ *gormRepo[model.Usuario] }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository {
	return &usuarioRepo{newGormRepo[model.Usuario](db)}
}

func (r *usuarioRepo) FindByUsername(ctx context.Context, username string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).
		Where("username = ? AND activo = ?", username, true).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}
