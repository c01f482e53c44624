package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repo is the data access contract shared by every entity table. Services
// depend on these interfaces, not on the GORM implementation, so tests can
// swap in in-memory stubs.
type Repo[T any] interface {
	Create(ctx context.Context, rec *T) error
	FindByID(ctx context.Context, id uint) (*T, error)
	// List returns every row in id order.
	List(ctx context.Context) ([]T, error)
	// ListBy returns the rows whose column equals value, in id order.
	ListBy(ctx context.Context, column string, value any) ([]T, error)
	Update(ctx context.Context, rec *T) error
	// Delete returns gorm.ErrRecordNotFound when no row matched.
	Delete(ctx context.Context, id uint) error
	CountBy(ctx context.Context, column string, value any) (int64, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type gormRepo[T any] struct{ db *gorm.DB }

func newGormRepo[T any](db *gorm.DB) *gormRepo[T] { return &gormRepo[T]{db: db} }

func (r *gormRepo[T]) Create(ctx context.Context, rec *T) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *gormRepo[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var rec T
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *gormRepo[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error
	return out, err
}

func (r *gormRepo[T]) ListBy(ctx context.Context, column string, value any) ([]T, error) {
	var out []T
	err := r.db.WithContext(ctx).Where(column+" = ?", value).Order("id ASC").Find(&out).Error
	return out, err
}

func (r *gormRepo[T]) Update(ctx context.Context, rec *T) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *gormRepo[T]) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *gormRepo[T]) CountBy(ctx context.Context, column string, value any) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(new(T)).Where(column+" = ?", value).Count(&n).Error
	return n, err
}

func (r *gormRepo[T]) DB() *gorm.DB { return r.db }
