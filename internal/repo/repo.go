package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	pkgdb "github.com/jaiswalarts/artshop/pkg/db"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)

type GormRepo struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *GormRepo {
	return &GormRepo{DB: db}
}

// unitOfWork runs fn in one transaction. Any error from fn rolls back.
func (r *GormRepo) unitOfWork(ctx context.Context, fn func(tx *gorm.DB) error) error {
	err := r.DB.WithContext(ctx).Transaction(fn)
	return translate(err)
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case pkgdb.IsUniqueViolation(err):
		return ErrConflict
	default:
		return err
	}
}
