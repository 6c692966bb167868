package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/jaiswalarts/artshop/internal/models"
)

// Users and admins live in separate tables with the same access pattern.

func (r *GormRepo) CreateUser(ctx context.Context, u *models.User) (*models.User, error) {
	if err := r.unitOfWork(ctx, func(tx *gorm.DB) error { return tx.Create(u).Error }); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *GormRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *GormRepo) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *GormRepo) CreateAdmin(ctx context.Context, a *models.Admin) (*models.Admin, error) {
	if err := r.unitOfWork(ctx, func(tx *gorm.DB) error { return tx.Create(a).Error }); err != nil {
		return nil, err
	}
	return a, nil
}

func (r *GormRepo) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, translate(err)
	}
	return &admin, nil
}

func (r *GormRepo) GetAdmin(ctx context.Context, id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := r.DB.WithContext(ctx).First(&admin, id).Error; err != nil {
		return nil, translate(err)
	}
	return &admin, nil
}
