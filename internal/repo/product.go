package repo

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/jaiswalarts/artshop/internal/models"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *GormRepo) CreateProduct(ctx context.Context, prod *models.Product) (*models.Product, error) {
	err := r.unitOfWork(ctx, func(tx *gorm.DB) error {
		return tx.Create(prod).Error
	})
	if err != nil {
		return nil, err
	}
	return prod, nil
}

func (r *GormRepo) GetProducts(ctx context.Context) ([]models.Product, error) {
	items := make([]models.Product, 0)
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (r *GormRepo) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).Where("slug = ?", slug).First(&product).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

// SearchProducts matches name case-insensitively as a substring and category
// exactly. An empty filter is not applied.
func (r *GormRepo) SearchProducts(ctx context.Context, query, category string) ([]models.Product, error) {
	q := r.DB.WithContext(ctx).Model(&models.Product{})
	if query != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"
		q = q.Where(`LOWER(name) LIKE ? ESCAPE '\'`, pattern)
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}

	items := make([]models.Product, 0)
	if err := q.Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) DeleteProduct(ctx context.Context, id uint) error {
	return r.unitOfWork(ctx, func(tx *gorm.DB) error {
		var prod models.Product
		if err := tx.First(&prod, id).Error; err != nil {
			return err
		}
		res := tx.Delete(&prod)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
