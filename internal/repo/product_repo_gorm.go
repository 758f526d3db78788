package repo

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Mazin-Fouad/ecommerce-api/internal/domain"
)

type ProductRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) List(f domain.ProductFilter) ([]domain.Product, int64, error) {
	q := r.db.Model(&domain.Product{}).Where("is_active = ?", true)
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	if f.Featured != nil {
		q = q.Where("is_featured = ?", *f.Featured)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("name LIKE ? OR description LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, storageErr(err)
	}
	var products []domain.Product
	if err := q.Order("created_at desc").Limit(f.Limit).Offset(f.Offset()).Find(&products).Error; err != nil {
		return nil, 0, storageErr(err)
	}
	return products, total, nil
}

func (r *ProductRepo) FindByID(id string) (*domain.Product, error) {
	var p domain.Product
	err := r.db.First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr(err)
	}
	return &p, nil
}

func (r *ProductRepo) Create(p *domain.Product) error {
	return storageErr(r.db.Create(p).Error)
}

func (r *ProductRepo) Update(p *domain.Product) error {
	return storageErr(r.db.Save(p).Error)
}

func (r *ProductRepo) Delete(id string) (bool, error) {
	res := r.db.Where("id = ?", id).Delete(&domain.Product{})
	if res.Error != nil {
		return false, storageErr(res.Error)
	}
	return res.RowsAffected > 0, nil
}
