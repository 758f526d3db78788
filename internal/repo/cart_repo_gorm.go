package repo

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Mazin-Fouad/ecommerce-api/internal/domain"
)

type CartRepo struct{ db *gorm.DB }

func NewCartRepo(db *gorm.DB) *CartRepo { return &CartRepo{db: db} }

func (r *CartRepo) ListByUser(userID string) ([]domain.CartItem, error) {
	var items []domain.CartItem
	err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&items).Error
	if err != nil {
		return nil, storageErr(err)
	}
	return items, nil
}

func (r *CartRepo) FindByID(id, userID string) (*domain.CartItem, error) {
	var item domain.CartItem
	err := r.db.First(&item, "id = ? AND user_id = ?", id, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr(err)
	}
	return &item, nil
}

func (r *CartRepo) FindByUserAndProduct(userID, productID string) (*domain.CartItem, error) {
	var item domain.CartItem
	err := r.db.First(&item, "user_id = ? AND product_id = ?", userID, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr(err)
	}
	return &item, nil
}

// Create relies on the (user_id, product_id) unique index; a duplicate-key
// result tells the caller a concurrent add won the race and the row should
// be incremented instead.
func (r *CartRepo) Create(i *domain.CartItem) error {
	return storageErr(r.db.Create(i).Error)
}

func (r *CartRepo) Update(i *domain.CartItem) error {
	return storageErr(r.db.Save(i).Error)
}

func (r *CartRepo) Delete(id, userID string) (bool, error) {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&domain.CartItem{})
	if res.Error != nil {
		return false, storageErr(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *CartRepo) ClearByUser(userID string) error {
	return storageErr(r.db.Where("user_id = ?", userID).Delete(&domain.CartItem{}).Error)
}
