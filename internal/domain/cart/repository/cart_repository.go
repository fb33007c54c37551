package repository

import (
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/cart/model"

	"gorm.io/gorm"
)

// CartRepository persists per-user carts.
type CartRepository interface {
	GetByUser(userID string) (*model.Cart, error)
	Save(cart *model.Cart) error
	Delete(userID string) error
}

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository returns the database-backed implementation.
func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) GetByUser(userID string) (*model.Cart, error) {
	var cart model.Cart
	if err := r.db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) Save(cart *model.Cart) error {
	return r.db.Save(cart).Error
}

func (r *cartRepository) Delete(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.Cart{}).Error
}
