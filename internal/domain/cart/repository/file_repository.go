package repository

import (
	"time"

	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/cart/model"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/store/filestore"

	"gorm.io/gorm"
)

type fileCartRepository struct {
	store *filestore.Store
}

// NewFileCartRepository returns the flat-file implementation.
func NewFileCartRepository(store *filestore.Store) CartRepository {
	return &fileCartRepository{store: store}
}

func (r *fileCartRepository) load() ([]model.Cart, error) {
	var carts []model.Cart
	if err := r.store.Read(filestore.CollectionCarts, &carts); err != nil {
		return nil, err
	}
	return carts, nil
}

func (r *fileCartRepository) GetByUser(userID string) (*model.Cart, error) {
	carts, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range carts {
		if carts[i].UserID == userID {
			return &carts[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fileCartRepository) Save(cart *model.Cart) error {
	carts, err := r.load()
	if err != nil {
		return err
	}
	now := time.Now()
	for i := range carts {
		if carts[i].UserID == cart.UserID {
			cart.ID = carts[i].ID
			cart.CreatedAt = carts[i].CreatedAt
			cart.UpdatedAt = now
			carts[i] = *cart
			return r.store.Write(filestore.CollectionCarts, carts)
		}
	}
	cart.Touch(now)
	carts = append(carts, *cart)
	return r.store.Write(filestore.CollectionCarts, carts)
}

func (r *fileCartRepository) Delete(userID string) error {
	carts, err := r.load()
	if err != nil {
		return err
	}
	kept := carts[:0]
	for i := range carts {
		if carts[i].UserID != userID {
			kept = append(kept, carts[i])
		}
	}
	return r.store.Write(filestore.CollectionCarts, kept)
}
