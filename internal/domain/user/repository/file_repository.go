package repository

import (
	"time"

	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/user/model"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/store/filestore"

	"gorm.io/gorm"
)

// fileUserRepository answers the same contract from the flat-file store.
// Missing records surface as gorm.ErrRecordNotFound so services stay
// backend-agnostic.
type fileUserRepository struct {
	store *filestore.Store
}

// NewFileUserRepository returns the flat-file implementation.
func NewFileUserRepository(store *filestore.Store) UserRepository {
	return &fileUserRepository{store: store}
}

func (r *fileUserRepository) load() ([]model.User, error) {
	var users []model.User
	if err := r.store.Read(filestore.CollectionUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *fileUserRepository) Create(user *model.User) error {
	users, err := r.load()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	user.Touch(time.Now())
	users = append(users, *user)
	return r.store.Write(filestore.CollectionUsers, users)
}

func (r *fileUserRepository) GetByID(id string) (*model.User, error) {
	users, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fileUserRepository) GetByEmail(email string) (*model.User, error) {
	users, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fileUserRepository) GetList(offset, limit int) ([]model.User, int64, error) {
	users, err := r.load()
	if err != nil {
		return nil, 0, err
	}

	total := int64(len(users))
	if offset >= len(users) {
		return []model.User{}, total, nil
	}
	end := offset + limit
	if end > len(users) {
		end = len(users)
	}
	return users[offset:end], total, nil
}

func (r *fileUserRepository) Update(user *model.User) error {
	users, err := r.load()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == user.ID {
			user.UpdatedAt = time.Now()
			users[i] = *user
			return r.store.Write(filestore.CollectionUsers, users)
		}
	}
	return gorm.ErrRecordNotFound
}
