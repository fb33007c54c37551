package service

import (
	"testing"

	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/user/model"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MockUserRepository is a mock of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*model.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetList(offset, limit int) ([]model.User, int64, error) {
	args := m.Called(offset, limit)
	return args.Get(0).([]model.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) Update(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func TestMain(m *testing.M) {
	config.GlobalConfig.JWT = config.JWTConfig{
		Secret: "test-secret-test-secret-test-secret!",
		Expire: 24,
	}
	m.Run()
}

func TestRegister(t *testing.T) {
	t.Run("New account success", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo)

		mockRepo.On("GetByEmail", "ayesha@example.com").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", mock.AnythingOfType("*model.User")).Return(nil)

		user, err := service.Register("Ayesha", "ayesha@example.com", "s3cret-pw")

		require.NoError(t, err)
		assert.Equal(t, model.RoleCustomer, user.Role)
		assert.NotEqual(t, "s3cret-pw", user.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("s3cret-pw")))
		mockRepo.AssertExpectations(t)
	})

	t.Run("Duplicate email rejected", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo)

		mockRepo.On("GetByEmail", "taken@example.com").Return(&model.User{Email: "taken@example.com"}, nil)

		_, err := service.Register("Someone", "taken@example.com", "pw")

		assert.ErrorIs(t, err, ErrEmailTaken)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret-pw"), bcrypt.MinCost)
	account := &model.User{Email: "ayesha@example.com", Password: string(hash), Role: model.RoleCustomer}
	account.ID = "user-1"

	t.Run("Valid credentials issue a token", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo)

		mockRepo.On("GetByEmail", "ayesha@example.com").Return(account, nil)

		token, user, err := service.Login("ayesha@example.com", "s3cret-pw")

		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "user-1", user.ID)
	})

	t.Run("Wrong password rejected", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo)

		mockRepo.On("GetByEmail", "ayesha@example.com").Return(account, nil)

		_, _, err := service.Login("ayesha@example.com", "wrong")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Unknown email gets the same error as a wrong password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo)

		mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

		_, _, err := service.Login("nobody@example.com", "pw")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestGetUsers(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo)

	t.Run("Defaults applied to page and limit", func(t *testing.T) {
		mockRepo.On("GetList", 0, 10).Return([]model.User{{Name: "A"}, {Name: "B"}}, int64(2), nil)

		users, total, err := service.GetUsers(0, 0)

		require.NoError(t, err)
		assert.Len(t, users, 2)
		assert.Equal(t, int64(2), total)
		mockRepo.AssertExpectations(t)
	})
}
