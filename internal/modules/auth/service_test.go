package auth

import (
	"context"
	"testing"

	"campusfm/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type stubJWT struct{}

func (stubJWT) GenerateToken(userID int64, role string) (string, error) {
	return "token", nil
}

func TestLogin_Success(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)

	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByEmail", mock.Anything, "staff@campus.edu").Return(&domain.User{
		ID:           1,
		Email:        "staff@campus.edu",
		PasswordHash: string(hash),
		Role:         domain.RoleStaff,
	}, nil)

	service := NewService(mockUsers, stubJWT{})

	result, err := service.Login(context.Background(), LoginRequest{
		Email:    "staff@campus.edu",
		Password: "secret",
	})

	assert.NoError(t, err)
	assert.Equal(t, "token", result.Token)
	assert.Equal(t, int64(1), result.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)

	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByEmail", mock.Anything, "staff@campus.edu").Return(&domain.User{
		PasswordHash: string(hash),
	}, nil)

	service := NewService(mockUsers, stubJWT{})

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "staff@campus.edu",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByEmail", mock.Anything, "ghost@campus.edu").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockUsers, stubJWT{})

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "ghost@campus.edu",
		Password: "secret",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
