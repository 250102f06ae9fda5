package rooms

import (
	"context"
	"testing"

	"campusfm/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) Create(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	if room != nil {
		room.ID = 999
	}
	return args.Error(0)
}

func (m *MockRoomRepository) Update(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockDepartmentRepository struct {
	mock.Mock
}

func (m *MockDepartmentRepository) List(ctx context.Context) ([]domain.Department, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Department), args.Error(1)
}

func (m *MockDepartmentRepository) Create(ctx context.Context, dep *domain.Department) error {
	args := m.Called(ctx, dep)
	return args.Error(0)
}

func TestCreate_DuplicateCodeFromPostgres(t *testing.T) {
	mockRooms := new(MockRoomRepository)

	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "idx_rooms_code"}
	mockRooms.On("Create", mock.Anything, mock.Anything).Return(pgErr)

	service := NewService(mockRooms, new(MockDepartmentRepository))

	_, err := service.Create(context.Background(), CreateRoomRequest{Name: "Lab A-1", Code: "A1"})

	assert.ErrorIs(t, err, ErrDuplicateCode)
}

func TestCreate_ConflictClassification(t *testing.T) {
	mockRooms := new(MockRoomRepository)

	sqliteErr := assert.AnError
	mockRooms.On("Create", mock.Anything, mock.Anything).Return(sqliteErr).Once()

	service := NewService(mockRooms, new(MockDepartmentRepository))

	// Non-conflict errors pass through untouched.
	_, err := service.Create(context.Background(), CreateRoomRequest{Name: "Lab A-1", Code: "A1"})
	assert.ErrorIs(t, err, assert.AnError)

	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "idx_rooms_name"}
	mockRooms.On("Create", mock.Anything, mock.Anything).Return(pgErr).Once()

	_, err = service.Create(context.Background(), CreateRoomRequest{Name: "Lab A-1", Code: "A2"})
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestCreate_MissingNameRejected(t *testing.T) {
	mockRooms := new(MockRoomRepository)

	service := NewService(mockRooms, new(MockDepartmentRepository))

	_, err := service.Create(context.Background(), CreateRoomRequest{Code: "A1"})

	assert.ErrorIs(t, err, ErrValidation)

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "Name")

	mockRooms.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetByID_NotFound(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	mockRooms.On("GetByID", mock.Anything, int64(5)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockRooms, new(MockDepartmentRepository))

	_, err := service.GetByID(context.Background(), 5)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreate_Success(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	mockRooms.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRooms, new(MockDepartmentRepository))

	room, err := service.Create(context.Background(), CreateRoomRequest{
		Name:     "Lab A-1",
		Code:     "A1",
		Capacity: 30,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(999), room.ID)
	assert.Equal(t, "Lab A-1", room.Name)
}
