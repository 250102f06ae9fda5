package equipment

import (
	"context"
	"testing"

	"campusfm/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockEquipmentRepository struct {
	mock.Mock
}

func (m *MockEquipmentRepository) List(ctx context.Context) ([]domain.Equipment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) Create(ctx context.Context, item *domain.Equipment) error {
	args := m.Called(ctx, item)
	if item != nil {
		item.ID = 101
	}
	return args.Error(0)
}

func (m *MockEquipmentRepository) Update(ctx context.Context, item *domain.Equipment) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockEquipmentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCreate_DefaultsConditionToGood(t *testing.T) {
	mockItems := new(MockEquipmentRepository)
	mockItems.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockItems)

	item, err := service.Create(context.Background(), CreateEquipmentRequest{
		Name:     "Oscilloscope",
		Code:     "OSC-1",
		Quantity: 4,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.ConditionGood, item.Condition)
}

func TestCreate_MissingCodeRejected(t *testing.T) {
	mockItems := new(MockEquipmentRepository)

	service := NewService(mockItems)

	_, err := service.Create(context.Background(), CreateEquipmentRequest{Name: "Oscilloscope"})

	assert.ErrorIs(t, err, ErrValidation)

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "Code")

	mockItems.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_DuplicateCode(t *testing.T) {
	mockItems := new(MockEquipmentRepository)

	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "idx_equipment_code"}
	mockItems.On("Create", mock.Anything, mock.Anything).Return(pgErr)

	service := NewService(mockItems)

	_, err := service.Create(context.Background(), CreateEquipmentRequest{
		Name: "Oscilloscope",
		Code: "OSC-1",
	})

	assert.ErrorIs(t, err, ErrDuplicateCode)
}
