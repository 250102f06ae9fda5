package rooms

import (
	"context"
	"errors"

	"campusfm/internal/domain"
	"campusfm/internal/pkg/dbconflict"
	"campusfm/internal/pkg/validator"

	"gorm.io/gorm"
)

type Service struct {
	rooms       RoomRepository
	departments DepartmentRepository
}

func NewService(rooms RoomRepository, departments DepartmentRepository) *Service {
	return &Service{
		rooms:       rooms,
		departments: departments,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return room, nil
}

func (s *Service) Create(ctx context.Context, req CreateRoomRequest) (*domain.Room, error) {
	room := &domain.Room{
		Name:         req.Name,
		Code:         req.Code,
		Capacity:     req.Capacity,
		DepartmentID: req.DepartmentID,
		IsBooked:     req.IsBooked,
	}

	if fields := validator.Validate(room); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, classifyConflict(err)
	}
	return room, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateRoomRequest) (*domain.Room, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	room := &domain.Room{
		ID:           id,
		Name:         req.Name,
		Code:         req.Code,
		Capacity:     req.Capacity,
		DepartmentID: req.DepartmentID,
		IsBooked:     req.IsBooked,
	}

	if fields := validator.Validate(room); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, classifyConflict(err)
	}
	return s.rooms.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.rooms.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *Service) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	return s.departments.List(ctx)
}

func (s *Service) CreateDepartment(ctx context.Context, req CreateDepartmentRequest) (*domain.Department, error) {
	dep := &domain.Department{
		Name: req.Name,
		Code: req.Code,
	}
	if err := s.departments.Create(ctx, dep); err != nil {
		return nil, err
	}
	return dep, nil
}

// classifyConflict turns unique violations into the specific duplicate error
// so the handler can tell the user which field clashed.
func classifyConflict(err error) error {
	constraint, ok := dbconflict.Constraint(err)
	if !ok {
		return err
	}
	switch {
	case dbconflict.Matches(constraint, "code"):
		return ErrDuplicateCode
	case dbconflict.Matches(constraint, "name"):
		return ErrDuplicateName
	default:
		return err
	}
}
