package equipment

import (
	"context"
	"errors"

	"campusfm/internal/domain"
	"campusfm/internal/pkg/dbconflict"
	"campusfm/internal/pkg/validator"

	"gorm.io/gorm"
)

type Service struct {
	items EquipmentRepository
}

func NewService(items EquipmentRepository) *Service {
	return &Service{items: items}
}

func (s *Service) List(ctx context.Context) ([]domain.Equipment, error) {
	return s.items.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *Service) Create(ctx context.Context, req CreateEquipmentRequest) (*domain.Equipment, error) {
	item := fromRequest(req)
	if fields := validator.Validate(item); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	if err := s.items.Create(ctx, item); err != nil {
		return nil, classifyConflict(err)
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateEquipmentRequest) (*domain.Equipment, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	item := fromRequest(req)
	item.ID = id

	if fields := validator.Validate(item); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	if err := s.items.Update(ctx, item); err != nil {
		return nil, classifyConflict(err)
	}
	return s.items.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.items.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func fromRequest(req CreateEquipmentRequest) *domain.Equipment {
	condition := domain.EquipmentCondition(req.Condition)
	if condition == "" {
		condition = domain.ConditionGood
	}

	return &domain.Equipment{
		Name:        req.Name,
		Code:        req.Code,
		Category:    req.Category,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		Condition:   condition,
		IsAvailable: req.IsAvailable,
		RoomID:      req.RoomID,
	}
}

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
