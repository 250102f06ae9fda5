package equipment

import (
	"context"

	"campusfm/internal/domain"
)

type EquipmentRepository interface {
	List(ctx context.Context) ([]domain.Equipment, error)
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	Create(ctx context.Context, item *domain.Equipment) error
	Update(ctx context.Context, item *domain.Equipment) error
	Delete(ctx context.Context, id int64) error
}
