package rooms

import (
	"context"

	"campusfm/internal/domain"
)

type RoomRepository interface {
	List(ctx context.Context) ([]domain.Room, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	Create(ctx context.Context, room *domain.Room) error
	Update(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, id int64) error
}

type DepartmentRepository interface {
	List(ctx context.Context) ([]domain.Department, error)
	Create(ctx context.Context, dep *domain.Department) error
}
