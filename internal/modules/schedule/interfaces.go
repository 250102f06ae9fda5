package schedule

import (
	"context"
	"time"

	"campusfm/internal/domain"
)

type ScheduleRepository interface {
	List(ctx context.Context) ([]domain.ScheduleEntry, error)
	ListForDay(ctx context.Context, date time.Time) ([]domain.ScheduleEntry, error)
	GetByID(ctx context.Context, id int64) (*domain.ScheduleEntry, error)
	Create(ctx context.Context, entry *domain.ScheduleEntry) error
	Update(ctx context.Context, entry *domain.ScheduleEntry) error
	Delete(ctx context.Context, id int64) error
}
