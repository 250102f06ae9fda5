package availability

import (
	"context"
	"time"

	"campusfm/internal/domain"
)

// RoomRepository defines the room reads the resolver needs.
type RoomRepository interface {
	List(ctx context.Context) ([]domain.Room, error)
}

// ScheduleRepository defines the schedule reads the resolver needs.
type ScheduleRepository interface {
	ListForDay(ctx context.Context, date time.Time) ([]domain.ScheduleEntry, error)
	ListForWeekday(ctx context.Context, weekday int) ([]domain.ScheduleEntry, error)
}
