package schedule

import (
	"context"
	"errors"
	"time"

	"campusfm/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	entries ScheduleRepository
}

func NewService(entries ScheduleRepository) *Service {
	return &Service{entries: entries}
}

func (s *Service) List(ctx context.Context) ([]domain.ScheduleEntry, error) {
	return s.entries.List(ctx)
}

func (s *Service) ListForDay(ctx context.Context, date time.Time) ([]domain.ScheduleEntry, error) {
	return s.entries.ListForDay(ctx, date)
}

// Create accepts entries with well-formed or malformed time strings alike:
// schedule rows arrive from externally maintained timetables, and a bad time
// must not make the row unrepresentable. The availability resolver is the
// layer that skips rows it cannot parse.
func (s *Service) Create(ctx context.Context, req EntryRequest) (*domain.ScheduleEntry, error) {
	entry, err := fromRequest(req)
	if err != nil {
		return nil, err
	}

	if err := s.entries.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *Service) Update(ctx context.Context, id int64, req EntryRequest) (*domain.ScheduleEntry, error) {
	if _, err := s.entries.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	entry, err := fromRequest(req)
	if err != nil {
		return nil, err
	}
	entry.ID = id

	if err := s.entries.Update(ctx, entry); err != nil {
		return nil, err
	}
	return s.entries.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.entries.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func fromRequest(req EntryRequest) (*domain.ScheduleEntry, error) {
	kind := domain.ScheduleKind(req.Kind)

	entry := &domain.ScheduleEntry{
		Kind:      kind,
		RoomName:  req.RoomName,
		DayOfWeek: req.DayOfWeek,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Activity:  req.Activity,
	}

	// One-off kinds need a date; the stored weekday is derived from it so
	// search mode can match them without date arithmetic.
	if kind != domain.ScheduleLecture {
		if req.Date == nil {
			return nil, ErrValidation
		}
		entry.DayOfWeek = int(req.Date.Weekday())
	}

	return entry, nil
}
