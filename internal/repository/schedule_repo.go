package repository

import (
	"context"
	"time"

	"campusfm/internal/domain"

	"gorm.io/gorm"
)

type ScheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// ListForDay returns every entry that claims a room on the given calendar
// date: recurring lectures matching its weekday plus one-off entries pinned
// to that exact date.
func (r *ScheduleRepository) ListForDay(ctx context.Context, date time.Time) ([]domain.ScheduleEntry, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	next := day.Add(24 * time.Hour)

	var entries []domain.ScheduleEntry
	tx := r.db.WithContext(ctx).
		Where("(kind = ? AND day_of_week = ?) OR (kind <> ? AND date >= ? AND date < ?)",
			domain.ScheduleLecture, int(day.Weekday()),
			domain.ScheduleLecture, day, next).
		Order("start_time").
		Find(&entries)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return entries, nil
}

// ListForWeekday serves search mode, where the caller picks a day of week
// rather than a date; one-off entries match on their stored weekday.
func (r *ScheduleRepository) ListForWeekday(ctx context.Context, weekday int) ([]domain.ScheduleEntry, error) {
	var entries []domain.ScheduleEntry
	tx := r.db.WithContext(ctx).
		Where("day_of_week = ?", weekday).
		Order("start_time").
		Find(&entries)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return entries, nil
}

func (r *ScheduleRepository) List(ctx context.Context) ([]domain.ScheduleEntry, error) {
	var entries []domain.ScheduleEntry
	tx := r.db.WithContext(ctx).Order("day_of_week, start_time").Find(&entries)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return entries, nil
}

func (r *ScheduleRepository) GetByID(ctx context.Context, id int64) (*domain.ScheduleEntry, error) {
	var entry domain.ScheduleEntry
	tx := r.db.WithContext(ctx).First(&entry, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &entry, nil
}

func (r *ScheduleRepository) Create(ctx context.Context, entry *domain.ScheduleEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *ScheduleRepository) Update(ctx context.Context, entry *domain.ScheduleEntry) error {
	return r.db.WithContext(ctx).
		Model(&domain.ScheduleEntry{ID: entry.ID}).
		Select("Kind", "RoomName", "DayOfWeek", "Date", "StartTime", "EndTime", "Activity").
		Updates(entry).Error
}

func (r *ScheduleRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.ScheduleEntry{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
