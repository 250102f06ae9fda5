package domain

import "time"

type ScheduleKind string

const (
	ScheduleLecture ScheduleKind = "lecture"
	ScheduleExam    ScheduleKind = "exam"
	ScheduleDefense ScheduleKind = "defense"
	ScheduleBooking ScheduleKind = "booking"
)

// ScheduleEntry is one time-boxed claim on a room. RoomName is free text
// entered independently of the room inventory; matching happens through the
// normalized join key, never by ID. Lectures recur weekly on DayOfWeek, the
// other kinds are one-offs pinned to Date.
type ScheduleEntry struct {
	ID        int64        `json:"id"`
	Kind      ScheduleKind `json:"kind" validate:"required"`
	RoomName  string       `json:"room_name" validate:"required"`
	DayOfWeek int          `json:"day_of_week" validate:"gte=0,lte=6"`
	Date      *time.Time   `json:"date,omitempty"`
	StartTime string       `json:"start_time" validate:"required"`
	EndTime   string       `json:"end_time" validate:"required"`
	Activity  string       `json:"activity"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
