package schedule

import "time"

type EntryRequest struct {
	Kind      string     `json:"kind" binding:"required,oneof=lecture exam defense booking"`
	RoomName  string     `json:"room_name" binding:"required"`
	DayOfWeek int        `json:"day_of_week" binding:"min=0,max=6"`
	Date      *time.Time `json:"date"`
	StartTime string     `json:"start_time" binding:"required"`
	EndTime   string     `json:"end_time" binding:"required"`
	Activity  string     `json:"activity"`
}
