package domain

import "time"

type RoomStatus string

const (
	RoomInUse     RoomStatus = "in_use"
	RoomScheduled RoomStatus = "scheduled"
	RoomAvailable RoomStatus = "available"
)

type Room struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name" gorm:"uniqueIndex:idx_rooms_name" validate:"required"`
	Code         string    `json:"code" gorm:"uniqueIndex:idx_rooms_code" validate:"required"`
	Capacity     int       `json:"capacity" validate:"gte=0"`
	DepartmentID *int64    `json:"department_id,omitempty"`
	IsBooked     bool      `json:"is_booked"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Department *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID"`
}
