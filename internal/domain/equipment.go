package domain

import "time"

type EquipmentCondition string

const (
	ConditionGood        EquipmentCondition = "good"
	ConditionBroken      EquipmentCondition = "broken"
	ConditionMaintenance EquipmentCondition = "maintenance"
)

type Equipment struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name" gorm:"uniqueIndex:idx_equipment_name" validate:"required"`
	Code        string             `json:"code" gorm:"uniqueIndex:idx_equipment_code" validate:"required"`
	Category    string             `json:"category"`
	Quantity    int                `json:"quantity" validate:"gte=0"`
	Unit        string             `json:"unit"`
	Condition   EquipmentCondition `json:"condition"`
	IsAvailable bool               `json:"is_available"`
	RoomID      *int64             `json:"room_id,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`

	Room *Room `json:"room,omitempty" gorm:"foreignKey:RoomID"`
}
