package equipment

type CreateEquipmentRequest struct {
	Name        string `json:"name" binding:"required"`
	Code        string `json:"code" binding:"required"`
	Category    string `json:"category"`
	Quantity    int    `json:"quantity" binding:"gte=0"`
	Unit        string `json:"unit"`
	Condition   string `json:"condition" binding:"omitempty,oneof=good broken maintenance"`
	IsAvailable bool   `json:"is_available"`
	RoomID      *int64 `json:"room_id"`
}

type UpdateEquipmentRequest = CreateEquipmentRequest
