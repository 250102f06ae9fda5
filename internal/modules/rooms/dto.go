package rooms

type CreateRoomRequest struct {
	Name         string `json:"name" binding:"required"`
	Code         string `json:"code" binding:"required"`
	Capacity     int    `json:"capacity" binding:"gte=0"`
	DepartmentID *int64 `json:"department_id"`
	IsBooked     bool   `json:"is_booked"`
}

type UpdateRoomRequest struct {
	Name         string `json:"name" binding:"required"`
	Code         string `json:"code" binding:"required"`
	Capacity     int    `json:"capacity" binding:"gte=0"`
	DepartmentID *int64 `json:"department_id"`
	IsBooked     bool   `json:"is_booked"`
}

type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required"`
	Code string `json:"code"`
}
