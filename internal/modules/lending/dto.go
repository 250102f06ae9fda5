package lending

import "time"

type LendingItemRequest struct {
	EquipmentID int64 `json:"equipment_id" binding:"required"`
	Quantity    int   `json:"quantity" binding:"required,gt=0"`
}

type CreateLendingRequest struct {
	BorrowerID int64                `json:"borrower_id" binding:"required"`
	BorrowDate time.Time            `json:"borrow_date"`
	Note       string               `json:"note"`
	Items      []LendingItemRequest `json:"items" binding:"required,min=1,dive"`
}

type CheckoutItemRequest struct {
	EquipmentID int64 `json:"equipment_id" binding:"required"`
	ReturnedQty int   `json:"returned_qty" binding:"gte=0"`
}

type CreateCheckoutRequest struct {
	LendingID int64                 `json:"lending_id" binding:"required"`
	Items     []CheckoutItemRequest `json:"items" binding:"required,min=1,dive"`
}

type CreateBookingRequest struct {
	BorrowerID   int64     `json:"borrower_id" binding:"required"`
	RoomName     string    `json:"room_name"`
	StartTime    time.Time `json:"start_time" binding:"required"`
	EndTime      time.Time `json:"end_time" binding:"required"`
	EquipmentIDs []int64   `json:"equipment_ids" binding:"required,min=1"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}
