package domain

import "time"

type CheckoutStatus string

const (
	CheckoutActive   CheckoutStatus = "active"
	CheckoutReturned CheckoutStatus = "returned"
)

type BookingStatus string

const (
	BookingPending  BookingStatus = "pending"
	BookingApproved BookingStatus = "approved"
	BookingRejected BookingStatus = "rejected"
)

// Lending is a direct lending transaction covering one or more equipment
// items with per-item quantities.
type Lending struct {
	ID         int64     `json:"id"`
	BorrowerID int64     `json:"borrower_id" validate:"required"`
	BorrowDate time.Time `json:"borrow_date"`
	Note       string    `json:"note,omitempty"`
	CreatedAt  time.Time `json:"created_at"`

	Items    []LendingItem `json:"items" gorm:"foreignKey:LendingID"`
	Borrower *User         `json:"borrower,omitempty" gorm:"foreignKey:BorrowerID"`
}

type LendingItem struct {
	ID          int64 `json:"id"`
	LendingID   int64 `json:"lending_id"`
	EquipmentID int64 `json:"equipment_id" validate:"required"`
	Quantity    int   `json:"quantity" validate:"gt=0"`
}

// Checkout records the return side of a lending. At most one checkout per
// lending in current usage; the reconciler tolerates its absence.
type Checkout struct {
	ID        int64          `json:"id"`
	LendingID int64          `json:"lending_id" validate:"required"`
	Reference string         `json:"reference"`
	Status    CheckoutStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`

	Items []CheckoutItem `json:"items" gorm:"foreignKey:CheckoutID"`
}

type CheckoutItem struct {
	ID          int64 `json:"id"`
	CheckoutID  int64 `json:"checkout_id"`
	EquipmentID int64 `json:"equipment_id" validate:"required"`
	ReturnedQty int   `json:"returned_qty" validate:"gte=0"`
}

// EquipmentBooking is a room booking that also claims equipment. An approved
// booking counts as an implicit borrow of quantity 1 per item; the booking
// data model carries no per-equipment quantity.
type EquipmentBooking struct {
	ID         int64         `json:"id"`
	BorrowerID int64         `json:"borrower_id" validate:"required"`
	RoomName   string        `json:"room_name"`
	StartTime  time.Time     `json:"start_time" validate:"required"`
	EndTime    time.Time     `json:"end_time" validate:"required"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`

	EquipmentIDs []int64 `json:"equipment_ids" gorm:"-"`
	Borrower     *User   `json:"borrower,omitempty" gorm:"foreignKey:BorrowerID"`
}

// BorrowSource tags which record kind produced a reconciled borrow. The two
// sources carry different quantity semantics: lendings store per-item
// quantities, bookings imply quantity 1.
type BorrowSource string

const (
	SourceLending BorrowSource = "lending"
	SourceBooking BorrowSource = "booking"
)

// MissingRecord is one outstanding borrow of a single equipment item.
// Derived, never stored.
type MissingRecord struct {
	RecordID     int64          `json:"record_id"`
	Source       BorrowSource   `json:"source"`
	BorrowerID   int64          `json:"borrower_id"`
	BorrowerName string         `json:"borrower_name"`
	BorrowDate   time.Time      `json:"borrow_date"`
	BorrowedQty  int            `json:"borrowed_qty"`
	ReturnedQty  int            `json:"returned_qty"`
	MissingQty   int            `json:"missing_qty"`
	Status       CheckoutStatus `json:"status"`
}
