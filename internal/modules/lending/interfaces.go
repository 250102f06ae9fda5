package lending

import (
	"context"

	"campusfm/internal/domain"
)

// LendingRepository defines the borrow/return record operations the service
// needs.
type LendingRepository interface {
	CreateLending(ctx context.Context, l *domain.Lending) error
	GetLendingByID(ctx context.Context, id int64) (*domain.Lending, error)
	ListByEquipment(ctx context.Context, equipmentID int64) ([]domain.Lending, error)
	LatestCheckout(ctx context.Context, lendingID int64) (*domain.Checkout, error)
	CreateCheckout(ctx context.Context, co *domain.Checkout) error
	CreateBooking(ctx context.Context, b *domain.EquipmentBooking) error
	GetBookingByID(ctx context.Context, id int64) (*domain.EquipmentBooking, error)
	UpdateBookingStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	ListApprovedByEquipment(ctx context.Context, equipmentID int64) ([]domain.EquipmentBooking, error)
}

// UserDirectory resolves borrower display names for reconciled records.
type UserDirectory interface {
	NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error)
}
