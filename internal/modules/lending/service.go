package lending

import (
	"context"
	"log"
	"time"

	"campusfm/internal/domain"

	"github.com/google/uuid"
)

type Service struct {
	records LendingRepository
	users   UserDirectory
}

func NewService(records LendingRepository, users UserDirectory) *Service {
	return &Service{
		records: records,
		users:   users,
	}
}

// Missing reconciles outstanding borrows of one equipment item across both
// record sources: direct lendings with per-item quantities and approved
// bookings, which carry no quantity column and imply 1 per record. Each
// borrow is joined against its latest checkout's returned quantity; a
// lending with no checkout counts as fully outstanding. Only records with
// missing > 0 are reported; fully returned borrows are dropped.
func (s *Service) Missing(ctx context.Context, equipmentID int64) ([]domain.MissingRecord, error) {
	lendings, err := s.records.ListByEquipment(ctx, equipmentID)
	if err != nil {
		return nil, err
	}

	bookings, err := s.records.ListApprovedByEquipment(ctx, equipmentID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.MissingRecord, 0, len(lendings)+len(bookings))

	for _, l := range lendings {
		borrowed := 0
		for _, it := range l.Items {
			if it.EquipmentID == equipmentID {
				borrowed = it.Quantity
				break
			}
		}
		if borrowed == 0 {
			continue
		}

		co, err := s.records.LatestCheckout(ctx, l.ID)
		if err != nil {
			return nil, err
		}

		returned := 0
		if co != nil {
			for _, it := range co.Items {
				if it.EquipmentID == equipmentID {
					returned = it.ReturnedQty
					break
				}
			}
		}

		missing := borrowed - returned
		if missing <= 0 {
			continue
		}

		out = append(out, domain.MissingRecord{
			RecordID:    l.ID,
			Source:      domain.SourceLending,
			BorrowerID:  l.BorrowerID,
			BorrowDate:  l.BorrowDate,
			BorrowedQty: borrowed,
			ReturnedQty: returned,
			MissingQty:  missing,
			Status:      domain.CheckoutActive,
		})
	}

	for _, b := range bookings {
		// Bookings have no return mechanism; an approved booking stays
		// outstanding until the booking record itself changes.
		out = append(out, domain.MissingRecord{
			RecordID:    b.ID,
			Source:      domain.SourceBooking,
			BorrowerID:  b.BorrowerID,
			BorrowDate:  b.StartTime,
			BorrowedQty: 1,
			ReturnedQty: 0,
			MissingQty:  1,
			Status:      domain.CheckoutActive,
		})
	}

	s.fillBorrowerNames(ctx, out)
	return out, nil
}

// fillBorrowerNames is a display-only secondary join: a failed lookup
// degrades to "unknown" instead of aborting the reconciliation.
func (s *Service) fillBorrowerNames(ctx context.Context, records []domain.MissingRecord) {
	ids := make([]int64, 0, len(records))
	seen := make(map[int64]bool, len(records))
	for _, r := range records {
		if !seen[r.BorrowerID] {
			seen[r.BorrowerID] = true
			ids = append(ids, r.BorrowerID)
		}
	}

	names, err := s.users.NamesByIDs(ctx, ids)
	if err != nil {
		log.Printf("borrower_lookup_failed error=%q", err)
		names = nil
	}

	for i := range records {
		name, ok := names[records[i].BorrowerID]
		if !ok || name == "" {
			name = "unknown"
		}
		records[i].BorrowerName = name
	}
}

func (s *Service) CreateLending(ctx context.Context, req CreateLendingRequest) (*domain.Lending, error) {
	if len(req.Items) == 0 {
		return nil, ErrValidation
	}
	for _, it := range req.Items {
		if it.Quantity <= 0 {
			return nil, ErrValidation
		}
	}

	borrowDate := req.BorrowDate
	if borrowDate.IsZero() {
		borrowDate = time.Now()
	}

	l := &domain.Lending{
		BorrowerID: req.BorrowerID,
		BorrowDate: borrowDate,
		Note:       req.Note,
	}
	for _, it := range req.Items {
		l.Items = append(l.Items, domain.LendingItem{
			EquipmentID: it.EquipmentID,
			Quantity:    it.Quantity,
		})
	}

	if err := s.records.CreateLending(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// CreateCheckout records returned quantities against a lending. The stored
// status is derived from whether every borrowed item is now covered.
func (s *Service) CreateCheckout(ctx context.Context, req CreateCheckoutRequest) (*domain.Checkout, error) {
	l, err := s.records.GetLendingByID(ctx, req.LendingID)
	if err != nil {
		return nil, ErrNotFound
	}

	returned := make(map[int64]int, len(req.Items))
	for _, it := range req.Items {
		if it.ReturnedQty < 0 {
			return nil, ErrValidation
		}
		returned[it.EquipmentID] += it.ReturnedQty
	}

	status := domain.CheckoutReturned
	for _, it := range l.Items {
		if returned[it.EquipmentID] < it.Quantity {
			status = domain.CheckoutActive
			break
		}
	}

	co := &domain.Checkout{
		LendingID: req.LendingID,
		Reference: uuid.NewString(),
		Status:    status,
	}
	for _, it := range req.Items {
		co.Items = append(co.Items, domain.CheckoutItem{
			EquipmentID: it.EquipmentID,
			ReturnedQty: it.ReturnedQty,
		})
	}

	if err := s.records.CreateCheckout(ctx, co); err != nil {
		return nil, err
	}
	return co, nil
}

func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.EquipmentBooking, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, ErrValidation
	}
	if len(req.EquipmentIDs) == 0 {
		return nil, ErrValidation
	}

	b := &domain.EquipmentBooking{
		BorrowerID:   req.BorrowerID,
		RoomName:     req.RoomName,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Status:       domain.BookingPending,
		EquipmentIDs: req.EquipmentIDs,
	}

	if err := s.records.CreateBooking(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) UpdateBookingStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) (*domain.EquipmentBooking, error) {
	b, err := s.records.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, ErrNotFound
	}

	// Only pending bookings can be decided.
	if b.Status != domain.BookingPending {
		return nil, ErrInvalidStatusTransition
	}
	if status != domain.BookingApproved && status != domain.BookingRejected {
		return nil, ErrValidation
	}

	if err := s.records.UpdateBookingStatus(ctx, bookingID, status); err != nil {
		return nil, err
	}

	return s.records.GetBookingByID(ctx, bookingID)
}

func (s *Service) ListByEquipment(ctx context.Context, equipmentID int64) ([]domain.Lending, error) {
	return s.records.ListByEquipment(ctx, equipmentID)
}
