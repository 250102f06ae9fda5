package repository

import (
	"context"
	"errors"
	"time"

	"campusfm/internal/domain"

	"gorm.io/gorm"
)

type LendingRepository struct {
	db *gorm.DB
}

func NewLendingRepository(db *gorm.DB) *LendingRepository {
	return &LendingRepository{db: db}
}

type lendingModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	BorrowerID int64     `gorm:"column:borrower_id"`
	BorrowDate time.Time `gorm:"column:borrow_date"`
	Note       *string   `gorm:"column:note"`
	CreatedAt  time.Time `gorm:"column:created_at"`

	Items []lendingItemModel `gorm:"foreignKey:LendingID"`
}

func (lendingModel) TableName() string { return "lendings" }

type lendingItemModel struct {
	ID          int64 `gorm:"column:id;primaryKey"`
	LendingID   int64 `gorm:"column:lending_id;index"`
	EquipmentID int64 `gorm:"column:equipment_id;index"`
	Quantity    int   `gorm:"column:quantity"`
}

func (lendingItemModel) TableName() string { return "lending_items" }

type checkoutModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	LendingID int64     `gorm:"column:lending_id;index"`
	Reference string    `gorm:"column:reference"`
	Status    string    `gorm:"column:status"`
	CreatedAt time.Time `gorm:"column:created_at"`

	Items []checkoutItemModel `gorm:"foreignKey:CheckoutID"`
}

func (checkoutModel) TableName() string { return "checkouts" }

type checkoutItemModel struct {
	ID          int64 `gorm:"column:id;primaryKey"`
	CheckoutID  int64 `gorm:"column:checkout_id;index"`
	EquipmentID int64 `gorm:"column:equipment_id;index"`
	ReturnedQty int   `gorm:"column:returned_qty"`
}

func (checkoutItemModel) TableName() string { return "checkout_items" }

type bookingModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	BorrowerID int64     `gorm:"column:borrower_id"`
	RoomName   string    `gorm:"column:room_name"`
	StartTime  time.Time `gorm:"column:start_time"`
	EndTime    time.Time `gorm:"column:end_time"`
	Status     string    `gorm:"column:status"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "equipment_bookings" }

type bookingEquipmentModel struct {
	ID          int64 `gorm:"column:id;primaryKey"`
	BookingID   int64 `gorm:"column:booking_id;index"`
	EquipmentID int64 `gorm:"column:equipment_id;index"`
}

func (bookingEquipmentModel) TableName() string { return "booking_equipment" }

func toDomainLending(m lendingModel) domain.Lending {
	var note string
	if m.Note != nil {
		note = *m.Note
	}

	items := make([]domain.LendingItem, 0, len(m.Items))
	for _, it := range m.Items {
		items = append(items, domain.LendingItem{
			ID:          it.ID,
			LendingID:   it.LendingID,
			EquipmentID: it.EquipmentID,
			Quantity:    it.Quantity,
		})
	}

	return domain.Lending{
		ID:         m.ID,
		BorrowerID: m.BorrowerID,
		BorrowDate: m.BorrowDate,
		Note:       note,
		CreatedAt:  m.CreatedAt,
		Items:      items,
	}
}

func toLendingModel(l *domain.Lending) lendingModel {
	var note *string
	if l.Note != "" {
		v := l.Note
		note = &v
	}

	items := make([]lendingItemModel, 0, len(l.Items))
	for _, it := range l.Items {
		items = append(items, lendingItemModel{
			EquipmentID: it.EquipmentID,
			Quantity:    it.Quantity,
		})
	}

	return lendingModel{
		ID:         l.ID,
		BorrowerID: l.BorrowerID,
		BorrowDate: l.BorrowDate,
		Note:       note,
		Items:      items,
	}
}

func toDomainCheckout(m checkoutModel) *domain.Checkout {
	items := make([]domain.CheckoutItem, 0, len(m.Items))
	for _, it := range m.Items {
		items = append(items, domain.CheckoutItem{
			ID:          it.ID,
			CheckoutID:  it.CheckoutID,
			EquipmentID: it.EquipmentID,
			ReturnedQty: it.ReturnedQty,
		})
	}

	return &domain.Checkout{
		ID:        m.ID,
		LendingID: m.LendingID,
		Reference: m.Reference,
		Status:    domain.CheckoutStatus(m.Status),
		CreatedAt: m.CreatedAt,
		Items:     items,
	}
}

func toDomainBooking(m bookingModel, equipmentIDs []int64) domain.EquipmentBooking {
	return domain.EquipmentBooking{
		ID:           m.ID,
		BorrowerID:   m.BorrowerID,
		RoomName:     m.RoomName,
		StartTime:    m.StartTime,
		EndTime:      m.EndTime,
		Status:       domain.BookingStatus(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		EquipmentIDs: equipmentIDs,
	}
}

func (r *LendingRepository) CreateLending(ctx context.Context, l *domain.Lending) error {
	m := toLendingModel(l)
	if m.BorrowDate.IsZero() {
		m.BorrowDate = time.Now()
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*l = toDomainLending(m)
	return nil
}

func (r *LendingRepository) GetLendingByID(ctx context.Context, id int64) (*domain.Lending, error) {
	var m lendingModel
	tx := r.db.WithContext(ctx).Preload("Items").First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	l := toDomainLending(m)
	return &l, nil
}

// ListByEquipment returns every lending whose item list contains the given
// equipment id, items included.
func (r *LendingRepository) ListByEquipment(ctx context.Context, equipmentID int64) ([]domain.Lending, error) {
	var ms []lendingModel
	tx := r.db.WithContext(ctx).
		Preload("Items").
		Where("id IN (?)",
			r.db.Model(&lendingItemModel{}).Select("lending_id").Where("equipment_id = ?", equipmentID)).
		Order("borrow_date DESC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Lending, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainLending(m))
	}
	return out, nil
}

// LatestCheckout returns the most recent checkout for a lending, or nil when
// none has been recorded yet. Absence is normal, not an error.
func (r *LendingRepository) LatestCheckout(ctx context.Context, lendingID int64) (*domain.Checkout, error) {
	var m checkoutModel
	tx := r.db.WithContext(ctx).
		Preload("Items").
		Where("lending_id = ?", lendingID).
		Order("created_at DESC").
		First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainCheckout(m), nil
}

func (r *LendingRepository) CreateCheckout(ctx context.Context, co *domain.Checkout) error {
	m := checkoutModel{
		LendingID: co.LendingID,
		Reference: co.Reference,
		Status:    string(co.Status),
	}
	for _, it := range co.Items {
		m.Items = append(m.Items, checkoutItemModel{
			EquipmentID: it.EquipmentID,
			ReturnedQty: it.ReturnedQty,
		})
	}

	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*co = *toDomainCheckout(m)
	return nil
}

func (r *LendingRepository) CreateBooking(ctx context.Context, b *domain.EquipmentBooking) error {
	m := bookingModel{
		BorrowerID: b.BorrowerID,
		RoomName:   b.RoomName,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		Status:     string(b.Status),
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		for _, eqID := range b.EquipmentIDs {
			link := bookingEquipmentModel{BookingID: m.ID, EquipmentID: eqID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		*b = toDomainBooking(m, b.EquipmentIDs)
		return nil
	})
}

func (r *LendingRepository) GetBookingByID(ctx context.Context, id int64) (*domain.EquipmentBooking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}

	var ids []int64
	tx = r.db.WithContext(ctx).
		Model(&bookingEquipmentModel{}).
		Where("booking_id = ?", id).
		Pluck("equipment_id", &ids)
	if tx.Error != nil {
		return nil, tx.Error
	}

	b := toDomainBooking(m, ids)
	return &b, nil
}

func (r *LendingRepository) UpdateBookingStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListApprovedByEquipment returns approved bookings whose equipment list
// contains the given equipment id.
func (r *LendingRepository) ListApprovedByEquipment(ctx context.Context, equipmentID int64) ([]domain.EquipmentBooking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Where("status = ?", string(domain.BookingApproved)).
		Where("id IN (?)",
			r.db.Model(&bookingEquipmentModel{}).Select("booking_id").Where("equipment_id = ?", equipmentID)).
		Order("start_time DESC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.EquipmentBooking, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainBooking(m, nil))
	}
	return out, nil
}

// Migrate creates the lending tables that have no domain-level GORM model.
func (r *LendingRepository) Migrate() error {
	return r.db.AutoMigrate(
		&lendingModel{},
		&lendingItemModel{},
		&checkoutModel{},
		&checkoutItemModel{},
		&bookingModel{},
		&bookingEquipmentModel{},
	)
}
