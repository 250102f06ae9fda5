package repository

import (
	"context"

	"campusfm/internal/domain"

	"gorm.io/gorm"
)

type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

func (r *EquipmentRepository) List(ctx context.Context) ([]domain.Equipment, error) {
	var items []domain.Equipment
	tx := r.db.WithContext(ctx).
		Preload("Room").
		Preload("Room.Department").
		Order("name").
		Find(&items)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return items, nil
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	var item domain.Equipment
	tx := r.db.WithContext(ctx).Preload("Room").First(&item, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &item, nil
}

func (r *EquipmentRepository) Create(ctx context.Context, item *domain.Equipment) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *EquipmentRepository) Update(ctx context.Context, item *domain.Equipment) error {
	return r.db.WithContext(ctx).
		Model(&domain.Equipment{ID: item.ID}).
		Select("Name", "Code", "Category", "Quantity", "Unit", "Condition", "IsAvailable", "RoomID").
		Updates(item).Error
}

func (r *EquipmentRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Equipment{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
