package repository

import (
	"context"

	"campusfm/internal/domain"

	"gorm.io/gorm"
)

type DepartmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

func (r *DepartmentRepository) List(ctx context.Context) ([]domain.Department, error) {
	var deps []domain.Department
	tx := r.db.WithContext(ctx).Order("name").Find(&deps)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return deps, nil
}

func (r *DepartmentRepository) Create(ctx context.Context, dep *domain.Department) error {
	return r.db.WithContext(ctx).Create(dep).Error
}
