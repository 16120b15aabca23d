package repository

import (
	"context"

	"github.com/Userdead-19/labs-cse/internal/domain"

	"gorm.io/gorm"
)

type LabRepository struct {
	db *gorm.DB
}

func NewLabRepository(db *gorm.DB) *LabRepository {
	return &LabRepository{db: db}
}

func (r *LabRepository) Create(ctx context.Context, lab *domain.Lab) error {
	return r.db.WithContext(ctx).Create(lab).Error
}

func (r *LabRepository) GetByID(ctx context.Context, id int64) (*domain.Lab, error) {
	var lab domain.Lab
	if err := r.db.WithContext(ctx).First(&lab, id).Error; err != nil {
		return nil, err
	}
	return &lab, nil
}

func (r *LabRepository) GetAll(ctx context.Context) ([]domain.Lab, error) {
	var labs []domain.Lab
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&labs).Error; err != nil {
		return nil, err
	}
	return labs, nil
}

func (r *LabRepository) Update(ctx context.Context, lab *domain.Lab) error {
	return r.db.WithContext(ctx).Save(lab).Error
}

func (r *LabRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Lab{}, id).Error
}
