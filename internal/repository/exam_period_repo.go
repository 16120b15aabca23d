package repository

import (
	"context"

	"github.com/Userdead-19/labs-cse/internal/domain"

	"gorm.io/gorm"
)

type ExamPeriodFilters struct {
	YearGroup *int
	IsActive  *bool
}

type ExamPeriodRepository struct {
	db *gorm.DB
}

func NewExamPeriodRepository(db *gorm.DB) *ExamPeriodRepository {
	return &ExamPeriodRepository{db: db}
}

func (r *ExamPeriodRepository) Create(ctx context.Context, p *domain.ExamPeriod) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ExamPeriodRepository) GetByID(ctx context.Context, id int64) (*domain.ExamPeriod, error) {
	var p domain.ExamPeriod
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ExamPeriodRepository) List(ctx context.Context, f ExamPeriodFilters) ([]domain.ExamPeriod, error) {
	q := r.db.WithContext(ctx).Model(&domain.ExamPeriod{})

	if f.YearGroup != nil {
		q = q.Where("year_group = ?", *f.YearGroup)
	}
	if f.IsActive != nil {
		q = q.Where("is_active = ?", *f.IsActive)
	}

	var periods []domain.ExamPeriod
	if err := q.Order("start_date ASC").Find(&periods).Error; err != nil {
		return nil, err
	}
	return periods, nil
}

func (r *ExamPeriodRepository) Update(ctx context.Context, p *domain.ExamPeriod) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ExamPeriodRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.ExamPeriod{}, id).Error
}
