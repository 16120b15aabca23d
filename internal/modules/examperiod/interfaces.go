package examperiod

import (
	"context"

	"github.com/Userdead-19/labs-cse/internal/domain"
	"github.com/Userdead-19/labs-cse/internal/repository"
)

type ExamPeriodRepository interface {
	Create(ctx context.Context, p *domain.ExamPeriod) error
	GetByID(ctx context.Context, id int64) (*domain.ExamPeriod, error)
	List(ctx context.Context, f repository.ExamPeriodFilters) ([]domain.ExamPeriod, error)
	Update(ctx context.Context, p *domain.ExamPeriod) error
	Delete(ctx context.Context, id int64) error
}

type LabRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Lab, error)
}
