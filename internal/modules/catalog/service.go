package catalog

import (
	"context"
	"errors"

	"github.com/Userdead-19/labs-cse/internal/domain"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("lab not found")

type LabRepository interface {
	Create(ctx context.Context, lab *domain.Lab) error
	GetByID(ctx context.Context, id int64) (*domain.Lab, error)
	GetAll(ctx context.Context) ([]domain.Lab, error)
	Update(ctx context.Context, lab *domain.Lab) error
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	labs LabRepository
}

func NewService(labs LabRepository) *Service {
	return &Service{labs: labs}
}

func (s *Service) CreateLab(ctx context.Context, lab *domain.Lab) error {
	if lab.Status == "" {
		lab.Status = domain.LabOperational
	}
	return s.labs.Create(ctx, lab)
}

func (s *Service) GetLab(ctx context.Context, id int64) (*domain.Lab, error) {
	lab, err := s.labs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return lab, nil
}

func (s *Service) ListLabs(ctx context.Context) ([]domain.Lab, error) {
	return s.labs.GetAll(ctx)
}

func (s *Service) UpdateLab(ctx context.Context, lab *domain.Lab) error {
	if _, err := s.GetLab(ctx, lab.ID); err != nil {
		return err
	}
	return s.labs.Update(ctx, lab)
}

func (s *Service) DeleteLab(ctx context.Context, id int64) error {
	if _, err := s.GetLab(ctx, id); err != nil {
		return err
	}
	return s.labs.Delete(ctx, id)
}
