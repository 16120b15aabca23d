package examperiod

import (
	"context"
	"errors"
	"time"

	"github.com/Userdead-19/labs-cse/internal/domain"
	"github.com/Userdead-19/labs-cse/internal/repository"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// Service manages exam-period declarations. The records are advisory: the
// active flag is surfaced to clients, but no booking admission or approval
// path consults it. Whether an active period should hard-block bookings for
// the affected labs and year group is an open product question; until it is
// answered this service deliberately has no edge into the booking workflow.
type Service struct {
	periods ExamPeriodRepository
	labs    LabRepository
}

func NewService(periods ExamPeriodRepository, labs LabRepository) *Service {
	return &Service{
		periods: periods,
		labs:    labs,
	}
}

func (s *Service) CreateExamPeriod(ctx context.Context, req CreateExamPeriodRequest) (*domain.ExamPeriod, error) {
	if req.Name == "" || req.StartDate == "" || req.EndDate == "" || req.YearGroup == 0 || len(req.AffectedLabs) == 0 {
		return nil, ErrValidation
	}
	if req.YearGroup < 1 || req.YearGroup > 4 {
		return nil, ErrValidation
	}
	if _, err := time.Parse(dateLayout, req.StartDate); err != nil {
		return nil, ErrValidation
	}
	if _, err := time.Parse(dateLayout, req.EndDate); err != nil {
		return nil, ErrValidation
	}

	for _, labID := range req.AffectedLabs {
		if _, err := s.labs.GetByID(ctx, labID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrLabNotFound
			}
			return nil, err
		}
	}

	p := &domain.ExamPeriod{
		Name:           req.Name,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		YearGroup:      req.YearGroup,
		AffectedLabIDs: req.AffectedLabs,
		IsActive:       false,
	}

	if err := s.periods.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ToggleActive flips the flag and nothing else: existing bookings are not
// rejected or suspended, and new bookings are not blocked.
func (s *Service) ToggleActive(ctx context.Context, id int64, active bool) (*domain.ExamPeriod, error) {
	p, err := s.periods.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	p.IsActive = active
	if err := s.periods.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.ExamPeriod, error) {
	p, err := s.periods.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) ListExamPeriods(ctx context.Context, f repository.ExamPeriodFilters) ([]domain.ExamPeriod, error) {
	return s.periods.List(ctx, f)
}

func (s *Service) DeleteExamPeriod(ctx context.Context, id int64) error {
	if _, err := s.periods.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.periods.Delete(ctx, id)
}
