package booking

import (
	"context"
	"errors"
	"time"

	"github.com/Userdead-19/labs-cse/internal/domain"
	"github.com/Userdead-19/labs-cse/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Service runs the admission workflow: requests are admitted optimistically
// (pending bookings never block each other), and the conflict check is
// authoritative at the approval transition.
type Service struct {
	bookings    BookingRepository
	labs        LabRepository
	events      EventPublisher
	horizonDays int
}

func NewService(bookings BookingRepository, labs LabRepository, events EventPublisher, horizonDays int) *Service {
	return &Service{
		bookings:    bookings,
		labs:        labs,
		events:      events,
		horizonDays: horizonDays,
	}
}

// validTimeOfDay accepts only the canonical zero-padded "HH:MM" form.
// time.Parse alone would let "9:00" through, and every comparison from
// start >= end to the overlap scan orders times as plain strings, so a
// non-padded value must never reach storage.
func validTimeOfDay(s string) bool {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return false
	}
	return t.Format(timeLayout) == s
}

func validStatus(s string) bool {
	switch domain.BookingStatus(s) {
	case domain.BookingPending, domain.BookingApproved, domain.BookingRejected:
		return true
	}
	return false
}

func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest, requester Requester) (*domain.Booking, error) {
	if req.LabID == 0 || req.Date == "" || req.StartTime == "" || req.EndTime == "" || req.Title == "" || req.YearGroup == 0 {
		return nil, ErrValidation
	}
	if requester.ID == 0 {
		return nil, ErrValidation
	}
	if req.YearGroup < 1 || req.YearGroup > 4 {
		return nil, ErrValidation
	}
	if !validTimeOfDay(req.StartTime) || !validTimeOfDay(req.EndTime) {
		return nil, ErrValidation
	}
	if req.StartTime >= req.EndTime {
		return nil, ErrValidation
	}
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return nil, ErrValidation
	}

	if _, err := s.labs.GetByID(ctx, req.LabID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLabNotFound
		}
		return nil, err
	}

	// Day-granularity window check. ISO dates compare correctly as strings.
	now := time.Now()
	today := now.Format(dateLayout)
	latest := now.AddDate(0, 0, s.horizonDays).Format(dateLayout)
	if req.Date < today || req.Date > latest {
		return nil, ErrDateRange
	}

	approved, err := s.bookings.ListApproved(ctx, req.LabID, req.Date, 0)
	if err != nil {
		return nil, err
	}
	if HasConflict(approved, req.StartTime, req.EndTime) {
		return nil, ErrConflict
	}

	b := &domain.Booking{
		LabID:        req.LabID,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Title:        req.Title,
		Purpose:      req.Purpose,
		UserID:       requester.ID,
		UserName:     requester.Name,
		StudentCount: req.StudentCount,
		Equipment:    req.Equipment,
		Status:       domain.BookingPending,
		YearGroup:    req.YearGroup,
		IsExam:       req.IsExam,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.BookingCreated(ctx, b)
	}

	return b, nil
}

// UpdateStatus applies a lifecycle transition. A transition to approved
// re-runs the conflict check against the current approved set (excluding the
// booking itself), which is what resolves the race between two pending
// requests for the same slot. Re-approving an approved booking is a no-op
// that still succeeds.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, newStatus string) (*domain.Booking, error) {
	if !validStatus(newStatus) {
		return nil, ErrValidation
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if domain.BookingStatus(newStatus) == domain.BookingApproved {
		approved, err := s.bookings.ListApproved(ctx, b.LabID, b.Date, b.ID)
		if err != nil {
			return nil, err
		}
		if HasConflict(approved, b.StartTime, b.EndTime) {
			return nil, ErrConflict
		}
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23P01" && pgErr.ConstraintName == "bookings_no_approved_overlap" {
			// The exclusion constraint from internal/database/postgres_constraints.sql
			// caught a concurrent approval.
			return nil, ErrConflict
		}
		return nil, err
	}

	b.Status = domain.BookingStatus(newStatus)

	if s.events != nil {
		s.events.BookingStatusChanged(ctx, b)
	}

	return b, nil
}

// UpdateBooking merges the supplied fields over the stored record. If any of
// lab/date/start/end actually change and the resulting status is not
// rejected, the slot is re-checked for conflicts with the booking's own
// record excluded from the candidate set.
func (s *Service) UpdateBooking(ctx context.Context, bookingID int64, req UpdateBookingRequest) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	slotChanged := false

	if req.LabID != nil && *req.LabID != b.LabID {
		if _, err := s.labs.GetByID(ctx, *req.LabID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrLabNotFound
			}
			return nil, err
		}
		b.LabID = *req.LabID
		slotChanged = true
	}
	if req.Date != nil && *req.Date != b.Date {
		if _, err := time.Parse(dateLayout, *req.Date); err != nil {
			return nil, ErrValidation
		}
		b.Date = *req.Date
		slotChanged = true
	}
	if req.StartTime != nil && *req.StartTime != b.StartTime {
		if !validTimeOfDay(*req.StartTime) {
			return nil, ErrValidation
		}
		b.StartTime = *req.StartTime
		slotChanged = true
	}
	if req.EndTime != nil && *req.EndTime != b.EndTime {
		if !validTimeOfDay(*req.EndTime) {
			return nil, ErrValidation
		}
		b.EndTime = *req.EndTime
		slotChanged = true
	}
	if b.StartTime >= b.EndTime {
		return nil, ErrValidation
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, ErrValidation
		}
		b.Title = *req.Title
	}
	if req.Purpose != nil {
		b.Purpose = *req.Purpose
	}
	if req.StudentCount != nil {
		b.StudentCount = *req.StudentCount
	}
	if req.Equipment != nil {
		b.Equipment = *req.Equipment
	}
	if req.YearGroup != nil {
		if *req.YearGroup < 1 || *req.YearGroup > 4 {
			return nil, ErrValidation
		}
		b.YearGroup = *req.YearGroup
	}
	if req.IsExam != nil {
		b.IsExam = *req.IsExam
	}
	if req.Status != nil {
		if !validStatus(*req.Status) {
			return nil, ErrValidation
		}
		b.Status = domain.BookingStatus(*req.Status)
	}

	if slotChanged && b.Status != domain.BookingRejected {
		approved, err := s.bookings.ListApproved(ctx, b.LabID, b.Date, b.ID)
		if err != nil {
			return nil, err
		}
		if HasConflict(approved, b.StartTime, b.EndTime) {
			return nil, ErrConflict
		}
	}

	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.BookingStatusChanged(ctx, b)
	}

	return b, nil
}

func (s *Service) DeleteBooking(ctx context.Context, bookingID int64) error {
	if _, err := s.bookings.GetByID(ctx, bookingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.bookings.Delete(ctx, bookingID); err != nil {
		return err
	}

	if s.events != nil {
		s.events.BookingDeleted(ctx, bookingID)
	}

	return nil
}

func (s *Service) GetByID(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) ListBookings(ctx context.Context, f repository.BookingFilters) ([]domain.Booking, error) {
	return s.bookings.List(ctx, f)
}
