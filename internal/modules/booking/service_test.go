package booking

import (
	"context"
	"testing"
	"time"

	"github.com/Userdead-19/labs-cse/internal/domain"
	"github.com/Userdead-19/labs-cse/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListApproved(ctx context.Context, labID int64, date string, excludeID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, labID, date, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) List(ctx context.Context, f repository.BookingFilters) ([]domain.Booking, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status string) error {
	args := m.Called(ctx, bookingID, status)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, bookingID int64) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

type MockLabRepository struct {
	mock.Mock
}

func (m *MockLabRepository) GetByID(ctx context.Context, id int64) (*domain.Lab, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lab), args.Error(1)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) BookingCreated(ctx context.Context, b *domain.Booking) {
	m.Called(ctx, b)
}

func (m *MockEventPublisher) BookingStatusChanged(ctx context.Context, b *domain.Booking) {
	m.Called(ctx, b)
}

func (m *MockEventPublisher) BookingDeleted(ctx context.Context, bookingID int64) {
	m.Called(ctx, bookingID)
}

const testHorizonDays = 365

func dateFromNow(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func validCreateRequest(date string) CreateBookingRequest {
	return CreateBookingRequest{
		LabID:        10,
		Date:         date,
		StartTime:    "09:00",
		EndTime:      "10:00",
		Title:        "Algorithms practical",
		Purpose:      "Weekly lab session",
		StudentCount: 30,
		YearGroup:    1,
	}
}

func TestCreateBooking_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockLabs := new(MockLabRepository)
	mockEvents := new(MockEventPublisher)

	mockLabs.On("GetByID", mock.Anything, int64(10)).Return(&domain.Lab{ID: 10}, nil)
	mockBookings.On("ListApproved", mock.Anything, int64(10), mock.Anything, int64(0)).Return([]domain.Booking{}, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockEvents.On("BookingCreated", mock.Anything, mock.Anything).Return()

	service := NewService(mockBookings, mockLabs, mockEvents, testHorizonDays)

	b, err := service.CreateBooking(context.Background(), validCreateRequest(dateFromNow(7)), Requester{ID: 42, Name: "Dr. Smith"})

	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, int64(42), b.UserID)
	assert.Equal(t, "Dr. Smith", b.UserName)
	mockEvents.AssertCalled(t, "BookingCreated", mock.Anything, mock.Anything)
}

func TestCreateBooking_ValidationErrors(t *testing.T) {
	service := NewService(new(MockBookingRepository), new(MockLabRepository), nil, testHorizonDays)

	// end before start
	req := validCreateRequest(dateFromNow(7))
	req.StartTime = "14:00"
	req.EndTime = "12:00"
	_, err := service.CreateBooking(context.Background(), req, Requester{ID: 1, Name: "x"})
	assert.ErrorIs(t, err, ErrValidation)

	// zero-length slot
	req = validCreateRequest(dateFromNow(7))
	req.StartTime = "12:00"
	req.EndTime = "12:00"
	_, err = service.CreateBooking(context.Background(), req, Requester{ID: 1, Name: "x"})
	assert.ErrorIs(t, err, ErrValidation)

	// missing title
	req = validCreateRequest(dateFromNow(7))
	req.Title = ""
	_, err = service.CreateBooking(context.Background(), req, Requester{ID: 1, Name: "x"})
	assert.ErrorIs(t, err, ErrValidation)

	// year group out of range
	req = validCreateRequest(dateFromNow(7))
	req.YearGroup = 5
	_, err = service.CreateBooking(context.Background(), req, Requester{ID: 1, Name: "x"})
	assert.ErrorIs(t, err, ErrValidation)

	// malformed time
	req = validCreateRequest(dateFromNow(7))
	req.StartTime = "9am"
	_, err = service.CreateBooking(context.Background(), req, Requester{ID: 1, Name: "x"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateBooking_NonPaddedTimeRejected(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockLabs := new(MockLabRepository)

	// "9:15" parses as a valid clock time but sorts after "10:00" as a
	// string, which would slip past the overlap scan against an approved
	// 09:00-10:00 booking. It must fail validation before any scan runs.
	date := dateFromNow(7)
	mockLabs.On("GetByID", mock.Anything, int64(10)).Return(&domain.Lab{ID: 10}, nil)
	mockBookings.On("ListApproved", mock.Anything, int64(10), date, int64(0)).Return([]domain.Booking{
		{ID: 1, StartTime: "09:00", EndTime: "10:00", Status: domain.BookingApproved},
	}, nil)

	service := NewService(mockBookings, mockLabs, nil, testHorizonDays)

	req := validCreateRequest(date)
	req.StartTime = "9:15"
	req.EndTime = "9:45"
	_, err := service.CreateBooking(context.Background(), req, Requester{ID: 1, Name: "x"})

	assert.ErrorIs(t, err, ErrValidation)
	mockBookings.AssertNotCalled(t, "ListApproved", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBooking_LabNotFound(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockLabs := new(MockLabRepository)

	mockLabs.On("GetByID", mock.Anything, int64(10)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockBookings, mockLabs, nil, testHorizonDays)

	_, err := service.CreateBooking(context.Background(), validCreateRequest(dateFromNow(7)), Requester{ID: 1, Name: "x"})
	assert.ErrorIs(t, err, ErrLabNotFound)
}

func TestCreateBooking_DateHorizon(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockLabs := new(MockLabRepository)

	mockLabs.On("GetByID", mock.Anything, int64(10)).Return(&domain.Lab{ID: 10}, nil)
	mockBookings.On("ListApproved", mock.Anything, int64(10), mock.Anything, int64(0)).Return([]domain.Booking{}, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockBookings, mockLabs, nil, testHorizonDays)
	requester := Requester{ID: 1, Name: "x"}

	// today is bookable
	_, err := service.CreateBooking(context.Background(), validCreateRequest(dateFromNow(0)), requester)
	assert.NoError(t, err)

	// yesterday is not
	_, err = service.CreateBooking(context.Background(), validCreateRequest(dateFromNow(-1)), requester)
	assert.ErrorIs(t, err, ErrDateRange)

	// exactly the horizon is bookable
	_, err = service.CreateBooking(context.Background(), validCreateRequest(dateFromNow(365)), requester)
	assert.NoError(t, err)

	// one day past the horizon is not
	_, err = service.CreateBooking(context.Background(), validCreateRequest(dateFromNow(366)), requester)
	assert.ErrorIs(t, err, ErrDateRange)
}

func TestCreateBooking_ConflictWithApproved(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockLabs := new(MockLabRepository)

	date := dateFromNow(7)
	mockLabs.On("GetByID", mock.Anything, int64(10)).Return(&domain.Lab{ID: 10}, nil)
	mockBookings.On("ListApproved", mock.Anything, int64(10), date, int64(0)).Return([]domain.Booking{
		{ID: 1, StartTime: "09:30", EndTime: "10:30", Status: domain.BookingApproved},
	}, nil)

	service := NewService(mockBookings, mockLabs, nil, testHorizonDays)

	_, err := service.CreateBooking(context.Background(), validCreateRequest(date), Requester{ID: 1, Name: "x"})
	assert.ErrorIs(t, err, ErrConflict)
	mockBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBooking_PendingDoesNotBlock(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockLabs := new(MockLabRepository)

	// pending bookings are not in the approved set, so an overlapping
	// request is still admitted
	date := dateFromNow(7)
	mockLabs.On("GetByID", mock.Anything, int64(10)).Return(&domain.Lab{ID: 10}, nil)
	mockBookings.On("ListApproved", mock.Anything, int64(10), date, int64(0)).Return([]domain.Booking{}, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockBookings, mockLabs, nil, testHorizonDays)

	b, err := service.CreateBooking(context.Background(), validCreateRequest(date), Requester{ID: 1, Name: "x"})
	assert.NoError(t, err)
	assert.Equal(t, domain.BookingPending, b.Status)
}

func TestUpdateStatus_ApproveSuccess(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockEvents := new(MockEventPublisher)

	stored := &domain.Booking{
		ID: 5, LabID: 10, Date: "2026-06-10",
		StartTime: "09:00", EndTime: "10:00",
		Status: domain.BookingPending,
	}
	mockBookings.On("GetByID", mock.Anything, int64(5)).Return(stored, nil)
	mockBookings.On("ListApproved", mock.Anything, int64(10), "2026-06-10", int64(5)).Return([]domain.Booking{}, nil)
	mockBookings.On("UpdateStatus", mock.Anything, int64(5), "approved").Return(nil)
	mockEvents.On("BookingStatusChanged", mock.Anything, mock.Anything).Return()

	service := NewService(mockBookings, new(MockLabRepository), mockEvents, testHorizonDays)

	b, err := service.UpdateStatus(context.Background(), 5, "approved")
	assert.NoError(t, err)
	assert.Equal(t, domain.BookingApproved, b.Status)
	mockBookings.AssertExpectations(t)
}

func TestUpdateStatus_SecondApprovalConflicts(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	// booking A (id 1) already approved for 09:00-10:00; approving the
	// overlapping pending booking B (id 2) must fail
	pendingB := &domain.Booking{
		ID: 2, LabID: 10, Date: "2026-06-10",
		StartTime: "09:30", EndTime: "10:30",
		Status: domain.BookingPending,
	}
	mockBookings.On("GetByID", mock.Anything, int64(2)).Return(pendingB, nil)
	mockBookings.On("ListApproved", mock.Anything, int64(10), "2026-06-10", int64(2)).Return([]domain.Booking{
		{ID: 1, StartTime: "09:00", EndTime: "10:00", Status: domain.BookingApproved},
	}, nil)

	service := NewService(mockBookings, new(MockLabRepository), nil, testHorizonDays)

	_, err := service.UpdateStatus(context.Background(), 2, "approved")
	assert.ErrorIs(t, err, ErrConflict)
	mockBookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatus_RejectSkipsConflictCheck(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	pending := &domain.Booking{
		ID: 2, LabID: 10, Date: "2026-06-10",
		StartTime: "09:30", EndTime: "10:30",
		Status: domain.BookingPending,
	}
	mockBookings.On("GetByID", mock.Anything, int64(2)).Return(pending, nil)
	mockBookings.On("UpdateStatus", mock.Anything, int64(2), "rejected").Return(nil)

	service := NewService(mockBookings, new(MockLabRepository), nil, testHorizonDays)

	b, err := service.UpdateStatus(context.Background(), 2, "rejected")
	assert.NoError(t, err)
	assert.Equal(t, domain.BookingRejected, b.Status)
	mockBookings.AssertNotCalled(t, "ListApproved", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatus_IdempotentReapproval(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	approved := &domain.Booking{
		ID: 7, LabID: 10, Date: "2026-06-10",
		StartTime: "09:00", EndTime: "10:00",
		Status: domain.BookingApproved,
	}
	mockBookings.On("GetByID", mock.Anything, int64(7)).Return(approved, nil)
	// own record excluded from the candidate set, so no self-conflict
	mockBookings.On("ListApproved", mock.Anything, int64(10), "2026-06-10", int64(7)).Return([]domain.Booking{}, nil)
	mockBookings.On("UpdateStatus", mock.Anything, int64(7), "approved").Return(nil)

	service := NewService(mockBookings, new(MockLabRepository), nil, testHorizonDays)

	b, err := service.UpdateStatus(context.Background(), 7, "approved")
	assert.NoError(t, err)
	assert.Equal(t, domain.BookingApproved, b.Status)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockBookings, new(MockLabRepository), nil, testHorizonDays)

	_, err := service.UpdateStatus(context.Background(), 404, "approved")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	service := NewService(new(MockBookingRepository), new(MockLabRepository), nil, testHorizonDays)

	_, err := service.UpdateStatus(context.Background(), 1, "confirmed")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateBooking_ExcludesSelfFromConflictCheck(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockEvents := new(MockEventPublisher)

	stored := &domain.Booking{
		ID: 3, LabID: 10, Date: "2026-06-10",
		StartTime: "09:00", EndTime: "10:00",
		Title:  "Practical",
		Status: domain.BookingApproved,
	}
	mockBookings.On("GetByID", mock.Anything, int64(3)).Return(stored, nil)
	// the re-check must pass excludeID = 3 so the booking's prior state is
	// not in the candidate set
	mockBookings.On("ListApproved", mock.Anything, int64(10), "2026-06-10", int64(3)).Return([]domain.Booking{}, nil)
	mockBookings.On("Update", mock.Anything, mock.Anything).Return(nil)
	mockEvents.On("BookingStatusChanged", mock.Anything, mock.Anything).Return()

	service := NewService(mockBookings, new(MockLabRepository), mockEvents, testHorizonDays)

	newStart := "09:30"
	newEnd := "10:30"
	b, err := service.UpdateBooking(context.Background(), 3, UpdateBookingRequest{
		StartTime: &newStart,
		EndTime:   &newEnd,
	})

	assert.NoError(t, err)
	assert.Equal(t, "09:30", b.StartTime)
	assert.Equal(t, "10:30", b.EndTime)
	mockBookings.AssertExpectations(t)
}

func TestUpdateBooking_RejectedStatusSkipsCheck(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	stored := &domain.Booking{
		ID: 3, LabID: 10, Date: "2026-06-10",
		StartTime: "09:00", EndTime: "10:00",
		Title:  "Practical",
		Status: domain.BookingPending,
	}
	mockBookings.On("GetByID", mock.Anything, int64(3)).Return(stored, nil)
	mockBookings.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockBookings, new(MockLabRepository), nil, testHorizonDays)

	newStart := "11:00"
	newEnd := "12:00"
	rejected := "rejected"
	_, err := service.UpdateBooking(context.Background(), 3, UpdateBookingRequest{
		StartTime: &newStart,
		EndTime:   &newEnd,
		Status:    &rejected,
	})

	assert.NoError(t, err)
	mockBookings.AssertNotCalled(t, "ListApproved", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateBooking_NonPaddedTimeRejected(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	stored := &domain.Booking{
		ID: 3, LabID: 10, Date: "2026-06-10",
		StartTime: "14:00", EndTime: "15:00",
		Title:  "Practical",
		Status: domain.BookingPending,
	}
	mockBookings.On("GetByID", mock.Anything, int64(3)).Return(stored, nil)

	service := NewService(mockBookings, new(MockLabRepository), nil, testHorizonDays)

	newStart := "9:30"
	_, err := service.UpdateBooking(context.Background(), 3, UpdateBookingRequest{
		StartTime: &newStart,
	})

	assert.ErrorIs(t, err, ErrValidation)
	mockBookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateBooking_ConflictOnMove(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	stored := &domain.Booking{
		ID: 3, LabID: 10, Date: "2026-06-10",
		StartTime: "14:00", EndTime: "15:00",
		Title:  "Practical",
		Status: domain.BookingPending,
	}
	mockBookings.On("GetByID", mock.Anything, int64(3)).Return(stored, nil)
	mockBookings.On("ListApproved", mock.Anything, int64(10), "2026-06-10", int64(3)).Return([]domain.Booking{
		{ID: 8, StartTime: "09:00", EndTime: "10:00", Status: domain.BookingApproved},
	}, nil)

	service := NewService(mockBookings, new(MockLabRepository), nil, testHorizonDays)

	newStart := "09:30"
	newEnd := "10:30"
	_, err := service.UpdateBooking(context.Background(), 3, UpdateBookingRequest{
		StartTime: &newStart,
		EndTime:   &newEnd,
	})

	assert.ErrorIs(t, err, ErrConflict)
	mockBookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteBooking(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockEvents := new(MockEventPublisher)

	mockBookings.On("GetByID", mock.Anything, int64(9)).Return(&domain.Booking{ID: 9}, nil)
	mockBookings.On("Delete", mock.Anything, int64(9)).Return(nil)
	mockEvents.On("BookingDeleted", mock.Anything, int64(9)).Return()

	service := NewService(mockBookings, new(MockLabRepository), mockEvents, testHorizonDays)

	assert.NoError(t, service.DeleteBooking(context.Background(), 9))

	mockBookings.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, service.DeleteBooking(context.Background(), 404), ErrNotFound)
}
