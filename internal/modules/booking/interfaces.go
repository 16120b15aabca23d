package booking

import (
	"context"

	"github.com/Userdead-19/labs-cse/internal/domain"
	"github.com/Userdead-19/labs-cse/internal/repository"
)

// BookingRepository defines the storage operations the workflow needs
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListApproved(ctx context.Context, labID int64, date string, excludeID int64) ([]domain.Booking, error)
	List(ctx context.Context, f repository.BookingFilters) ([]domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	UpdateStatus(ctx context.Context, bookingID int64, status string) error
	Delete(ctx context.Context, bookingID int64) error
}

// LabRepository resolves lab references
type LabRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Lab, error)
}

// EventPublisher receives booking lifecycle events (live calendar feed).
// Implementations must not block; failures are the publisher's problem.
type EventPublisher interface {
	BookingCreated(ctx context.Context, b *domain.Booking)
	BookingStatusChanged(ctx context.Context, b *domain.Booking)
	BookingDeleted(ctx context.Context, bookingID int64)
}
