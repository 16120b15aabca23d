package domain

import "time"

// ExamPeriod is a named override window declared by an administrator for one
// year group and a set of labs. Toggling IsActive does not touch existing
// bookings; the record is surfaced to clients for display and manual action.
type ExamPeriod struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name" validate:"required"`
	StartDate      string    `json:"start_date" validate:"required"`
	EndDate        string    `json:"end_date" validate:"required"`
	YearGroup      int       `json:"year_group" validate:"required,min=1,max=4"`
	AffectedLabIDs []int64   `json:"affected_labs" gorm:"serializer:json"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
