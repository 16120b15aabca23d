package domain

import "time"

type BookingStatus string

const (
	BookingPending  BookingStatus = "pending"
	BookingApproved BookingStatus = "approved"
	BookingRejected BookingStatus = "rejected"
)

// Booking is a reservation of one lab for a half-open [StartTime, EndTime)
// slot on a single calendar date. Date is "2006-01-02", times are "HH:MM";
// both compare correctly as strings. Only approved bookings block other
// bookings from being approved.
type Booking struct {
	ID           int64         `json:"id"`
	LabID        int64         `json:"lab_id" validate:"required"`
	Date         string        `json:"date" validate:"required"`
	StartTime    string        `json:"start_time" validate:"required"`
	EndTime      string        `json:"end_time" validate:"required"`
	Title        string        `json:"title" validate:"required"`
	Purpose      string        `json:"purpose,omitempty" gorm:"type:text"`
	UserID       int64         `json:"user_id"`
	UserName     string        `json:"user_name"`
	StudentCount int           `json:"student_count"`
	Equipment    string        `json:"equipment,omitempty" gorm:"type:text"`
	Status       BookingStatus `json:"status"`
	YearGroup    int           `json:"year_group" validate:"required,min=1,max=4"`
	IsExam       bool          `json:"is_exam"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`

	Lab *Lab `json:"lab,omitempty" gorm:"foreignKey:LabID"`
}
