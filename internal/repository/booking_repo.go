package repository

import (
	"context"
	"time"

	"github.com/Userdead-19/labs-cse/internal/domain"

	"gorm.io/gorm"
)

// BookingFilters is the structured filter set for booking list queries.
// Zero values mean "not filtered"; YearGroup and IsExam use pointers so
// that 0/false remain expressible.
type BookingFilters struct {
	UserID    int64
	LabID     int64
	Date      string
	Status    string
	YearGroup *int
	IsExam    *bool
}

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	LabID        int64     `gorm:"column:lab_id"`
	Date         string    `gorm:"column:date"`
	StartTime    string    `gorm:"column:start_time"`
	EndTime      string    `gorm:"column:end_time"`
	Title        string    `gorm:"column:title"`
	Purpose      *string   `gorm:"column:purpose"`
	UserID       int64     `gorm:"column:user_id"`
	UserName     string    `gorm:"column:user_name"`
	StudentCount int       `gorm:"column:student_count"`
	Equipment    *string   `gorm:"column:equipment"`
	Status       string    `gorm:"column:status"`
	YearGroup    int       `gorm:"column:year_group"`
	IsExam       bool      `gorm:"column:is_exam"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var purpose, equipment string
	if m.Purpose != nil {
		purpose = *m.Purpose
	}
	if m.Equipment != nil {
		equipment = *m.Equipment
	}

	return &domain.Booking{
		ID:           m.ID,
		LabID:        m.LabID,
		Date:         m.Date,
		StartTime:    m.StartTime,
		EndTime:      m.EndTime,
		Title:        m.Title,
		Purpose:      purpose,
		UserID:       m.UserID,
		UserName:     m.UserName,
		StudentCount: m.StudentCount,
		Equipment:    equipment,
		Status:       domain.BookingStatus(m.Status),
		YearGroup:    m.YearGroup,
		IsExam:       m.IsExam,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var purpose, equipment *string
	if b.Purpose != "" {
		v := b.Purpose
		purpose = &v
	}
	if b.Equipment != "" {
		v := b.Equipment
		equipment = &v
	}

	return bookingModel{
		ID:           b.ID,
		LabID:        b.LabID,
		Date:         b.Date,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Title:        b.Title,
		Purpose:      purpose,
		UserID:       b.UserID,
		UserName:     b.UserName,
		StudentCount: b.StudentCount,
		Equipment:    equipment,
		Status:       string(b.Status),
		YearGroup:    b.YearGroup,
		IsExam:       b.IsExam,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// ListApproved returns the approved bookings for one lab and date, the
// candidate set for the conflict check. excludeID > 0 drops that booking so
// an update or re-approval never conflicts with its own record.
func (r *BookingRepository) ListApproved(ctx context.Context, labID int64, date string, excludeID int64) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).
		Where("lab_id = ? AND date = ? AND status = ?", labID, date, string(domain.BookingApproved))
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var rows []bookingModel
	if err := q.Order("start_time ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) List(ctx context.Context, f BookingFilters) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).Model(&bookingModel{})

	if f.UserID > 0 {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.LabID > 0 {
		q = q.Where("lab_id = ?", f.LabID)
	}
	if f.Date != "" {
		q = q.Where("date = ?", f.Date)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.YearGroup != nil {
		q = q.Where("year_group = ?", *f.YearGroup)
	}
	if f.IsExam != nil {
		q = q.Where("is_exam = ?", *f.IsExam)
	}

	var rows []bookingModel
	if err := q.Order("date ASC, start_time ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status string) error {
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Update("status", status).Error
}

func (r *BookingRepository) Delete(ctx context.Context, bookingID int64) error {
	return r.db.WithContext(ctx).Delete(&bookingModel{}, bookingID).Error
}
