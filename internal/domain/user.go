package domain

import "time"

type UserRole string

const (
	RoleAdmin           UserRole = "admin"
	RoleTeacher         UserRole = "teacher"
	RoleStudent         UserRole = "student"
	RoleYearCoordinator UserRole = "year_coordinator"
)

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name" validate:"required"`
	Role         UserRole  `json:"role"`
	Department   string    `json:"department,omitempty"`
	YearGroup    int       `json:"year_group,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
