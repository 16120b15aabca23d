package domain

import "time"

type LabStatus string

const (
	LabOperational LabStatus = "operational"
	LabMaintenance LabStatus = "maintenance"
	LabClosed      LabStatus = "closed"
)

// OpeningHours is a wall-clock open/close pair for one weekday, "HH:MM".
// An empty pair means the lab is closed that day.
type OpeningHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

type Lab struct {
	ID           int64                   `json:"id"`
	Name         string                  `json:"name" validate:"required"`
	Location     string                  `json:"location"`
	Building     string                  `json:"building" validate:"required"`
	Capacity     int                     `json:"capacity" validate:"required,gt=0"`
	Description  string                  `json:"description,omitempty" gorm:"type:text"`
	Equipment    []string                `json:"equipment,omitempty" gorm:"serializer:json"`
	OpeningHours map[string]OpeningHours `json:"opening_hours,omitempty" gorm:"serializer:json"`
	Status       LabStatus               `json:"status"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}
