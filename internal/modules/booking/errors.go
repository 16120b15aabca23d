package booking

import "errors"

var (
	ErrValidation  = errors.New("validation error")
	ErrNotFound    = errors.New("booking not found")
	ErrLabNotFound = errors.New("lab not found")
	ErrDateRange   = errors.New("date outside the bookable window")
	ErrConflict    = errors.New("time slot already booked")
)
