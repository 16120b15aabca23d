package examperiod

import "errors"

var (
	ErrValidation  = errors.New("validation error")
	ErrNotFound    = errors.New("exam period not found")
	ErrLabNotFound = errors.New("lab not found")
)
