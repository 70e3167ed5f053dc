package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrForbidden          = errors.New("access forbidden")

	ErrAccountExists   = errors.New("account already exists")
	ErrAccountNotFound = errors.New("account not found")

	ErrBookingNotFound = errors.New("booking not found")
	ErrInvalidDate     = errors.New("dates must be in YYYY-MM-DD format")
	ErrInvalidRange    = errors.New("check-in must be before check-out")

	ErrConfigNotFound = errors.New("site configuration not found")
	ErrImageNotFound  = errors.New("image not found")
)

// DateConflictError is returned when a candidate booking overlaps an
// accepted one. Date is the first colliding day, i.e. the later of the two
// check-in dates.
type DateConflictError struct {
	Date string
}

func (e *DateConflictError) Error() string {
	return fmt.Sprintf("dates unavailable: already booked from %s", e.Date)
}
