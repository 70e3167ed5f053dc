package ports

import (
	"context"

	"github.com/vistamar/pousada-api/internal/core/domain"
)

// CreateBookingInput carries the data needed to create a booking. The
// owner is derived from the caller's verified claims, never from the body.
type CreateBookingInput struct {
	StartDate        string
	EndDate          string
	Description      string
	OptionSelections map[string]bool
}

// UpdateBookingInput is the admin patch for an existing booking. Nil
// fields are left unchanged.
type UpdateBookingInput struct {
	StartDate        *string
	EndDate          *string
	Description      *string
	OptionSelections map[string]bool
}

// OwnerContact is the owner profile data joined onto each listed booking.
type OwnerContact struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// BookingView is a booking enriched with its owner's contact details.
type BookingView struct {
	domain.Booking
	Owner *OwnerContact `json:"owner,omitempty"`
}

// BookingService defines the use-case operations for reservations.
type BookingService interface {
	// List returns all bookings for admin callers, otherwise only the
	// caller's own.
	List(ctx context.Context, caller domain.TokenClaims) ([]BookingView, error)
	Create(ctx context.Context, caller domain.TokenClaims, input CreateBookingInput) (*domain.Booking, error)
	// Update merges the patch without re-validating date overlap: the
	// admin edit path is a deliberate override.
	Update(ctx context.Context, id string, input UpdateBookingInput) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
}
