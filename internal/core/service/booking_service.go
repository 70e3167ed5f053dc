package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vistamar/pousada-api/internal/core/domain"
	"github.com/vistamar/pousada-api/internal/core/ports"
)

// BookingService implements reservation CRUD and enforces the one domain
// invariant: no two accepted bookings may occupy overlapping date ranges.
type BookingService struct {
	bookings ports.BookingRepository
	accounts ports.AccountRepository
	lock     ports.CreateLock
	metrics  ports.BookingMetrics
	logger   zerolog.Logger
}

func NewBookingService(bookings ports.BookingRepository, accounts ports.AccountRepository, lock ports.CreateLock, metrics ports.BookingMetrics, logger zerolog.Logger) *BookingService {
	return &BookingService{bookings: bookings, accounts: accounts, lock: lock, metrics: metrics, logger: logger}
}

// List returns all bookings for admins and only the caller's own bookings
// otherwise, each enriched with the owner's contact details.
func (s *BookingService) List(ctx context.Context, caller domain.TokenClaims) ([]ports.BookingView, error) {
	var (
		items []*domain.Booking
		err   error
	)
	if caller.Role == domain.RoleAdmin {
		items, err = s.bookings.List(ctx)
	} else {
		var acct *domain.Account
		acct, err = s.accounts.FindByEmail(ctx, caller.Email)
		if err != nil {
			return nil, err
		}
		items, err = s.bookings.ListByOwner(ctx, acct.ID)
	}
	if err != nil {
		return nil, err
	}

	owners := make(map[string]*domain.Account, len(items))
	views := make([]ports.BookingView, 0, len(items))
	for _, b := range items {
		view := ports.BookingView{Booking: *b}
		owner, ok := owners[b.OwnerAccountID]
		if !ok {
			// Best effort: a missing profile must not break the listing.
			owner, _ = s.accounts.FindByID(ctx, b.OwnerAccountID)
			owners[b.OwnerAccountID] = owner
		}
		if owner != nil {
			view.Owner = &ports.OwnerContact{Email: owner.Email, PhoneNumber: owner.PhoneNumber}
		}
		views = append(views, view)
	}
	return views, nil
}

// Create validates the candidate range, scans existing bookings for
// overlap under the store-scoped advisory lock, and inserts. The lock
// serializes the check-then-write sequence across all API instances; the
// key/value store itself offers no transaction that could.
func (s *BookingService) Create(ctx context.Context, caller domain.TokenClaims, input ports.CreateBookingInput) (*domain.Booking, error) {
	if err := validateRange(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	acct, err := s.accounts.FindByEmail(ctx, caller.Email)
	if err != nil {
		return nil, err
	}

	lockStart := time.Now()
	release, err := s.lock.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()
	s.metrics.LockWait(time.Since(lockStart).Seconds())

	existing, err := s.bookings.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, b := range existing {
		if b.Overlaps(input.StartDate, input.EndDate) {
			s.metrics.BookingConflict()
			return nil, &domain.DateConflictError{Date: laterDate(input.StartDate, b.StartDate)}
		}
	}

	booking := &domain.Booking{
		ID:               uuid.NewString(),
		OwnerAccountID:   acct.ID,
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		Description:      input.Description,
		OptionSelections: input.OptionSelections,
		CreatedAt:        time.Now().UTC(),
	}
	if booking.OptionSelections == nil {
		booking.OptionSelections = map[string]bool{}
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.metrics.BookingCreated()
	s.logger.Info().
		Str("booking_id", booking.ID).
		Str("start", booking.StartDate).
		Str("end", booking.EndDate).
		Msg("booking created")
	return booking, nil
}

// Update merges the patch and persists. Dates are still checked for shape
// and order, but overlap against other bookings is deliberately not
// re-validated here: the admin edit path acts as an override.
func (s *BookingService) Update(ctx context.Context, id string, input ports.UpdateBookingInput) (*domain.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.StartDate != nil {
		booking.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		booking.EndDate = *input.EndDate
	}
	if input.Description != nil {
		booking.Description = *input.Description
	}
	if input.OptionSelections != nil {
		booking.OptionSelections = input.OptionSelections
	}

	if err := validateRange(booking.StartDate, booking.EndDate); err != nil {
		return nil, err
	}

	if err := s.bookings.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) Delete(ctx context.Context, id string) error {
	if err := s.bookings.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("booking_id", id).Msg("booking deleted")
	return nil
}

// validateRange checks both dates parse as YYYY-MM-DD and start < end.
func validateRange(start, end string) error {
	for _, d := range []string{start, end} {
		if _, err := time.Parse(domain.DateLayout, d); err != nil {
			return domain.ErrInvalidDate
		}
	}
	if start >= end {
		return domain.ErrInvalidRange
	}
	return nil
}

func laterDate(a, b string) string {
	if a > b {
		return a
	}
	return b
}
