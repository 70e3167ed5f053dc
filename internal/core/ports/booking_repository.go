package ports

import (
	"context"

	"github.com/vistamar/pousada-api/internal/core/domain"
)

// BookingRepository defines persistence for bookings, keyed by booking id.
// The store offers no cross-key transactions; the service layer is
// responsible for serializing the check-then-write create sequence.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	// List returns every booking in insertion order.
	List(ctx context.Context) ([]*domain.Booking, error)
	// ListByOwner returns the bookings owned by the given account.
	ListByOwner(ctx context.Context, ownerAccountID string) ([]*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	Delete(ctx context.Context, id string) error
}

// CreateLock is the advisory lock that serializes booking creation across
// all API instances, closing the race between the overlap scan and the
// insert. Acquire blocks until the lock is held or ctx is done; the
// returned function releases it.
type CreateLock interface {
	Acquire(ctx context.Context) (release func(), err error)
}
