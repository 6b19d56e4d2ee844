package booking

import (
	"context"
	"time"

	"github.com/welderdefender/share-it/internal/pagination"
)

// Repository defines the persistence contract for bookings. Listing queries
// push the state predicate into storage and return snapshots with item and
// booker populated, sorted by the page's sort spec. The now argument is the
// single wall-clock read the time-relative filters evaluate against.
type Repository interface {
	// FindByID retrieves a booking by its identifier.
	FindByID(ctx context.Context, id int64) (*Booking, error)

	// Save persists a new booking and returns it with its assigned id.
	Save(ctx context.Context, b *Booking) (*Booking, error)

	// UpdateStatus atomically loads the booking, applies decide, and persists
	// the resulting status. The read and write happen inside one transaction
	// so two concurrent decisions on the same WAITING booking cannot both
	// succeed. Errors from decide abort the transaction.
	UpdateStatus(ctx context.Context, id int64, decide func(*Booking) error) (*Booking, error)

	// FindByBookerID returns the booker's bookings matching the filter.
	FindByBookerID(ctx context.Context, bookerID int64, filter StateFilter, now time.Time, page pagination.Page) ([]*Booking, error)

	// FindByOwnerID returns bookings of items owned by the user, matching
	// the filter.
	FindByOwnerID(ctx context.Context, ownerID int64, filter StateFilter, now time.Time, page pagination.Page) ([]*Booking, error)

	// FindLastForItem returns the item's most recent booking that already
	// ended, or nil if there is none.
	FindLastForItem(ctx context.Context, itemID int64, now time.Time) (*Booking, error)

	// FindNextForItem returns the item's earliest booking that has not yet
	// started, or nil if there is none.
	FindNextForItem(ctx context.Context, itemID int64, now time.Time) (*Booking, error)

	// FindFirstEndingByItemAndBooker returns the booker's earliest-ending
	// booking of the item, or nil if there is none. Used to decide comment
	// eligibility.
	FindFirstEndingByItemAndBooker(ctx context.Context, itemID, bookerID int64) (*Booking, error)
}
