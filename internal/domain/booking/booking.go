package booking

import (
	"time"

	"github.com/welderdefender/share-it/internal/domain"
	"github.com/welderdefender/share-it/internal/domain/item"
	"github.com/welderdefender/share-it/internal/domain/user"
)

// Booking is the aggregate root for a reservation of an item over a time
// window. Item and booker snapshots are fixed for the booking's lifetime;
// only status ever changes, and only once.
type Booking struct {
	id     int64
	item   item.Item
	booker user.User
	status Status
	start  time.Time
	end    time.Time
}

// NewBooking creates a Booking in WAITING status. The window must be strictly
// ordered and must not start in the past. No overlap check against other
// bookings on the same item is performed; overlapping reservations are
// allowed to coexist.
func NewBooking(it item.Item, booker user.User, start, end, now time.Time) (*Booking, error) {
	if start.Before(now) {
		return nil, domain.NewValidationError("start must not be in the past")
	}
	if !start.Before(end) {
		return nil, domain.NewValidationError("start must be strictly before end")
	}
	return &Booking{
		item:   it,
		booker: booker,
		status: StatusWaiting,
		start:  start,
		end:    end,
	}, nil
}

// Reconstruct rebuilds a Booking from persistence data (no validation).
func Reconstruct(id int64, it item.Item, booker user.User, status Status, start, end time.Time) *Booking {
	return &Booking{
		id:     id,
		item:   it,
		booker: booker,
		status: status,
		start:  start,
		end:    end,
	}
}

// ID returns the booking's identifier, zero until persisted.
func (b *Booking) ID() int64 { return b.id }

// Item returns the booked item snapshot.
func (b *Booking) Item() item.Item { return b.item }

// Booker returns the booking user snapshot.
func (b *Booking) Booker() user.User { return b.booker }

// Status returns the current lifecycle status.
func (b *Booking) Status() Status { return b.status }

// Start returns the beginning of the booking window.
func (b *Booking) Start() time.Time { return b.start }

// End returns the end of the booking window.
func (b *Booking) End() time.Time { return b.end }

// SetID assigns the persistence-generated identifier.
func (b *Booking) SetID(id int64) { b.id = id }

// Decide resolves a WAITING booking to APPROVED or REJECTED. Any call on a
// booking that already left WAITING fails, regardless of the requested value.
func (b *Booking) Decide(approve bool) error {
	target := StatusRejected
	if approve {
		target = StatusApproved
	}
	if !b.status.CanTransitionTo(target) {
		return domain.NewValidationError("cannot change status")
	}
	b.status = target
	return nil
}

// IsOwnedBy reports whether the given user owns the booked item.
func (b *Booking) IsOwnedBy(userID int64) bool {
	return b.item.OwnerID == userID
}

// IsBookedBy reports whether the given user made the booking.
func (b *Booking) IsBookedBy(userID int64) bool {
	return b.booker.ID == userID
}

// IsVisibleTo reports whether the given user may retrieve the booking: only
// the item's owner and the booker see it. Everyone else gets the same answer
// as for a booking that does not exist.
func (b *Booking) IsVisibleTo(userID int64) bool {
	return b.IsOwnedBy(userID) || b.IsBookedBy(userID)
}
