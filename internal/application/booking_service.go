package application

import (
	"context"
	"time"

	"github.com/welderdefender/share-it/internal/domain"
	bookingDomain "github.com/welderdefender/share-it/internal/domain/booking"
	itemDomain "github.com/welderdefender/share-it/internal/domain/item"
	userDomain "github.com/welderdefender/share-it/internal/domain/user"
	"github.com/welderdefender/share-it/internal/events"
	"github.com/welderdefender/share-it/internal/pagination"
	"go.uber.org/zap"
)

// sortByStartDesc is the one ordering every booking listing uses. Item views
// derive their last/next decoration from it, so it never varies per filter.
var sortByStartDesc = pagination.Sort{Field: "start", Descending: true}

// CreateBookingRequest holds the data needed to create a booking.
type CreateBookingRequest struct {
	ItemID int64     `json:"itemId" binding:"required"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
}

// BookingService orchestrates booking creation, the approval state machine,
// authorization-aware retrieval and filtered listing. It holds no state
// between calls; every operation re-reads the store.
type BookingService struct {
	bookings  bookingDomain.Repository
	users     userDomain.Repository
	items     itemDomain.Repository
	publisher *events.Publisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewBookingService creates a new BookingService. A nil publisher disables
// event publishing.
func NewBookingService(
	bookings bookingDomain.Repository,
	users userDomain.Repository,
	items itemDomain.Repository,
	publisher *events.Publisher,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		bookings:  bookings,
		users:     users,
		items:     items,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// Create books an item for the requester over the given window in WAITING
// status. An owner booking their own item gets the same not-found answer as
// for an item that does not exist. Overlap with existing bookings on the item
// is not checked.
func (s *BookingService) Create(ctx context.Context, requesterID int64, req CreateBookingRequest) (*BookingDTO, error) {
	it, err := s.items.FindByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	if !it.Available {
		return nil, domain.NewValidationError("item is unavailable and cannot be booked")
	}
	booker, err := s.users.FindByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if requesterID == it.OwnerID {
		return nil, domain.NewNotFoundError("item", "owner cannot book their own item")
	}

	b, err := bookingDomain.NewBooking(*it, *booker, req.Start, req.End, s.now())
	if err != nil {
		return nil, err
	}

	saved, err := s.bookings.Save(ctx, b)
	if err != nil {
		return nil, err
	}

	s.publisher.BookingChanged(ctx, events.BookingCreated, saved)
	s.logger.Info("booking created",
		zap.Int64("booking_id", saved.ID()),
		zap.Int64("item_id", it.ID),
		zap.Int64("booker_id", requesterID),
	)

	result := toBookingDTO(saved)
	return &result, nil
}

// SetApproval resolves a WAITING booking to APPROVED or REJECTED. Only the
// booked item's owner may decide, and only once; the status read and write
// happen in one storage transaction.
func (s *BookingService) SetApproval(ctx context.Context, actorID, bookingID int64, approve bool) (*BookingDTO, error) {
	updated, err := s.bookings.UpdateStatus(ctx, bookingID, func(b *bookingDomain.Booking) error {
		if !b.IsOwnedBy(actorID) {
			return domain.NewNotFoundError("booking", "booking with this id was not found")
		}
		return b.Decide(approve)
	})
	if err != nil {
		return nil, err
	}

	eventType := events.BookingRejected
	if approve {
		eventType = events.BookingApproved
	}
	s.publisher.BookingChanged(ctx, eventType, updated)
	s.logger.Info("booking decided",
		zap.Int64("booking_id", bookingID),
		zap.String("status", updated.Status().String()),
	)

	result := toBookingDTO(updated)
	return &result, nil
}

// GetByID retrieves a booking for the item's owner or the booker. Anyone
// else gets the not-found answer.
func (s *BookingService) GetByID(ctx context.Context, actorID, bookingID int64) (*BookingDTO, error) {
	b, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !b.IsVisibleTo(actorID) {
		return nil, domain.NewNotFoundError("booking", "booking with this id was not found")
	}
	result := toBookingDTO(b)
	return &result, nil
}

// GetBookerBookings lists the booker's bookings matching the filter, newest
// start first. Pagination is validated before any storage access.
func (s *BookingService) GetBookerBookings(ctx context.Context, bookerID int64, filter bookingDomain.StateFilter, from, size int) ([]BookingDTO, error) {
	page, err := pagination.New(from, size, sortByStartDesc)
	if err != nil {
		return nil, err
	}

	exists, err := s.users.ExistsByID(ctx, bookerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.NewNotFoundError("user", "user with this id was not found")
	}

	bookings, err := s.bookings.FindByBookerID(ctx, bookerID, filter, s.now(), page)
	if err != nil {
		return nil, err
	}
	return toBookingDTOs(bookings), nil
}

// GetOwnerBookings lists bookings of the owner's items matching the filter,
// newest start first. The owner must have at least one item.
func (s *BookingService) GetOwnerBookings(ctx context.Context, ownerID int64, filter bookingDomain.StateFilter, from, size int) ([]BookingDTO, error) {
	page, err := pagination.New(from, size, sortByStartDesc)
	if err != nil {
		return nil, err
	}

	hasItems, err := s.items.ExistsByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !hasItems {
		return nil, domain.NewNotFoundError("user", "this user has no items")
	}

	bookings, err := s.bookings.FindByOwnerID(ctx, ownerID, filter, s.now(), page)
	if err != nil {
		return nil, err
	}
	return toBookingDTOs(bookings), nil
}

// GetLastBooking returns the item's most recent already-ended booking, or
// nil when there is none. Consumed by item detail views.
func (s *BookingService) GetLastBooking(ctx context.Context, itemID int64) (*BookingRefDTO, error) {
	b, err := s.bookings.FindLastForItem(ctx, itemID, s.now())
	if err != nil {
		return nil, err
	}
	return toBookingRefDTO(b), nil
}

// GetNextBooking returns the item's earliest upcoming booking, or nil when
// there is none. Consumed by item detail views.
func (s *BookingService) GetNextBooking(ctx context.Context, itemID int64) (*BookingRefDTO, error) {
	b, err := s.bookings.FindNextForItem(ctx, itemID, s.now())
	if err != nil {
		return nil, err
	}
	return toBookingRefDTO(b), nil
}
