package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/welderdefender/share-it/internal/domain"
	bookingDomain "github.com/welderdefender/share-it/internal/domain/booking"
	"github.com/welderdefender/share-it/internal/pagination"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingModel is the GORM model for the bookings table.
type BookingModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	ItemID    int64     `gorm:"index;not null"`
	BookerID  int64     `gorm:"index;not null"`
	Status    string    `gorm:"size:20;index;not null"`
	StartDate time.Time `gorm:"column:start_date;index;not null"`
	EndDate   time.Time `gorm:"column:end_date;not null"`

	Item   ItemModel `gorm:"foreignKey:ItemID"`
	Booker UserModel `gorm:"foreignKey:BookerID"`
}

// TableName returns the table name for the GORM model.
func (BookingModel) TableName() string {
	return "bookings"
}

// GormBookingRepository is the GORM-based implementation of
// booking.Repository. Every listing shape pushes its predicate into SQL and
// preloads the item and booker snapshots.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository.
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// FindByID retrieves a booking with its item and booker populated.
func (r *GormBookingRepository) FindByID(ctx context.Context, id int64) (*bookingDomain.Booking, error) {
	var model BookingModel
	if err := r.db.WithContext(ctx).Preload("Item").Preload("Booker").First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("booking", "booking with this id was not found")
		}
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}
	return toDomainBooking(&model), nil
}

// Save persists a new booking and assigns its id.
func (r *GormBookingRepository) Save(ctx context.Context, b *bookingDomain.Booking) (*bookingDomain.Booking, error) {
	model := BookingModel{
		ItemID:    b.Item().ID,
		BookerID:  b.Booker().ID,
		Status:    b.Status().String(),
		StartDate: b.Start(),
		EndDate:   b.End(),
	}
	if err := r.db.WithContext(ctx).Omit("Item", "Booker").Create(&model).Error; err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}
	b.SetID(model.ID)
	return b, nil
}

// UpdateStatus loads the booking under a row lock, applies decide and writes
// the resulting status, all in one transaction. Two concurrent decisions on
// the same WAITING booking therefore cannot both succeed.
func (r *GormBookingRepository) UpdateStatus(ctx context.Context, id int64, decide func(*bookingDomain.Booking) error) (*bookingDomain.Booking, error) {
	var result *bookingDomain.Booking
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model BookingModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NewNotFoundError("booking", "booking with this id was not found")
			}
			return fmt.Errorf("failed to lock booking: %w", err)
		}
		if err := tx.First(&model.Item, model.ItemID).Error; err != nil {
			return fmt.Errorf("failed to load booked item: %w", err)
		}
		if err := tx.First(&model.Booker, model.BookerID).Error; err != nil {
			return fmt.Errorf("failed to load booker: %w", err)
		}

		b := toDomainBooking(&model)
		if err := decide(b); err != nil {
			return err
		}

		if err := tx.Model(&BookingModel{}).Where("id = ?", id).
			Update("status", b.Status().String()).Error; err != nil {
			return fmt.Errorf("failed to update booking status: %w", err)
		}
		result = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// FindByBookerID returns the booker's bookings matching the filter, ordered
// and paged per the page spec.
func (r *GormBookingRepository) FindByBookerID(ctx context.Context, bookerID int64, filter bookingDomain.StateFilter, now time.Time, page pagination.Page) ([]*bookingDomain.Booking, error) {
	q := r.db.WithContext(ctx).Model(&BookingModel{}).Where("bookings.booker_id = ?", bookerID)
	q = applyStateFilter(q, filter, now)

	var models []BookingModel
	if err := q.Preload("Item").Preload("Booker").
		Order(orderClause(page.Sort(), "bookings.start_date DESC")).
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find bookings by booker: %w", err)
	}
	return toDomainBookings(models), nil
}

// FindByOwnerID returns bookings of items owned by the user, matching the
// filter, ordered and paged per the page spec.
func (r *GormBookingRepository) FindByOwnerID(ctx context.Context, ownerID int64, filter bookingDomain.StateFilter, now time.Time, page pagination.Page) ([]*bookingDomain.Booking, error) {
	q := r.db.WithContext(ctx).Model(&BookingModel{}).
		Joins("JOIN items ON items.id = bookings.item_id").
		Where("items.owner_id = ?", ownerID)
	q = applyStateFilter(q, filter, now)

	var models []BookingModel
	if err := q.Preload("Item").Preload("Booker").
		Order(orderClause(page.Sort(), "bookings.start_date DESC")).
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find bookings by owner: %w", err)
	}
	return toDomainBookings(models), nil
}

// FindLastForItem returns the item's most recent already-ended booking, or
// nil when the item has no past bookings.
func (r *GormBookingRepository) FindLastForItem(ctx context.Context, itemID int64, now time.Time) (*bookingDomain.Booking, error) {
	return r.findOne(ctx, r.db.WithContext(ctx).
		Where("item_id = ? AND end_date < ?", itemID, now).
		Order("start_date DESC"))
}

// FindNextForItem returns the item's earliest not-yet-started booking, or nil
// when the item has no upcoming bookings.
func (r *GormBookingRepository) FindNextForItem(ctx context.Context, itemID int64, now time.Time) (*bookingDomain.Booking, error) {
	return r.findOne(ctx, r.db.WithContext(ctx).
		Where("item_id = ? AND start_date > ?", itemID, now).
		Order("start_date ASC"))
}

// FindFirstEndingByItemAndBooker returns the booker's earliest-ending booking
// of the item, or nil when there is none.
func (r *GormBookingRepository) FindFirstEndingByItemAndBooker(ctx context.Context, itemID, bookerID int64) (*bookingDomain.Booking, error) {
	return r.findOne(ctx, r.db.WithContext(ctx).
		Where("item_id = ? AND booker_id = ?", itemID, bookerID).
		Order("end_date ASC"))
}

// findOne runs a single-row booking query where absence is a normal outcome.
func (r *GormBookingRepository) findOne(ctx context.Context, q *gorm.DB) (*bookingDomain.Booking, error) {
	var model BookingModel
	if err := q.Preload("Item").Preload("Booker").First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query booking: %w", err)
	}
	return toDomainBooking(&model), nil
}

// applyStateFilter narrows a bookings query to the given state. Time-relative
// states compare against now, the wall-clock read the caller took once;
// status-valued states match the stored column.
func applyStateFilter(q *gorm.DB, filter bookingDomain.StateFilter, now time.Time) *gorm.DB {
	switch filter {
	case bookingDomain.FilterAll:
		return q
	case bookingDomain.FilterCurrent:
		return q.Where("bookings.start_date <= ? AND bookings.end_date >= ?", now, now)
	case bookingDomain.FilterPast:
		return q.Where("bookings.end_date < ?", now)
	case bookingDomain.FilterFuture:
		return q.Where("bookings.start_date > ?", now)
	default:
		status, _ := filter.Status()
		return q.Where("bookings.status = ?", status.String())
	}
}

// --- Conversion helpers ---

func toDomainBooking(m *BookingModel) *bookingDomain.Booking {
	status, err := bookingDomain.ParseStatus(m.Status)
	if err != nil {
		// Unreachable with a consistent schema; treat as terminal.
		status = bookingDomain.StatusCanceled
	}
	return bookingDomain.Reconstruct(
		m.ID,
		toDomainItem(&m.Item),
		toDomainUser(&m.Booker),
		status,
		m.StartDate,
		m.EndDate,
	)
}

func toDomainBookings(models []BookingModel) []*bookingDomain.Booking {
	bookings := make([]*bookingDomain.Booking, len(models))
	for i := range models {
		bookings[i] = toDomainBooking(&models[i])
	}
	return bookings
}
