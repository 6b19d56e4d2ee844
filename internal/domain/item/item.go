package item

import (
	"strings"
	"time"

	"github.com/welderdefender/share-it/internal/domain"
)

// Item is a lendable thing registered by its owner. Available gates whether
// new bookings may target it; RequestID links the item to the request it
// answers, when there is one.
type Item struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64
}

// Validate checks the fields required to persist a new item.
func (i Item) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return domain.NewValidationError("name must not be blank")
	}
	if strings.TrimSpace(i.Description) == "" {
		return domain.NewValidationError("description must not be blank")
	}
	return nil
}

// Comment is feedback left on an item by a user who has finished a booking
// of it.
type Comment struct {
	ID         int64
	Text       string
	ItemID     int64
	AuthorID   int64
	AuthorName string
	Created    time.Time
}
