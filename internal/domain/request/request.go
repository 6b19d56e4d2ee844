package request

import (
	"strings"
	"time"

	"github.com/welderdefender/share-it/internal/domain"
)

// Request is a user's ask for an item nobody has listed yet. Items created in
// answer to it carry its id.
type Request struct {
	ID          int64
	Description string
	RequestorID int64
	Created     time.Time
}

// Validate checks the fields required to persist a new request.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Description) == "" {
		return domain.NewValidationError("description must not be blank")
	}
	return nil
}
