package user

import (
	"strings"

	"github.com/welderdefender/share-it/internal/domain"
)

// User is an account record owned by the identity store. Email is unique
// across the system.
type User struct {
	ID    int64
	Name  string
	Email string
}

// Validate checks the fields required to persist a new user.
func (u User) Validate() error {
	if strings.TrimSpace(u.Email) == "" {
		return domain.NewValidationError("email must not be blank")
	}
	if !strings.Contains(u.Email, "@") {
		return domain.NewValidationError("email is malformed")
	}
	if strings.TrimSpace(u.Name) == "" {
		return domain.NewValidationError("name must not be blank")
	}
	return nil
}
