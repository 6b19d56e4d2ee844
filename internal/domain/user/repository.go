package user

import "context"

// Repository is the identity-store contract. Saving a duplicate email must
// surface a domain conflict error.
type Repository interface {
	FindByID(ctx context.Context, id int64) (*User, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	FindAll(ctx context.Context) ([]*User, error)
	Save(ctx context.Context, u *User) (*User, error)
	Update(ctx context.Context, u *User) (*User, error)
	Delete(ctx context.Context, id int64) error
}
