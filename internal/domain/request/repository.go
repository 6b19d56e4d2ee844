package request

import (
	"context"

	"github.com/welderdefender/share-it/internal/pagination"
)

// Repository persists item requests.
type Repository interface {
	FindByID(ctx context.Context, id int64) (*Request, error)
	// FindByRequestorID returns the user's own requests, newest first.
	FindByRequestorID(ctx context.Context, requestorID int64) ([]*Request, error)
	// FindAllExcept returns other users' requests, newest first, paged.
	FindAllExcept(ctx context.Context, requestorID int64, page pagination.Page) ([]*Request, error)
	Save(ctx context.Context, r *Request) (*Request, error)
}
