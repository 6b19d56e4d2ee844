package item

import (
	"context"

	"github.com/welderdefender/share-it/internal/pagination"
)

// Repository is the catalog-store contract.
type Repository interface {
	FindByID(ctx context.Context, id int64) (*Item, error)
	// ExistsByOwnerID reports whether the user owns at least one item.
	ExistsByOwnerID(ctx context.Context, ownerID int64) (bool, error)
	FindByOwnerID(ctx context.Context, ownerID int64, page pagination.Page) ([]*Item, error)
	// FindByRequestIDs returns every item answering one of the given requests.
	FindByRequestIDs(ctx context.Context, requestIDs []int64) ([]*Item, error)
	// Search matches available items whose name or description contains the
	// text, case-insensitively.
	Search(ctx context.Context, text string, page pagination.Page) ([]*Item, error)
	Save(ctx context.Context, i *Item) (*Item, error)
	Update(ctx context.Context, i *Item) (*Item, error)
}

// CommentRepository persists item comments.
type CommentRepository interface {
	Save(ctx context.Context, c *Comment) (*Comment, error)
	FindByItemID(ctx context.Context, itemID int64) ([]*Comment, error)
}
