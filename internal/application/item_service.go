package application

import (
	"context"
	"strings"
	"time"

	"github.com/welderdefender/share-it/internal/domain"
	bookingDomain "github.com/welderdefender/share-it/internal/domain/booking"
	itemDomain "github.com/welderdefender/share-it/internal/domain/item"
	requestDomain "github.com/welderdefender/share-it/internal/domain/request"
	userDomain "github.com/welderdefender/share-it/internal/domain/user"
	"github.com/welderdefender/share-it/internal/pagination"
	"go.uber.org/zap"
)

// BookingLookup is the slice of the reservation engine the catalog consumes
// to decorate item views.
type BookingLookup interface {
	GetLastBooking(ctx context.Context, itemID int64) (*BookingRefDTO, error)
	GetNextBooking(ctx context.Context, itemID int64) (*BookingRefDTO, error)
}

// CreateItemRequest holds the data needed to register an item.
type CreateItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
	RequestID   *int64 `json:"requestId"`
}

// UpdateItemRequest holds a partial item update; nil fields are untouched.
type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

// CreateCommentRequest holds the text of a new item comment.
type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// ItemService implements catalog use cases: item CRUD, search and comments.
type ItemService struct {
	items    itemDomain.Repository
	users    userDomain.Repository
	requests requestDomain.Repository
	comments itemDomain.CommentRepository
	bookings bookingDomain.Repository
	lookup   BookingLookup
	logger   *zap.Logger
	now      func() time.Time
}

// NewItemService creates a new ItemService.
func NewItemService(
	items itemDomain.Repository,
	users userDomain.Repository,
	requests requestDomain.Repository,
	comments itemDomain.CommentRepository,
	bookings bookingDomain.Repository,
	lookup BookingLookup,
	logger *zap.Logger,
) *ItemService {
	return &ItemService{
		items:    items,
		users:    users,
		requests: requests,
		comments: comments,
		bookings: bookings,
		lookup:   lookup,
		logger:   logger,
		now:      time.Now,
	}
}

// Create registers a new item for the owner. When the item answers a
// request, that request must exist.
func (s *ItemService) Create(ctx context.Context, ownerID int64, req CreateItemRequest) (*ItemDTO, error) {
	if err := s.checkUserExists(ctx, ownerID); err != nil {
		return nil, err
	}
	if req.Available == nil {
		return nil, domain.NewValidationError("available must not be null")
	}

	it := itemDomain.Item{
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
		OwnerID:     ownerID,
		RequestID:   req.RequestID,
	}
	if err := it.Validate(); err != nil {
		return nil, err
	}
	if req.RequestID != nil {
		if _, err := s.requests.FindByID(ctx, *req.RequestID); err != nil {
			return nil, err
		}
	}

	saved, err := s.items.Save(ctx, &it)
	if err != nil {
		return nil, err
	}
	s.logger.Info("item created",
		zap.Int64("item_id", saved.ID),
		zap.Int64("owner_id", ownerID),
	)
	result := toItemDTO(*saved)
	return &result, nil
}

// Update patches an item. Only the owner may change it.
func (s *ItemService) Update(ctx context.Context, userID, itemID int64, req UpdateItemRequest) (*ItemDTO, error) {
	if err := s.checkUserExists(ctx, userID); err != nil {
		return nil, err
	}
	it, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if it.OwnerID != userID {
		return nil, domain.NewNoAccessError("user has no access to this item")
	}

	if req.Name != nil {
		it.Name = *req.Name
	}
	if req.Description != nil {
		it.Description = *req.Description
	}
	if req.Available != nil {
		it.Available = *req.Available
	}

	saved, err := s.items.Update(ctx, it)
	if err != nil {
		return nil, err
	}
	result := toItemDTO(*saved)
	return &result, nil
}

// GetByID returns the item with its comments. The owner additionally sees
// the last and next booking.
func (s *ItemService) GetByID(ctx context.Context, userID, itemID int64) (*ItemDetailDTO, error) {
	it, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	comments, err := s.comments.FindByItemID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	commentDTOs := make([]CommentDTO, len(comments))
	for i, c := range comments {
		commentDTOs[i] = toCommentDTO(c)
	}

	detail := &ItemDetailDTO{ItemDTO: toItemDTO(*it), Comments: commentDTOs}
	if it.OwnerID == userID {
		if err := s.decorate(ctx, detail); err != nil {
			return nil, err
		}
	}
	return detail, nil
}

// GetByOwner lists the owner's items, id ascending, each decorated with its
// last and next booking.
func (s *ItemService) GetByOwner(ctx context.Context, ownerID int64, from, size int) ([]ItemDetailDTO, error) {
	page, err := pagination.New(from, size, pagination.Sort{Field: "id"})
	if err != nil {
		return nil, err
	}

	items, err := s.items.FindByOwnerID(ctx, ownerID, page)
	if err != nil {
		return nil, err
	}

	details := make([]ItemDetailDTO, len(items))
	for i, it := range items {
		details[i] = ItemDetailDTO{ItemDTO: toItemDTO(*it), Comments: []CommentDTO{}}
		if err := s.decorate(ctx, &details[i]); err != nil {
			return nil, err
		}
	}
	return details, nil
}

// Search finds available items matching the text. Blank text yields an empty
// result without touching storage.
func (s *ItemService) Search(ctx context.Context, text string, from, size int) ([]ItemDTO, error) {
	page, err := pagination.Unsorted(from, size)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return []ItemDTO{}, nil
	}

	items, err := s.items.Search(ctx, text, page)
	if err != nil {
		return nil, err
	}
	dtos := make([]ItemDTO, len(items))
	for i, it := range items {
		dtos[i] = toItemDTO(*it)
	}
	return dtos, nil
}

// CreateComment adds a comment to an item. Only a user whose booking of the
// item has already ended may comment.
func (s *ItemService) CreateComment(ctx context.Context, userID, itemID int64, req CreateCommentRequest) (*CommentDTO, error) {
	it, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	author, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	b, err := s.bookings.FindFirstEndingByItemAndBooker(ctx, itemID, userID)
	if err != nil {
		return nil, err
	}
	if b == nil || b.End().After(s.now()) {
		return nil, domain.NewValidationError("this user cannot comment on this item")
	}

	comment := &itemDomain.Comment{
		Text:       req.Text,
		ItemID:     it.ID,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Created:    s.now(),
	}
	saved, err := s.comments.Save(ctx, comment)
	if err != nil {
		return nil, err
	}
	s.logger.Info("comment created",
		zap.Int64("item_id", itemID),
		zap.Int64("author_id", userID),
	)
	result := toCommentDTO(saved)
	return &result, nil
}

func (s *ItemService) decorate(ctx context.Context, detail *ItemDetailDTO) error {
	last, err := s.lookup.GetLastBooking(ctx, detail.ID)
	if err != nil {
		return err
	}
	next, err := s.lookup.GetNextBooking(ctx, detail.ID)
	if err != nil {
		return err
	}
	detail.LastBooking = last
	detail.NextBooking = next
	return nil
}

func (s *ItemService) checkUserExists(ctx context.Context, userID int64) error {
	exists, err := s.users.ExistsByID(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.NewNotFoundError("user", "user with this id was not found")
	}
	return nil
}
