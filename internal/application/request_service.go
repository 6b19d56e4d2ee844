package application

import (
	"context"
	"time"

	"github.com/welderdefender/share-it/internal/domain"
	itemDomain "github.com/welderdefender/share-it/internal/domain/item"
	requestDomain "github.com/welderdefender/share-it/internal/domain/request"
	userDomain "github.com/welderdefender/share-it/internal/domain/user"
	"github.com/welderdefender/share-it/internal/pagination"
	"go.uber.org/zap"
)

// CreateRequestRequest holds the description of a new item request.
type CreateRequestRequest struct {
	Description string `json:"description"`
}

// RequestService implements item-request use cases.
type RequestService struct {
	requests requestDomain.Repository
	users    userDomain.Repository
	items    itemDomain.Repository
	logger   *zap.Logger
	now      func() time.Time
}

// NewRequestService creates a new RequestService.
func NewRequestService(
	requests requestDomain.Repository,
	users userDomain.Repository,
	items itemDomain.Repository,
	logger *zap.Logger,
) *RequestService {
	return &RequestService{
		requests: requests,
		users:    users,
		items:    items,
		logger:   logger,
		now:      time.Now,
	}
}

// Create registers a new item request for the user.
func (s *RequestService) Create(ctx context.Context, userID int64, req CreateRequestRequest) (*RequestDTO, error) {
	if err := s.checkUserExists(ctx, userID); err != nil {
		return nil, err
	}

	r := requestDomain.Request{
		Description: req.Description,
		RequestorID: userID,
		Created:     s.now(),
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	saved, err := s.requests.Save(ctx, &r)
	if err != nil {
		return nil, err
	}
	s.logger.Info("request created",
		zap.Int64("request_id", saved.ID),
		zap.Int64("requestor_id", userID),
	)
	result := toRequestDTO(saved, nil)
	return &result, nil
}

// GetOwn lists the user's requests, newest first, each with the items
// answering it.
func (s *RequestService) GetOwn(ctx context.Context, userID int64) ([]RequestDTO, error) {
	if err := s.checkUserExists(ctx, userID); err != nil {
		return nil, err
	}
	requests, err := s.requests.FindByRequestorID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.withItems(ctx, requests)
}

// GetAll lists other users' requests, newest first, paged.
func (s *RequestService) GetAll(ctx context.Context, userID int64, from, size int) ([]RequestDTO, error) {
	page, err := pagination.New(from, size, pagination.Sort{Field: "created", Descending: true})
	if err != nil {
		return nil, err
	}
	if err := s.checkUserExists(ctx, userID); err != nil {
		return nil, err
	}
	requests, err := s.requests.FindAllExcept(ctx, userID, page)
	if err != nil {
		return nil, err
	}
	return s.withItems(ctx, requests)
}

// GetByID retrieves one request with its answering items.
func (s *RequestService) GetByID(ctx context.Context, userID, requestID int64) (*RequestDTO, error) {
	if err := s.checkUserExists(ctx, userID); err != nil {
		return nil, err
	}
	r, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	dtos, err := s.withItems(ctx, []*requestDomain.Request{r})
	if err != nil {
		return nil, err
	}
	return &dtos[0], nil
}

// withItems attaches answering items to each request in one catalog query.
func (s *RequestService) withItems(ctx context.Context, requests []*requestDomain.Request) ([]RequestDTO, error) {
	ids := make([]int64, len(requests))
	for i, r := range requests {
		ids[i] = r.ID
	}

	items, err := s.items.FindByRequestIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byRequest := make(map[int64][]ItemDTO)
	for _, it := range items {
		if it.RequestID == nil {
			continue
		}
		byRequest[*it.RequestID] = append(byRequest[*it.RequestID], toItemDTO(*it))
	}

	dtos := make([]RequestDTO, len(requests))
	for i, r := range requests {
		dtos[i] = toRequestDTO(r, byRequest[r.ID])
	}
	return dtos, nil
}

func (s *RequestService) checkUserExists(ctx context.Context, userID int64) error {
	exists, err := s.users.ExistsByID(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.NewNotFoundError("user", "user with this id was not found")
	}
	return nil
}
