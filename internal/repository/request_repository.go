package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/welderdefender/share-it/internal/domain"
	requestDomain "github.com/welderdefender/share-it/internal/domain/request"
	"github.com/welderdefender/share-it/internal/pagination"
	"gorm.io/gorm"
)

// RequestModel is the GORM model for the requests table.
type RequestModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Description string    `gorm:"size:1000;not null"`
	RequestorID int64     `gorm:"index;not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (RequestModel) TableName() string {
	return "requests"
}

// GormRequestRepository is the GORM-based implementation of
// request.Repository.
type GormRequestRepository struct {
	db *gorm.DB
}

// NewGormRequestRepository creates a new GormRequestRepository.
func NewGormRequestRepository(db *gorm.DB) *GormRequestRepository {
	return &GormRequestRepository{db: db}
}

// FindByID retrieves a request by id.
func (r *GormRequestRepository) FindByID(ctx context.Context, id int64) (*requestDomain.Request, error) {
	var model RequestModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("request", "request with this id was not found")
		}
		return nil, fmt.Errorf("failed to find request: %w", err)
	}
	req := toDomainRequest(&model)
	return &req, nil
}

// FindByRequestorID returns the user's own requests, newest first.
func (r *GormRequestRepository) FindByRequestorID(ctx context.Context, requestorID int64) ([]*requestDomain.Request, error) {
	var models []RequestModel
	if err := r.db.WithContext(ctx).
		Where("requestor_id = ?", requestorID).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find requests by requestor: %w", err)
	}
	return toDomainRequests(models), nil
}

// FindAllExcept returns other users' requests, newest first, paged.
func (r *GormRequestRepository) FindAllExcept(ctx context.Context, requestorID int64, page pagination.Page) ([]*requestDomain.Request, error) {
	var models []RequestModel
	if err := r.db.WithContext(ctx).
		Where("requestor_id <> ?", requestorID).
		Order(orderClause(page.Sort(), "created_at DESC")).
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find requests: %w", err)
	}
	return toDomainRequests(models), nil
}

// Save persists a new request.
func (r *GormRequestRepository) Save(ctx context.Context, req *requestDomain.Request) (*requestDomain.Request, error) {
	model := RequestModel{
		Description: req.Description,
		RequestorID: req.RequestorID,
		CreatedAt:   req.Created,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return nil, fmt.Errorf("failed to save request: %w", err)
	}
	saved := toDomainRequest(&model)
	return &saved, nil
}

// --- Conversion helpers ---

func toDomainRequest(m *RequestModel) requestDomain.Request {
	return requestDomain.Request{
		ID:          m.ID,
		Description: m.Description,
		RequestorID: m.RequestorID,
		Created:     m.CreatedAt,
	}
}

func toDomainRequests(models []RequestModel) []*requestDomain.Request {
	requests := make([]*requestDomain.Request, len(models))
	for i, m := range models {
		req := toDomainRequest(&m)
		requests[i] = &req
	}
	return requests
}
