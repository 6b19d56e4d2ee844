package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/welderdefender/share-it/internal/domain"
	itemDomain "github.com/welderdefender/share-it/internal/domain/item"
	"github.com/welderdefender/share-it/internal/pagination"
	"gorm.io/gorm"
)

// ItemModel is the GORM model for the items table.
type ItemModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"size:255;not null"`
	Description string `gorm:"size:1000;not null"`
	Available   bool   `gorm:"not null"`
	OwnerID     int64  `gorm:"index;not null"`
	RequestID   *int64 `gorm:"index"`
}

// TableName returns the table name for the GORM model.
func (ItemModel) TableName() string {
	return "items"
}

// GormItemRepository is the GORM-based implementation of item.Repository.
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GormItemRepository.
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// FindByID retrieves an item by id.
func (r *GormItemRepository) FindByID(ctx context.Context, id int64) (*itemDomain.Item, error) {
	var model ItemModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("item", "item with this id was not found")
		}
		return nil, fmt.Errorf("failed to find item: %w", err)
	}
	i := toDomainItem(&model)
	return &i, nil
}

// ExistsByOwnerID reports whether the user owns at least one item.
func (r *GormItemRepository) ExistsByOwnerID(ctx context.Context, ownerID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ItemModel{}).Where("owner_id = ?", ownerID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count items by owner: %w", err)
	}
	return count > 0, nil
}

// FindByOwnerID retrieves the owner's items with the given page applied.
func (r *GormItemRepository) FindByOwnerID(ctx context.Context, ownerID int64, page pagination.Page) ([]*itemDomain.Item, error) {
	var models []ItemModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order(orderClause(page.Sort(), "id ASC")).
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find items by owner: %w", err)
	}
	return toDomainItems(models), nil
}

// FindByRequestIDs returns every item answering one of the given requests.
func (r *GormItemRepository) FindByRequestIDs(ctx context.Context, requestIDs []int64) ([]*itemDomain.Item, error) {
	if len(requestIDs) == 0 {
		return nil, nil
	}
	var models []ItemModel
	if err := r.db.WithContext(ctx).Where("request_id IN ?", requestIDs).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find items by request: %w", err)
	}
	return toDomainItems(models), nil
}

// Search matches available items whose name or description contains the text,
// case-insensitively.
func (r *GormItemRepository) Search(ctx context.Context, text string, page pagination.Page) ([]*itemDomain.Item, error) {
	pattern := "%" + text + "%"
	var models []ItemModel
	if err := r.db.WithContext(ctx).
		Where("available = true AND (name ILIKE ? OR description ILIKE ?)", pattern, pattern).
		Order("id ASC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to search items: %w", err)
	}
	return toDomainItems(models), nil
}

// Save persists a new item.
func (r *GormItemRepository) Save(ctx context.Context, i *itemDomain.Item) (*itemDomain.Item, error) {
	model := toItemModel(i)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return nil, fmt.Errorf("failed to save item: %w", err)
	}
	saved := toDomainItem(&model)
	return &saved, nil
}

// Update persists changes to an existing item.
func (r *GormItemRepository) Update(ctx context.Context, i *itemDomain.Item) (*itemDomain.Item, error) {
	model := toItemModel(i)
	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	saved := toDomainItem(&model)
	return &saved, nil
}

// --- Conversion helpers ---

func toDomainItem(m *ItemModel) itemDomain.Item {
	return itemDomain.Item{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Available:   m.Available,
		OwnerID:     m.OwnerID,
		RequestID:   m.RequestID,
	}
}

func toDomainItems(models []ItemModel) []*itemDomain.Item {
	items := make([]*itemDomain.Item, len(models))
	for i, m := range models {
		it := toDomainItem(&m)
		items[i] = &it
	}
	return items
}

func toItemModel(i *itemDomain.Item) ItemModel {
	return ItemModel{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		OwnerID:     i.OwnerID,
		RequestID:   i.RequestID,
	}
}

// orderClause maps a domain sort field to its column, falling back to def
// when the sort is unset.
func orderClause(s pagination.Sort, def string) string {
	col, ok := sortColumns[s.Field]
	if !ok {
		return def
	}
	if s.Descending {
		return col + " DESC"
	}
	return col + " ASC"
}

var sortColumns = map[string]string{
	"id":      "id",
	"start":   "bookings.start_date",
	"created": "created_at",
}
