package repository

import (
	"context"
	"fmt"
	"time"

	itemDomain "github.com/welderdefender/share-it/internal/domain/item"
	"gorm.io/gorm"
)

// CommentModel is the GORM model for the comments table.
type CommentModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Text      string    `gorm:"size:2000;not null"`
	ItemID    int64     `gorm:"index;not null"`
	AuthorID  int64     `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`

	Author UserModel `gorm:"foreignKey:AuthorID"`
}

// TableName returns the table name for the GORM model.
func (CommentModel) TableName() string {
	return "comments"
}

// GormCommentRepository is the GORM-based implementation of
// item.CommentRepository.
type GormCommentRepository struct {
	db *gorm.DB
}

// NewGormCommentRepository creates a new GormCommentRepository.
func NewGormCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

// Save persists a new comment.
func (r *GormCommentRepository) Save(ctx context.Context, c *itemDomain.Comment) (*itemDomain.Comment, error) {
	model := CommentModel{
		Text:      c.Text,
		ItemID:    c.ItemID,
		AuthorID:  c.AuthorID,
		CreatedAt: c.Created,
	}
	if err := r.db.WithContext(ctx).Omit("Author").Create(&model).Error; err != nil {
		return nil, fmt.Errorf("failed to save comment: %w", err)
	}
	saved := *c
	saved.ID = model.ID
	return &saved, nil
}

// FindByItemID retrieves every comment on the item with author names
// populated.
func (r *GormCommentRepository) FindByItemID(ctx context.Context, itemID int64) ([]*itemDomain.Comment, error) {
	var models []CommentModel
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("item_id = ?", itemID).
		Order("created_at ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find comments: %w", err)
	}

	comments := make([]*itemDomain.Comment, len(models))
	for i, m := range models {
		comments[i] = &itemDomain.Comment{
			ID:         m.ID,
			Text:       m.Text,
			ItemID:     m.ItemID,
			AuthorID:   m.AuthorID,
			AuthorName: m.Author.Name,
			Created:    m.CreatedAt,
		}
	}
	return comments, nil
}
