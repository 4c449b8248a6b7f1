package repository

import (
	"context"

	"creel/internal/models"

	"gorm.io/gorm"
)

// CommentRepository defines the interface for post comment data operations.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.PostComment) error
	GetByID(ctx context.Context, id uint) (*models.PostComment, error)
	PostID(ctx context.Context, id uint) (uint, error)
	Exists(ctx context.Context, id uint) (bool, error)
	ListByPost(ctx context.Context, postID uint) ([]*models.PostComment, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]any) error
	Delete(ctx context.Context, id uint) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.PostComment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.PostComment, error) {
	var comment models.PostComment
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("User.Profile").
		Preload("Replies").
		First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// PostID returns the owning post of a comment without loading the thread.
func (r *commentRepository) PostID(ctx context.Context, id uint) (uint, error) {
	var comment models.PostComment
	err := r.db.WithContext(ctx).
		Select("id", "post_id").
		First(&comment, id).Error
	if err != nil {
		return 0, err
	}
	return comment.PostID, nil
}

func (r *commentRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.PostComment{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

// ListByPost returns the comments of a post with author and replies, oldest
// first so threads read top to bottom.
func (r *commentRepository) ListByPost(ctx context.Context, postID uint) ([]*models.PostComment, error) {
	var comments []*models.PostComment
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("User.Profile").
		Preload("Replies").
		Where("post_id = ?", postID).
		Order("created_date ASC").
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	return updateEntityFields(r.db.WithContext(ctx), &models.PostComment{}, id, fields)
}

// Delete removes the comment and its replies. Idempotent.
func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_comment_id = ?", id).
			Delete(&models.PostCommentReply{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.PostComment{}, id).Error
	})
}
