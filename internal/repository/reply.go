package repository

import (
	"context"

	"creel/internal/models"

	"gorm.io/gorm"
)

// ReplyRepository defines the interface for comment reply data operations.
type ReplyRepository interface {
	Create(ctx context.Context, reply *models.PostCommentReply) error
	GetByID(ctx context.Context, id uint) (*models.PostCommentReply, error)
	ListByComment(ctx context.Context, commentID uint) ([]*models.PostCommentReply, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]any) error
	Delete(ctx context.Context, id uint) error
}

type replyRepository struct {
	db *gorm.DB
}

// NewReplyRepository creates a new reply repository.
func NewReplyRepository(db *gorm.DB) ReplyRepository {
	return &replyRepository{db: db}
}

func (r *replyRepository) Create(ctx context.Context, reply *models.PostCommentReply) error {
	return r.db.WithContext(ctx).Create(reply).Error
}

func (r *replyRepository) GetByID(ctx context.Context, id uint) (*models.PostCommentReply, error) {
	var reply models.PostCommentReply
	if err := r.db.WithContext(ctx).First(&reply, id).Error; err != nil {
		return nil, err
	}
	return &reply, nil
}

func (r *replyRepository) ListByComment(ctx context.Context, commentID uint) ([]*models.PostCommentReply, error) {
	var replies []*models.PostCommentReply
	err := r.db.WithContext(ctx).
		Where("post_comment_id = ?", commentID).
		Order("created_date ASC").
		Find(&replies).Error
	return replies, err
}

func (r *replyRepository) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	return updateEntityFields(r.db.WithContext(ctx), &models.PostCommentReply{}, id, fields)
}

func (r *replyRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.PostCommentReply{}, id).Error
}
