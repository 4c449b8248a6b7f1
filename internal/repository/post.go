// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"creel/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations.
type PostRepository interface {
	CreateWithImages(ctx context.Context, post *models.Post, images []string) error
	AddImage(ctx context.Context, postID uint, image string) (*models.PostImage, error)
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	Exists(ctx context.Context, id uint) (bool, error)
	ListByUser(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error)
	List(ctx context.Context, limit, offset int) ([]*models.Post, error)
	Search(ctx context.Context, keyword string, limit, offset int) ([]*models.Post, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountSearch(ctx context.Context, keyword string) (int64, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]any) error
	ReplaceImages(ctx context.Context, postID uint, images []string) error
	Delete(ctx context.Context, id uint) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// CreateWithImages inserts the post and all its image rows in one
// transaction so readers never observe a post with a partial image set.
func (r *postRepository) CreateWithImages(ctx context.Context, post *models.Post, images []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		if len(images) == 0 {
			return nil
		}
		rows := make([]models.PostImage, 0, len(images))
		for _, img := range images {
			rows = append(rows, models.PostImage{PostID: post.ID, Image: img})
		}
		return tx.Create(&rows).Error
	})
}

func (r *postRepository) AddImage(ctx context.Context, postID uint, image string) (*models.PostImage, error) {
	row := models.PostImage{PostID: postID, Image: image}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// GetByID loads the full nested graph needed by the detail projection.
func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("User.Profile").
		Preload("Images").
		Preload("Comments").
		Preload("Comments.User").
		Preload("Comments.User.Profile").
		Preload("Comments.Replies").
		First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *postRepository) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Images").
		Preload("Comments").
		Where("user_id = ?", userID).
		Order("created_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) List(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Images").
		Preload("Comments").
		Order("created_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

// Search matches posts whose content contains keyword as a substring. An
// empty keyword matches every post.
func (r *postRepository) Search(ctx context.Context, keyword string, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Images").
		Preload("Comments").
		Where("content LIKE ?", "%"+keyword+"%").
		Order("created_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *postRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Post{}).Count(&count).Error
	return count, err
}

func (r *postRepository) CountSearch(ctx context.Context, keyword string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("content LIKE ?", "%"+keyword+"%").
		Count(&count).Error
	return count, err
}

// UpdateFields applies the given column values to an existing post. Returns
// gorm.ErrRecordNotFound when the post does not exist; callers surface that
// as a 404 rather than silently updating nothing.
func (r *postRepository) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	return updateEntityFields(r.db.WithContext(ctx), &models.Post{}, id, fields)
}

// ReplaceImages deletes the existing image set of the post and inserts the
// new one inside a single transaction. The set after this call exactly
// equals the submitted set.
func (r *postRepository) ReplaceImages(ctx context.Context, postID uint, images []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&models.PostImage{}).Error; err != nil {
			return err
		}
		if len(images) == 0 {
			return nil
		}
		rows := make([]models.PostImage, 0, len(images))
		for _, img := range images {
			rows = append(rows, models.PostImage{PostID: postID, Image: img})
		}
		return tx.Create(&rows).Error
	})
}

// Delete removes the post and its attachments. Deleting an absent id is a
// no-op success (idempotent delete).
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.PostImage{}).Error; err != nil {
			return err
		}
		var commentIDs []uint
		if err := tx.Model(&models.PostComment{}).
			Where("post_id = ?", id).
			Pluck("id", &commentIDs).Error; err != nil {
			return err
		}
		if len(commentIDs) > 0 {
			if err := tx.Where("post_comment_id IN ?", commentIDs).
				Delete(&models.PostCommentReply{}).Error; err != nil {
				return err
			}
			if err := tx.Where("post_id = ?", id).Delete(&models.PostComment{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Post{}, id).Error
	})
}

// updateEntityFields is the shared allow-listed column update used by all
// content repositories.
func updateEntityFields(db *gorm.DB, model any, id uint, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	res := db.Model(model).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IsNotFound reports whether err is the storage layer's missing-row error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
