package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"creel/internal/cache"
	"creel/internal/middleware"
	"creel/internal/models"
	"creel/internal/observability"
	"creel/internal/repository"
)

// ContentService handles creation and mutation of posts, comments and
// replies, and emits the score events those actions earn.
type ContentService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	replyRepo   repository.ReplyRepository
	userRepo    repository.UserRepository
	progression *ProgressionService
}

// NewContentService creates a new content service.
func NewContentService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	replyRepo repository.ReplyRepository,
	userRepo repository.UserRepository,
	progression *ProgressionService,
) *ContentService {
	return &ContentService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		replyRepo:   replyRepo,
		userRepo:    userRepo,
		progression: progression,
	}
}

// CreatePostInput carries the fields for a new post.
type CreatePostInput struct {
	UserID  uint     `json:"userId"`
	Content string   `json:"content"`
	Images  []string `json:"images"`
}

// CreateCommentInput carries the fields for a new comment on a post.
type CreateCommentInput struct {
	PostID  uint   `json:"postId"`
	UserID  uint   `json:"userId"`
	Comment string `json:"comment"`
}

// CreateReplyInput carries the fields for a new reply to a comment.
type CreateReplyInput struct {
	PostCommentID uint   `json:"postCommentId"`
	UserID        uint   `json:"userId"`
	Content       string `json:"content"`
}

// Per-entity allow-lists for partial updates. Identifier and ownership
// columns can never be rewritten through the update endpoints.
var (
	postUpdatableFields    = map[string]bool{"content": true}
	commentUpdatableFields = map[string]bool{"comment": true}
	replyUpdatableFields   = map[string]bool{"content": true}
)

// CreatePost stores the post together with its initial image set and awards
// the author's experience. The post survives even when the award fails
// because the author has no profile; that failure is still reported.
func (s *ContentService) CreatePost(ctx context.Context, input CreatePostInput) (*models.Post, error) {
	if input.UserID == 0 {
		return nil, models.NewValidationError("userId is required")
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, models.NewValidationError("content is required")
	}
	ok, err := s.userRepo.Exists(ctx, input.UserID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if !ok {
		return nil, models.NewNotFoundError("USER_NOT_FOUND")
	}

	post := &models.Post{
		UserID:      input.UserID,
		Content:     input.Content,
		CreatedDate: time.Now(),
	}
	if err := s.postRepo.CreateWithImages(ctx, post, input.Images); err != nil {
		return nil, models.NewInternalError(err)
	}
	observability.PostsCreated.Inc()

	if err := s.progression.ApplyScoreEvent(ctx, input.UserID, ScoreEventPostCreated); err != nil {
		return nil, err
	}
	cache.InvalidateProfile(ctx, input.UserID)

	middleware.Logger.InfoContext(ctx, "post created",
		"post_id", post.ID,
		"user_id", post.UserID,
		"images", len(input.Images),
	)
	return post, nil
}

// AddPostImage attaches a single image to an existing post.
func (s *ContentService) AddPostImage(ctx context.Context, postID uint, image string) (*models.PostImage, error) {
	if postID == 0 {
		return nil, models.NewValidationError("postId is required")
	}
	if strings.TrimSpace(image) == "" {
		return nil, models.NewValidationError("image is required")
	}
	ok, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if !ok {
		return nil, models.NewNotFoundError("POST_NOT_FOUND")
	}

	row, err := s.postRepo.AddImage(ctx, postID, image)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, postID)
	return row, nil
}

// UpdatePost applies the allowed fields from a partial update to the post.
// When an images array is present the stored image set is replaced with it
// wholesale.
func (s *ContentService) UpdatePost(ctx context.Context, id uint, fields map[string]any) error {
	if id == 0 {
		return models.NewValidationError("id is required")
	}
	images, hasImages, err := extractImages(fields)
	if err != nil {
		return err
	}
	updates, err := filterFields(fields, postUpdatableFields, true)
	if err != nil {
		return err
	}

	if len(updates) == 0 && !hasImages {
		return models.NewValidationError("no updatable fields provided")
	}

	if len(updates) > 0 {
		if err := s.postRepo.UpdateFields(ctx, id, updates); err != nil {
			if repository.IsNotFound(err) {
				return models.NewNotFoundError("POST_NOT_FOUND")
			}
			return models.NewInternalError(err)
		}
	} else {
		ok, err := s.postRepo.Exists(ctx, id)
		if err != nil {
			return models.NewInternalError(err)
		}
		if !ok {
			return models.NewNotFoundError("POST_NOT_FOUND")
		}
	}

	if hasImages {
		if err := s.postRepo.ReplaceImages(ctx, id, images); err != nil {
			return models.NewInternalError(err)
		}
		observability.ImageSetReplacements.Inc()
	}
	cache.InvalidatePost(ctx, id)
	return nil
}

// DeletePost removes the post and everything hanging off it. Deleting a
// post that does not exist succeeds.
func (s *ContentService) DeletePost(ctx context.Context, id uint) error {
	if id == 0 {
		return models.NewValidationError("id is required")
	}
	if err := s.postRepo.Delete(ctx, id); err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, id)
	return nil
}

// CreateComment stores a comment on an existing post and awards the
// commenter's experience.
func (s *ContentService) CreateComment(ctx context.Context, input CreateCommentInput) (*models.PostComment, error) {
	if input.PostID == 0 {
		return nil, models.NewValidationError("postId is required")
	}
	if input.UserID == 0 {
		return nil, models.NewValidationError("userId is required")
	}
	if strings.TrimSpace(input.Comment) == "" {
		return nil, models.NewValidationError("comment is required")
	}
	ok, err := s.postRepo.Exists(ctx, input.PostID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if !ok {
		return nil, models.NewNotFoundError("POST_NOT_FOUND")
	}
	ok, err = s.userRepo.Exists(ctx, input.UserID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if !ok {
		return nil, models.NewNotFoundError("USER_NOT_FOUND")
	}

	comment := &models.PostComment{
		PostID:      input.PostID,
		UserID:      input.UserID,
		Comment:     input.Comment,
		CreatedDate: time.Now(),
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, models.NewInternalError(err)
	}

	if err := s.progression.ApplyScoreEvent(ctx, input.UserID, ScoreEventCommentCreated); err != nil {
		return nil, err
	}
	cache.InvalidatePost(ctx, input.PostID)
	cache.InvalidateProfile(ctx, input.UserID)

	middleware.Logger.InfoContext(ctx, "comment created",
		"comment_id", comment.ID,
		"post_id", comment.PostID,
		"user_id", comment.UserID,
	)
	return comment, nil
}

// UpdateComment applies the allowed fields from a partial update. The
// cached detail of the owning post embeds the comment body, so it is
// dropped alongside the write.
func (s *ContentService) UpdateComment(ctx context.Context, id uint, fields map[string]any) error {
	if id == 0 {
		return models.NewValidationError("id is required")
	}
	updates, err := filterFields(fields, commentUpdatableFields, false)
	if err != nil {
		return err
	}
	if len(updates) == 0 {
		return models.NewValidationError("no updatable fields provided")
	}
	postID, err := s.commentRepo.PostID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return models.NewNotFoundError("POST_COMMENT_NOT_FOUND")
		}
		return models.NewInternalError(err)
	}
	if err := s.commentRepo.UpdateFields(ctx, id, updates); err != nil {
		if repository.IsNotFound(err) {
			return models.NewNotFoundError("POST_COMMENT_NOT_FOUND")
		}
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, postID)
	return nil
}

// DeleteComment removes the comment and its replies. Idempotent.
func (s *ContentService) DeleteComment(ctx context.Context, id uint) error {
	if id == 0 {
		return models.NewValidationError("id is required")
	}
	postID, err := s.commentRepo.PostID(ctx, id)
	if err != nil && !repository.IsNotFound(err) {
		return models.NewInternalError(err)
	}
	if err := s.commentRepo.Delete(ctx, id); err != nil {
		return models.NewInternalError(err)
	}
	if postID != 0 {
		cache.InvalidatePost(ctx, postID)
	}
	return nil
}

// CreateReply stores a reply under an existing comment. Replies earn no
// experience.
func (s *ContentService) CreateReply(ctx context.Context, input CreateReplyInput) (*models.PostCommentReply, error) {
	if input.PostCommentID == 0 {
		return nil, models.NewValidationError("postCommentId is required")
	}
	if input.UserID == 0 {
		return nil, models.NewValidationError("userId is required")
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, models.NewValidationError("content is required")
	}
	postID, err := s.commentRepo.PostID(ctx, input.PostCommentID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, models.NewNotFoundError("POST_COMMENT_NOT_FOUND")
		}
		return nil, models.NewInternalError(err)
	}
	ok, err := s.userRepo.Exists(ctx, input.UserID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if !ok {
		return nil, models.NewNotFoundError("USER_NOT_FOUND")
	}

	reply := &models.PostCommentReply{
		PostCommentID: input.PostCommentID,
		UserID:        input.UserID,
		Content:       input.Content,
		CreatedDate:   time.Now(),
	}
	if err := s.replyRepo.Create(ctx, reply); err != nil {
		return nil, models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, postID)
	return reply, nil
}

// UpdateReply applies the allowed fields from a partial update. Reply
// bodies are embedded in the owning post's cached detail.
func (s *ContentService) UpdateReply(ctx context.Context, id uint, fields map[string]any) error {
	if id == 0 {
		return models.NewValidationError("id is required")
	}
	updates, err := filterFields(fields, replyUpdatableFields, false)
	if err != nil {
		return err
	}
	if len(updates) == 0 {
		return models.NewValidationError("no updatable fields provided")
	}
	reply, err := s.replyRepo.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return models.NewNotFoundError("POST_COMMENT_REPLY_NOT_FOUND")
		}
		return models.NewInternalError(err)
	}
	if err := s.replyRepo.UpdateFields(ctx, id, updates); err != nil {
		if repository.IsNotFound(err) {
			return models.NewNotFoundError("POST_COMMENT_REPLY_NOT_FOUND")
		}
		return models.NewInternalError(err)
	}
	s.invalidateThread(ctx, reply.PostCommentID)
	return nil
}

// DeleteReply removes the reply. Idempotent.
func (s *ContentService) DeleteReply(ctx context.Context, id uint) error {
	if id == 0 {
		return models.NewValidationError("id is required")
	}
	reply, err := s.replyRepo.GetByID(ctx, id)
	if err != nil && !repository.IsNotFound(err) {
		return models.NewInternalError(err)
	}
	if err := s.replyRepo.Delete(ctx, id); err != nil {
		return models.NewInternalError(err)
	}
	if reply != nil {
		s.invalidateThread(ctx, reply.PostCommentID)
	}
	return nil
}

// invalidateThread drops the cached detail of the post a comment belongs
// to. Best effort: when the lookup fails the entry is left to its TTL.
func (s *ContentService) invalidateThread(ctx context.Context, commentID uint) {
	postID, err := s.commentRepo.PostID(ctx, commentID)
	if err != nil {
		return
	}
	cache.InvalidatePost(ctx, postID)
}

// identifierFields are stripped from update payloads without complaint so
// clients can resend the object they fetched.
var identifierFields = map[string]bool{
	"id":                 true,
	"postId":             true,
	"userId":             true,
	"postCommentId":      true,
	"postCommentReplyId": true,
	"createdDate":        true,
}

// filterFields keeps only allow-listed columns from a raw update payload.
// Identifier keys are dropped silently; any other unknown key is rejected.
// withImages tolerates an images key for the post update path, which
// handles image replacement separately.
func filterFields(fields map[string]any, allowed map[string]bool, withImages bool) (map[string]any, error) {
	updates := make(map[string]any)
	for key, value := range fields {
		switch {
		case allowed[key]:
			str, ok := value.(string)
			if !ok {
				return nil, models.NewValidationError(fmt.Sprintf("field %s must be a string", key))
			}
			updates[key] = str
		case identifierFields[key] || (withImages && key == "images"):
		default:
			return nil, models.NewValidationError(fmt.Sprintf("field %s cannot be updated", key))
		}
	}
	return updates, nil
}

// extractImages pulls an optional images array out of an update payload.
func extractImages(fields map[string]any) ([]string, bool, error) {
	raw, ok := fields["images"]
	if !ok {
		return nil, false, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, false, models.NewValidationError("images must be an array of strings")
	}
	images := make([]string, 0, len(list))
	for _, item := range list {
		str, ok := item.(string)
		if !ok {
			return nil, false, models.NewValidationError("images must be an array of strings")
		}
		images = append(images, str)
	}
	return images, true, nil
}
