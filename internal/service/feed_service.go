package service

import (
	"context"

	"creel/internal/cache"
	"creel/internal/models"
	"creel/internal/repository"

	"github.com/samber/lo"
)

// Listing endpoints without an explicit limit return effectively everything.
const defaultListLimit = 1000000

// FeedService assembles read projections of posts for the feed endpoints.
type FeedService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	replyRepo   repository.ReplyRepository
}

// NewFeedService creates a new feed service.
func NewFeedService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	replyRepo repository.ReplyRepository,
) *FeedService {
	return &FeedService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		replyRepo:   replyRepo,
	}
}

// normalizePage clamps pagination inputs to their defaults.
func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// GetPostByID returns the full detail projection of one post, cache-aside
// through Redis.
func (s *FeedService) GetPostByID(ctx context.Context, id uint) (*models.PostDetail, error) {
	if id == 0 {
		return nil, models.NewValidationError("id is required")
	}

	var detail models.PostDetail
	err := cache.Aside(ctx, cache.PostKey(id), &detail, cache.PostTTL, func() error {
		post, err := s.postRepo.GetByID(ctx, id)
		if err != nil {
			if repository.IsNotFound(err) {
				return models.NewNotFoundError("POST_NOT_FOUND")
			}
			return models.NewInternalError(err)
		}
		detail = buildPostDetail(post)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// ListByUser returns one page of a user's posts, newest first, with the
// user's total post count.
func (s *FeedService) ListByUser(ctx context.Context, userID uint, limit, offset int) (*models.PostPage, error) {
	if userID == 0 {
		return nil, models.NewValidationError("userId is required")
	}
	limit, offset = normalizePage(limit, offset)

	posts, err := s.postRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	total, err := s.postRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &models.PostPage{
		Results:    lo.Map(posts, func(p *models.Post, _ int) models.PostSummary { return buildPostSummary(p) }),
		TotalCount: total,
	}, nil
}

// ListAll returns one page of the global feed, newest first, with the total
// post count.
func (s *FeedService) ListAll(ctx context.Context, limit, offset int) (*models.PostPage, error) {
	limit, offset = normalizePage(limit, offset)

	posts, err := s.postRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	total, err := s.postRepo.Count(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &models.PostPage{
		Results:    lo.Map(posts, func(p *models.Post, _ int) models.PostSummary { return buildPostSummary(p) }),
		TotalCount: total,
	}, nil
}

// Search returns one page of posts whose content contains the keyword,
// newest first, with the matching total. An empty keyword matches all posts
// and an unmatched one yields an empty page, never an error.
func (s *FeedService) Search(ctx context.Context, keyword string, limit, offset int) (*models.PostPage, error) {
	limit, offset = normalizePage(limit, offset)

	posts, err := s.postRepo.Search(ctx, keyword, limit, offset)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	total, err := s.postRepo.CountSearch(ctx, keyword)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &models.PostPage{
		Results:    lo.Map(posts, func(p *models.Post, _ int) models.PostSummary { return buildPostSummary(p) }),
		TotalCount: total,
	}, nil
}

// ListCommentsByPost returns the comment thread of a post, with authors and
// replies, oldest first.
func (s *FeedService) ListCommentsByPost(ctx context.Context, postID uint) ([]models.CommentDetail, error) {
	if postID == 0 {
		return nil, models.NewValidationError("postId is required")
	}
	ok, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if !ok {
		return nil, models.NewNotFoundError("POST_NOT_FOUND")
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return lo.Map(comments, func(c *models.PostComment, _ int) models.CommentDetail {
		return buildCommentDetail(c)
	}), nil
}

// ListRepliesByComment returns the replies of a comment, oldest first.
func (s *FeedService) ListRepliesByComment(ctx context.Context, commentID uint) ([]models.ReplyView, error) {
	if commentID == 0 {
		return nil, models.NewValidationError("postCommentId is required")
	}
	ok, err := s.commentRepo.Exists(ctx, commentID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if !ok {
		return nil, models.NewNotFoundError("POST_COMMENT_NOT_FOUND")
	}

	replies, err := s.replyRepo.ListByComment(ctx, commentID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return lo.Map(replies, func(r *models.PostCommentReply, _ int) models.ReplyView {
		return buildReplyView(r)
	}), nil
}

// buildPostDetail flattens a fully preloaded post into the detail
// projection. Only the whitelisted author columns survive; emails and
// password hashes never reach a response body.
func buildPostDetail(post *models.Post) models.PostDetail {
	return models.PostDetail{
		ID:          post.ID,
		Content:     post.Content,
		CreatedDate: post.CreatedDate,
		User:        buildAuthorDetail(&post.User),
		Images: lo.Map(post.Images, func(img models.PostImage, _ int) models.ImageView {
			return models.ImageView{ID: img.ID, PostID: img.PostID, Image: img.Image}
		}),
		Comments: lo.Map(post.Comments, func(c models.PostComment, _ int) models.CommentDetail {
			return buildCommentDetail(&c)
		}),
	}
}

func buildPostSummary(post *models.Post) models.PostSummary {
	return models.PostSummary{
		ID:          post.ID,
		UserID:      post.UserID,
		Content:     post.Content,
		CreatedDate: post.CreatedDate,
		User:        models.AuthorSummary{ID: post.User.ID, Name: post.User.Name},
		Images: lo.Map(post.Images, func(img models.PostImage, _ int) models.ImageView {
			return models.ImageView{ID: img.ID, PostID: img.PostID, Image: img.Image}
		}),
		Comments: lo.Map(post.Comments, func(c models.PostComment, _ int) models.CommentRef {
			return models.CommentRef{ID: c.ID}
		}),
	}
}

func buildCommentDetail(comment *models.PostComment) models.CommentDetail {
	return models.CommentDetail{
		ID:          comment.ID,
		PostID:      comment.PostID,
		Comment:     comment.Comment,
		CreatedDate: comment.CreatedDate,
		User:        buildAuthorDetail(&comment.User),
		Replies: lo.Map(comment.Replies, func(r models.PostCommentReply, _ int) models.ReplyView {
			return buildReplyView(&r)
		}),
	}
}

func buildAuthorDetail(user *models.User) models.AuthorDetail {
	detail := models.AuthorDetail{ID: user.ID, Name: user.Name}
	if user.Profile != nil {
		detail.Profile = &models.ProfileSummary{ID: user.Profile.ID, Avatar: user.Profile.Avatar}
	}
	return detail
}

func buildReplyView(reply *models.PostCommentReply) models.ReplyView {
	return models.ReplyView{
		ID:            reply.ID,
		PostCommentID: reply.PostCommentID,
		UserID:        reply.UserID,
		Content:       reply.Content,
		CreatedDate:   reply.CreatedDate,
	}
}
