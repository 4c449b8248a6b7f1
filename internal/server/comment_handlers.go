package server

import (
	"creel/internal/models"
	"creel/internal/service"

	"github.com/gofiber/fiber/v2"
)

// RegisterComment creates a comment on an existing post and awards the
// commenter's experience.
func (s *Server) RegisterComment(c *fiber.Ctx) error {
	var req service.CreateCommentInput
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	comment, err := s.content.CreateComment(c.UserContext(), req)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return respondResultData(c, "POST_COMMENT_REGISTER_SUCCESS", comment.ID)
}

// GetCommentsByPost returns the comment thread of a post with authors and
// replies.
func (s *Server) GetCommentsByPost(c *fiber.Ctx) error {
	var req postIDRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	comments, err := s.feed.ListCommentsByPost(c.UserContext(), req.PostID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return respondResult(c, comments)
}

// UpdateComment applies an allow-listed partial update to a comment.
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	fields, err := parseRawBody(c)
	if err != nil {
		return nil
	}
	id, err := bodyID(c, fields, "postCommentId")
	if err != nil {
		return nil
	}

	if err := s.content.UpdateComment(c.UserContext(), id, fields); err != nil {
		return models.RespondWithError(c, err)
	}
	return respondResult(c, "POST_COMMENT_UPDATE_SUCCESS")
}

// DeleteComment removes a comment and its replies. Idempotent.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	var req commentIDRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	if err := s.content.DeleteComment(c.UserContext(), req.PostCommentID); err != nil {
		return models.RespondWithError(c, err)
	}
	return respondResult(c, "POST_COMMENT_DELETE_SUCCESS")
}
