package server

import (
	"creel/internal/models"
	"creel/internal/service"

	"github.com/gofiber/fiber/v2"
)

// RegisterReply creates a reply under an existing comment. Replies earn no
// experience.
func (s *Server) RegisterReply(c *fiber.Ctx) error {
	var req service.CreateReplyInput
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	reply, err := s.content.CreateReply(c.UserContext(), req)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return respondResultData(c, "POST_COMMENT_REPLY_REGISTER_SUCCESS", reply.ID)
}

// GetRepliesByComment returns the replies of a comment, oldest first.
func (s *Server) GetRepliesByComment(c *fiber.Ctx) error {
	var req commentIDRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	replies, err := s.feed.ListRepliesByComment(c.UserContext(), req.PostCommentID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return respondResult(c, replies)
}

// UpdateReply applies an allow-listed partial update to a reply.
func (s *Server) UpdateReply(c *fiber.Ctx) error {
	fields, err := parseRawBody(c)
	if err != nil {
		return nil
	}
	id, err := bodyID(c, fields, "postCommentReplyId")
	if err != nil {
		return nil
	}

	if err := s.content.UpdateReply(c.UserContext(), id, fields); err != nil {
		return models.RespondWithError(c, err)
	}
	return respondResult(c, "POST_COMMENT_REPLY_UPDATE_SUCCESS")
}

// DeleteReply removes a reply. Idempotent.
func (s *Server) DeleteReply(c *fiber.Ctx) error {
	var req replyIDRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	if err := s.content.DeleteReply(c.UserContext(), req.PostCommentReplyID); err != nil {
		return models.RespondWithError(c, err)
	}
	return respondResult(c, "POST_COMMENT_REPLY_DELETE_SUCCESS")
}
