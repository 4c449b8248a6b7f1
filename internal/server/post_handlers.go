package server

import (
	"creel/internal/models"
	"creel/internal/service"

	"github.com/gofiber/fiber/v2"
)

// RegisterPost creates a new post with an optional initial image set and
// awards the author's experience.
func (s *Server) RegisterPost(c *fiber.Ctx) error {
	var req service.CreatePostInput
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	post, err := s.content.CreatePost(c.UserContext(), req)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return respondResultData(c, "POST_REGISTER_SUCCESS", post.ID)
}

// RegisterPostImage attaches one image to an existing post.
func (s *Server) RegisterPostImage(c *fiber.Ctx) error {
	var req struct {
		PostID uint   `json:"postId"`
		Image  string `json:"image"`
	}
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	image, err := s.content.AddPostImage(c.UserContext(), req.PostID, req.Image)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return respondResultData(c, "POST_IMAGE_REGISTER_SUCCESS", image.ID)
}

// GetPostsByUser returns one page of a user's posts plus the user's total.
func (s *Server) GetPostsByUser(c *fiber.Ctx) error {
	var req struct {
		UserID uint `json:"userId"`
		pageRequest
	}
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	page, err := s.feed.ListByUser(c.UserContext(), req.UserID, req.Limit, req.Offset)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return respondPage(c, page)
}

// GetPostByID returns the full detail projection of one post.
func (s *Server) GetPostByID(c *fiber.Ctx) error {
	var req postIDRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	detail, err := s.feed.GetPostByID(c.UserContext(), req.PostID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return respondResult(c, detail)
}

// GetAllPosts returns one page of the global feed plus the total post count.
func (s *Server) GetAllPosts(c *fiber.Ctx) error {
	var req pageRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	page, err := s.feed.ListAll(c.UserContext(), req.Limit, req.Offset)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return respondPage(c, page)
}

// SearchPosts returns posts whose content contains the keyword.
func (s *Server) SearchPosts(c *fiber.Ctx) error {
	var req struct {
		Keyword string `json:"keyword"`
		pageRequest
	}
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	page, err := s.feed.Search(c.UserContext(), req.Keyword, req.Limit, req.Offset)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return respondPage(c, page)
}

// UpdatePost applies an allow-listed partial update; an images array in the
// body replaces the stored image set wholesale.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	fields, err := parseRawBody(c)
	if err != nil {
		return nil
	}
	id, err := bodyID(c, fields, "postId")
	if err != nil {
		return nil
	}

	if err := s.content.UpdatePost(c.UserContext(), id, fields); err != nil {
		return models.RespondWithError(c, err)
	}
	return respondResult(c, "POST_UPDATE_SUCCESS")
}

// DeletePost removes a post and everything attached to it. Deleting a
// missing post still succeeds.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	var req postIDRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	if err := s.content.DeletePost(c.UserContext(), req.PostID); err != nil {
		return models.RespondWithError(c, err)
	}
	return respondResult(c, "POST_DELETE_SUCCESS")
}
