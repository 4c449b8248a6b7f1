package server

import (
	"encoding/json"
	"errors"

	"creel/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseBody unmarshals the JSON request body into dest. On failure it
// writes a 400 response and returns errResponseWritten.
func parseBody(c *fiber.Ctx, dest any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(dest); err != nil {
		_ = models.RespondWithError(c, models.NewValidationError("Invalid request body"))
		return errResponseWritten
	}
	return nil
}

// parseRawBody unmarshals the JSON request body into a generic map for
// endpoints that apply allow-listed partial updates.
func parseRawBody(c *fiber.Ctx) (map[string]any, error) {
	var fields map[string]any
	if err := json.Unmarshal(c.Body(), &fields); err != nil {
		_ = models.RespondWithError(c, models.NewValidationError("Invalid request body"))
		return nil, errResponseWritten
	}
	return fields, nil
}

// bodyID pulls an entity id out of a raw update payload. JSON numbers
// arrive as float64.
func bodyID(c *fiber.Ctx, fields map[string]any, key string) (uint, error) {
	raw, ok := fields[key]
	if !ok {
		_ = models.RespondWithError(c, models.NewValidationError(key+" is required"))
		return 0, errResponseWritten
	}
	num, ok := raw.(float64)
	if !ok || num <= 0 || num != float64(uint(num)) {
		_ = models.RespondWithError(c, models.NewValidationError("Invalid "+key))
		return 0, errResponseWritten
	}
	return uint(num), nil
}

// Entities are addressed in request bodies by their own id field name, not a
// generic "id" key.
type postIDRequest struct {
	PostID uint `json:"postId"`
}

type commentIDRequest struct {
	PostCommentID uint `json:"postCommentId"`
}

type replyIDRequest struct {
	PostCommentReplyID uint `json:"postCommentReplyId"`
}

// pageRequest carries optional pagination fields shared by listing bodies.
type pageRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// respondResult writes the standard success envelope.
func respondResult(c *fiber.Ctx, result any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"result": result})
}

// respondResultData writes the success envelope with an attached data payload.
func respondResultData(c *fiber.Ctx, result string, data any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"result": result, "data": data})
}

// respondPage writes a listing page with its total count.
func respondPage(c *fiber.Ctx, page *models.PostPage) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"result":     page.Results,
		"totalCount": page.TotalCount,
	})
}
