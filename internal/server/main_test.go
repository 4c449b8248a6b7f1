package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"creel/internal/models"
	"creel/internal/repository"
	"creel/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestServer builds a Server on an in-memory SQLite database with the
// handler routes registered directly, bypassing auth and metrics.
func newTestServer(t *testing.T) (*fiber.App, *Server, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Post{},
		&models.PostImage{},
		&models.PostComment{},
		&models.PostCommentReply{},
	))

	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	replyRepo := repository.NewReplyRepository(db)
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	s := &Server{db: db}
	s.progression = service.NewProgressionService(profileRepo)
	s.content = service.NewContentService(postRepo, commentRepo, replyRepo, userRepo, s.progression)
	s.feed = service.NewFeedService(postRepo, commentRepo, replyRepo)

	app := fiber.New()
	app.Post("/post/register", s.RegisterPost)
	app.Post("/post/image/register", s.RegisterPostImage)
	app.Post("/post/get-by-user", s.GetPostsByUser)
	app.Post("/post/get-by-id", s.GetPostByID)
	app.Post("/post/get-all", s.GetAllPosts)
	app.Post("/post/search", s.SearchPosts)
	app.Post("/post/update", s.UpdatePost)
	app.Post("/post/delete", s.DeletePost)
	app.Post("/post/comment/register", s.RegisterComment)
	app.Post("/post/comment/get-by-post", s.GetCommentsByPost)
	app.Post("/post/comment/update", s.UpdateComment)
	app.Post("/post/comment/delete", s.DeleteComment)
	app.Post("/post/comment/reply/register", s.RegisterReply)
	app.Post("/post/comment/reply/get-by-comment", s.GetRepliesByComment)
	app.Post("/post/comment/reply/update", s.UpdateReply)
	app.Post("/post/comment/reply/delete", s.DeleteReply)
	app.Post("/profile/get-by-user", s.GetProfileByUser)

	return app, s, db
}

func createUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	user := &models.User{
		Name:     name,
		Email:    name + "@example.com",
		Password: "hashed",
		Profile:  &models.Profile{Avatar: "https://example.com/" + name + ".png"},
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// doJSON posts body to path and decodes the JSON response.
func doJSON(t *testing.T, app *fiber.App, path string, body any) (int, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]any
	if len(data) > 0 {
		require.NoError(t, json.Unmarshal(data, &parsed))
	}
	return resp.StatusCode, parsed
}
