package server

import (
	"net/http"
	"testing"

	"creel/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterComment(t *testing.T) {
	app, _, db := newTestServer(t)
	author := createUser(t, db, "ana")
	commenter := createUser(t, db, "bo")

	status, body := doJSON(t, app, "/post/register", map[string]any{
		"userId":  author.ID,
		"content": "open thread",
	})
	require.Equal(t, http.StatusOK, status)
	postID := body["data"]

	status, body = doJSON(t, app, "/post/comment/register", map[string]any{
		"postId":  postID,
		"userId":  commenter.ID,
		"comment": "count me in",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "POST_COMMENT_REGISTER_SUCCESS", body["result"])

	// Commenter earned 50 experience; the post author's total is untouched.
	var profile models.Profile
	require.NoError(t, db.Where("user_id = ?", commenter.ID).First(&profile).Error)
	assert.Equal(t, 50, profile.Experience)

	var authorProfile models.Profile
	require.NoError(t, db.Where("user_id = ?", author.ID).First(&authorProfile).Error)
	assert.Equal(t, 100, authorProfile.Experience)
}

func TestRegisterComment_OrphanRejected(t *testing.T) {
	app, _, db := newTestServer(t)
	user := createUser(t, db, "cy")

	status, body := doJSON(t, app, "/post/comment/register", map[string]any{
		"postId":  12345,
		"userId":  user.ID,
		"comment": "into the void",
	})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "POST_NOT_FOUND", body["msg"])
}

func TestGetCommentsByPost(t *testing.T) {
	app, _, db := newTestServer(t)
	author := createUser(t, db, "dee")
	commenter := createUser(t, db, "eli")

	status, body := doJSON(t, app, "/post/register", map[string]any{
		"userId":  author.ID,
		"content": "ask me anything",
	})
	require.Equal(t, http.StatusOK, status)
	postID := body["data"]

	status, body = doJSON(t, app, "/post/comment/register", map[string]any{
		"postId":  postID,
		"userId":  commenter.ID,
		"comment": "first question",
	})
	require.Equal(t, http.StatusOK, status)
	commentID := body["data"]

	status, _ = doJSON(t, app, "/post/comment/reply/register", map[string]any{
		"postCommentId": commentID,
		"userId":        author.ID,
		"content":       "good question",
	})
	require.Equal(t, http.StatusOK, status)

	status, body = doJSON(t, app, "/post/comment/get-by-post", map[string]any{"postId": postID})
	require.Equal(t, http.StatusOK, status)

	comments, ok := body["result"].([]any)
	require.True(t, ok)
	require.Len(t, comments, 1)

	comment := comments[0].(map[string]any)
	assert.Equal(t, "first question", comment["comment"])

	commentAuthor := comment["user"].(map[string]any)
	assert.Equal(t, "eli", commentAuthor["name"])
	assert.NotContains(t, commentAuthor, "email")

	replies, ok := comment["replies"].([]any)
	require.True(t, ok)
	require.Len(t, replies, 1)
	assert.Equal(t, "good question", replies[0].(map[string]any)["content"])
}

func TestUpdateAndDeleteComment(t *testing.T) {
	app, _, db := newTestServer(t)
	user := createUser(t, db, "fay")

	status, body := doJSON(t, app, "/post/register", map[string]any{
		"userId":  user.ID,
		"content": "post",
	})
	require.Equal(t, http.StatusOK, status)
	postID := body["data"]

	status, body = doJSON(t, app, "/post/comment/register", map[string]any{
		"postId":  postID,
		"userId":  user.ID,
		"comment": "typo here",
	})
	require.Equal(t, http.StatusOK, status)
	commentID := body["data"]

	status, body = doJSON(t, app, "/post/comment/update", map[string]any{
		"postCommentId": commentID,
		"comment":       "fixed",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "POST_COMMENT_UPDATE_SUCCESS", body["result"])

	var comment models.PostComment
	require.NoError(t, db.First(&comment).Error)
	assert.Equal(t, "fixed", comment.Comment)

	// Missing target on update is a 404; delete stays idempotent.
	status, body = doJSON(t, app, "/post/comment/update", map[string]any{
		"postCommentId": 99999,
		"comment":       "ghost",
	})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "POST_COMMENT_NOT_FOUND", body["msg"])

	status, body = doJSON(t, app, "/post/comment/delete", map[string]any{"postCommentId": commentID})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "POST_COMMENT_DELETE_SUCCESS", body["result"])

	status, _ = doJSON(t, app, "/post/comment/delete", map[string]any{"postCommentId": commentID})
	assert.Equal(t, http.StatusOK, status)
}

func TestRegisterReply_NoExperience(t *testing.T) {
	app, _, db := newTestServer(t)
	user := createUser(t, db, "gus")

	status, body := doJSON(t, app, "/post/register", map[string]any{
		"userId":  user.ID,
		"content": "post",
	})
	require.Equal(t, http.StatusOK, status)
	postID := body["data"]

	status, body = doJSON(t, app, "/post/comment/register", map[string]any{
		"postId":  postID,
		"userId":  user.ID,
		"comment": "comment",
	})
	require.Equal(t, http.StatusOK, status)
	commentID := body["data"]

	var before models.Profile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&before).Error)

	status, body = doJSON(t, app, "/post/comment/reply/register", map[string]any{
		"postCommentId": commentID,
		"userId":        user.ID,
		"content":       "replying to myself",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "POST_COMMENT_REPLY_REGISTER_SUCCESS", body["result"])

	// Replies earn nothing.
	var after models.Profile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&after).Error)
	assert.Equal(t, before.Experience, after.Experience)

	status, body = doJSON(t, app, "/post/comment/reply/get-by-comment", map[string]any{
		"postCommentId": commentID,
	})
	require.Equal(t, http.StatusOK, status)
	replies, ok := body["result"].([]any)
	require.True(t, ok)
	assert.Len(t, replies, 1)
}

func TestReplyLifecycle(t *testing.T) {
	app, _, db := newTestServer(t)
	user := createUser(t, db, "ha")

	status, body := doJSON(t, app, "/post/register", map[string]any{
		"userId":  user.ID,
		"content": "post",
	})
	require.Equal(t, http.StatusOK, status)
	postID := body["data"]

	status, body = doJSON(t, app, "/post/comment/register", map[string]any{
		"postId":  postID,
		"userId":  user.ID,
		"comment": "comment",
	})
	require.Equal(t, http.StatusOK, status)
	commentID := body["data"]

	status, body = doJSON(t, app, "/post/comment/reply/register", map[string]any{
		"postCommentId": commentID,
		"userId":        user.ID,
		"content":       "v1",
	})
	require.Equal(t, http.StatusOK, status)
	replyID := body["data"]

	status, body = doJSON(t, app, "/post/comment/reply/update", map[string]any{
		"postCommentReplyId": replyID,
		"content":            "v2",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "POST_COMMENT_REPLY_UPDATE_SUCCESS", body["result"])

	// Replying under a missing comment is rejected.
	status, body = doJSON(t, app, "/post/comment/reply/register", map[string]any{
		"postCommentId": 54321,
		"userId":        user.ID,
		"content":       "orphan",
	})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "POST_COMMENT_NOT_FOUND", body["msg"])

	status, body = doJSON(t, app, "/post/comment/reply/delete", map[string]any{"postCommentReplyId": replyID})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "POST_COMMENT_REPLY_DELETE_SUCCESS", body["result"])

	status, _ = doJSON(t, app, "/post/comment/reply/delete", map[string]any{"postCommentReplyId": replyID})
	assert.Equal(t, http.StatusOK, status)
}
