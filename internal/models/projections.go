package models

import "time"

// Read projections for the feed API. Author and profile sub-objects are
// restricted to {id,name} and {id,avatar}; the struct types make that a
// compile-time contract rather than a query-attribute convention, so extra
// storage columns can never leak into a response.

// AuthorSummary is the author shape embedded in every projection.
type AuthorSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ProfileSummary is the profile shape embedded in detail projections.
type ProfileSummary struct {
	ID     uint   `json:"id"`
	Avatar string `json:"avatar"`
}

// AuthorDetail is an author plus their profile summary. A user without a
// profile simply carries a nil branch here.
type AuthorDetail struct {
	ID      uint            `json:"id"`
	Name    string          `json:"name"`
	Profile *ProfileSummary `json:"profile,omitempty"`
}

// ImageView is the projected image attachment.
type ImageView struct {
	ID     uint   `json:"id"`
	PostID uint   `json:"postId"`
	Image  string `json:"image"`
}

// ReplyView is the projected reply inside a comment detail.
type ReplyView struct {
	ID            uint      `json:"id"`
	PostCommentID uint      `json:"postCommentId"`
	UserID        uint      `json:"userId"`
	Content       string    `json:"content"`
	CreatedDate   time.Time `json:"createdDate"`
}

// CommentDetail carries a comment with its full reply set and author.
type CommentDetail struct {
	ID          uint         `json:"id"`
	PostID      uint         `json:"postId"`
	Comment     string       `json:"comment"`
	CreatedDate time.Time    `json:"createdDate"`
	User        AuthorDetail `json:"user"`
	Replies     []ReplyView  `json:"replies"`
}

// PostDetail is the fully nested read shape for a single post.
type PostDetail struct {
	ID          uint            `json:"id"`
	Content     string          `json:"content"`
	CreatedDate time.Time       `json:"createdDate"`
	User        AuthorDetail    `json:"user"`
	Images      []ImageView     `json:"images"`
	Comments    []CommentDetail `json:"comments"`
}

// CommentRef references a comment by id only; list views derive comment
// counts from the length of this slice instead of loading comment bodies.
type CommentRef struct {
	ID uint `json:"id"`
}

// PostSummary is the shallow shape used by list and search results.
type PostSummary struct {
	ID          uint          `json:"id"`
	UserID      uint          `json:"userId"`
	Content     string        `json:"content"`
	CreatedDate time.Time     `json:"createdDate"`
	User        AuthorSummary `json:"user"`
	Images      []ImageView   `json:"images"`
	Comments    []CommentRef  `json:"comments"`
}

// PostPage is a page of summaries plus the total number of matching rows
// ignoring limit/offset.
type PostPage struct {
	Results    []PostSummary `json:"results"`
	TotalCount int64         `json:"totalCount"`
}

// ProfileDetail is the progression readout for one user.
type ProfileDetail struct {
	ID         uint   `json:"id"`
	UserID     uint   `json:"userId"`
	Avatar     string `json:"avatar"`
	Experience int    `json:"experience"`
	Level      int    `json:"level"`
}
