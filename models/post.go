// File: /models/post.go
package models

import (
	"time"
)

type Post struct {
	PostID    int         `json:"post_id"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	ImageURLs StringSlice `json:"image_url"`
	LikeCount int         `json:"like"`
	ViewCount int         `json:"view"`
	PosterID  int         `json:"poster_id"`
	PostedAt  time.Time   `json:"posted_date"`
}

// PostDetail is a post joined with its poster and comments
type PostDetail struct {
	Title          string          `json:"title"`
	Content        string          `json:"content"`
	ImageURLs      StringSlice     `json:"image_url"`
	PostedAt       time.Time       `json:"posted_date"`
	PosterImage    string          `json:"poster_image"`
	PosterNickname string          `json:"poster_nickname"`
	LikeCount      int             `json:"like"`
	ViewCount      int             `json:"view"`
	Comments       []CommentPublic `json:"comment"`
}

// PostPage is one offset/limit slice of the post list. Next is -1 once the
// slice reaches the end of the list.
type PostPage struct {
	Posts []Post
	Next  int
}

// NewPostDetail composes the post view from the post, its poster and the
// already projected comments.
func NewPostDetail(post Post, poster User, comments []CommentPublic) PostDetail {
	if comments == nil {
		comments = []CommentPublic{}
	}
	return PostDetail{
		Title:          post.Title,
		Content:        post.Content,
		ImageURLs:      post.ImageURLs.Clone(),
		PostedAt:       post.PostedAt,
		PosterImage:    poster.ProfileImageURL,
		PosterNickname: poster.Nickname,
		LikeCount:      post.LikeCount,
		ViewCount:      post.ViewCount,
		Comments:       comments,
	}
}
