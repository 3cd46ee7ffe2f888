// File: /models/comment.go
package models

import (
	"time"
)

type Comment struct {
	CommentID   int       `json:"comment_id"`
	PostID      int       `json:"post_id"`
	UserID      int       `json:"user_id"`
	Text        string    `json:"comment"`
	CommentedAt time.Time `json:"commented_date"`
}

// CommentPublic is a comment as shown under a post, with commenter display data
type CommentPublic struct {
	CommentID         int       `json:"comment_id"`
	CommenterImage    string    `json:"commenter_image"`
	CommenterNickname string    `json:"commenter_nickname"`
	CommentedAt       time.Time `json:"commented_date"`
	Text              string    `json:"comment"`
}

func (c Comment) ToPublic(commenter User) CommentPublic {
	return CommentPublic{
		CommentID:         c.CommentID,
		CommenterImage:    commenter.ProfileImageURL,
		CommenterNickname: commenter.Nickname,
		CommentedAt:       c.CommentedAt,
		Text:              c.Text,
	}
}
