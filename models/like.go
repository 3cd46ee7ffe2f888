// File: /models/like.go
package models

import (
	"time"
)

// Like is unique per (PostID, UserID). LikeID only indexes the like store.
type Like struct {
	LikeID  int       `json:"like_id"`
	PostID  int       `json:"post_id"`
	UserID  int       `json:"user_id"`
	LikedAt time.Time `json:"liked_at"`
}
