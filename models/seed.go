// File: /models/seed.go
package models

import (
	"time"
)

// Seed rows reference each other by position: SeedPost.PosterID is the
// index of a SeedUser, which equals the id it receives in an empty store.
type Seed struct {
	Users    []SeedUser
	Posts    []SeedPost
	Comments []SeedComment
	Likes    []SeedLike
}

type SeedUser struct {
	Email           string
	Password        string
	Nickname        string
	ProfileImageURL string
}

type SeedPost struct {
	Title     string
	Content   string
	PosterID  int
	ImageURLs []string
	ViewCount int
	PostedAt  time.Time
}

type SeedComment struct {
	PostID      int
	UserID      int
	Text        string
	CommentedAt time.Time
}

type SeedLike struct {
	PostID int
	UserID int
}
