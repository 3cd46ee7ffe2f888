// File: /repositories/store.go
package repositories

import (
	"blog-api/models"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Store groups the four entity repositories. Each repository is safe for
// concurrent use on its own; operations spanning several repositories, or
// checking before mutating, run inside Atomically.
type Store struct {
	Users    *UserRepository
	Posts    *PostRepository
	Comments *CommentRepository
	Likes    *LikeRepository

	mu sync.Mutex
}

// NewStore builds empty repositories and loads seed into them when seed is
// not nil. Seed rows that reference a missing user or post, or that repeat
// a unique key, are skipped with a warning.
func NewStore(seed *models.Seed, log logrus.FieldLogger) *Store {
	s := &Store{
		Users:    NewUserRepository(),
		Posts:    NewPostRepository(),
		Comments: NewCommentRepository(),
		Likes:    NewLikeRepository(),
	}
	if seed != nil {
		s.load(seed, log)
	}
	return s
}

// Atomically runs fn while holding the store-wide lock. fn must not call
// Atomically again.
func (s *Store) Atomically(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

// Stats is a point-in-time count of every collection
type Stats struct {
	Users    int
	Posts    int
	Comments int
	Likes    int
}

func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Stats{
		Users:    s.Users.Count(),
		Posts:    s.Posts.Count(),
		Comments: s.Comments.Count(),
		Likes:    s.Likes.Count(),
	}
}

func (s *Store) load(seed *models.Seed, log logrus.FieldLogger) {
	userIDs := make(map[int]int, len(seed.Users))
	for i, u := range seed.Users {
		if _, err := s.Users.FindByEmail(u.Email); err == nil {
			log.WithField("email", u.Email).Warn("Skipping seed user with duplicate email")
			continue
		}
		if _, err := s.Users.FindByNickname(u.Nickname); err == nil {
			log.WithField("nickname", u.Nickname).Warn("Skipping seed user with duplicate nickname")
			continue
		}
		userIDs[i] = s.Users.Add(u.Email, u.Password, u.Nickname, u.ProfileImageURL)
	}

	postIDs := make(map[int]int, len(seed.Posts))
	for i, p := range seed.Posts {
		posterID, ok := userIDs[p.PosterID]
		if !ok {
			log.WithField("title", p.Title).Warn("Skipping seed post with unknown poster")
			continue
		}
		postedAt := p.PostedAt
		if postedAt.IsZero() {
			postedAt = time.Now()
		}
		id := s.Posts.Add(p.Title, p.Content, posterID, p.ImageURLs, postedAt)
		s.Posts.setViewCount(id, p.ViewCount)
		postIDs[i] = id
	}

	for _, c := range seed.Comments {
		postID, postOK := postIDs[c.PostID]
		userID, userOK := userIDs[c.UserID]
		if !postOK || !userOK {
			log.WithFields(logrus.Fields{"post": c.PostID, "user": c.UserID}).Warn("Skipping seed comment with unknown reference")
			continue
		}
		s.Comments.Add(postID, userID, c.Text, c.CommentedAt)
	}

	// like counts are derived from the like rows, never taken from the seed
	for _, l := range seed.Likes {
		postID, postOK := postIDs[l.PostID]
		userID, userOK := userIDs[l.UserID]
		if !postOK || !userOK {
			log.WithFields(logrus.Fields{"post": l.PostID, "user": l.UserID}).Warn("Skipping seed like with unknown reference")
			continue
		}
		if !s.Likes.Add(postID, userID, time.Now()) {
			log.WithFields(logrus.Fields{"post": l.PostID, "user": l.UserID}).Warn("Skipping duplicate seed like")
			continue
		}
		_ = s.Posts.AdjustLikeCount(postID, 1)
	}

	log.WithFields(logrus.Fields{
		"users":    s.Users.Count(),
		"posts":    s.Posts.Count(),
		"comments": s.Comments.Count(),
		"likes":    s.Likes.Count(),
	}).Info("Store seeded")
}
