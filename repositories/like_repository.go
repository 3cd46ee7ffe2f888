// File: /repositories/like_repository.go
package repositories

import (
	"blog-api/models"
	"sync"
	"time"
)

// LikeRepository keeps at most one like per (post, user) pair. It does not
// touch Post.LikeCount; callers adjust the counter for every successful
// Add or Remove.
type LikeRepository struct {
	mu     sync.RWMutex
	likes  []models.Like
	nextID int
}

func NewLikeRepository() *LikeRepository {
	return &LikeRepository{}
}

func (r *LikeRepository) indexOf(postID, userID int) int {
	for i := range r.likes {
		if r.likes[i].PostID == postID && r.likes[i].UserID == userID {
			return i
		}
	}
	return -1
}

// Add records the like. It returns false if the user already likes the post.
func (r *LikeRepository) Add(postID, userID int, likedAt time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(postID, userID) >= 0 {
		return false
	}
	r.likes = append(r.likes, models.Like{
		LikeID:  r.nextID,
		PostID:  postID,
		UserID:  userID,
		LikedAt: likedAt,
	})
	r.nextID++
	return true
}

// Remove deletes the like. It returns false if there was none.
func (r *LikeRepository) Remove(postID, userID int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(postID, userID)
	if idx < 0 {
		return false
	}
	r.likes = append(r.likes[:idx], r.likes[idx+1:]...)
	return true
}

func (r *LikeRepository) Exists(postID, userID int) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.indexOf(postID, userID) >= 0
}

func (r *LikeRepository) CountByPost(postID int) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, like := range r.likes {
		if like.PostID == postID {
			count++
		}
	}
	return count
}

func (r *LikeRepository) ListByUser(userID int) []models.Like {
	r.mu.RLock()
	defer r.mu.RUnlock()

	likes := make([]models.Like, 0)
	for _, like := range r.likes {
		if like.UserID == userID {
			likes = append(likes, like)
		}
	}
	return likes
}

// DeleteByPost removes every like on the post and returns how many were removed
func (r *LikeRepository) DeleteByPost(postID int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.likes[:0]
	removed := 0
	for _, like := range r.likes {
		if like.PostID == postID {
			removed++
			continue
		}
		kept = append(kept, like)
	}
	r.likes = kept
	return removed
}

func (r *LikeRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.likes)
}
