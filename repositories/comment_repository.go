// File: /repositories/comment_repository.go
package repositories

import (
	"blog-api/models"
	"sync"
	"time"
)

type CommentRepository struct {
	mu       sync.RWMutex
	comments []models.Comment
	nextID   int
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{}
}

func (r *CommentRepository) Add(postID, userID int, text string, commentedAt time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	r.comments = append(r.comments, models.Comment{
		CommentID:   id,
		PostID:      postID,
		UserID:      userID,
		Text:        text,
		CommentedAt: commentedAt,
	})
	return id
}

func (r *CommentRepository) indexOf(commentID int) int {
	for i := range r.comments {
		if r.comments[i].CommentID == commentID {
			return i
		}
	}
	return -1
}

func (r *CommentRepository) FindByID(commentID int) (*models.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(commentID)
	if idx < 0 {
		return nil, ErrRecordNotFound
	}
	comment := r.comments[idx]
	return &comment, nil
}

// ListByPost returns the post's comments in the order they were written
func (r *CommentRepository) ListByPost(postID int) []models.Comment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	comments := make([]models.Comment, 0)
	for _, comment := range r.comments {
		if comment.PostID == postID {
			comments = append(comments, comment)
		}
	}
	return comments
}

func (r *CommentRepository) Edit(commentID int, text string, commentedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(commentID)
	if idx < 0 {
		return ErrRecordNotFound
	}
	r.comments[idx].Text = text
	r.comments[idx].CommentedAt = commentedAt
	return nil
}

func (r *CommentRepository) DeleteByID(commentID int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(commentID)
	if idx < 0 {
		return false
	}
	r.comments = append(r.comments[:idx], r.comments[idx+1:]...)
	return true
}

func (r *CommentRepository) deleteWhere(match func(models.Comment) bool) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.comments[:0]
	removed := 0
	for _, comment := range r.comments {
		if match(comment) {
			removed++
			continue
		}
		kept = append(kept, comment)
	}
	r.comments = kept
	return removed
}

// DeleteByPost removes every comment on the post and returns how many were removed
func (r *CommentRepository) DeleteByPost(postID int) int {
	return r.deleteWhere(func(c models.Comment) bool { return c.PostID == postID })
}

// DeleteByUser removes every comment the user wrote and returns how many were removed
func (r *CommentRepository) DeleteByUser(userID int) int {
	return r.deleteWhere(func(c models.Comment) bool { return c.UserID == userID })
}

func (r *CommentRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.comments)
}
