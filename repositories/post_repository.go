// File: /repositories/post_repository.go
package repositories

import (
	"blog-api/models"
	"errors"
	"sync"
	"time"
)

var ErrNegativeLikeCount = errors.New("like count would become negative")

// PostRepository holds posts in insertion order. Ownership and poster
// existence are checked by the caller.
type PostRepository struct {
	mu     sync.RWMutex
	posts  []models.Post
	nextID int
}

func NewPostRepository() *PostRepository {
	return &PostRepository{}
}

func (r *PostRepository) Add(title, content string, posterID int, imageURLs []string, postedAt time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	r.posts = append(r.posts, models.Post{
		PostID:    id,
		Title:     title,
		Content:   content,
		ImageURLs: models.StringSlice(imageURLs).Clone(),
		PosterID:  posterID,
		PostedAt:  postedAt,
	})
	return id
}

func (r *PostRepository) indexOf(postID int) int {
	for i := range r.posts {
		if r.posts[i].PostID == postID {
			return i
		}
	}
	return -1
}

func copyPost(p models.Post) models.Post {
	p.ImageURLs = p.ImageURLs.Clone()
	return p
}

func (r *PostRepository) FindByID(postID int) (*models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(postID)
	if idx < 0 {
		return nil, ErrRecordNotFound
	}
	post := copyPost(r.posts[idx])
	return &post, nil
}

func (r *PostRepository) DeleteByID(postID int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(postID)
	if idx < 0 {
		return false
	}
	r.posts = append(r.posts[:idx], r.posts[idx+1:]...)
	return true
}

// List returns posts[offset:offset+limit] clamped to the store. next is the
// offset of the following page, or -1 when this page reaches the end.
func (r *PostRepository) List(offset, limit int) ([]models.Post, int) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := len(r.posts)
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	if limit < 0 {
		limit = 0
	}
	if limit > total-offset {
		limit = total - offset
	}
	end := offset + limit

	page := make([]models.Post, 0, end-offset)
	for _, post := range r.posts[offset:end] {
		page = append(page, copyPost(post))
	}

	next := end
	if end == total {
		next = -1
	}
	return page, next
}

func (r *PostRepository) ListByPoster(posterID int) []models.Post {
	r.mu.RLock()
	defer r.mu.RUnlock()

	posts := make([]models.Post, 0)
	for _, post := range r.posts {
		if post.PosterID == posterID {
			posts = append(posts, copyPost(post))
		}
	}
	return posts
}

func (r *PostRepository) Edit(postID int, title, content string, imageURLs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(postID)
	if idx < 0 {
		return ErrRecordNotFound
	}
	r.posts[idx].Title = title
	r.posts[idx].Content = content
	r.posts[idx].ImageURLs = models.StringSlice(imageURLs).Clone()
	return nil
}

// IncrementView bumps the view counter and returns the post as it is after
// the increment.
func (r *PostRepository) IncrementView(postID int) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(postID)
	if idx < 0 {
		return nil, ErrRecordNotFound
	}
	r.posts[idx].ViewCount++
	post := copyPost(r.posts[idx])
	return &post, nil
}

func (r *PostRepository) AdjustLikeCount(postID, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(postID)
	if idx < 0 {
		return ErrRecordNotFound
	}
	if r.posts[idx].LikeCount+delta < 0 {
		return ErrNegativeLikeCount
	}
	r.posts[idx].LikeCount += delta
	return nil
}

func (r *PostRepository) setViewCount(postID, views int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if idx := r.indexOf(postID); idx >= 0 {
		r.posts[idx].ViewCount = views
	}
}

func (r *PostRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.posts)
}
