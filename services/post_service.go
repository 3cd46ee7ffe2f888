// File: /services/post_service.go
package services

import (
	"blog-api/models"
	"blog-api/repositories"
	"blog-api/utils"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

type PostService struct {
	store *repositories.Store
	log   logrus.FieldLogger
	now   clock
}

func NewPostService(store *repositories.Store, log logrus.FieldLogger) *PostService {
	return &PostService{store: store, log: log, now: time.Now}
}

func (s *PostService) List(offset, limit int) models.PostPage {
	posts, next := s.store.Posts.List(offset, limit)
	return models.PostPage{Posts: posts, Next: next}
}

func (s *PostService) ListByPoster(userID int) ([]models.Post, error) {
	if _, err := findUser(s.store, userID); err != nil {
		return nil, err
	}
	return s.store.Posts.ListByPoster(userID), nil
}

// Create adds a post for an existing poster and returns the new post id
func (s *PostService) Create(title, content string, posterID int, imageURLs []string) (int, error) {
	var postID int
	err := s.store.Atomically(func() error {
		if _, err := findUser(s.store, posterID); err != nil {
			return err
		}
		postID = s.store.Posts.Add(title, content, posterID, imageURLs, s.now())
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.WithFields(logrus.Fields{"post_id": postID, "poster_id": posterID}).Info("Post created")
	return postID, nil
}

// Get returns the post joined with its poster and comments and counts the
// read as a view. Nothing is counted when the join fails.
func (s *PostService) Get(postID int) (*models.PostDetail, error) {
	var detail models.PostDetail
	err := s.store.Atomically(func() error {
		post, err := findPost(s.store, postID)
		if err != nil {
			return err
		}

		poster, err := s.store.Users.FindByID(post.PosterID)
		if err != nil {
			return utils.NewInternal(fmt.Sprintf("Poster of post %d is missing", postID))
		}

		comments, err := projectComments(s.store, s.store.Comments.ListByPost(postID))
		if err != nil {
			return err
		}

		viewed, err := s.store.Posts.IncrementView(postID)
		if err != nil {
			return err
		}

		detail = models.NewPostDetail(*viewed, *poster, comments)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// Edit replaces title, content and images. Only the poster may edit.
func (s *PostService) Edit(postID, userID int, title, content string, imageURLs []string) error {
	return s.store.Atomically(func() error {
		post, user, err := findPostAndUser(s.store, postID, userID)
		if err != nil {
			return err
		}
		if post.PosterID != user.UserID {
			return utils.NewForbidden("Only the poster can edit this post")
		}
		if err := s.store.Posts.Edit(postID, title, content, imageURLs); err != nil {
			return err
		}

		s.log.WithField("post_id", postID).Info("Post edited")
		return nil
	})
}

// Delete removes the post along with its comments and likes
func (s *PostService) Delete(postID, userID int) error {
	return s.store.Atomically(func() error {
		if _, _, err := findPostAndUser(s.store, postID, userID); err != nil {
			return err
		}

		deleted, comments, likes := deletePostCascade(s.store, postID)
		if !deleted {
			return utils.NewBadRequest("Post could not be deleted")
		}

		s.log.WithFields(logrus.Fields{
			"post_id":  postID,
			"user_id":  userID,
			"comments": comments,
			"likes":    likes,
		}).Info("Post deleted")
		return nil
	})
}

// Like records the user's like and increments the post's like count. If the
// counter cannot move the like is rolled back.
func (s *PostService) Like(postID, userID int) error {
	return s.store.Atomically(func() error {
		if _, _, err := findPostAndUser(s.store, postID, userID); err != nil {
			return err
		}

		if !s.store.Likes.Add(postID, userID, s.now()) {
			return utils.NewBadRequest("Post already liked")
		}
		if err := s.store.Posts.AdjustLikeCount(postID, 1); err != nil {
			s.store.Likes.Remove(postID, userID)
			return fmt.Errorf("adjust like count of post %d: %w", postID, err)
		}
		return nil
	})
}

// Unlike removes the user's like and decrements the post's like count
func (s *PostService) Unlike(postID, userID int) error {
	return s.store.Atomically(func() error {
		if _, _, err := findPostAndUser(s.store, postID, userID); err != nil {
			return err
		}

		if !s.store.Likes.Remove(postID, userID) {
			return utils.NewBadRequest("Post not liked")
		}
		if err := s.store.Posts.AdjustLikeCount(postID, -1); err != nil {
			s.store.Likes.Add(postID, userID, s.now())
			if errors.Is(err, repositories.ErrNegativeLikeCount) {
				return utils.NewInternal("Like count is out of sync")
			}
			return fmt.Errorf("adjust like count of post %d: %w", postID, err)
		}
		return nil
	})
}
