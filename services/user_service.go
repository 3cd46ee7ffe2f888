// File: /services/user_service.go
package services

import (
	"blog-api/models"
	"blog-api/repositories"
	"blog-api/utils"
	"errors"

	"github.com/sirupsen/logrus"
)

type UserService struct {
	store *repositories.Store
	log   logrus.FieldLogger
}

func NewUserService(store *repositories.Store, log logrus.FieldLogger) *UserService {
	return &UserService{store: store, log: log}
}

// Signup creates a user after checking that both email and nickname are free
func (s *UserService) Signup(email, password, nickname, imageURL string) (int, error) {
	var userID int
	err := s.store.Atomically(func() error {
		if _, err := s.store.Users.FindByEmail(email); err == nil {
			return utils.NewConflict("Email already in use")
		}
		if _, err := s.store.Users.FindByNickname(nickname); err == nil {
			return utils.NewConflict("Nickname already in use")
		}
		userID = s.store.Users.Add(email, password, nickname, imageURL)
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.WithFields(logrus.Fields{"user_id": userID, "nickname": nickname}).Info("User signed up")
	return userID, nil
}

func (s *UserService) Login(email, password string) (*models.UserPublic, error) {
	user, err := s.store.Users.Authenticate(email, password)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, utils.NewForbidden("Invalid email or password")
		}
		return nil, err
	}

	public := user.ToPublic()
	return &public, nil
}

func (s *UserService) GetProfile(userID int) (*models.UserProfile, error) {
	user, err := findUser(s.store, userID)
	if err != nil {
		return nil, err
	}
	profile := user.ToProfile()
	return &profile, nil
}

// UpdateProfile changes nickname and image. A nil imageURL keeps the current
// image. Keeping one's own nickname is not a conflict.
func (s *UserService) UpdateProfile(userID int, nickname string, imageURL *string) error {
	return s.store.Atomically(func() error {
		user, err := findUser(s.store, userID)
		if err != nil {
			return err
		}

		if other, err := s.store.Users.FindByNickname(nickname); err == nil && other.UserID != userID {
			return utils.NewConflict("Nickname already in use")
		}

		image := user.ProfileImageURL
		if imageURL != nil {
			image = *imageURL
		}
		if err := s.store.Users.UpdateProfile(userID, nickname, image); err != nil {
			return err
		}

		s.log.WithField("user_id", userID).Info("Profile updated")
		return nil
	})
}

func (s *UserService) ChangePassword(userID int, password string) error {
	err := s.store.Users.UpdatePassword(userID, password)
	if errors.Is(err, repositories.ErrRecordNotFound) {
		return utils.NewNotFound(msgUserNotFound)
	}
	return err
}

// DeleteUser removes the user together with their likes, comments and posts.
// Likes go first so every affected post's like count stays in step.
func (s *UserService) DeleteUser(userID int) error {
	return s.store.Atomically(func() error {
		if _, err := findUser(s.store, userID); err != nil {
			return err
		}

		for _, like := range s.store.Likes.ListByUser(userID) {
			if s.store.Likes.Remove(like.PostID, userID) {
				if err := s.store.Posts.AdjustLikeCount(like.PostID, -1); err != nil && !errors.Is(err, repositories.ErrRecordNotFound) {
					return err
				}
			}
		}
		comments := s.store.Comments.DeleteByUser(userID)

		posts := s.store.Posts.ListByPoster(userID)
		for _, post := range posts {
			deletePostCascade(s.store, post.PostID)
		}

		if !s.store.Users.DeleteByID(userID) {
			return utils.NewBadRequest("User could not be deleted")
		}

		s.log.WithFields(logrus.Fields{
			"user_id":  userID,
			"posts":    len(posts),
			"comments": comments,
		}).Info("User deleted")
		return nil
	})
}
