// File: /services/comment_service.go
package services

import (
	"blog-api/models"
	"blog-api/repositories"
	"blog-api/utils"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

type CommentService struct {
	store *repositories.Store
	log   logrus.FieldLogger
	now   clock
}

func NewCommentService(store *repositories.Store, log logrus.FieldLogger) *CommentService {
	return &CommentService{store: store, log: log, now: time.Now}
}

func projectComments(store *repositories.Store, comments []models.Comment) ([]models.CommentPublic, error) {
	public := make([]models.CommentPublic, 0, len(comments))
	for _, comment := range comments {
		commenter, err := store.Users.FindByID(comment.UserID)
		if err != nil {
			return nil, utils.NewInternal(fmt.Sprintf("Author of comment %d is missing", comment.CommentID))
		}
		public = append(public, comment.ToPublic(*commenter))
	}
	return public, nil
}

func (s *CommentService) List(postID int) ([]models.CommentPublic, error) {
	var public []models.CommentPublic
	err := s.store.Atomically(func() error {
		if _, err := findPost(s.store, postID); err != nil {
			return err
		}
		var err error
		public, err = projectComments(s.store, s.store.Comments.ListByPost(postID))
		return err
	})
	return public, err
}

func (s *CommentService) Write(postID, userID int, text string) (int, error) {
	var commentID int
	err := s.store.Atomically(func() error {
		if _, _, err := findPostAndUser(s.store, postID, userID); err != nil {
			return err
		}
		commentID = s.store.Comments.Add(postID, userID, text, s.now())
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.WithFields(logrus.Fields{"comment_id": commentID, "post_id": postID}).Info("Comment written")
	return commentID, nil
}

// findCommentOnPost fails with not-found unless the comment exists and
// belongs to postID.
func (s *CommentService) findCommentOnPost(postID, commentID int) (*models.Comment, error) {
	comment, err := s.store.Comments.FindByID(commentID)
	if err != nil || comment.PostID != postID {
		return nil, utils.NewNotFound(msgCommentNotFound)
	}
	return comment, nil
}

func (s *CommentService) Edit(postID, commentID, userID int, text string) error {
	return s.store.Atomically(func() error {
		if _, _, err := findPostAndUser(s.store, postID, userID); err != nil {
			return err
		}
		if _, err := s.findCommentOnPost(postID, commentID); err != nil {
			return err
		}
		if err := s.store.Comments.Edit(commentID, text, s.now()); err != nil {
			return utils.NewNotFound(msgCommentNotFound)
		}
		return nil
	})
}

func (s *CommentService) Delete(postID, commentID, userID int) error {
	return s.store.Atomically(func() error {
		if _, _, err := findPostAndUser(s.store, postID, userID); err != nil {
			return err
		}
		if _, err := s.findCommentOnPost(postID, commentID); err != nil {
			return err
		}
		if !s.store.Comments.DeleteByID(commentID) {
			return utils.NewBadRequest("Comment could not be deleted")
		}

		s.log.WithFields(logrus.Fields{"comment_id": commentID, "post_id": postID}).Info("Comment deleted")
		return nil
	})
}
